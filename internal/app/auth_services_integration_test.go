//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence/models"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.Auth.CreateUser(ctx, " admin ", "s3nha-forte", true)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotEqual(t, "s3nha-forte", user.PasswordHash)

	session, err := services.Auth.Login(ctx, "admin", "s3nha-forte")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.User.ID)

	stored, err := services.DBContext.Repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)

	authenticated, err := services.Auth.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.True(t, authenticated.CanUsePanel())

	_, err = services.Auth.Authenticate(ctx, session.Token+"x")
	assert.ErrorIs(t, err, staff.ErrInvalidToken)
}

func TestAuthService_LoginFailures(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.Auth.CreateUser(ctx, "admin", "s3nha-forte", true)
	require.NoError(t, err)

	_, err = services.Auth.Login(ctx, "admin", "errada123")
	assert.ErrorIs(t, err, staff.ErrInvalidCredentials)

	_, err = services.Auth.Login(ctx, "ninguem", "s3nha-forte")
	assert.ErrorIs(t, err, staff.ErrInvalidCredentials)
}

func TestAuthService_InactiveUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.Auth.CreateUser(ctx, "admin", "s3nha-forte", true)
	require.NoError(t, err)
	session, err := services.Auth.Login(ctx, "admin", "s3nha-forte")
	require.NoError(t, err)

	require.NoError(t, services.DBContext.DB.Model(&models.UserModel{}).
		Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err = services.Auth.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, staff.ErrInvalidToken)

	_, err = services.Auth.Login(ctx, "admin", "s3nha-forte")
	assert.ErrorIs(t, err, staff.ErrInvalidCredentials)
}

func TestAuthService_CreateUserValidation(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.Auth.CreateUser(ctx, "  ", "s3nha-forte", true)
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("username"))

	_, err = services.Auth.CreateUser(ctx, "admin", "curta", true)
	assert.ErrorIs(t, err, staff.ErrPasswordTooShort)

	_, err = services.Auth.CreateUser(ctx, "admin", "s3nha-forte", true)
	require.NoError(t, err)
	_, err = services.Auth.CreateUser(ctx, "admin", "outra-senha", false)
	assert.ErrorIs(t, err, staff.ErrUsernameTaken)
}
