//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_Create_KeepsFlags(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "secretaria")
	user.IsActive = false
	user.IsStaff = false
	require.NoError(t, ctx.Repos.Users.Create(context.Background(), user))

	fetched, err := ctx.Repos.Users.GetByUsername(context.Background(), "secretaria")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.False(t, fetched.IsActive)
	assert.False(t, fetched.IsStaff)
}
