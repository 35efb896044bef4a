package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence/models"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (staff.UserRepository, error) {
	return &gormUserRepository{db: db, logger: logger}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *staff.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "user")
	}
	user.CreatedAt, user.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("Created user", "id", user.ID, "username", user.Username, "staff", user.IsStaff)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id string) (*staff.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "user "+id)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*staff.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "user "+username)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("last_login", at).Error
	return translate(err, "update", "user")
}
