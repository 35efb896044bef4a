package persistence

import (
	"context"
	"fmt"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence/models"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAcademyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAcademyRepository creates a new GORM-based AcademyRepository implementation
func NewGormAcademyRepository(db *gorm.DB, logger logger.Logger) (academies.AcademyRepository, error) {
	return &gormAcademyRepository{db: db, logger: logger}, nil
}

func (r *gormAcademyRepository) Create(ctx context.Context, academy *academies.Academy) error {
	// Validate domain entity (business rules)
	if err := academy.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AcademyModel{}
	model.FromDomain(academy)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "academy")
	}
	academy.CreatedAt, academy.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("Created academy", "id", academy.ID, "name", academy.Name)
	return nil
}

func (r *gormAcademyRepository) GetByID(ctx context.Context, id string) (*academies.Academy, error) {
	var model models.AcademyModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "academy "+id)
	}
	return model.ToDomain(), nil
}

func (r *gormAcademyRepository) FindByNaturalKey(ctx context.Context, name, city, state string) (*academies.Academy, error) {
	var model models.AcademyModel
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND LOWER(city) = LOWER(?) AND LOWER(state) = LOWER(?)", name, city, state).
		Order("created_at").
		First(&model).Error
	if err != nil {
		return nil, translate(err, "fetch", "academy")
	}
	return model.ToDomain(), nil
}

type gormCoachRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCoachRepository creates a new GORM-based CoachRepository implementation
func NewGormCoachRepository(db *gorm.DB, logger logger.Logger) (academies.CoachRepository, error) {
	return &gormCoachRepository{db: db, logger: logger}, nil
}

func (r *gormCoachRepository) Create(ctx context.Context, coach *academies.Coach) error {
	if err := coach.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CoachModel{}
	model.FromDomain(coach)
	if err := r.db.WithContext(ctx).Omit("Academy").Create(model).Error; err != nil {
		return translate(err, "create", "coach")
	}
	coach.CreatedAt, coach.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("Created coach", "id", coach.ID, "academy_id", coach.AcademyID)
	return nil
}

func (r *gormCoachRepository) GetByID(ctx context.Context, id string) (*academies.Coach, error) {
	var model models.CoachModel
	if err := r.db.WithContext(ctx).Preload("Academy").Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "coach "+id)
	}
	return model.ToDomain(), nil
}

func (r *gormCoachRepository) FindByName(ctx context.Context, academyID, fullName string) (*academies.Coach, error) {
	var model models.CoachModel
	err := r.db.WithContext(ctx).
		Where("academy_id = ? AND LOWER(full_name) = LOWER(?)", academyID, fullName).
		Order("created_at").
		First(&model).Error
	if err != nil {
		return nil, translate(err, "fetch", "coach")
	}
	return model.ToDomain(), nil
}
