package persistence

import (
	"context"
	"fmt"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence/models"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMetricRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMetricRepository creates a new GORM-based MetricRepository implementation
func NewGormMetricRepository(db *gorm.DB, logger logger.Logger) (matchmaking.MetricRepository, error) {
	return &gormMetricRepository{db: db, logger: logger}, nil
}

func (r *gormMetricRepository) toModel(metric *matchmaking.Metric) (*models.MetricModel, error) {
	if err := metric.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	model := &models.MetricModel{}
	if err := model.FromDomain(metric); err != nil {
		return nil, fmt.Errorf("failed to encode metric tables: %w", err)
	}
	return model, nil
}

func (r *gormMetricRepository) Create(ctx context.Context, metric *matchmaking.Metric) error {
	model, err := r.toModel(metric)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "metric")
	}
	metric.CreatedAt, metric.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("Created metric", "id", metric.ID, "name", metric.Name)
	return nil
}

func (r *gormMetricRepository) Update(ctx context.Context, metric *matchmaking.Metric) error {
	model, err := r.toModel(metric)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translate(err, "update", "metric")
	}
	metric.UpdatedAt = model.UpdatedAt

	r.logger.Info("Updated metric", "id", metric.ID, "name", metric.Name)
	return nil
}

func (r *gormMetricRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MetricModel{})
	if result.Error != nil {
		return translate(result.Error, "delete", "metric")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete", "metric "+id)
	}

	r.logger.Info("Deleted metric", "id", id)
	return nil
}

func (r *gormMetricRepository) GetByID(ctx context.Context, id string) (*matchmaking.Metric, error) {
	var model models.MetricModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "metric "+id)
	}
	return model.ToDomain(), nil
}

func (r *gormMetricRepository) GetByName(ctx context.Context, name string) (*matchmaking.Metric, error) {
	var model models.MetricModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "metric "+name)
	}
	return model.ToDomain(), nil
}

func (r *gormMetricRepository) NameExists(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.MetricModel{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, translate(err, "count", "metrics")
	}
	return count > 0, nil
}

func (r *gormMetricRepository) List(ctx context.Context, query *matchmaking.MetricQuery) ([]*matchmaking.Metric, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.MetricModel{})
	if query.Search != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ?", likePattern(query.Search))
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count", "metrics")
	}

	dbQuery = dbQuery.Order("name")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.MetricModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, translate(err, "fetch", "metrics")
	}

	domainList := make([]*matchmaking.Metric, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}
