package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence/models"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEventRepository creates a new GORM-based EventRepository implementation
func NewGormEventRepository(db *gorm.DB, logger logger.Logger) (events.EventRepository, error) {
	return &gormEventRepository{db: db, logger: logger}, nil
}

func (r *gormEventRepository) Create(ctx context.Context, event *events.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EventModel{}
	model.FromDomain(event)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "event")
	}
	event.CreatedAt, event.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("Created event", "id", event.ID, "slug", event.Slug)
	return nil
}

func (r *gormEventRepository) Update(ctx context.Context, event *events.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EventModel{}
	model.FromDomain(event)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translate(err, "update", "event")
	}
	event.UpdatedAt = model.UpdatedAt

	r.logger.Info("Updated event", "id", event.ID)
	return nil
}

func (r *gormEventRepository) GetByID(ctx context.Context, id string) (*events.Event, error) {
	var model models.EventModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "event "+id)
	}
	return model.ToDomain(), nil
}

func (r *gormEventRepository) GetBySlug(ctx context.Context, slug string) (*events.Event, error) {
	var model models.EventModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "event "+slug)
	}
	return model.ToDomain(), nil
}

func (r *gormEventRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.EventModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, translate(err, "count", "events")
	}
	return count > 0, nil
}

func (r *gormEventRepository) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.EventModel{})

	// Apply filters
	if query.Search != "" {
		pattern := likePattern(query.Search)
		dbQuery = dbQuery.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}
	switch {
	case query.PublishedOnly, query.Status == events.EventFilterPublished:
		dbQuery = dbQuery.Where("is_published = ?", true)
	case query.Status == events.EventFilterDrafts:
		dbQuery = dbQuery.Where("is_published = ?", false)
	}
	if query.StartsAfter != nil {
		dbQuery = dbQuery.Where("start_at >= ?", *query.StartsAfter)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count", "events")
	}

	// Sorting
	if query.Ascending {
		dbQuery = dbQuery.Order("start_at asc")
	} else {
		dbQuery = dbQuery.Order("start_at desc")
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.EventModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, translate(err, "fetch", "events")
	}

	domainList := make([]*events.Event, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormEventRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EventModel{}).Where("is_published = ?", true).Count(&count).Error
	return count, translate(err, "count", "events")
}

func (r *gormEventRepository) CountOpen(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EventModel{}).
		Where("is_published = ? AND registration_deadline >= ?", true, now).
		Count(&count).Error
	return count, translate(err, "count", "events")
}
