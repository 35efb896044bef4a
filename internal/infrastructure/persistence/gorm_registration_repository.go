package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence/models"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormRegistrationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRegistrationRepository creates a new GORM-based RegistrationRepository implementation
func NewGormRegistrationRepository(db *gorm.DB, logger logger.Logger) (events.RegistrationRepository, error) {
	return &gormRegistrationRepository{db: db, logger: logger}, nil
}

func (r *gormRegistrationRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Event").Preload("Academy").Preload("Coach")
}

func (r *gormRegistrationRepository) Create(ctx context.Context, reg *events.AthleteRegistration) error {
	// Validate domain entity (business rules)
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RegistrationModel{}
	model.FromDomain(reg)
	if err := r.db.WithContext(ctx).Omit("Event", "Academy", "Coach").Create(model).Error; err != nil {
		return translate(err, "create", "registration")
	}
	reg.CreatedAt, reg.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("Created registration", "id", reg.ID, "event_id", reg.EventID, "status", reg.Status)
	return nil
}

func (r *gormRegistrationRepository) Update(ctx context.Context, reg *events.AthleteRegistration) error {
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RegistrationModel{}
	model.FromDomain(reg)
	if err := r.db.WithContext(ctx).Omit("Event", "Academy", "Coach").Save(model).Error; err != nil {
		return translate(err, "update", "registration")
	}
	reg.UpdatedAt = model.UpdatedAt

	r.logger.Info("Updated registration", "id", reg.ID, "status", reg.Status)
	return nil
}

func (r *gormRegistrationRepository) UpdateStatus(ctx context.Context, id string, status events.Status) error {
	result := r.db.WithContext(ctx).Model(&models.RegistrationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return translate(result.Error, "update", "registration")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "update", "registration "+id)
	}

	r.logger.Info("Updated registration status", "id", id, "status", status)
	return nil
}

func (r *gormRegistrationRepository) GetByID(ctx context.Context, id string) (*events.AthleteRegistration, error) {
	var model models.RegistrationModel
	if err := r.withRelations(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "registration "+id)
	}
	return model.ToDomain(), nil
}

func (r *gormRegistrationRepository) CPFExists(ctx context.Context, eventID, cpf string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RegistrationModel{}).
		Where("event_id = ? AND cpf = ?", eventID, cpf).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "count", "registrations")
	}
	return count > 0, nil
}

func (r *gormRegistrationRepository) List(ctx context.Context, query *events.RegistrationQuery) ([]*events.AthleteRegistration, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.RegistrationModel{})

	// Apply filters
	if query.Search != "" {
		pattern := likePattern(query.Search)
		dbQuery = dbQuery.
			Joins("LEFT JOIN academies ON academies.id = athlete_registrations.academy_id").
			Joins("LEFT JOIN coaches ON coaches.id = athlete_registrations.coach_id").
			Where("LOWER(athlete_registrations.athlete_name) LIKE ? OR LOWER(academies.name) LIKE ? OR LOWER(coaches.full_name) LIKE ?",
				pattern, pattern, pattern)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("athlete_registrations.status = ?", string(query.Status))
	}
	if query.EventID != "" {
		dbQuery = dbQuery.Where("athlete_registrations.event_id = ?", query.EventID)
	}
	if query.EventSlug != "" {
		dbQuery = dbQuery.Where("athlete_registrations.event_id IN (?)",
			r.db.WithContext(ctx).Model(&models.EventModel{}).Select("id").Where("slug = ?", query.EventSlug))
	}
	if query.Modality != "" {
		dbQuery = dbQuery.Where("athlete_registrations.modality = ?", string(query.Modality))
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count", "registrations")
	}

	dbQuery = dbQuery.Preload("Event").Preload("Academy").Preload("Coach").
		Order("athlete_registrations.created_at desc")

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.RegistrationModel
	if err := dbQuery.Select("athlete_registrations.*").Find(&modelList).Error; err != nil {
		return nil, 0, translate(err, "fetch", "registrations")
	}
	return registrationsToDomain(modelList), total, nil
}

func (r *gormRegistrationRepository) ListByCPFAndBirthDate(ctx context.Context, cpf string, birthDate time.Time) ([]*events.AthleteRegistration, error) {
	var modelList []*models.RegistrationModel
	err := r.withRelations(ctx).
		Where("cpf = ? AND birth_date = ?", cpf, events.Date(birthDate)).
		Order("created_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, translate(err, "fetch", "registrations")
	}
	return registrationsToDomain(modelList), nil
}

func (r *gormRegistrationRepository) ListConfirmedByEvent(ctx context.Context, eventID string) ([]*events.AthleteRegistration, error) {
	var modelList []*models.RegistrationModel
	err := r.withRelations(ctx).
		Where("event_id = ? AND status = ?", eventID, string(events.StatusConfirmed)).
		Order("created_at").
		Find(&modelList).Error
	if err != nil {
		return nil, translate(err, "fetch", "registrations")
	}
	return registrationsToDomain(modelList), nil
}

func (r *gormRegistrationRepository) CountByStatus(ctx context.Context) (map[events.Status]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.RegistrationModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "count", "registrations")
	}

	counts := make(map[events.Status]int64, len(rows))
	for _, row := range rows {
		counts[events.Status(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *gormRegistrationRepository) CountByEvents(ctx context.Context, eventIDs []string) (map[string]events.EventCounts, error) {
	counts := make(map[string]events.EventCounts, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		EventID   string
		Total     int64
		Confirmed int64
	}
	err := r.db.WithContext(ctx).Model(&models.RegistrationModel{}).
		Select("event_id, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS confirmed", string(events.StatusConfirmed)).
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "count", "registrations")
	}

	for _, row := range rows {
		counts[row.EventID] = events.EventCounts{Total: row.Total, Confirmed: row.Confirmed}
	}
	return counts, nil
}

func (r *gormRegistrationRepository) TopAcademies(ctx context.Context, limit int) ([]events.AcademyCount, error) {
	var rows []struct {
		AcademyID string
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(&models.RegistrationModel{}).
		Select("academy_id, COUNT(*) AS total").
		Group("academy_id").
		Order("total desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "count", "registrations")
	}
	if len(rows) == 0 {
		return []events.AcademyCount{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.AcademyID
	}
	var academyModels []*models.AcademyModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&academyModels).Error; err != nil {
		return nil, translate(err, "fetch", "academies")
	}
	byID := make(map[string]*academies.Academy, len(academyModels))
	for _, model := range academyModels {
		byID[model.ID] = model.ToDomain()
	}

	result := make([]events.AcademyCount, 0, len(rows))
	for _, row := range rows {
		if academy, ok := byID[row.AcademyID]; ok {
			result = append(result, events.AcademyCount{Academy: *academy, Registrations: row.Total})
		}
	}
	return result, nil
}

func registrationsToDomain(modelList []*models.RegistrationModel) []*events.AthleteRegistration {
	domainList := make([]*events.AthleteRegistration, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
