package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence/models"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"gorm.io/gorm"
)

const bracketOrder = "rule_set, experience_label, sex, age_group, weight_label, bracket_index"

type gormBracketRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBracketRepository creates a new GORM-based BracketRepository implementation
func NewGormBracketRepository(db *gorm.DB, logger logger.Logger) (matchmaking.BracketRepository, error) {
	return &gormBracketRepository{db: db, logger: logger}, nil
}

// withTree preloads what a bracket page needs.
func (r *gormBracketRepository) withTree(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Metric").
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("slot") }).
		Preload("Entries.Registration").
		Preload("Entries.Registration.Academy").
		Preload("Entries.Registration.Coach").
		Preload("Matches", func(db *gorm.DB) *gorm.DB { return db.Order("round_number, position") })
}

func (r *gormBracketRepository) Create(ctx context.Context, b *matchmaking.Bracket) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BracketModel{}
	model.FromDomain(b)
	if err := r.db.WithContext(ctx).Omit("Metric", "Matches", "Entries.Registration").Create(model).Error; err != nil {
		return translate(err, "create", "bracket")
	}
	b.CreatedAt, b.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("Created bracket", "id", b.ID, "event_id", b.EventID, "entries", len(b.Entries))
	return nil
}

func (r *gormBracketRepository) GetByID(ctx context.Context, id string) (*matchmaking.Bracket, error) {
	var model models.BracketModel
	if err := r.withTree(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "bracket "+id)
	}
	return model.ToDomain(), nil
}

func (r *gormBracketRepository) ListByEvent(ctx context.Context, eventID string) ([]*matchmaking.Bracket, error) {
	var modelList []*models.BracketModel
	if err := r.withTree(ctx).Where("event_id = ?", eventID).Order(bracketOrder).Find(&modelList).Error; err != nil {
		return nil, translate(err, "fetch", "brackets")
	}
	return bracketsToDomain(modelList), nil
}

func (r *gormBracketRepository) ListTotalsByEvent(ctx context.Context, eventID string) ([]*matchmaking.BracketTotals, error) {
	var modelList []*models.BracketModel
	err := r.db.WithContext(ctx).Preload("Metric").
		Where("event_id = ?", eventID).
		Order(bracketOrder).
		Find(&modelList).Error
	if err != nil {
		return nil, translate(err, "fetch", "brackets")
	}
	if len(modelList) == 0 {
		return []*matchmaking.BracketTotals{}, nil
	}

	ids := make([]string, len(modelList))
	for i, model := range modelList {
		ids[i] = model.ID
	}
	entryTotals, err := r.countPerBracket(ctx, &models.EntryModel{}, ids)
	if err != nil {
		return nil, err
	}
	matchTotals, err := r.countPerBracket(ctx, &models.MatchModel{}, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*matchmaking.BracketTotals, len(modelList))
	for i, model := range modelList {
		result[i] = &matchmaking.BracketTotals{
			Bracket:    model.ToDomain(),
			EntryTotal: entryTotals[model.ID],
			MatchTotal: matchTotals[model.ID],
		}
	}
	return result, nil
}

func (r *gormBracketRepository) countPerBracket(ctx context.Context, model interface{}, bracketIDs []string) (map[string]int64, error) {
	var rows []struct {
		BracketID string
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(model).
		Select("bracket_id, COUNT(*) AS total").
		Where("bracket_id IN ?", bracketIDs).
		Group("bracket_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "count", "bracket rows")
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.BracketID] = row.Total
	}
	return totals, nil
}

func (r *gormBracketRepository) CountByEventAndMetric(ctx context.Context, eventID, metricID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BracketModel{}).
		Where("event_id = ? AND metric_id = ?", eventID, metricID).
		Count(&count).Error
	return count, translate(err, "count", "brackets")
}

// DeleteByEventAndMetric removes matches, entries and brackets in that order.
func (r *gormBracketRepository) DeleteByEventAndMetric(ctx context.Context, eventID, metricID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := tx.Model(&models.BracketModel{}).Select("id").Where("event_id = ? AND metric_id = ?", eventID, metricID)
		if err := tx.Where("bracket_id IN (?)", ids).Delete(&models.MatchModel{}).Error; err != nil {
			return translate(err, "delete", "matches")
		}
		if err := tx.Where("bracket_id IN (?)", ids).Delete(&models.EntryModel{}).Error; err != nil {
			return translate(err, "delete", "entries")
		}
		result := tx.Where("event_id = ? AND metric_id = ?", eventID, metricID).Delete(&models.BracketModel{})
		if result.Error != nil {
			return translate(result.Error, "delete", "brackets")
		}

		r.logger.Info("Deleted brackets", "event_id", eventID, "metric_id", metricID, "count", result.RowsAffected)
		return nil
	})
}

func (r *gormBracketRepository) CountByMetric(ctx context.Context, metricID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BracketModel{}).Where("metric_id = ?", metricID).Count(&count).Error
	return count, translate(err, "count", "brackets")
}

func (r *gormBracketRepository) ReplaceMatches(ctx context.Context, bracketID string, size int, matches []*matchmaking.Match) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bracket_id = ?", bracketID).Delete(&models.MatchModel{}).Error; err != nil {
			return translate(err, "delete", "matches")
		}
		if len(matches) > 0 {
			modelList := make([]*models.MatchModel, len(matches))
			for i, match := range matches {
				modelList[i] = &models.MatchModel{}
				modelList[i].FromDomain(match)
			}
			if err := tx.CreateInBatches(modelList, 100).Error; err != nil {
				return translate(err, "create", "matches")
			}
		}
		err := tx.Model(&models.BracketModel{}).Where("id = ?", bracketID).
			Updates(map[string]any{"size": size, "updated_at": time.Now().UTC()}).Error
		if err != nil {
			return translate(err, "update", "bracket")
		}

		r.logger.Info("Replaced bracket matches", "bracket_id", bracketID, "size", size, "matches", len(matches))
		return nil
	})
}

func (r *gormBracketRepository) UpdateSlots(ctx context.Context, bracketID string, changes []matchmaking.SlotChange, offset int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, shift := range []int{offset, 0} {
			for _, change := range changes {
				err := tx.Model(&models.EntryModel{}).
					Where("id = ? AND bracket_id = ?", change.EntryID, bracketID).
					Updates(map[string]any{"slot": change.Slot + shift, "updated_at": now}).Error
				if err != nil {
					return translate(err, "update", "entry slot")
				}
			}
		}
		return nil
	})
}

func (r *gormBracketRepository) MarkManual(ctx context.Context, bracketID string) error {
	result := r.db.WithContext(ctx).Model(&models.BracketModel{}).
		Where("id = ?", bracketID).
		Updates(map[string]any{"is_manual": true, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return translate(result.Error, "update", "bracket")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "update", "bracket "+bracketID)
	}
	return nil
}

func (r *gormBracketRepository) AssignedRegistrationIDs(ctx context.Context, eventID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.EntryModel{}).
		Distinct("matchmaking_entries.registration_id").
		Joins("JOIN matchmaking_brackets ON matchmaking_brackets.id = matchmaking_entries.bracket_id").
		Where("matchmaking_brackets.event_id = ?", eventID).
		Pluck("matchmaking_entries.registration_id", &ids).Error
	if err != nil {
		return nil, translate(err, "fetch", "assigned registrations")
	}
	return ids, nil
}

func (r *gormBracketRepository) ListEntriesByRegistrationIDs(ctx context.Context, registrationIDs []string) (map[string][]*matchmaking.EntryPlacement, error) {
	result := make(map[string][]*matchmaking.EntryPlacement)
	if len(registrationIDs) == 0 {
		return result, nil
	}

	var entryModels []*models.EntryModel
	if err := r.db.WithContext(ctx).Where("registration_id IN ?", registrationIDs).Order("created_at").Find(&entryModels).Error; err != nil {
		return nil, translate(err, "fetch", "entries")
	}
	if len(entryModels) == 0 {
		return result, nil
	}

	bracketIDs := make([]string, 0, len(entryModels))
	for _, model := range entryModels {
		bracketIDs = append(bracketIDs, model.BracketID)
	}
	var bracketModels []*models.BracketModel
	if err := r.db.WithContext(ctx).Where("id IN ?", bracketIDs).Find(&bracketModels).Error; err != nil {
		return nil, translate(err, "fetch", "brackets")
	}
	brackets := make(map[string]*matchmaking.Bracket, len(bracketModels))
	for _, model := range bracketModels {
		brackets[model.ID] = model.ToDomain()
	}

	for _, model := range entryModels {
		bracket, ok := brackets[model.BracketID]
		if !ok {
			continue
		}
		result[model.RegistrationID] = append(result[model.RegistrationID], &matchmaking.EntryPlacement{
			Entry:   model.ToDomain(),
			Bracket: bracket,
		})
	}
	return result, nil
}

func bracketsToDomain(modelList []*models.BracketModel) []*matchmaking.Bracket {
	domainList := make([]*matchmaking.Bracket, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
