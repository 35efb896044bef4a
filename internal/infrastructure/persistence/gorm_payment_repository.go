package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence/models"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormPaymentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaymentRepository creates a new GORM-based PaymentRepository implementation
func NewGormPaymentRepository(db *gorm.DB, logger logger.Logger) (payments.PaymentRepository, error) {
	return &gormPaymentRepository{db: db, logger: logger}, nil
}

// Save upserts on registration_id, so a registration keeps a single payment row.
func (r *gormPaymentRepository) Save(ctx context.Context, p *payments.Payment) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var existing models.PaymentModel
	err := r.db.WithContext(ctx).Where("registration_id = ?", p.RegistrationID).First(&existing).Error
	switch {
	case err == nil:
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return translate(err, "fetch", "payment")
	}

	model := &models.PaymentModel{}
	model.FromDomain(p)
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error
	if err != nil {
		return translate(err, "save", "payment")
	}
	p.CreatedAt, p.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("Saved payment", "id", p.ID, "registration_id", p.RegistrationID, "status", p.Status)
	return nil
}

func (r *gormPaymentRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*payments.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).Where("registration_id = ?", registrationID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "payment")
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentRepository) GetByGatewayID(ctx context.Context, gatewayPaymentID string) (*payments.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).Where("gateway_payment_id = ?", gatewayPaymentID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "payment "+gatewayPaymentID)
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentRepository) ListByRegistrationIDs(ctx context.Context, registrationIDs []string) (map[string]*payments.Payment, error) {
	result := make(map[string]*payments.Payment, len(registrationIDs))
	if len(registrationIDs) == 0 {
		return result, nil
	}

	var modelList []*models.PaymentModel
	if err := r.db.WithContext(ctx).Where("registration_id IN ?", registrationIDs).Find(&modelList).Error; err != nil {
		return nil, translate(err, "fetch", "payments")
	}
	for _, model := range modelList {
		result[model.RegistrationID] = model.ToDomain()
	}
	return result, nil
}
