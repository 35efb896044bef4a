package models

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"

	"github.com/shopspring/decimal"
)

// PaymentModel is the GORM database model for payments
type PaymentModel struct {
	ID                string          `gorm:"primaryKey;type:uuid"`
	RegistrationID    string          `gorm:"not null;type:uuid;uniqueIndex"`
	CustomerID        string          `gorm:"not null;type:varchar(64)"`
	GatewayPaymentID  string          `gorm:"not null;type:varchar(64);uniqueIndex"`
	Value             decimal.Decimal `gorm:"not null;type:decimal(9,2)"`
	DueDate           time.Time       `gorm:"not null;type:date"`
	BillingType       string          `gorm:"not null;type:varchar(32)"`
	Status            string          `gorm:"not null;type:varchar(32);index"`
	InvoiceURL        string          `gorm:"type:varchar(512)"`
	BankSlipURL       string          `gorm:"type:varchar(512)"`
	PixQRCodeImage    string          `gorm:"type:text"`
	PixCopyAndPaste   string          `gorm:"type:text"`
	ExternalReference string          `gorm:"type:varchar(64)"`
	Payload           map[string]any  `gorm:"serializer:json;type:text"`
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts GORM model to domain entity
func (m *PaymentModel) ToDomain() *payments.Payment {
	return &payments.Payment{
		ID:                m.ID,
		RegistrationID:    m.RegistrationID,
		CustomerID:        m.CustomerID,
		GatewayPaymentID:  m.GatewayPaymentID,
		Value:             m.Value,
		DueDate:           m.DueDate,
		BillingType:       payments.BillingType(m.BillingType),
		Status:            payments.Status(m.Status),
		InvoiceURL:        m.InvoiceURL,
		BankSlipURL:       m.BankSlipURL,
		PixQRCodeImage:    m.PixQRCodeImage,
		PixCopyAndPaste:   m.PixCopyAndPaste,
		ExternalReference: m.ExternalReference,
		Payload:           m.Payload,
		PaidAt:            m.PaidAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentModel) FromDomain(p *payments.Payment) {
	m.ID = p.ID
	m.RegistrationID = p.RegistrationID
	m.CustomerID = p.CustomerID
	m.GatewayPaymentID = p.GatewayPaymentID
	m.Value = p.Value
	m.DueDate = p.DueDate
	m.BillingType = string(p.BillingType)
	m.Status = string(p.Status)
	m.InvoiceURL = p.InvoiceURL
	m.BankSlipURL = p.BankSlipURL
	m.PixQRCodeImage = p.PixQRCodeImage
	m.PixCopyAndPaste = p.PixCopyAndPaste
	m.ExternalReference = p.ExternalReference
	m.Payload = p.Payload
	m.PaidAt = p.PaidAt
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
