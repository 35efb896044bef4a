// Package store groups the repositories behind a transactional unit of work.
package store

import (
	"context"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"
)

// Repositories bundles every repository bound to the same connection.
type Repositories struct {
	Academies     academies.AcademyRepository
	Coaches       academies.CoachRepository
	Events        events.EventRepository
	Registrations events.RegistrationRepository
	Payments      payments.PaymentRepository
	Metrics       matchmaking.MetricRepository
	Brackets      matchmaking.BracketRepository
	Users         staff.UserRepository
}

// Store hands out repositories and runs units of work.
type Store interface {
	Repos() Repositories
	// Transaction runs fn with repositories bound to one transaction. The
	// transaction rolls back when fn returns an error.
	Transaction(ctx context.Context, fn func(repos Repositories) error) error
}
