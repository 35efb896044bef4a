// Package academies models academies and their coaches.
package academies

import "context"

// AcademyRepository persists academies.
type AcademyRepository interface {
	Create(ctx context.Context, academy *Academy) error
	GetByID(ctx context.Context, id string) (*Academy, error)
	// FindByNaturalKey matches name, city and state case-insensitively.
	// It returns domain.ErrNotFound when no academy matches.
	FindByNaturalKey(ctx context.Context, name, city, state string) (*Academy, error)
}

// CoachRepository persists coaches.
type CoachRepository interface {
	Create(ctx context.Context, coach *Coach) error
	GetByID(ctx context.Context, id string) (*Coach, error)
	// FindByName matches the coach name case-insensitively within an academy.
	FindByName(ctx context.Context, academyID, fullName string) (*Coach, error)
}
