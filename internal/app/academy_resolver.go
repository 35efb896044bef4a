package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"

	"github.com/google/uuid"
)

// ResolveAcademy returns the academy matching name, city and state
// case-insensitively, creating it when absent.
func ResolveAcademy(ctx context.Context, repos store.Repositories, name, city, state string) (*academies.Academy, error) {
	state = academies.NormalizeState(state)
	academy, err := repos.Academies.FindByNaturalKey(ctx, name, city, state)
	if err == nil {
		return academy, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up academy: %w", err)
	}

	academy = &academies.Academy{
		ID:    uuid.NewString(),
		Name:  name,
		City:  city,
		State: state,
	}
	if err := repos.Academies.Create(ctx, academy); err != nil {
		return nil, fmt.Errorf("failed to create academy: %w", err)
	}
	return academy, nil
}

// ResolveCoach returns the coach named fullName in the academy, creating it
// when absent.
func ResolveCoach(ctx context.Context, repos store.Repositories, fullName string, academy *academies.Academy) (*academies.Coach, error) {
	coach, err := repos.Coaches.FindByName(ctx, academy.ID, fullName)
	if err == nil {
		coach.Academy = academy
		return coach, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up coach: %w", err)
	}

	coach = &academies.Coach{
		ID:        uuid.NewString(),
		FullName:  fullName,
		AcademyID: academy.ID,
		Academy:   academy,
	}
	if err := repos.Coaches.Create(ctx, coach); err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}
	return coach, nil
}
