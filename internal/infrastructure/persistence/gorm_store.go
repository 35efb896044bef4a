package persistence

import (
	"context"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormStore struct {
	db     *gorm.DB
	logger logger.Logger
	repos  store.Repositories
}

// NewGormStore wires every GORM repository onto db.
func NewGormStore(db *gorm.DB, logger logger.Logger) (store.Store, error) {
	repos, err := newRepositories(db, logger)
	if err != nil {
		return nil, err
	}
	return &gormStore{db: db, logger: logger, repos: repos}, nil
}

func (s *gormStore) Repos() store.Repositories {
	return s.repos
}

func (s *gormStore) Transaction(ctx context.Context, fn func(repos store.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos, err := newRepositories(tx, s.logger)
		if err != nil {
			return err
		}
		return fn(repos)
	})
}

func newRepositories(db *gorm.DB, logger logger.Logger) (store.Repositories, error) {
	var (
		repos store.Repositories
		err   error
	)
	if repos.Academies, err = NewGormAcademyRepository(db, logger); err != nil {
		return repos, err
	}
	if repos.Coaches, err = NewGormCoachRepository(db, logger); err != nil {
		return repos, err
	}
	if repos.Events, err = NewGormEventRepository(db, logger); err != nil {
		return repos, err
	}
	if repos.Registrations, err = NewGormRegistrationRepository(db, logger); err != nil {
		return repos, err
	}
	if repos.Payments, err = NewGormPaymentRepository(db, logger); err != nil {
		return repos, err
	}
	if repos.Metrics, err = NewGormMetricRepository(db, logger); err != nil {
		return repos, err
	}
	if repos.Brackets, err = NewGormBracketRepository(db, logger); err != nil {
		return repos, err
	}
	if repos.Users, err = NewGormUserRepository(db, logger); err != nil {
		return repos, err
	}
	return repos, nil
}
