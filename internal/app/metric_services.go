package app

import (
	"context"
	"errors"
	"strings"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"github.com/google/uuid"
)

// metricService implements the MetricService interface
type metricService struct {
	store  store.Store
	logger logger.Logger
}

// NewMetricService creates a new instance of MetricService
func NewMetricService(st store.Store, logger logger.Logger) (matchmaking.MetricService, error) {
	return &metricService{store: st, logger: logger}, nil
}

func (s *metricService) save(ctx context.Context, m *matchmaking.Metric, input *matchmaking.MetricInput, create bool) error {
	return s.store.Transaction(ctx, func(repos store.Repositories) error {
		applyErr := input.Apply(m)
		errs, err := validationErrors(applyErr)
		if err != nil {
			return err
		}
		if name := strings.TrimSpace(input.Name); name != "" {
			exists, err := repos.Metrics.NameExists(ctx, name, m.ID)
			if err != nil {
				return err
			}
			if exists {
				errs.Add("name", matchmaking.MsgMetricNameTaken)
			}
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		if create {
			return repos.Metrics.Create(ctx, m)
		}
		return repos.Metrics.Update(ctx, m)
	})
}

func (s *metricService) Create(ctx context.Context, input *matchmaking.MetricInput) (*matchmaking.Metric, error) {
	m := &matchmaking.Metric{ID: uuid.NewString()}
	if err := s.save(ctx, m, input, true); err != nil {
		return nil, err
	}
	s.logger.Info("Metric created", "id", m.ID, "name", m.Name)
	return m, nil
}

func (s *metricService) Update(ctx context.Context, id string, input *matchmaking.MetricInput) (*matchmaking.Metric, error) {
	m, err := s.store.Repos().Metrics.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, m, input, false); err != nil {
		return nil, err
	}
	s.logger.Info("Metric updated", "id", m.ID, "name", m.Name)
	return m, nil
}

func (s *metricService) Get(ctx context.Context, id string) (*matchmaking.Metric, error) {
	return s.store.Repos().Metrics.GetByID(ctx, id)
}

// Delete refuses metrics that still own brackets.
func (s *metricService) Delete(ctx context.Context, id string) error {
	err := s.store.Transaction(ctx, func(repos store.Repositories) error {
		if _, err := repos.Metrics.GetByID(ctx, id); err != nil {
			return err
		}
		count, err := repos.Brackets.CountByMetric(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return matchmaking.ErrMetricInUse
		}
		return repos.Metrics.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("Metric deleted", "id", id)
	return nil
}

func (s *metricService) List(ctx context.Context, search string, page int) (*matchmaking.MetricPage, error) {
	page, offset := pageOffset(page, matchmaking.DefaultMetricPageSize)
	list, total, err := s.store.Repos().Metrics.List(ctx, &matchmaking.MetricQuery{
		Search: strings.TrimSpace(search),
		Limit:  matchmaking.DefaultMetricPageSize,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return &matchmaking.MetricPage{
		Metrics:    list,
		Page:       page,
		PageSize:   matchmaking.DefaultMetricPageSize,
		TotalCount: total,
	}, nil
}

func (s *metricService) EnsureDefault(ctx context.Context, name string) (*matchmaking.Metric, bool, error) {
	if name = strings.TrimSpace(name); name == "" {
		name = matchmaking.DefaultMetricName
	}
	repos := s.store.Repos()
	existing, err := repos.Metrics.GetByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	m := matchmaking.NewDefaultMetric(uuid.NewString(), name)
	if err := repos.Metrics.Create(ctx, m); err != nil {
		return nil, false, err
	}
	s.logger.Info("Default metric created", "id", m.ID, "name", m.Name)
	return m, true, nil
}
