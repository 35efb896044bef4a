package app

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Event list sizes
const (
	PublicEventsPageSize = 10
	rulesPrefix          = "event_rules"
	maxSlugAttempts      = 1000
)

// MsgRulesNotPDF is returned when the uploaded rules document is not a PDF.
const MsgRulesNotPDF = "Envie o regulamento em formato PDF."

// eventService implements the EventService interface
type eventService struct {
	store     store.Store
	documents events.DocumentConnector
	logger    logger.Logger
}

// NewEventService creates a new instance of EventService
func NewEventService(st store.Store, documents events.DocumentConnector, logger logger.Logger) (events.EventService, error) {
	return &eventService{
		store:     st,
		documents: documents,
		logger:    logger,
	}, nil
}

// uniqueSlug returns the first free candidate derived from title.
func (s *eventService) uniqueSlug(ctx context.Context, repo events.EventRepository, title, excludeID string) (string, error) {
	base := events.BaseSlug(title)
	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := events.SlugCandidate(base, n)
		exists, err := repo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func (s *eventService) Create(ctx context.Context, input *events.EventInput) (*events.Event, error) {
	if err := input.Validate(time.Now()); err != nil {
		return nil, err
	}

	event := &events.Event{ID: uuid.NewString()}
	input.Apply(event)

	err := s.store.Transaction(ctx, func(repos store.Repositories) error {
		var err error
		if event.Slug, err = s.uniqueSlug(ctx, repos.Events, event.Title, event.ID); err != nil {
			return err
		}
		return repos.Events.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Event created", "id", event.ID, "slug", event.Slug)
	return event, nil
}

// Update keeps the slug of events that already have one.
func (s *eventService) Update(ctx context.Context, slugValue string, input *events.EventInput) (*events.Event, error) {
	if err := input.Validate(time.Now()); err != nil {
		return nil, err
	}

	var event *events.Event
	err := s.store.Transaction(ctx, func(repos store.Repositories) error {
		var err error
		if event, err = repos.Events.GetBySlug(ctx, slugValue); err != nil {
			return err
		}
		input.Apply(event)
		if event.Slug == "" {
			if event.Slug, err = s.uniqueSlug(ctx, repos.Events, event.Title, event.ID); err != nil {
				return err
			}
		}
		return repos.Events.Update(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Event updated", "id", event.ID, "slug", event.Slug)
	return event, nil
}

// GetBySlug hides unpublished events.
func (s *eventService) GetBySlug(ctx context.Context, slugValue string) (*events.Event, error) {
	event, err := s.store.Repos().Events.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (s *eventService) ListPublished(ctx context.Context, page int) (*events.EventPage, error) {
	page, offset := pageOffset(page, PublicEventsPageSize)
	list, total, err := s.store.Repos().Events.List(ctx, &events.EventQuery{
		PublishedOnly: true,
		Ascending:     true,
		Limit:         PublicEventsPageSize,
		Offset:        offset,
	})
	if err != nil {
		return nil, err
	}
	return &events.EventPage{Events: list, Page: page, PageSize: PublicEventsPageSize, TotalCount: total}, nil
}

func (s *eventService) ListForStaff(ctx context.Context, query *events.EventQuery) ([]*events.EventSummary, int64, error) {
	repos := s.store.Repos()
	list, total, err := repos.Events.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	summaries, err := summarizeEvents(ctx, repos, list)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

// summarizeEvents attaches the registration totals of every event.
func summarizeEvents(ctx context.Context, repos store.Repositories, list []*events.Event) ([]*events.EventSummary, error) {
	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ID)
	}
	counts, err := repos.Registrations.CountByEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}
	summaries := make([]*events.EventSummary, 0, len(list))
	for _, e := range list {
		summaries = append(summaries, &events.EventSummary{Event: e, Counts: counts[e.ID]})
	}
	return summaries, nil
}

// rulesKey stores documents as event_rules/<uuid>-<name>.
func rulesKey(fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	ext := strings.ToLower(path.Ext(name))
	base := slug.Make(strings.TrimSuffix(name, path.Ext(name)))
	if base == "" {
		base = "regulamento"
	}
	return fmt.Sprintf("%s/%s-%s%s", rulesPrefix, uuid.NewString(), base, ext)
}

func (s *eventService) UploadRules(ctx context.Context, slugValue string, upload *events.RulesUpload) (*events.Event, error) {
	if upload == nil || upload.Content == nil || upload.FileName == "" {
		return nil, domain.NewValidationError("file", events.MsgRequired)
	}
	if !strings.EqualFold(path.Ext(upload.FileName), ".pdf") {
		return nil, domain.NewValidationError("file", MsgRulesNotPDF)
	}

	repos := s.store.Repos()
	event, err := repos.Events.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	key := rulesKey(upload.FileName)
	if err := s.documents.Upload(ctx, key, upload.Content, contentType); err != nil {
		return nil, fmt.Errorf("failed to store rules document: %w", err)
	}

	previous := event.RulesDocument
	event.RulesDocument = key
	if err := repos.Events.Update(ctx, event); err != nil {
		_ = s.documents.Delete(ctx, key)
		return nil, err
	}
	if previous != "" {
		if err := s.documents.Delete(ctx, previous); err != nil {
			s.logger.Warn("Failed to delete previous rules document", "key", previous, "error", err)
		}
	}

	s.logger.Info("Rules document uploaded", "event_id", event.ID, "key", key)
	return event, nil
}

func (s *eventService) DownloadRules(ctx context.Context, slugValue string) ([]byte, string, error) {
	event, err := s.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, "", err
	}
	if event.RulesDocument == "" {
		return nil, "", events.ErrNoRulesDocument
	}
	content, err := s.documents.Download(ctx, event.RulesDocument)
	if err != nil {
		return nil, "", err
	}
	return content, path.Base(event.RulesDocument), nil
}
