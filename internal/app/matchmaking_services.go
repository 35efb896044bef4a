package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"github.com/google/uuid"
)

const pdfContentType = "application/pdf"

// matchmakingService implements the MatchmakingService interface
type matchmakingService struct {
	store    store.Store
	renderer matchmaking.BracketRenderer
	logger   logger.Logger
}

// NewMatchmakingService creates a new instance of MatchmakingService
func NewMatchmakingService(st store.Store, renderer matchmaking.BracketRenderer, logger logger.Logger) (matchmaking.MatchmakingService, error) {
	return &matchmakingService{
		store:    st,
		renderer: renderer,
		logger:   logger,
	}, nil
}

// classifyConfirmed groups the confirmed registrations of event. Ages are
// taken on the event start date.
func classifyConfirmed(regs []*events.AthleteRegistration, profile *matchmaking.Profile, event *events.Event) (map[matchmaking.GroupKey][]*matchmaking.Classified, []matchmaking.Unmatched) {
	refDate := events.Date(event.StartAt)
	if event.StartAt.IsZero() {
		refDate = events.Date(time.Now())
	}

	grouped := map[matchmaking.GroupKey][]*matchmaking.Classified{}
	var unmatched []matchmaking.Unmatched
	for _, reg := range regs {
		classified, err := profile.Classify(reg, refDate)
		if err != nil {
			unmatched = append(unmatched, matchmaking.Unmatched{
				RegistrationID: reg.ID,
				Athlete:        reg.AthleteName,
				Reason:         err.Error(),
			})
			continue
		}
		grouped[classified.Key] = append(grouped[classified.Key], classified)
	}
	return grouped, unmatched
}

// newBracket builds a bracket with entries seeded in chunk order.
func newBracket(event *events.Event, metric *matchmaking.Metric, key matchmaking.GroupKey, index int, chunk []*matchmaking.Classified, userID string) *matchmaking.Bracket {
	b := &matchmaking.Bracket{
		ID:              uuid.NewString(),
		EventID:         event.ID,
		MetricID:        metric.ID,
		RuleSet:         key.RuleSet,
		ExperienceLabel: key.Experience,
		Sex:             key.Sex,
		AgeGroup:        key.AgeGroup,
		WeightLabel:     key.Weight,
		BracketIndex:    index,
		Size:            matchmaking.BracketSize(len(chunk)),
		MaxFights:       metric.MaxFightsPerAthlete,
	}
	if b.Size < 1 {
		b.Size = 1
	}
	if userID != "" {
		id := userID
		b.GeneratedByID = &id
	}
	for seed, c := range chunk {
		b.Entries = append(b.Entries, &matchmaking.Entry{
			ID:             uuid.NewString(),
			BracketID:      b.ID,
			RegistrationID: c.Registration.ID,
			Seed:           seed + 1,
			Slot:           seed + 1,
			Registration:   c.Registration,
		})
	}
	return b
}

// rebuildMatches replaces the matches of b from its entries and returns
// the number of matches stored.
func rebuildMatches(ctx context.Context, repos store.Repositories, b *matchmaking.Bracket) (int, error) {
	size, matches := matchmaking.BuildMatches(b.ID, b.Size, b.Entries, uuid.NewString)
	if err := repos.Brackets.ReplaceMatches(ctx, b.ID, size, matches); err != nil {
		return 0, fmt.Errorf("failed to store matches: %w", err)
	}
	b.Size = size
	b.Matches = matches
	return len(matches), nil
}

func (s *matchmakingService) Generate(ctx context.Context, req *matchmaking.GenerateRequest) (*matchmaking.GenerationResult, error) {
	if req.MetricID == "" {
		return nil, matchmaking.ErrMetricNotSelected
	}

	repos := s.store.Repos()
	event, err := repos.Events.GetBySlug(ctx, req.EventSlug)
	if err != nil {
		return nil, err
	}
	metric, err := repos.Metrics.GetByID(ctx, req.MetricID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, matchmaking.ErrMetricNotSelected
		}
		return nil, err
	}
	profile, err := matchmaking.NewProfile(metric)
	if err != nil {
		return nil, err
	}

	confirmed, err := repos.Registrations.ListConfirmedByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	grouped, unmatched := classifyConfirmed(confirmed, profile, event)

	keys := make([]matchmaking.GroupKey, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	result := &matchmaking.GenerationResult{Unmatched: unmatched}
	err = s.store.Transaction(ctx, func(tx store.Repositories) error {
		if req.ReplaceExisting {
			existing, err := tx.Brackets.CountByEventAndMetric(ctx, event.ID, metric.ID)
			if err != nil {
				return err
			}
			if existing > 0 {
				if err := tx.Brackets.DeleteByEventAndMetric(ctx, event.ID, metric.ID); err != nil {
					return err
				}
			}
			result.Replaced = int(existing)
		}

		for _, key := range keys {
			participants := grouped[key]
			matchmaking.SortParticipants(participants)
			chunks := matchmaking.SplitIntoChunks(participants, metric.Capacity())

			for i, chunk := range chunks {
				b := newBracket(event, metric, key, i+1, chunk, req.UserID)
				if err := tx.Brackets.Create(ctx, b); err != nil {
					return fmt.Errorf("failed to create bracket %s: %w", b.Title(), err)
				}
				created, err := rebuildMatches(ctx, tx, b)
				if err != nil {
					return err
				}
				b.Metric = metric
				result.MatchesCreated += created
				result.Brackets = append(result.Brackets, b)
			}

			result.Groups = append(result.Groups, matchmaking.GroupSummary{
				RuleSet:      key.RuleSet.Label(),
				Experience:   key.Experience,
				Sex:          key.Sex.Label(),
				AgeGroup:     key.AgeGroup,
				Weight:       key.Weight,
				AthleteCount: len(participants),
				BracketCount: len(chunks),
			})
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to generate brackets", "event", event.Slug, "metric_id", metric.ID, "error", err)
		return nil, err
	}
	result.BracketsCreated = len(result.Brackets)

	s.logger.Info("Brackets generated",
		"event", event.Slug,
		"metric_id", metric.ID,
		"brackets", result.BracketsCreated,
		"matches", result.MatchesCreated,
		"replaced", result.Replaced,
		"unmatched", len(result.Unmatched))
	return result, nil
}

func (s *matchmakingService) EventOverview(ctx context.Context, slug string) (*matchmaking.EventOverview, error) {
	repos := s.store.Repos()
	event, err := repos.Events.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	metrics, _, err := repos.Metrics.List(ctx, &matchmaking.MetricQuery{})
	if err != nil {
		return nil, err
	}
	totals, err := repos.Brackets.ListTotalsByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	confirmed, err := repos.Registrations.ListConfirmedByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	assignedIDs, err := repos.Brackets.AssignedRegistrationIDs(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]bool, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = true
	}
	unassigned := make([]*events.AthleteRegistration, 0)
	for _, reg := range confirmed {
		if !assigned[reg.ID] {
			unassigned = append(unassigned, reg)
		}
	}

	return &matchmaking.EventOverview{
		Event:          event,
		Metrics:        metrics,
		Brackets:       totals,
		ConfirmedCount: len(confirmed),
		Unassigned:     unassigned,
	}, nil
}

func (s *matchmakingService) detail(ctx context.Context, repos store.Repositories, b *matchmaking.Bracket) (*matchmaking.BracketDetail, error) {
	event, err := repos.Events.GetByID(ctx, b.EventID)
	if err != nil {
		return nil, err
	}
	layout := matchmaking.ComputeLayout(b.Matches, b.TotalRounds(), matchmaking.DetailMatchHeight, matchmaking.DetailGap)
	return &matchmaking.BracketDetail{Bracket: b, Event: event, Layout: layout}, nil
}

func (s *matchmakingService) BracketDetail(ctx context.Context, bracketID string) (*matchmaking.BracketDetail, error) {
	repos := s.store.Repos()
	b, err := repos.Brackets.GetByID(ctx, bracketID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, repos, b)
}

func (s *matchmakingService) Reorder(ctx context.Context, bracketID, order string) (*matchmaking.BracketDetail, error) {
	err := s.store.Transaction(ctx, func(tx store.Repositories) error {
		b, err := tx.Brackets.GetByID(ctx, bracketID)
		if err != nil {
			return err
		}
		changes, err := matchmaking.PlanReorder(order, b.Entries)
		if err != nil {
			return err
		}
		offset := len(b.Entries)
		for _, e := range b.Entries {
			if e.Slot > offset {
				offset = e.Slot
			}
		}
		if err := tx.Brackets.UpdateSlots(ctx, b.ID, changes, offset+1); err != nil {
			return err
		}
		slots := make(map[string]int, len(changes))
		for _, c := range changes {
			slots[c.EntryID] = c.Slot
		}
		for _, e := range b.Entries {
			if slot, ok := slots[e.ID]; ok {
				e.Slot = slot
			}
		}
		if err := tx.Brackets.MarkManual(ctx, b.ID); err != nil {
			return err
		}
		_, err = rebuildMatches(ctx, tx, b)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bracket reordered", "bracket_id", bracketID)
	return s.BracketDetail(ctx, bracketID)
}

func (s *matchmakingService) ExportBracket(ctx context.Context, bracketID string, selected bool, matchIDs []string) (*matchmaking.ExportFile, error) {
	repos := s.store.Repos()
	b, err := repos.Brackets.GetByID(ctx, bracketID)
	if err != nil {
		return nil, err
	}
	event, err := repos.Events.GetByID(ctx, b.EventID)
	if err != nil {
		return nil, err
	}

	highlight := map[string]bool{}
	if selected {
		wanted := make(map[string]bool, len(matchIDs))
		for _, id := range matchIDs {
			wanted[id] = true
		}
		for _, m := range b.Matches {
			if wanted[m.ID] {
				highlight[m.ID] = true
			}
		}
		if len(highlight) == 0 {
			return nil, matchmaking.ErrNoMatchesSelected
		}
	} else {
		if len(b.Matches) == 0 {
			return nil, matchmaking.ErrNoMatchesToExport
		}
		for _, m := range b.Matches {
			highlight[m.ID] = true
		}
	}

	content, err := s.renderer.Render(event, []matchmaking.ExportPage{{Bracket: b, Highlight: highlight, Selected: len(highlight)}})
	if err != nil {
		return nil, fmt.Errorf("failed to render bracket: %w", err)
	}
	return &matchmaking.ExportFile{
		FileName:    fmt.Sprintf("chave-%s-lutas.pdf", b.ID),
		ContentType: pdfContentType,
		Content:     content,
	}, nil
}

func (s *matchmakingService) ExportEvent(ctx context.Context, slug string) (*matchmaking.ExportFile, error) {
	repos := s.store.Repos()
	event, err := repos.Events.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	brackets, err := repos.Brackets.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	pages := make([]matchmaking.ExportPage, 0, len(brackets))
	for _, b := range brackets {
		highlight := make(map[string]bool, len(b.Matches))
		for _, m := range b.Matches {
			highlight[m.ID] = true
		}
		pages = append(pages, matchmaking.ExportPage{Bracket: b, Highlight: highlight, Selected: len(highlight)})
	}

	content, err := s.renderer.Render(event, pages)
	if err != nil {
		return nil, fmt.Errorf("failed to render brackets: %w", err)
	}
	return &matchmaking.ExportFile{
		FileName:    fmt.Sprintf("chaves-%s.pdf", event.Slug),
		ContentType: pdfContentType,
		Content:     content,
	}, nil
}
