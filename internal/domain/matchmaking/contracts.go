package matchmaking

import (
	"context"
	"errors"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
)

// Matchmaking errors with user facing messages
var (
	ErrMetricInUse       = errors.New("Esta métrica possui chaves geradas e não pode ser removida.")
	ErrNoMatchesSelected = errors.New("Selecione ao menos uma luta para exportar.")
	ErrNoMatchesToExport = errors.New("Nao existem lutas nesta chave para exportacao.")
	ErrMetricNotSelected = errors.New("Selecione uma metrica para gerar as chaves.")
)

// Messages reported by the matchmaking panel
const (
	MsgNoBracketsCreated = "Nenhuma chave criada. Verifique se existem atletas confirmados para esta combinacao."
	MsgBracketReordered  = "Chave atualizada com sucesso."
	MsgMetricDeleted     = "Métrica removida com sucesso."
)

// DefaultMetricPageSize is the page size of the metric list.
const DefaultMetricPageSize = 20

// MetricQuery filters the metric list.
type MetricQuery struct {
	Search string
	Limit  int
	Offset int
}

// MetricRepository persists metrics.
type MetricRepository interface {
	Create(ctx context.Context, m *Metric) error
	Update(ctx context.Context, m *Metric) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Metric, error)
	GetByName(ctx context.Context, name string) (*Metric, error)
	// NameExists ignores the metric identified by excludeID.
	NameExists(ctx context.Context, name, excludeID string) (bool, error)
	// List orders metrics by name.
	List(ctx context.Context, query *MetricQuery) ([]*Metric, int64, error)
}

// BracketTotals is a bracket with its entry and match counts.
type BracketTotals struct {
	Bracket    *Bracket
	EntryTotal int64
	MatchTotal int64
}

// BracketRepository persists brackets with their entries and matches.
type BracketRepository interface {
	// Create stores the bracket and its entries.
	Create(ctx context.Context, b *Bracket) error
	// GetByID loads entries with their registration, academy and coach,
	// matches ordered by round and position, and the metric.
	GetByID(ctx context.Context, id string) (*Bracket, error)
	// ListByEvent loads every bracket of an event like GetByID, ordered by
	// rule set, experience, sex, age group, weight and index.
	ListByEvent(ctx context.Context, eventID string) ([]*Bracket, error)
	ListTotalsByEvent(ctx context.Context, eventID string) ([]*BracketTotals, error)
	CountByEventAndMetric(ctx context.Context, eventID, metricID string) (int64, error)
	DeleteByEventAndMetric(ctx context.Context, eventID, metricID string) error
	CountByMetric(ctx context.Context, metricID string) (int64, error)
	// ReplaceMatches deletes the bracket matches, stores matches and updates the size.
	ReplaceMatches(ctx context.Context, bracketID string, size int, matches []*Match) error
	// UpdateSlots moves entries through slot+offset first so that the
	// (bracket, slot) uniqueness holds at every step.
	UpdateSlots(ctx context.Context, bracketID string, changes []SlotChange, offset int) error
	MarkManual(ctx context.Context, bracketID string) error
	// AssignedRegistrationIDs lists registrations placed in any bracket of the event.
	AssignedRegistrationIDs(ctx context.Context, eventID string) ([]string, error)
	// ListEntriesByRegistrationIDs groups entries, with their bracket, by registration.
	ListEntriesByRegistrationIDs(ctx context.Context, registrationIDs []string) (map[string][]*EntryPlacement, error)
}

// EntryPlacement is an entry with the bracket it belongs to.
type EntryPlacement struct {
	Entry   *Entry
	Bracket *Bracket
}

// GenerateRequest asks for the brackets of an event under a metric.
type GenerateRequest struct {
	EventSlug       string
	MetricID        string
	UserID          string
	ReplaceExisting bool
}

// GroupSummary describes one classification group.
type GroupSummary struct {
	RuleSet      string
	Experience   string
	Sex          string
	AgeGroup     string
	Weight       string
	AthleteCount int
	BracketCount int
}

// Unmatched is a confirmed registration that fits no bracket.
type Unmatched struct {
	RegistrationID string
	Athlete        string
	Reason         string
}

// GenerationResult summarizes a bracket generation.
type GenerationResult struct {
	BracketsCreated int
	MatchesCreated  int
	Replaced        int
	Groups          []GroupSummary
	Unmatched       []Unmatched
	Brackets        []*Bracket
}

// EventOverview is the matchmaking panel of an event.
type EventOverview struct {
	Event          *events.Event
	Metrics        []*Metric
	Brackets       []*BracketTotals
	ConfirmedCount int
	Unassigned     []*events.AthleteRegistration
}

// BracketDetail is a bracket with its positioned matches.
type BracketDetail struct {
	Bracket *Bracket
	Event   *events.Event
	Layout  Layout
}

// ExportFile is a rendered document ready for download.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportPage is one bracket page of a PDF export. Highlight names the
// selected matches.
type ExportPage struct {
	Bracket   *Bracket
	Highlight map[string]bool
	Selected  int
}

// BracketRenderer draws brackets as a document.
type BracketRenderer interface {
	// Render draws one page per bracket, or a single notice page when pages is empty.
	Render(event *events.Event, pages []ExportPage) ([]byte, error)
}

// MetricPage is one page of metrics.
type MetricPage struct {
	Metrics    []*Metric
	Page       int
	PageSize   int
	TotalCount int64
}

// MetricService manages matchmaking metrics.
type MetricService interface {
	Create(ctx context.Context, input *MetricInput) (*Metric, error)
	Update(ctx context.Context, id string, input *MetricInput) (*Metric, error)
	Get(ctx context.Context, id string) (*Metric, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string, page int) (*MetricPage, error)
	// EnsureDefault creates the default metric under name when absent.
	EnsureDefault(ctx context.Context, name string) (*Metric, bool, error)
}

// MatchmakingService builds and exports brackets.
type MatchmakingService interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerationResult, error)
	EventOverview(ctx context.Context, slug string) (*EventOverview, error)
	BracketDetail(ctx context.Context, bracketID string) (*BracketDetail, error)
	// Reorder applies a manual order of entry IDs and rebuilds the matches.
	Reorder(ctx context.Context, bracketID, order string) (*BracketDetail, error)
	// ExportBracket renders all matches, or only matchIDs when selected is set.
	ExportBracket(ctx context.Context, bracketID string, selected bool, matchIDs []string) (*ExportFile, error)
	ExportEvent(ctx context.Context, slug string) (*ExportFile, error)
}
