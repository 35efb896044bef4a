package v1

import (
	"math"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/dashboard"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"

	"github.com/shopspring/decimal"
)

// EventRequest is the staff event form.
type EventRequest struct {
	Title                string          `json:"title"`
	Location             string          `json:"location"`
	Description          string          `json:"description"`
	StartAt              time.Time       `json:"start_at"`
	RegistrationDeadline time.Time       `json:"registration_deadline"`
	RegistrationFee      decimal.Decimal `json:"registration_fee"`
	IsFree               bool            `json:"is_free"`
	IsPublished          bool            `json:"is_published"`
}

// ToInput converts the request into the service input.
func (r *EventRequest) ToInput() *events.EventInput {
	return &events.EventInput{
		Title:                r.Title,
		Location:             r.Location,
		Description:          r.Description,
		StartAt:              r.StartAt,
		RegistrationDeadline: r.RegistrationDeadline,
		RegistrationFee:      r.RegistrationFee,
		IsFree:               r.IsFree,
		IsPublished:          r.IsPublished,
	}
}

// EventResponse is an event as shown to athletes and staff.
type EventResponse struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Slug                 string    `json:"slug"`
	Location             string    `json:"location"`
	Description          string    `json:"description"`
	StartAt              time.Time `json:"start_at"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	RegistrationFee      string    `json:"registration_fee"`
	IsFree               bool      `json:"is_free"`
	IsPublished          bool      `json:"is_published"`
	RegistrationOpen     bool      `json:"registration_open"`
	HasRules             bool      `json:"has_rules"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func newEventResponse(e *events.Event, now time.Time) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Slug:                 e.Slug,
		Location:             e.Location,
		Description:          e.Description,
		StartAt:              e.StartAt,
		RegistrationDeadline: e.RegistrationDeadline,
		RegistrationFee:      e.RegistrationFee.StringFixed(2),
		IsFree:               e.IsFree,
		IsPublished:          e.IsPublished,
		RegistrationOpen:     e.IsRegistrationOpen(now),
		HasRules:             e.RulesDocument != "",
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

// EventSummaryResponse is an event with its registration totals.
type EventSummaryResponse struct {
	EventResponse
	TotalRegistrations     int64 `json:"total_registrations"`
	ConfirmedRegistrations int64 `json:"confirmed_registrations"`
}

func newEventSummaries(list []*events.EventSummary, now time.Time) []EventSummaryResponse {
	out := make([]EventSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, EventSummaryResponse{
			EventResponse:          newEventResponse(s.Event, now),
			TotalRegistrations:     s.Counts.Total,
			ConfirmedRegistrations: s.Counts.Confirmed,
		})
	}
	return out
}

// PageInfo describes a paginated listing.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

func newPageInfo(page, size int, total int64) PageInfo {
	pages := 1
	if size > 0 && total > 0 {
		pages = int(math.Ceil(float64(total) / float64(size)))
	}
	return PageInfo{Page: page, PageSize: size, TotalCount: total, TotalPages: pages}
}

// EventListResponse is a page of public events.
type EventListResponse struct {
	PageInfo
	Events []EventResponse `json:"events"`
}

// StaffEventListResponse is a page of the staff event list.
type StaffEventListResponse struct {
	PageInfo
	Events []EventSummaryResponse `json:"events"`
}

// AcademyFields are the academy fields shared by single and bulk registrations.
type AcademyFields struct {
	AcademyName  string          `json:"academy_name"`
	AcademyCity  string          `json:"academy_city"`
	AcademyState string          `json:"academy_state"`
	CoachName    string          `json:"coach_name"`
	Modality     events.Modality `json:"modality"`
}

func (f AcademyFields) toInput() events.AcademyInput {
	return events.AcademyInput{
		AcademyName:  f.AcademyName,
		AcademyCity:  f.AcademyCity,
		AcademyState: f.AcademyState,
		CoachName:    f.CoachName,
		Modality:     f.Modality,
	}
}

// AthleteFields are the per athlete fields of a registration.
type AthleteFields struct {
	AthleteName  string              `json:"athlete_name"`
	CPF          string              `json:"cpf"`
	BirthDate    string              `json:"birth_date"`
	PracticeTime events.PracticeTime `json:"practice_time"`
	WeightKg     *decimal.Decimal    `json:"weight_kg"`
	RuleSet      events.RuleSet      `json:"rule_set"`
	Sex          events.Sex          `json:"sex"`
	WhatsApp     string              `json:"whatsapp"`
	TotalFights  *int                `json:"total_fights"`
	Notes        string              `json:"notes"`
	Delete       bool                `json:"delete"`
}

func (f AthleteFields) toInput() events.AthleteInput {
	return events.AthleteInput{
		AthleteName:  f.AthleteName,
		CPF:          f.CPF,
		BirthDate:    f.BirthDate,
		PracticeTime: f.PracticeTime,
		WeightKg:     f.WeightKg,
		RuleSet:      f.RuleSet,
		Sex:          f.Sex,
		WhatsApp:     f.WhatsApp,
		TotalFights:  f.TotalFights,
		Notes:        f.Notes,
		Delete:       f.Delete,
	}
}

// RegistrationRequest is the single athlete registration form.
type RegistrationRequest struct {
	AcademyFields
	AthleteFields
}

// ToInput converts the request into the service input.
func (r *RegistrationRequest) ToInput() *events.RegistrationInput {
	return &events.RegistrationInput{
		AcademyInput: r.AcademyFields.toInput(),
		AthleteInput: r.AthleteFields.toInput(),
	}
}

// BulkRegistrationRequest registers several athletes of one academy.
type BulkRegistrationRequest struct {
	AcademyFields
	Athletes []AthleteFields `json:"athletes"`
}

// ToInput converts the request into the service input.
func (r *BulkRegistrationRequest) ToInput() *events.BulkRegistrationInput {
	input := &events.BulkRegistrationInput{Shared: r.AcademyFields.toInput()}
	for _, a := range r.Athletes {
		input.Athletes = append(input.Athletes, a.toInput())
	}
	return input
}

// LookupRequest finds registrations by CPF and birth date. Action
// "send-payment" also sends the payment of RegistrationID.
type LookupRequest struct {
	CPF            string `json:"cpf"`
	BirthDate      string `json:"birth_date"`
	Action         string `json:"action"`
	RegistrationID string `json:"registration_id"`
}

// ActionSendPayment is the lookup action that sends the payment link.
const ActionSendPayment = "send-payment"

// AcademyResponse is a registration academy.
type AcademyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	State       string `json:"state"`
	DisplayName string `json:"display_name"`
}

func newAcademyResponse(a *academies.Academy) *AcademyResponse {
	if a == nil {
		return nil
	}
	return &AcademyResponse{ID: a.ID, Name: a.Name, City: a.City, State: a.State, DisplayName: a.DisplayName()}
}

// CoachResponse is a registration coach.
type CoachResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// RegistrationResponse is an athlete registration.
type RegistrationResponse struct {
	ID              string           `json:"id"`
	EventID         string           `json:"event_id"`
	EventSlug       string           `json:"event_slug,omitempty"`
	EventTitle      string           `json:"event_title,omitempty"`
	AthleteName     string           `json:"athlete_name"`
	CPF             string           `json:"cpf"`
	BirthDate       string           `json:"birth_date"`
	Sex             events.Sex       `json:"sex"`
	SexLabel        string           `json:"sex_label"`
	WeightKg        string           `json:"weight_kg"`
	RuleSet         events.RuleSet   `json:"rule_set"`
	RuleSetLabel    string           `json:"rule_set_label"`
	Modality        events.Modality  `json:"modality"`
	PracticeTime    string           `json:"practice_time"`
	ExperienceLevel string           `json:"experience_level"`
	TotalFights     int              `json:"total_fights"`
	WhatsApp        string           `json:"whatsapp"`
	Notes           string           `json:"notes,omitempty"`
	Status          events.Status    `json:"status"`
	StatusLabel     string           `json:"status_label"`
	Academy         *AcademyResponse `json:"academy,omitempty"`
	Coach           *CoachResponse   `json:"coach,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func newRegistrationResponse(r *events.AthleteRegistration) RegistrationResponse {
	out := RegistrationResponse{
		ID:              r.ID,
		EventID:         r.EventID,
		AthleteName:     r.AthleteName,
		CPF:             r.CPFValue(),
		BirthDate:       r.BirthDate.Format(events.DateLayout),
		Sex:             r.Sex,
		SexLabel:        r.Sex.Label(),
		WeightKg:        r.WeightKg.StringFixed(2),
		RuleSet:         r.RuleSet,
		RuleSetLabel:    r.RuleSet.Label(),
		Modality:        r.Modality,
		PracticeTime:    r.PracticeTime.Label(),
		ExperienceLevel: r.ExperienceLevel.Label(),
		TotalFights:     r.TotalFights(),
		WhatsApp:        r.WhatsApp,
		Notes:           r.Notes,
		Status:          r.Status,
		StatusLabel:     r.Status.Label(),
		Academy:         newAcademyResponse(r.Academy),
		CreatedAt:       r.CreatedAt,
	}
	if r.Event != nil {
		out.EventSlug = r.Event.Slug
		out.EventTitle = r.Event.Title
	}
	if r.Coach != nil {
		out.Coach = &CoachResponse{ID: r.Coach.ID, FullName: r.Coach.FullName}
	}
	return out
}

func newRegistrationResponses(list []*events.AthleteRegistration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, newRegistrationResponse(r))
	}
	return out
}

// PaymentResponse is the charge of a registration.
type PaymentResponse struct {
	ID               string               `json:"id"`
	GatewayPaymentID string               `json:"gateway_payment_id"`
	Value            string               `json:"value"`
	DueDate          string               `json:"due_date"`
	BillingType      payments.BillingType `json:"billing_type"`
	Status           payments.Status      `json:"status"`
	IsPaid           bool                 `json:"is_paid"`
	InvoiceURL       string               `json:"invoice_url,omitempty"`
	BankSlipURL      string               `json:"bank_slip_url,omitempty"`
	PixQRCodeImage   string               `json:"pix_qr_code_image,omitempty"`
	PixCopyAndPaste  string               `json:"pix_copy_and_paste,omitempty"`
	PaidAt           *time.Time           `json:"paid_at,omitempty"`
}

func newPaymentResponse(p *payments.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:               p.ID,
		GatewayPaymentID: p.GatewayPaymentID,
		Value:            p.Value.StringFixed(2),
		DueDate:          p.DueDate.Format(events.DateLayout),
		BillingType:      p.BillingType,
		Status:           p.Status,
		IsPaid:           p.IsPaid(),
		InvoiceURL:       p.InvoiceURL,
		BankSlipURL:      p.BankSlipURL,
		PixQRCodeImage:   p.PixQRCodeImage,
		PixCopyAndPaste:  p.PixCopyAndPaste,
		PaidAt:           p.PaidAt,
	}
}

// RegistrationResultResponse is a created registration with its charge.
type RegistrationResultResponse struct {
	Message      string               `json:"message,omitempty"`
	Registration RegistrationResponse `json:"registration"`
	Payment      *PaymentResponse     `json:"payment,omitempty"`
}

// BulkRegistrationResponse summarizes a bulk registration.
type BulkRegistrationResponse struct {
	Message       string                       `json:"message"`
	Event         EventResponse                `json:"event"`
	Count         int                          `json:"count"`
	TotalAmount   string                       `json:"total_amount"`
	Registrations []RegistrationResultResponse `json:"registrations"`
}

// BracketPlacementResponse is the slot of a registration in a bracket.
type BracketPlacementResponse struct {
	BracketID string `json:"bracket_id"`
	Title     string `json:"title"`
	Slot      int    `json:"slot"`
}

// LookupItemResponse is a registration found by the lookup.
type LookupItemResponse struct {
	Registration RegistrationResponse       `json:"registration"`
	Payment      *PaymentResponse           `json:"payment,omitempty"`
	Brackets     []BracketPlacementResponse `json:"brackets"`
}

// LookupResponse lists the registrations of an athlete.
type LookupResponse struct {
	Message       string               `json:"message,omitempty"`
	Outcome       string               `json:"outcome,omitempty"`
	Registrations []LookupItemResponse `json:"registrations"`
}

func newLookupItems(results []*events.LookupResult) []LookupItemResponse {
	out := make([]LookupItemResponse, 0, len(results))
	for _, r := range results {
		item := LookupItemResponse{
			Registration: newRegistrationResponse(r.Registration),
			Payment:      newPaymentResponse(r.Payment),
			Brackets:     []BracketPlacementResponse{},
		}
		for _, b := range r.Brackets {
			item.Brackets = append(item.Brackets, BracketPlacementResponse{BracketID: b.BracketID, Title: b.Title, Slot: b.Slot})
		}
		out = append(out, item)
	}
	return out
}

// LoginRequest carries staff credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	IsStaff   bool      `json:"is_staff"`
}

func newLoginResponse(s *staff.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt,
		Username:  s.User.Username,
		IsStaff:   s.User.IsStaff,
	}
}

// RegistrationTotalsResponse counts registrations per status.
type RegistrationTotalsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
}

// AcademyCountResponse is an academy with its number of registrations.
type AcademyCountResponse struct {
	Academy       AcademyResponse `json:"academy"`
	Registrations int64           `json:"registrations"`
}

// SummaryResponse is the staff panel home page.
type SummaryResponse struct {
	PublishedEvents int64                      `json:"published_events"`
	OpenEvents      int64                      `json:"open_events"`
	Registrations   RegistrationTotalsResponse `json:"registrations"`
	Upcoming        []EventSummaryResponse     `json:"upcoming_events"`
	TopAcademies    []AcademyCountResponse     `json:"top_academies"`
	Recent          []RegistrationResponse     `json:"recent_registrations"`
}

func newSummaryResponse(s *dashboard.Summary, now time.Time) SummaryResponse {
	out := SummaryResponse{
		PublishedEvents: s.PublishedEvents,
		OpenEvents:      s.OpenEvents,
		Registrations: RegistrationTotalsResponse{
			Total:     s.Registrations.Total,
			Pending:   s.Registrations.Pending,
			Confirmed: s.Registrations.Confirmed,
			Cancelled: s.Registrations.Cancelled,
		},
		Upcoming:     newEventSummaries(s.Upcoming, now),
		TopAcademies: make([]AcademyCountResponse, 0, len(s.TopAcademies)),
		Recent:       newRegistrationResponses(s.Recent),
	}
	for i := range s.TopAcademies {
		entry := s.TopAcademies[i]
		out.TopAcademies = append(out.TopAcademies, AcademyCountResponse{
			Academy:       *newAcademyResponse(&entry.Academy),
			Registrations: entry.Registrations,
		})
	}
	return out
}

// StaffRegistrationResponse is a registration row of the staff list.
type StaffRegistrationResponse struct {
	RegistrationResponse
	Payment *PaymentResponse `json:"payment,omitempty"`
}

// StaffRegistrationListResponse is a page of the staff registration list.
type StaffRegistrationListResponse struct {
	PageInfo
	Registrations []StaffRegistrationResponse `json:"registrations"`
}

// PaymentActionRequest selects a staff payment action.
type PaymentActionRequest struct {
	Action string `json:"action"`
}

// PaymentActionResponse is the outcome of a staff payment action.
type PaymentActionResponse struct {
	Action  string           `json:"action"`
	Message string           `json:"message"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}

// MetricRequest is the staff metric form. The tables are JSON documents
// kept as text so that field errors can point at them.
type MetricRequest struct {
	Name                  string `json:"name"`
	MaxFightsPerAthlete   *int   `json:"max_fights_per_athlete"`
	Notes                 string `json:"notes"`
	AgeMetricsJSON        string `json:"age_metrics_json"`
	ExperienceMetricsJSON string `json:"experience_metrics_json"`
	WeightCategoriesJSON  string `json:"weight_categories_json"`
}

// ToInput converts the request into the service input.
func (r *MetricRequest) ToInput() *matchmaking.MetricInput {
	return &matchmaking.MetricInput{
		Name:                  r.Name,
		MaxFightsPerAthlete:   r.MaxFightsPerAthlete,
		Notes:                 r.Notes,
		AgeMetricsJSON:        r.AgeMetricsJSON,
		ExperienceMetricsJSON: r.ExperienceMetricsJSON,
		WeightCategoriesJSON:  r.WeightCategoriesJSON,
	}
}

// MetricResponse is a matchmaking metric.
type MetricResponse struct {
	ID                  string                         `json:"id"`
	Name                string                         `json:"name"`
	MaxFightsPerAthlete int                            `json:"max_fights_per_athlete"`
	Capacity            int                            `json:"capacity"`
	Notes               string                         `json:"notes"`
	AgeMetrics          []matchmaking.AgeMetric        `json:"age_metrics"`
	ExperienceMetrics   []matchmaking.ExperienceMetric `json:"experience_metrics"`
	WeightCategories    []matchmaking.WeightCategory   `json:"weight_categories"`
	CreatedAt           time.Time                      `json:"created_at"`
	UpdatedAt           time.Time                      `json:"updated_at"`
}

func newMetricResponse(m *matchmaking.Metric) MetricResponse {
	return MetricResponse{
		ID:                  m.ID,
		Name:                m.Name,
		MaxFightsPerAthlete: m.MaxFightsPerAthlete,
		Capacity:            m.Capacity(),
		Notes:               m.Notes,
		AgeMetrics:          m.AgeMetrics,
		ExperienceMetrics:   m.ExperienceMetrics,
		WeightCategories:    m.WeightCategories,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func newMetricResponses(list []*matchmaking.Metric) []MetricResponse {
	out := make([]MetricResponse, 0, len(list))
	for _, m := range list {
		out = append(out, newMetricResponse(m))
	}
	return out
}

// MetricListResponse is a page of metrics.
type MetricListResponse struct {
	PageInfo
	Metrics []MetricResponse `json:"metrics"`
}

// GenerateRequest asks for bracket generation under a metric.
type GenerateRequest struct {
	MetricID        string `json:"metric_id"`
	ReplaceExisting *bool  `json:"replace_existing"`
}

// GroupSummaryResponse describes one classification group.
type GroupSummaryResponse struct {
	RuleSet      string `json:"rule_set"`
	Experience   string `json:"experience"`
	Sex          string `json:"sex"`
	AgeGroup     string `json:"age_group"`
	Weight       string `json:"weight"`
	AthleteCount int    `json:"athlete_count"`
	BracketCount int    `json:"bracket_count"`
}

// UnmatchedResponse is a registration that fits no bracket.
type UnmatchedResponse struct {
	RegistrationID string `json:"registration_id"`
	Athlete        string `json:"athlete"`
	Reason         string `json:"reason"`
}

// GenerationResponse summarizes a bracket generation.
type GenerationResponse struct {
	Messages        []string               `json:"messages"`
	BracketsCreated int                    `json:"brackets_created"`
	MatchesCreated  int                    `json:"matches_created"`
	Replaced        int                    `json:"replaced"`
	Groups          []GroupSummaryResponse `json:"groups"`
	Unmatched       []UnmatchedResponse    `json:"unmatched"`
}

// BracketTotalsResponse is a bracket row of the event panel.
type BracketTotalsResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	MetricID     string `json:"metric_id"`
	BracketIndex int    `json:"bracket_index"`
	Size         int    `json:"size"`
	IsManual     bool   `json:"is_manual"`
	EntryTotal   int64  `json:"entry_total"`
	MatchTotal   int64  `json:"match_total"`
}

// EventOverviewResponse is the matchmaking panel of an event.
type EventOverviewResponse struct {
	Event          EventResponse           `json:"event"`
	Metrics        []MetricResponse        `json:"metrics"`
	Brackets       []BracketTotalsResponse `json:"brackets"`
	ConfirmedCount int                     `json:"confirmed_count"`
	Unassigned     []RegistrationResponse  `json:"unassigned"`
}

// EntryResponse is an athlete placed in a bracket.
type EntryResponse struct {
	ID             string `json:"id"`
	RegistrationID string `json:"registration_id"`
	Seed           int    `json:"seed"`
	Slot           int    `json:"slot"`
	AthleteName    string `json:"athlete_name,omitempty"`
	Academy        string `json:"academy,omitempty"`
}

// MatchResponse is a positioned fight of a bracket.
type MatchResponse struct {
	ID              string  `json:"id"`
	RoundNumber     int     `json:"round_number"`
	Position        int     `json:"position"`
	BlueEntryID     *string `json:"blue_entry_id"`
	RedEntryID      *string `json:"red_entry_id"`
	WinnerEntryID   *string `json:"winner_entry_id"`
	IsBye           bool    `json:"is_bye"`
	Top             float64 `json:"top"`
	ConnectorLength float64 `json:"connector_length"`
}

// RoundResponse is one column of the bracket drawing.
type RoundResponse struct {
	Number  int             `json:"number"`
	Label   string          `json:"label"`
	Matches []MatchResponse `json:"matches"`
}

// BracketDetailResponse is a bracket with its positioned matches.
type BracketDetailResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	EventSlug   string          `json:"event_slug,omitempty"`
	Size        int             `json:"size"`
	MaxFights   int             `json:"max_fights"`
	IsManual    bool            `json:"is_manual"`
	MatchHeight float64         `json:"match_height"`
	Gap         float64         `json:"gap"`
	TotalHeight float64         `json:"total_height"`
	Entries     []EntryResponse `json:"entries"`
	Rounds      []RoundResponse `json:"rounds"`
}

func newBracketDetailResponse(d *matchmaking.BracketDetail) BracketDetailResponse {
	b := d.Bracket
	out := BracketDetailResponse{
		ID:          b.ID,
		Title:       b.Title(),
		Size:        b.Size,
		MaxFights:   b.MaxFights,
		IsManual:    b.IsManual,
		MatchHeight: d.Layout.MatchHeight,
		Gap:         d.Layout.Gap,
		TotalHeight: d.Layout.TotalHeight,
		Entries:     make([]EntryResponse, 0, len(b.Entries)),
		Rounds:      make([]RoundResponse, 0, len(d.Layout.Rounds)),
	}
	if d.Event != nil {
		out.EventSlug = d.Event.Slug
	}
	for _, e := range b.Entries {
		entry := EntryResponse{ID: e.ID, RegistrationID: e.RegistrationID, Seed: e.Seed, Slot: e.Slot}
		if e.Registration != nil {
			entry.AthleteName = e.Registration.AthleteName
			if e.Registration.Academy != nil {
				entry.Academy = e.Registration.Academy.Name
			}
		}
		out.Entries = append(out.Entries, entry)
	}
	for _, round := range d.Layout.Rounds {
		r := RoundResponse{Number: round.Number, Label: round.Label, Matches: make([]MatchResponse, 0, len(round.Matches))}
		for _, lm := range round.Matches {
			m := lm.Match
			r.Matches = append(r.Matches, MatchResponse{
				ID:              m.ID,
				RoundNumber:     m.RoundNumber,
				Position:        m.Position,
				BlueEntryID:     m.BlueEntryID,
				RedEntryID:      m.RedEntryID,
				WinnerEntryID:   m.WinnerEntryID,
				IsBye:           m.IsBye,
				Top:             lm.Top,
				ConnectorLength: lm.ConnectorLength,
			})
		}
		out.Rounds = append(out.Rounds, r)
	}
	return out
}

// ReorderRequest is a comma separated list of entry IDs in slot order.
type ReorderRequest struct {
	Order string `json:"order"`
}

// ExportRequest selects the matches of a bracket export.
type ExportRequest struct {
	Selected bool     `json:"selected"`
	MatchIDs []string `json:"match_ids"`
}
