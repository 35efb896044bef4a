package app

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Messages returned by the send payment action
const (
	MsgFreeEventConfirmed = "Evento gratuito: nao ha link de pagamento. Inscricao confirmada."
	MsgAlreadyConfirmed   = "Esta inscricao ja esta confirmada. Nenhuma cobranca adicional foi gerada."
	MsgPaymentLinkUpdated = "Link de pagamento atualizado com sucesso."
	MsgChargeCreated      = "Cobranca gerada. Consulte o painel para detalhes do pagamento."
)

// registrationService implements the RegistrationService interface
type registrationService struct {
	store   store.Store
	charger *paymentCharger
	loc     *time.Location
	logger  logger.Logger
}

// NewRegistrationService creates a new instance of RegistrationService
func NewRegistrationService(
	st store.Store,
	gateway payments.Gateway,
	settings *config.AsaasSettings,
	loc *time.Location,
	logger logger.Logger,
) (events.RegistrationService, error) {
	if loc == nil {
		loc = time.UTC
	}
	return &registrationService{
		store:   st,
		charger: newPaymentCharger(gateway, settings, loc, logger),
		loc:     loc,
		logger:  logger,
	}, nil
}

// openEvent loads a published event that still accepts registrations.
func (s *registrationService) openEvent(ctx context.Context, slug string) (*events.Event, error) {
	event, err := s.store.Repos().Events.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished {
		return nil, domain.ErrNotFound
	}
	if !event.IsRegistrationOpen(time.Now()) {
		return nil, events.ErrRegistrationClosed
	}
	return event, nil
}

// validationErrors extracts the field errors of err, or starts a new set.
func validationErrors(err error) (domain.ValidationErrors, error) {
	if err == nil {
		return domain.ValidationErrors{}, nil
	}
	var errs domain.ValidationErrors
	if errors.As(err, &errs) {
		return errs, nil
	}
	return nil, err
}

// checkCPF reports a CPF already registered in the event under field.
func (s *registrationService) checkCPF(ctx context.Context, errs domain.ValidationErrors, eventID, cpf, field string) error {
	cpf = strings.TrimSpace(cpf)
	if errs.Has(field) || !validators.IsCPF(cpf) {
		return nil
	}
	exists, err := s.store.Repos().Registrations.CPFExists(ctx, eventID, cpf)
	if err != nil {
		return err
	}
	if exists {
		errs.Add(field, events.MsgCPFDuplicate)
	}
	return nil
}

func (s *registrationService) Register(ctx context.Context, slug string, input *events.RegistrationInput) (*events.RegistrationResult, error) {
	event, err := s.openEvent(ctx, slug)
	if err != nil {
		return nil, err
	}

	draft, normalizeErr := input.Normalize(time.Now().In(s.loc))
	errs, err := validationErrors(normalizeErr)
	if err != nil {
		return nil, err
	}
	if err := s.checkCPF(ctx, errs, event.ID, input.CPF, "cpf"); err != nil {
		return nil, err
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	var result *events.RegistrationResult
	err = s.store.Transaction(ctx, func(repos store.Repositories) error {
		results, err := s.saveDrafts(ctx, repos, event, []*events.RegistrationDraft{draft})
		if err != nil {
			return err
		}
		result = results[0]
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to register athlete", "event", event.Slug, "error", err)
		return nil, err
	}

	s.logger.Info("Athlete registered", "event", event.Slug, "registration_id", result.Registration.ID)
	return result, nil
}

// saveDrafts stores drafts of one academy. Paid events get a charge per
// registration; free events confirm right away.
func (s *registrationService) saveDrafts(ctx context.Context, repos store.Repositories, event *events.Event, drafts []*events.RegistrationDraft) ([]*events.RegistrationResult, error) {
	shared := drafts[0].Academy
	academy, err := ResolveAcademy(ctx, repos, shared.AcademyName, shared.AcademyCity, shared.AcademyState)
	if err != nil {
		return nil, err
	}
	coach, err := ResolveCoach(ctx, repos, shared.CoachName, academy)
	if err != nil {
		return nil, err
	}

	status := events.StatusPending
	if event.IsFree {
		status = events.StatusConfirmed
	}

	results := make([]*events.RegistrationResult, 0, len(drafts))
	for _, draft := range drafts {
		reg := draft.Build(uuid.NewString(), event.ID, academy.ID, coach.ID, status)
		reg.Event, reg.Academy, reg.Coach = event, academy, coach
		if err := repos.Registrations.Create(ctx, reg); err != nil {
			return nil, err
		}

		result := &events.RegistrationResult{Registration: reg}
		if !event.IsFree {
			if result.Payment, err = s.charger.Charge(ctx, repos, reg); err != nil {
				return nil, err
			}
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *registrationService) RegisterBulk(ctx context.Context, slug string, input *events.BulkRegistrationInput) (*events.BulkRegistrationResult, error) {
	event, err := s.openEvent(ctx, slug)
	if err != nil {
		return nil, err
	}

	drafts, normalizeErr := input.Normalize(time.Now().In(s.loc))
	errs, err := validationErrors(normalizeErr)
	if err != nil {
		return nil, err
	}
	for i, row := range input.Athletes {
		if row.IsBlank() {
			continue
		}
		if err := s.checkCPF(ctx, errs, event.ID, row.CPF, events.AthleteField(i, "cpf")); err != nil {
			return nil, err
		}
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	var results []*events.RegistrationResult
	err = s.store.Transaction(ctx, func(repos store.Repositories) error {
		results, err = s.saveDrafts(ctx, repos, event, drafts)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to register athletes in bulk", "event", event.Slug, "count", len(drafts), "error", err)
		return nil, err
	}

	total := decimal.Zero
	if !event.IsFree {
		total = event.RegistrationFee.Mul(decimal.NewFromInt(int64(len(results)))).Round(2)
	}

	s.logger.Info("Athletes registered in bulk", "event", event.Slug, "count", len(results))
	return &events.BulkRegistrationResult{
		Event:         event,
		Registrations: results,
		TotalAmount:   total.StringFixed(2),
	}, nil
}

// parseLookup validates the CPF and birth date of a lookup.
func parseLookup(cpf, birthDate string) (string, time.Time, error) {
	errs := domain.ValidationErrors{}
	cpf = strings.TrimSpace(cpf)
	if !validators.IsCPF(cpf) {
		errs.Add("cpf", events.MsgCPFFormat)
	}
	birth, err := time.Parse(events.DateLayout, strings.TrimSpace(birthDate))
	if err != nil {
		errs.Add("birth_date", events.MsgBirthDateFormat)
	}
	return cpf, birth, errs.OrNil()
}

func (s *registrationService) Lookup(ctx context.Context, cpf, birthDate string) ([]*events.LookupResult, error) {
	cpf, birth, err := parseLookup(cpf, birthDate)
	if err != nil {
		return nil, err
	}

	repos := s.store.Repos()
	regs, err := repos.Registrations.ListByCPFAndBirthDate(ctx, cpf, birth)
	if err != nil {
		return nil, err
	}
	if len(regs) == 0 {
		return []*events.LookupResult{}, nil
	}

	ids := make([]string, 0, len(regs))
	for _, reg := range regs {
		ids = append(ids, reg.ID)
	}
	paymentsByReg, err := repos.Payments.ListByRegistrationIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	placements, err := repos.Brackets.ListEntriesByRegistrationIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := make([]*events.LookupResult, 0, len(regs))
	for _, reg := range regs {
		result := &events.LookupResult{Registration: reg, Payment: paymentsByReg[reg.ID]}
		for _, p := range placements[reg.ID] {
			result.Brackets = append(result.Brackets, events.BracketPlacement{
				BracketID: p.Bracket.ID,
				Title:     p.Bracket.Title(),
				Slot:      p.Entry.Slot,
			})
		}
		sort.SliceStable(result.Brackets, func(i, j int) bool {
			return result.Brackets[i].Slot < result.Brackets[j].Slot
		})
		results = append(results, result)
	}
	return results, nil
}

// SendPayment only acts on a registration found by the same CPF and birth date.
func (s *registrationService) SendPayment(ctx context.Context, cpf, birthDate, registrationID string) (*events.SendPaymentResult, error) {
	found, err := s.Lookup(ctx, cpf, birthDate)
	if err != nil {
		return nil, err
	}
	var target *events.LookupResult
	for _, r := range found {
		if r.Registration.ID == registrationID {
			target = r
			break
		}
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}

	reg := target.Registration
	result := &events.SendPaymentResult{Registration: reg, Payment: target.Payment}

	switch {
	case reg.Event != nil && reg.Event.IsFree:
		if reg.Status != events.StatusConfirmed {
			if err := s.store.Repos().Registrations.UpdateStatus(ctx, reg.ID, events.StatusConfirmed); err != nil {
				return nil, err
			}
			reg.Status = events.StatusConfirmed
		}
		result.Outcome, result.Message = events.OutcomeConfirmedFree, MsgFreeEventConfirmed
		return result, nil
	case reg.Status == events.StatusConfirmed:
		result.Outcome, result.Message = events.OutcomeAlreadyConfirmed, MsgAlreadyConfirmed
		return result, nil
	}

	payment, err := s.charger.Charge(ctx, s.store.Repos(), reg)
	if err != nil {
		s.logger.Error("Failed to create charge", "registration_id", reg.ID, "error", err)
		return nil, err
	}
	result.Outcome = events.OutcomeChargeCreated
	if target.Payment != nil {
		result.Outcome = events.OutcomeChargeUpdated
	}
	result.Payment = payment
	if payment.InvoiceURL != "" || payment.BankSlipURL != "" {
		result.Message = MsgPaymentLinkUpdated
	} else {
		result.Message = MsgChargeCreated
	}
	return result, nil
}
