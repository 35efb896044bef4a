package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/app"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	maleNames = []string{
		"Alex", "Bruno", "Caio", "Diego", "Eduardo", "Felipe", "Gabriel", "Henrique", "Igor", "Joao",
		"Leandro", "Marcos", "Nicolas", "Otavio", "Paulo", "Rafael", "Sergio", "Tiago", "Ulisses", "Vitor",
	}
	femaleNames = []string{
		"Ana", "Beatriz", "Clara", "Daniela", "Elisa", "Fernanda", "Giulia", "Helena", "Isabela", "Juliana",
		"Karina", "Larissa", "Marina", "Natalia", "Olivia", "Patricia", "Renata", "Sabrina", "Talita", "Vanessa",
	}
	lastNames = []string{
		"Silva", "Souza", "Almeida", "Ferreira", "Gomes", "Melo", "Rocha", "Barbosa", "Costa", "Dias",
		"Farias", "Pereira", "Rezende", "Moreira", "Teixeira", "Vieira", "Cardoso", "Cavalcante", "Azevedo", "Santana",
	}
	practiceOptions = []events.PracticeTime{
		events.PracticeLessThanOne, events.PracticeOneToThree, events.PracticeThreeToFive, events.PracticeMoreThanFive,
	}
	// wins, draws, losses
	recordPatterns = [][3]int{{2, 0, 1}, {4, 1, 0}, {6, 2, 1}, {9, 1, 2}, {12, 2, 3}}
	seedModalities = []events.Modality{events.ModalityAmateur, events.ModalityProfessional}
	seedRuleSets   = []events.RuleSet{events.RuleSetK1Light, events.RuleSetK1Rules}
	seedAcademies  = []struct{ name, city, state, coach string }{
		{"Academia Leao de Itapua", "Salvador", "BA", "Carlos Menezes"},
		{"Team Barra", "Salvador", "BA", "Juliana Prado"},
		{"CT Lauro Fight", "Lauro de Freitas", "BA", "Rogerio Lima"},
		{"Feira Kickboxing", "Feira de Santana", "BA", "Marcio Santos"},
	}
)

// AthleteProfile is one synthetic athlete. Each profile is registered once
// per rule set.
type AthleteProfile struct {
	Name         string
	Sex          events.Sex
	BirthDate    time.Time
	PracticeTime events.PracticeTime
	Wins         int
	Draws        int
	Losses       int
	WeightKg     decimal.Decimal
	Modality     events.Modality
	WhatsApp     string
	Status       events.Status
}

// SeedProfiles builds count deterministic profiles alternating male and
// female athletes. Statuses alternate between pending and confirmed when
// mixedStatus is set, otherwise every profile is confirmed.
func SeedProfiles(count int, mixedStatus bool) []AthleteProfile {
	profiles := make([]AthleteProfile, 0, count)
	for i := 0; i < count; i++ {
		first, sex := maleNames[(i/2)%len(maleNames)], events.SexMale
		if i%2 == 1 {
			first, sex = femaleNames[(i/2)%len(femaleNames)], events.SexFemale
		}

		last := lastNames[i%len(lastNames)]
		if generation := i / (2 * len(maleNames)); generation > 0 {
			last = fmt.Sprintf("%s %d", last, generation+1)
		} else if i >= len(lastNames) {
			last += " Junior"
		}

		record := recordPatterns[i%len(recordPatterns)]
		status := events.StatusConfirmed
		if mixedStatus && i%2 == 0 {
			status = events.StatusPending
		}

		weight := decimal.NewFromInt(60).
			Add(decimal.NewFromInt(int64(i % 15))).
			Add(decimal.RequireFromString("0.5").Mul(decimal.NewFromInt(int64(i%3 + 1))))

		profiles = append(profiles, AthleteProfile{
			Name:         first + " " + last,
			Sex:          sex,
			BirthDate:    time.Date(1985+i%20, time.Month(i%12+1), (i*2)%28+1, 0, 0, 0, 0, time.UTC),
			PracticeTime: practiceOptions[i%len(practiceOptions)],
			Wins:         record[0],
			Draws:        record[1],
			Losses:       record[2],
			WeightKg:     weight.Round(2),
			Modality:     seedModalities[i%len(seedModalities)],
			WhatsApp:     fmt.Sprintf("+5571%08d", 90000000+i),
			Status:       status,
		})
	}
	return profiles
}

// registration turns a profile into a registration of the event under rule.
func (p AthleteProfile) registration(eventID string, rule events.RuleSet, coach *academies.Coach) *events.AthleteRegistration {
	reg := &events.AthleteRegistration{
		ID:           uuid.NewString(),
		EventID:      eventID,
		AcademyID:    coach.AcademyID,
		CoachID:      coach.ID,
		AthleteName:  p.Name,
		BirthDate:    p.BirthDate,
		PracticeTime: p.PracticeTime,
		RecordWins:   p.Wins,
		RecordDraws:  p.Draws,
		RecordLosses: p.Losses,
		WeightKg:     p.WeightKg,
		RuleSet:      rule,
		Modality:     p.Modality,
		WhatsApp:     p.WhatsApp,
		Sex:          p.Sex,
		Notes:        "Seeded registration for " + rule.Label(),
		Status:       p.Status,
	}
	reg.ExperienceLevel = reg.DeriveExperienceLevel()
	return reg
}

// seedRegistrations stores the profiles under every rule set, skipping the
// athletes already registered under the same name and rule set.
func seedRegistrations(ctx context.Context, st store.Store, event *events.Event, profiles []AthleteProfile) (int, error) {
	created := 0
	err := st.Transaction(ctx, func(repos store.Repositories) error {
		coaches := make([]*academies.Coach, 0, len(seedAcademies))
		for _, a := range seedAcademies {
			academy, err := app.ResolveAcademy(ctx, repos, a.name, a.city, a.state)
			if err != nil {
				return err
			}
			coach, err := app.ResolveCoach(ctx, repos, a.coach, academy)
			if err != nil {
				return err
			}
			coaches = append(coaches, coach)
		}

		for i, profile := range profiles {
			coach := coaches[i%len(coaches)]
			for _, rule := range seedRuleSets {
				exists, err := registeredAs(ctx, repos, event.ID, profile.Name, rule)
				if err != nil {
					return err
				}
				if exists {
					continue
				}
				if err := repos.Registrations.Create(ctx, profile.registration(event.ID, rule, coach)); err != nil {
					return fmt.Errorf("failed to seed %s: %w", profile.Name, err)
				}
				created++
			}
		}
		return nil
	})
	return created, err
}

func registeredAs(ctx context.Context, repos store.Repositories, eventID, name string, rule events.RuleSet) (bool, error) {
	list, _, err := repos.Registrations.List(ctx, &events.RegistrationQuery{Search: name, EventID: eventID})
	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", name, err)
	}
	for _, reg := range list {
		if reg.RuleSet == rule && strings.EqualFold(reg.AthleteName, name) {
			return true, nil
		}
	}
	return false, nil
}

// SeedCommandHandler fills an event with synthetic registrations.
type SeedCommandHandler struct{}

// SeedAthletesCmd registers synthetic athletes in an event
func (commandHandler *SeedCommandHandler) SeedAthletesCmd(cmd *cobra.Command, _ []string) error {
	slug, err := cmd.Flags().GetString("event")
	if err != nil {
		return fmt.Errorf("invalid event flag: %w", err)
	}
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return fmt.Errorf("invalid count flag: %w", err)
	}
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	mixed, err := cmd.Flags().GetBool("mixed-status")
	if err != nil {
		return fmt.Errorf("invalid mixed-status flag: %w", err)
	}

	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	event, err := rt.store.Repos().Events.GetBySlug(cmd.Context(), slug)
	if err != nil {
		return fmt.Errorf("failed to load event %q: %w", slug, err)
	}

	created, err := seedRegistrations(cmd.Context(), rt.store, event, SeedProfiles(count, mixed))
	if err != nil {
		return err
	}
	rt.logger.Info("Seeded registrations", "event", event.Slug, "created", created)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d registration(s) in %s\n", successColor.Sprint("Seeded"), created, labelColor.Sprint(event.Title))
	return nil
}

// InitSeedCommands registers seed-athletes
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler := &SeedCommandHandler{}

	var seedAthletesCmd = &cobra.Command{
		Use:   "seed-athletes",
		Short: "Register synthetic athletes in an event",
		RunE:  handler.SeedAthletesCmd,
	}
	seedAthletesCmd.Flags().StringP("event", "e", "", "Event slug")
	seedAthletesCmd.Flags().Int("count", 40, "Number of athlete profiles, each registered under both rule sets")
	seedAthletesCmd.Flags().Bool("mixed-status", false, "Alternate pending and confirmed registrations")
	if err := seedAthletesCmd.MarkFlagRequired("event"); err != nil {
		return fmt.Errorf("failed to mark event flag required: %w", err)
	}
	rootCmd.AddCommand(seedAthletesCmd)

	return nil
}
