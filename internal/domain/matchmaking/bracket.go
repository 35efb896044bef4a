package matchmaking

import (
	"fmt"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"

	"github.com/go-playground/validator/v10"
)

// Bracket is a single elimination chave of one group.
type Bracket struct {
	ID              string         `validate:"required,uuid4"`
	EventID         string         `validate:"required,uuid4"`
	MetricID        string         `validate:"required,uuid4"`
	RuleSet         events.RuleSet `validate:"required,oneof=k1_light k1_rules"`
	ExperienceLabel string         `validate:"required,max=64"`
	Sex             events.Sex     `validate:"required,oneof=male female other"`
	AgeGroup        string         `validate:"required,max=32"`
	WeightLabel     string         `validate:"required,max=32"`
	BracketIndex    int            `validate:"gte=1"`
	Size            int            `validate:"gte=1"`
	MaxFights       int            `validate:"gte=0"`
	GeneratedByID   *string        `validate:"omitempty,uuid4"`
	IsManual        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Entries []*Entry `validate:"-"`
	Matches []*Match `validate:"-"`
	Metric  *Metric  `validate:"-"`
}

// Validate checks the bracket fields.
func (b *Bracket) Validate() error {
	return domain.ValidateStruct(validator.New(), b)
}

// Title is the display name of the bracket.
func (b *Bracket) Title() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s", b.RuleSet.Label(), b.ExperienceLabel, b.Sex.Label(), b.AgeGroup, b.WeightLabel)
}

// TotalRounds is the number of rounds of the bracket.
func (b *Bracket) TotalRounds() int {
	return TotalRounds(b.Size, len(b.Entries))
}

// Entry places a registration on a slot of a bracket.
type Entry struct {
	ID             string
	BracketID      string
	RegistrationID string
	Seed           int
	Slot           int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Registration *events.AthleteRegistration
}

// Match is a fight between the blue and red corners. Later round corners
// come from the winners of the source matches.
type Match struct {
	ID                string
	BracketID         string
	RoundNumber       int
	Position          int
	BlueEntryID       *string
	RedEntryID        *string
	BlueSourceMatchID *string
	RedSourceMatchID  *string
	WinnerEntryID     *string
	IsBye             bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

var stageLabels = []string{
	"Final",
	"Semifinal",
	"Quartas de final",
	"Oitavas de final",
	"16-avos de final",
	"32-avos de final",
}

// RoundLabel names the round of m in a bracket of totalRounds rounds.
func (m *Match) RoundLabel(totalRounds int) string {
	return RoundLabel(m.RoundNumber, totalRounds)
}

// RoundLabel names round in a bracket of totalRounds rounds.
func RoundLabel(round, totalRounds int) string {
	if i := totalRounds - round; i >= 0 && i < len(stageLabels) {
		return stageLabels[i]
	}
	if round == 1 {
		return "Fase inicial"
	}
	return fmt.Sprintf("Round %d", round)
}

// TotalRounds halves max(size, entries, 1) rounding up until one slot remains.
func TotalRounds(size, entries int) int {
	n := size
	if entries > n {
		n = entries
	}
	rounds := 0
	for n > 1 {
		rounds++
		n = (n + 1) / 2
	}
	if rounds < 1 {
		return 1
	}
	return rounds
}
