package matchmaking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"

	"github.com/shopspring/decimal"
)

// Classification failure reasons
const (
	ReasonNoRuleSet        = "Inscricao sem regra de luta definida."
	ReasonUnsupportedSex   = "Metricas atuais contemplam apenas sexo masculino ou feminino."
	ReasonNoWeight         = "Peso nao informado."
	ReasonNoBirthDate      = "Data de nascimento nao informada."
	ReasonAgeOutOfRange    = "Idade fora das faixas configuradas."
	ReasonFightsOutOfRange = "Total de lutas fora das metricas configuradas."
	ReasonNoWeightTable    = "Sem configuracao de peso para esta combinacao de regras, sexo e faixa etaria."
	ReasonWeightOutOfRange = "Peso fora das faixas configuradas para esta combinacao."
)

// ClassificationError explains why a registration fits no bracket.
type ClassificationError struct {
	Reason string
}

func (e *ClassificationError) Error() string {
	return e.Reason
}

func classificationError(format string, args ...interface{}) *ClassificationError {
	return &ClassificationError{Reason: fmt.Sprintf(format, args...)}
}

// WeightRange is one weight class. A nil Upper is open ended.
type WeightRange struct {
	Label string
	Lower decimal.Decimal
	Upper *decimal.Decimal
}

// Contains reports whether weight belongs to the range. The first range
// includes its upper bound from zero.
func (r WeightRange) Contains(weight decimal.Decimal) bool {
	if r.Upper == nil {
		return weight.GreaterThan(r.Lower)
	}
	if r.Lower.IsZero() {
		return weight.LessThanOrEqual(*r.Upper)
	}
	return weight.GreaterThan(r.Lower) && weight.LessThanOrEqual(*r.Upper)
}

// ParseWeightToken reads labels such as "57", "57kg", "+89", "89+" or "52,5".
func ParseWeightToken(token string) (decimal.Decimal, bool, error) {
	cleaned := strings.ReplaceAll(strings.ToLower(token), "kg", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	open := strings.HasPrefix(cleaned, "+") || strings.HasSuffix(cleaned, "+")
	cleaned = strings.ReplaceAll(cleaned, "+", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return decimal.Zero, false, classificationError("Faixa de peso invalida: %q.", token)
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false, classificationError("Nao foi possivel interpretar a faixa de peso %q.", token)
	}
	return value, open, nil
}

// BuildWeightRanges turns an ordered list of labels into consecutive ranges.
func BuildWeightRanges(weights []string) ([]WeightRange, error) {
	ranges := make([]WeightRange, 0, len(weights))
	var previousUpper *decimal.Decimal
	for _, raw := range weights {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		value, open, err := ParseWeightToken(token)
		if err != nil {
			return nil, err
		}
		lower := decimal.Zero
		if previousUpper != nil {
			lower = *previousUpper
		}
		upper := value
		if open {
			ranges = append(ranges, WeightRange{Label: token, Lower: lower})
		} else {
			ranges = append(ranges, WeightRange{Label: token, Lower: lower, Upper: &upper})
		}
		previousUpper = &upper
	}
	return ranges, nil
}

type weightKey struct {
	rule, sex, ageGroup string
}

// Profile is a metric prepared for classification.
type Profile struct {
	ageGroups        []AgeMetric
	experienceGroups []ExperienceMetric
	weightIndex      map[weightKey][]WeightRange
}

// NewProfile indexes the weight tables of m. Categories missing a field are
// skipped; unreadable weight labels fail.
func NewProfile(m *Metric) (*Profile, error) {
	p := &Profile{
		ageGroups:        m.AgeMetrics,
		experienceGroups: m.ExperienceMetrics,
		weightIndex:      map[weightKey][]WeightRange{},
	}
	for _, category := range m.WeightCategories {
		key := weightKey{
			rule:     strings.ToLower(strings.TrimSpace(category.Name)),
			sex:      strings.ToLower(strings.TrimSpace(category.Sex)),
			ageGroup: strings.TrimSpace(category.AgeGroup),
		}
		if key.rule == "" || key.sex == "" || key.ageGroup == "" || len(category.Weights) == 0 {
			continue
		}
		ranges, err := BuildWeightRanges(category.Weights)
		if err != nil {
			return nil, err
		}
		p.weightIndex[key] = ranges
	}
	return p, nil
}

// GroupKey identifies the athletes that may fight each other.
type GroupKey struct {
	RuleSet    events.RuleSet
	Experience string
	Sex        events.Sex
	AgeGroup   string
	Weight     string
}

// Less orders keys field by field.
func (k GroupKey) Less(o GroupKey) bool {
	a := [...]string{string(k.RuleSet), k.Experience, string(k.Sex), k.AgeGroup, k.Weight}
	b := [...]string{string(o.RuleSet), o.Experience, string(o.Sex), o.AgeGroup, o.Weight}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Classified is a registration with its resolved groups.
type Classified struct {
	Registration *events.AthleteRegistration
	Key          GroupKey
}

// Classify resolves the groups of reg with ages taken on refDate. A zero
// weight counts as missing. Failures are returned as *ClassificationError.
func (p *Profile) Classify(reg *events.AthleteRegistration, refDate time.Time) (*Classified, error) {
	if reg.RuleSet == "" {
		return nil, &ClassificationError{Reason: ReasonNoRuleSet}
	}
	var sexMetric string
	switch reg.Sex {
	case events.SexMale:
		sexMetric = MetricSexMale
	case events.SexFemale:
		sexMetric = MetricSexFemale
	default:
		return nil, &ClassificationError{Reason: ReasonUnsupportedSex}
	}
	if !reg.WeightKg.IsPositive() {
		return nil, &ClassificationError{Reason: ReasonNoWeight}
	}
	if reg.BirthDate.IsZero() {
		return nil, &ClassificationError{Reason: ReasonNoBirthDate}
	}

	ageGroup, err := p.matchAgeGroup(events.AgeOn(reg.BirthDate, refDate))
	if err != nil {
		return nil, err
	}
	experience, err := p.matchExperience(reg.TotalFights())
	if err != nil {
		return nil, err
	}
	weight, err := p.matchWeight(strings.ToLower(reg.RuleSet.Label()), sexMetric, ageGroup, reg.WeightKg)
	if err != nil {
		return nil, err
	}

	return &Classified{
		Registration: reg,
		Key: GroupKey{
			RuleSet:    reg.RuleSet,
			Experience: experience,
			Sex:        reg.Sex,
			AgeGroup:   ageGroup,
			Weight:     weight,
		},
	}, nil
}

func (p *Profile) matchAgeGroup(age int) (string, error) {
	for _, group := range p.ageGroups {
		if group.Name != "" && group.Contains(age) {
			return group.Name, nil
		}
	}
	return "", &ClassificationError{Reason: ReasonAgeOutOfRange}
}

func (p *Profile) matchExperience(total int) (string, error) {
	for _, group := range p.experienceGroups {
		if group.Name != "" && group.Contains(total) {
			return group.Name, nil
		}
	}
	return "", &ClassificationError{Reason: ReasonFightsOutOfRange}
}

func (p *Profile) matchWeight(rule, sex, ageGroup string, weight decimal.Decimal) (string, error) {
	ranges := p.weightIndex[weightKey{rule: rule, sex: sex, ageGroup: ageGroup}]
	if len(ranges) == 0 {
		return "", &ClassificationError{Reason: ReasonNoWeightTable}
	}
	for _, r := range ranges {
		if r.Contains(weight) {
			return r.Label, nil
		}
	}
	return "", &ClassificationError{Reason: ReasonWeightOutOfRange}
}

// SortParticipants orders a group by weight, birth date and ID.
func SortParticipants(group []*Classified) {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i].Registration, group[j].Registration
		if c := a.WeightKg.Cmp(b.WeightKg); c != 0 {
			return c < 0
		}
		if !a.BirthDate.Equal(b.BirthDate) {
			return a.BirthDate.Before(b.BirthDate)
		}
		return a.ID < b.ID
	})
}
