package events

// PracticeTime is how long the athlete has trained.
type PracticeTime string

// Practice time choices
const (
	PracticeLessThanOne  PracticeTime = "lt_1"
	PracticeOneToThree   PracticeTime = "1_3"
	PracticeThreeToFive  PracticeTime = "3_5"
	PracticeMoreThanFive PracticeTime = "gt_5"
)

// ExperienceLevel is derived from the athlete's fight record.
type ExperienceLevel string

// Experience level choices
const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// RuleSet is the fight rule the athlete registers for.
type RuleSet string

// Rule set choices
const (
	RuleSetK1Light RuleSet = "k1_light"
	RuleSetK1Rules RuleSet = "k1_rules"
)

// Modality separates amateur and professional registrations.
type Modality string

// Modality choices
const (
	ModalityAmateur      Modality = "amateur"
	ModalityProfessional Modality = "professional"
)

// Status is the lifecycle of a registration.
type Status string

// Registration status choices
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Sex of the athlete.
type Sex string

// Sex choices
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

var practiceLabels = map[PracticeTime]string{
	PracticeLessThanOne:  "Menos de 1 ano",
	PracticeOneToThree:   "1 a 3 anos",
	PracticeThreeToFive:  "3 a 5 anos",
	PracticeMoreThanFive: "Mais de 5 anos",
}

var experienceLabels = map[ExperienceLevel]string{
	ExperienceBeginner:     "Iniciante",
	ExperienceIntermediate: "Intermediário",
	ExperienceAdvanced:     "Avançado",
}

var ruleSetLabels = map[RuleSet]string{
	RuleSetK1Light: "K1 Light",
	RuleSetK1Rules: "K1 Rules",
}

var modalityLabels = map[Modality]string{
	ModalityAmateur:      "Amador",
	ModalityProfessional: "Profissional",
}

var statusLabels = map[Status]string{
	StatusPending:   "Pendente",
	StatusConfirmed: "Confirmada",
	StatusCancelled: "Cancelada",
}

var sexLabels = map[Sex]string{
	SexMale:   "Masculino",
	SexFemale: "Feminino",
	SexOther:  "Outro",
}

func label[K ~string](labels map[K]string, key K) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return string(key)
}

// Label returns the display label, or the raw value when unknown.
func (p PracticeTime) Label() string { return label(practiceLabels, p) }

// Valid reports whether p is a known choice.
func (p PracticeTime) Valid() bool { _, ok := practiceLabels[p]; return ok }

// Label returns the display label, or the raw value when unknown.
func (e ExperienceLevel) Label() string { return label(experienceLabels, e) }

// Label returns the display label, or the raw value when unknown.
func (r RuleSet) Label() string { return label(ruleSetLabels, r) }

// Valid reports whether r is a known choice.
func (r RuleSet) Valid() bool { _, ok := ruleSetLabels[r]; return ok }

// Label returns the display label, or the raw value when unknown.
func (m Modality) Label() string { return label(modalityLabels, m) }

// Valid reports whether m is a known choice.
func (m Modality) Valid() bool { _, ok := modalityLabels[m]; return ok }

// Label returns the display label, or the raw value when unknown.
func (s Status) Label() string { return label(statusLabels, s) }

// Valid reports whether s is a known choice.
func (s Status) Valid() bool { _, ok := statusLabels[s]; return ok }

// Label returns the display label, or the raw value when unknown.
func (s Sex) Label() string { return label(sexLabels, s) }

// Valid reports whether s is a known choice.
func (s Sex) Valid() bool { _, ok := sexLabels[s]; return ok }
