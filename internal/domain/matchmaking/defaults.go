package matchmaking

// DefaultMetricName names the metric created by the seed command.
const DefaultMetricName = "Padrão FKBA"

func intRef(v int) *int { return &v }

// DefaultAgeMetrics returns the federation age groups.
func DefaultAgeMetrics() []AgeMetric {
	return []AgeMetric{
		{Name: "infantil", MinAge: 9, MaxAge: 11},
		{Name: "cadete", MinAge: 12, MaxAge: 14},
		{Name: "juvenil", MinAge: 15, MaxAge: 17},
		{Name: "adulto", MinAge: 18, MaxAge: 40},
	}
}

// DefaultExperienceMetrics returns the federation experience groups.
func DefaultExperienceMetrics() []ExperienceMetric {
	return []ExperienceMetric{
		{Name: "iniciante", MaxFights: intRef(4)},
		{Name: "avancado", MinFights: intRef(5)},
	}
}

// DefaultWeightCategories returns the federation K1 Light and K1 Rules weight tables.
func DefaultWeightCategories() []WeightCategory {
	kidWeights := func() []string { return []string{"28", "32", "37", "42", "47", "+47"} }
	maleLight := func() []string { return []string{"57", "63", "69", "74", "79", "84", "89", "+89"} }
	femaleLight := func() []string { return []string{"50", "55", "60", "65", "70", "+70"} }
	maleRules := func() []string { return []string{"55", "60", "65", "70", "75", "80", "85", "90", "+90"} }

	return []WeightCategory{
		{Name: "K1 Light", Sex: MetricSexMale, AgeGroup: "infantil", Weights: kidWeights()},
		{Name: "K1 Light", Sex: MetricSexMale, AgeGroup: "cadete", Weights: maleLight()},
		{Name: "K1 Light", Sex: MetricSexMale, AgeGroup: "juvenil", Weights: maleLight()},
		{Name: "K1 Light", Sex: MetricSexFemale, AgeGroup: "infantil", Weights: kidWeights()},
		{Name: "K1 Light", Sex: MetricSexFemale, AgeGroup: "cadete", Weights: femaleLight()},
		{Name: "K1 Light", Sex: MetricSexFemale, AgeGroup: "juvenil", Weights: femaleLight()},
		{Name: "K1 Rules", Sex: MetricSexMale, AgeGroup: "juvenil", Weights: maleRules()},
		{Name: "K1 Rules", Sex: MetricSexFemale, AgeGroup: "juvenil", Weights: []string{"50", "55", "60", "65", "+65"}},
		{Name: "K1 Light", Sex: MetricSexMale, AgeGroup: "adulto", Weights: maleLight()},
		{Name: "K1 Light", Sex: MetricSexFemale, AgeGroup: "adulto", Weights: femaleLight()},
		{Name: "K1 Rules", Sex: MetricSexMale, AgeGroup: "adulto", Weights: maleRules()},
		{Name: "K1 Rules", Sex: MetricSexFemale, AgeGroup: "adulto", Weights: []string{"52", "56", "60", "65", "70", "+70"}},
	}
}
