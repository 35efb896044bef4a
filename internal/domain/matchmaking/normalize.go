package matchmaking

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
)

// Messages returned while normalizing metric tables
const (
	MsgNotAList            = "Informe uma lista de objetos JSON."
	MsgItemNotObject       = "Cada item deve ser um objeto JSON {}."
	MsgAgeNameRequired     = "Campo \"nome\" é obrigatório nas métricas de idade."
	MsgAgeKeys             = "Use as chaves \"idade_minima\" e \"idade_maxima\"."
	MsgAgeNotInteger       = "Idades devem ser números inteiros."
	MsgAgeInverted         = "A idade mínima não pode ser maior que a máxima."
	MsgExperienceName      = "Campo \"nome\" é obrigatório nas métricas de experiência."
	MsgMinFightsNumeric    = "O campo \"minimo_lutas\" deve ser numérico."
	MsgMaxFightsNumeric    = "O campo \"maximo_lutas\" deve ser numérico."
	MsgExperienceBounds    = "Informe \"minimo_lutas\" ou \"maximo_lutas\"."
	MsgWeightName          = "Campo \"nome\" é obrigatório nas categorias de peso."
	MsgWeightSex           = "Use \"masculino\" ou \"feminino\" no campo sexo."
	MsgWeightAgeGroup      = "Campo \"faixa_idade\" é obrigatório nas categorias de peso."
	MsgWeightsRequired     = "Campo \"faixas_peso\" é obrigatório nas categorias de peso."
	MsgWeightsList         = "Cada categoria deve trazer a lista \"faixas_peso\"."
	MsgNoAgeMetrics        = "Informe ao menos uma faixa de idade."
	MsgNoExperienceMetrics = "Informe ao menos uma métrica de experiência."
	MsgNoWeightCategories  = "Informe ao menos uma categoria de peso."
	MsgRequired            = "Este campo é obrigatório."
	MsgMaxFightsMin        = "Certifique-se que este valor seja maior ou igual a 1."
	MsgMetricNameTaken     = "Já existe uma métrica com este nome."
)

var (
	sexAliases = map[string]string{
		"masculino": MetricSexMale,
		"m":         MetricSexMale,
		"male":      MetricSexMale,
		"feminino":  MetricSexFemale,
		"f":         MetricSexFemale,
		"female":    MetricSexFemale,
	}
	weightSeparators = regexp.MustCompile(`[;,/]`)
)

// ParseMetricList decodes raw as a JSON list of objects.
func ParseMetricList(raw string) ([]map[string]any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, errors.New("JSON inválido: " + err.Error())
	}
	list, ok := parsed.([]any)
	if !ok {
		return nil, errors.New(MsgNotAList)
	}
	items := make([]map[string]any, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, errors.New(MsgItemNotObject)
		}
		items = append(items, obj)
	}
	return items, nil
}

// firstString returns the first non empty string stored under keys, trimmed.
func firstString(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := item[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// lookup returns the value of the first key present in item.
func lookup(item map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := item[key]; ok {
			return v
		}
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}

func normalizeAgeMetric(item map[string]any) (AgeMetric, error) {
	name := firstString(item, "nome", "name")
	if name == "" {
		return AgeMetric{}, errors.New(MsgAgeNameRequired)
	}
	rawMin := lookup(item, "idade_minima", "min_age")
	rawMax := lookup(item, "idade_maxima", "max_age")
	if rawMin == nil || rawMax == nil {
		return AgeMetric{}, errors.New(MsgAgeKeys)
	}
	minAge, okMin := toInt(rawMin)
	maxAge, okMax := toInt(rawMax)
	if !okMin || !okMax {
		return AgeMetric{}, errors.New(MsgAgeNotInteger)
	}
	if minAge > maxAge {
		return AgeMetric{}, errors.New(MsgAgeInverted)
	}
	return AgeMetric{Name: name, MinAge: minAge, MaxAge: maxAge}, nil
}

func normalizeExperienceMetric(item map[string]any) (ExperienceMetric, error) {
	name := firstString(item, "nome", "name")
	if name == "" {
		return ExperienceMetric{}, errors.New(MsgExperienceName)
	}
	metric := ExperienceMetric{Name: name}
	if raw := lookup(item, "minimo_lutas", "min_fights"); raw != nil {
		v, ok := toInt(raw)
		if !ok {
			return ExperienceMetric{}, errors.New(MsgMinFightsNumeric)
		}
		metric.MinFights = &v
	}
	if raw := lookup(item, "maximo_lutas", "max_fights"); raw != nil {
		v, ok := toInt(raw)
		if !ok {
			return ExperienceMetric{}, errors.New(MsgMaxFightsNumeric)
		}
		metric.MaxFights = &v
	}
	if metric.MinFights == nil && metric.MaxFights == nil {
		return ExperienceMetric{}, errors.New(MsgExperienceBounds)
	}
	return metric, nil
}

func weightLabel(v any) string {
	switch w := v.(type) {
	case string:
		return w
	case float64:
		return strconv.FormatFloat(w, 'f', -1, 64)
	case nil:
		return "None"
	default:
		b, _ := json.Marshal(w)
		return string(b)
	}
}

// truthy mirrors the emptiness rules used by the legacy lookup chain.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case float64:
		return t != 0
	case bool:
		return t
	}
	return true
}

func normalizeWeightCategory(item map[string]any) (WeightCategory, error) {
	name := firstString(item, "nome", "name")
	if name == "" {
		return WeightCategory{}, errors.New(MsgWeightName)
	}
	sex, ok := sexAliases[strings.ToLower(firstString(item, "sexo", "sex"))]
	if !ok {
		return WeightCategory{}, errors.New(MsgWeightSex)
	}
	ageGroup := firstString(item, "faixa_idade", "faixa-de-idade", "age_group")
	if ageGroup == "" {
		return WeightCategory{}, errors.New(MsgWeightAgeGroup)
	}

	var raw any
	for _, key := range []string{"faixas_peso", "faixas-de-peso", "weights"} {
		if truthy(item[key]) {
			raw = item[key]
			break
		}
	}
	if raw == nil {
		return WeightCategory{}, errors.New(MsgWeightsRequired)
	}

	var values []any
	switch w := raw.(type) {
	case string:
		for _, part := range weightSeparators.Split(w, -1) {
			if p := strings.TrimSpace(part); p != "" {
				values = append(values, p)
			}
		}
	case []any:
		values = w
	default:
		return WeightCategory{}, errors.New(MsgWeightsList)
	}
	if len(values) == 0 {
		return WeightCategory{}, errors.New(MsgWeightsList)
	}

	weights := make([]string, 0, len(values))
	for _, v := range values {
		weights = append(weights, strings.TrimSpace(strings.ReplaceAll(weightLabel(v), "KG", "Kg")))
	}
	return WeightCategory{Name: name, Sex: sex, AgeGroup: ageGroup, Weights: weights}, nil
}

func normalizeAll[T any](items []map[string]any, strict bool, one func(map[string]any) (T, error), defaults func() []T) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, err := one(item)
		if err != nil {
			if strict {
				return nil, err
			}
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 && !strict {
		return defaults(), nil
	}
	return out, nil
}

// NormalizeAgeMetrics converts raw objects into age metrics. In strict mode
// the first invalid item fails the whole list; otherwise invalid items are
// dropped and the defaults are returned when nothing remains.
func NormalizeAgeMetrics(items []map[string]any, strict bool) ([]AgeMetric, error) {
	return normalizeAll(items, strict, normalizeAgeMetric, DefaultAgeMetrics)
}

// NormalizeExperienceMetrics is the experience table counterpart of NormalizeAgeMetrics.
func NormalizeExperienceMetrics(items []map[string]any, strict bool) ([]ExperienceMetric, error) {
	return normalizeAll(items, strict, normalizeExperienceMetric, DefaultExperienceMetrics)
}

// NormalizeWeightCategories is the weight table counterpart of NormalizeAgeMetrics.
func NormalizeWeightCategories(items []map[string]any, strict bool) ([]WeightCategory, error) {
	return normalizeAll(items, strict, normalizeWeightCategory, DefaultWeightCategories)
}

func lenientItems(raw []byte) []map[string]any {
	var list []any
	if len(raw) == 0 || json.Unmarshal(raw, &list) != nil {
		return nil
	}
	items := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			items = append(items, obj)
		}
	}
	return items
}

// LenientAgeMetrics decodes a stored age table, tolerating legacy keys and
// falling back to the defaults.
func LenientAgeMetrics(raw []byte) []AgeMetric {
	out, _ := NormalizeAgeMetrics(lenientItems(raw), false)
	return out
}

// LenientExperienceMetrics decodes a stored experience table.
func LenientExperienceMetrics(raw []byte) []ExperienceMetric {
	out, _ := NormalizeExperienceMetrics(lenientItems(raw), false)
	return out
}

// LenientWeightCategories decodes a stored weight table.
func LenientWeightCategories(raw []byte) []WeightCategory {
	out, _ := NormalizeWeightCategories(lenientItems(raw), false)
	return out
}

// MetricInput is the staff metric form. The three tables arrive as JSON text.
type MetricInput struct {
	Name                  string
	MaxFightsPerAthlete   *int
	Notes                 string
	AgeMetricsJSON        string
	ExperienceMetricsJSON string
	WeightCategoriesJSON  string
}

func strictTable[T any](errs domain.ValidationErrors, field, raw, emptyMsg string, normalize func([]map[string]any, bool) ([]T, error)) []T {
	if strings.TrimSpace(raw) == "" {
		errs.Add(field, MsgRequired)
		return nil
	}
	items, err := ParseMetricList(raw)
	if err != nil {
		errs.Add(field, err.Error())
		return nil
	}
	out, err := normalize(items, true)
	if err != nil {
		errs.Add(field, err.Error())
		return nil
	}
	if len(out) == 0 {
		errs.Add(field, emptyMsg)
		return nil
	}
	return out
}

// Apply validates the form and copies it onto m. All field errors are
// returned together.
func (in *MetricInput) Apply(m *Metric) error {
	errs := domain.ValidationErrors{}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs.Add("name", MsgRequired)
	}
	switch {
	case in.MaxFightsPerAthlete == nil:
		errs.Add("max_fights_per_athlete", MsgRequired)
	case *in.MaxFightsPerAthlete < 1:
		errs.Add("max_fights_per_athlete", MsgMaxFightsMin)
	}
	ages := strictTable(errs, "age_metrics_json", in.AgeMetricsJSON, MsgNoAgeMetrics, NormalizeAgeMetrics)
	experience := strictTable(errs, "experience_metrics_json", in.ExperienceMetricsJSON, MsgNoExperienceMetrics, NormalizeExperienceMetrics)
	weights := strictTable(errs, "weight_categories_json", in.WeightCategoriesJSON, MsgNoWeightCategories, NormalizeWeightCategories)
	if err := errs.OrNil(); err != nil {
		return err
	}

	m.Name = name
	m.MaxFightsPerAthlete = *in.MaxFightsPerAthlete
	m.Notes = in.Notes
	m.AgeMetrics = ages
	m.ExperienceMetrics = experience
	m.WeightCategories = weights
	return nil
}
