package recipe

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Field aliases the upstream model has been observed to use. Evaluated
// in order, first match wins; new aliases are additions to these lists.
var (
	titleAliases       = []string{"title", "name"}
	descriptionAliases = []string{"shortDescription", "description"}
	cuisineAliases     = []string{"cuisineRegion", "cuisine"}
	timeAliases        = []string{"estimatedTimeMinutes", "time"}
	stepsAliases       = []string{"steps", "instructions"}
	tagsAliases        = []string{"tags"}
	tipsAliases        = []string{"tips"}
	servingAliases     = []string{"servingSize", "servings"}
	nutritionAliases   = []string{"nutrition", "nutritionalInfo", "nutritionInfo"}

	ingredientNameAliases = []string{"name", "item"}
	ingredientQtyAliases  = []string{"quantity", "qty"}

	caloriesAliases = []string{"calories"}
	proteinAliases  = []string{"protein"}
	carbsAliases    = []string{"carbs", "carbohydrates"}
	fatAliases      = []string{"fat", "fats"}
	fiberAliases    = []string{"fiber"}
	sugarAliases    = []string{"sugar", "sugars"}
)

// Placeholders applied when a critical list ends up empty.
var (
	placeholderIngredients = []Ingredient{
		{Name: "Salt", Quantity: "to taste", IsFromUserKitchen: false},
		{Name: "Water", Quantity: "as needed", IsFromUserKitchen: false},
	}
	placeholderSteps = []string{
		"Prepare all ingredients as needed.",
		"Cook according to recipe instructions.",
		"Serve hot and enjoy!",
	}
	placeholderTips = []string{"Adjust seasoning to personal preference."}
)

const (
	defaultCuisine     = "Indian"
	defaultTimeMinutes = 20
	defaultQuantity    = "as needed"
)

// Normalize turns a raw decoded value of unknown shape into a fully
// valid Suggestion. base, when present, supplies the identity and any
// fields the source is missing (detail enrichment); index is used only
// for the title fallback. This function never fails: whatever reaches
// it, the result satisfies every Suggestion invariant.
func Normalize(src map[string]any, base *Suggestion, index int) Suggestion {
	if src == nil {
		src = map[string]any{}
	}

	// Enrichment keeps the existing identity, fresh suggestions get a
	// new one.
	id := ""
	if base != nil {
		id = base.ID
	}
	if id == "" {
		id = uuid.NewString()
	}

	out := Suggestion{
		ID:                   id,
		Title:                normalizeString(src, base, titleAliases, baseTitle(base), fmt.Sprintf("Recipe %d", index+1)),
		ShortDescription:     normalizeString(src, base, descriptionAliases, baseDescription(base), ""),
		CuisineRegion:        normalizeString(src, base, cuisineAliases, baseCuisine(base), defaultCuisine),
		IsVegetarian:         normalizeVegetarian(src, base),
		Tags:                 normalizeStringList(src, tagsAliases, baseTags(base)),
		EstimatedTimeMinutes: normalizeTime(src, base),
		Difficulty:           normalizeDifficulty(src, base),
		Ingredients:          normalizeIngredients(src, base),
		Steps:                normalizeStringList(src, stepsAliases, baseSteps(base)),
		Tips:                 normalizeStringList(src, tipsAliases, baseTips(base)),
		ServingSize:          normalizeServingSize(src, base),
		Nutrition:            normalizeNutrition(src),
	}

	// Final pass: critical lists must never be empty.
	if len(out.Ingredients) == 0 {
		out.Ingredients = append([]Ingredient(nil), placeholderIngredients...)
	}
	if len(out.Steps) == 0 {
		out.Steps = append([]string(nil), placeholderSteps...)
	}
	if len(out.Tips) == 0 {
		out.Tips = append([]string(nil), placeholderTips...)
	}

	return out
}

func baseTitle(base *Suggestion) string {
	if base == nil {
		return ""
	}
	return base.Title
}

func baseDescription(base *Suggestion) string {
	if base == nil {
		return ""
	}
	return base.ShortDescription
}

func baseCuisine(base *Suggestion) string {
	if base == nil {
		return ""
	}
	return base.CuisineRegion
}

func baseTags(base *Suggestion) []string {
	if base == nil {
		return nil
	}
	return base.Tags
}

func baseSteps(base *Suggestion) []string {
	if base == nil {
		return nil
	}
	return base.Steps
}

func baseTips(base *Suggestion) []string {
	if base == nil {
		return nil
	}
	return base.Tips
}

// normalizeString resolves a string field: first non-empty source alias,
// else the base's value, else the literal default.
func normalizeString(src map[string]any, base *Suggestion, aliases []string, baseValue, fallback string) string {
	for _, key := range aliases {
		if s, ok := src[key].(string); ok && s != "" {
			return s
		}
	}
	if base != nil && baseValue != "" {
		return baseValue
	}
	return fallback
}

func normalizeVegetarian(src map[string]any, base *Suggestion) bool {
	if b, ok := src["isVegetarian"].(bool); ok {
		return b
	}
	if base != nil {
		return base.IsVegetarian
	}
	return true
}

func normalizeTime(src map[string]any, base *Suggestion) int {
	if v, ok := lookupTruthy(src, timeAliases); ok {
		if n, ok := coerceNumber(v); ok && n != 0 {
			return int(n)
		}
	}
	if base != nil && base.EstimatedTimeMinutes != 0 {
		return base.EstimatedTimeMinutes
	}
	return defaultTimeMinutes
}

func normalizeDifficulty(src map[string]any, base *Suggestion) string {
	if d, ok := src["difficulty"].(string); ok {
		switch d {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
			return d
		}
	}
	if base != nil && base.Difficulty != "" {
		return base.Difficulty
	}
	return DifficultyEasy
}

// normalizeStringList applies the array rule: use the source array only
// if it is an array and non-empty, else the base's array under the same
// test, else an empty list.
func normalizeStringList(src map[string]any, aliases []string, baseList []string) []string {
	if v, ok := lookupTruthy(src, aliases); ok {
		if arr, ok := v.([]any); ok && len(arr) > 0 {
			return toStringSlice(arr)
		}
	}
	if len(baseList) > 0 {
		return append([]string(nil), baseList...)
	}
	return []string{}
}

func normalizeIngredients(src map[string]any, base *Suggestion) []Ingredient {
	if v, ok := lookupTruthy(src, []string{"ingredients"}); ok {
		if arr, ok := v.([]any); ok && len(arr) > 0 {
			out := make([]Ingredient, 0, len(arr))
			for _, item := range arr {
				out = append(out, normalizeIngredient(item))
			}
			return out
		}
	}
	if base != nil && len(base.Ingredients) > 0 {
		return append([]Ingredient(nil), base.Ingredients...)
	}
	return []Ingredient{}
}

func normalizeIngredient(v any) Ingredient {
	m, ok := v.(map[string]any)
	if !ok {
		m = map[string]any{}
	}

	ing := Ingredient{Name: "Ingredient", Quantity: defaultQuantity}
	for _, key := range ingredientNameAliases {
		if s, ok := m[key].(string); ok && s != "" {
			ing.Name = s
			break
		}
	}
	for _, key := range ingredientQtyAliases {
		if s, ok := m[key].(string); ok && s != "" {
			ing.Quantity = s
			break
		}
	}
	ing.IsFromUserKitchen = isTruthy(m["isFromUserKitchen"])
	return ing
}

func normalizeServingSize(src map[string]any, base *Suggestion) *float64 {
	if v, ok := lookupTruthy(src, servingAliases); ok {
		if n, ok := coerceNumber(v); ok && n != 0 {
			return &n
		}
	}
	if base != nil && base.ServingSize != nil && *base.ServingSize != 0 {
		n := *base.ServingSize
		return &n
	}
	return nil
}

// normalizeNutrition builds nutrition only when the source supplied a
// nutrition-shaped object; it is never synthesized from nothing and
// never inherited from the base.
func normalizeNutrition(src map[string]any) *NutritionalInfo {
	v, ok := lookupTruthy(src, nutritionAliases)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	return &NutritionalInfo{
		Calories: numberOrZero(m, caloriesAliases),
		Protein:  numberOrZero(m, proteinAliases),
		Carbs:    numberOrZero(m, carbsAliases),
		Fat:      numberOrZero(m, fatAliases),
		Fiber:    numberOrZero(m, fiberAliases),
		Sugar:    numberOrZero(m, sugarAliases),
	}
}

// numberOrZero keeps the upstream "Number(x) || 0" behavior: a
// legitimately zero value and a non-numeric value both normalize to 0.
func numberOrZero(m map[string]any, aliases []string) float64 {
	if v, ok := lookupTruthy(m, aliases); ok {
		if n, ok := coerceNumber(v); ok {
			return n
		}
	}
	return 0
}

// lookupTruthy returns the first alias whose value is truthy in the
// upstream's loose sense; empty arrays and objects count as truthy, so
// an empty source list blocks later aliases and falls through to the
// base instead.
func lookupTruthy(m map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		v, present := m[key]
		if !present {
			continue
		}
		if isTruthy(v) {
			return v, true
		}
	}
	return nil, false
}

func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		n, err := t.Float64()
		return err == nil && n != 0
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		// arrays and objects
		return true
	}
}

func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Float64()
		return n, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func toStringSlice(arr []any) []string {
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case json.Number:
			out = append(out, t.String())
		}
	}
	return out
}
