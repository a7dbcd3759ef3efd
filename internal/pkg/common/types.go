package common

// Diet values accepted in a recipe query.
const (
	DietVeg    = "veg"
	DietNonVeg = "non-veg"
	DietVegan  = "vegan"
	DietJain   = "jain"
	DietKeto   = "keto"
	DietCustom = "custom"
)

// Difficulty levels a suggestion may carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// RecipeQuery is the user-supplied search input. Immutable once issued,
// never persisted.
type RecipeQuery struct {
	Ingredients      []string `json:"ingredients"`
	Diet             string   `json:"diet,omitempty"`
	SpiceLevel       string   `json:"spiceLevel,omitempty"`
	TimeLimitMinutes int      `json:"timeLimitMinutes,omitempty"`
	CuisineFocus     string   `json:"cuisineFocus,omitempty"`
	Servings         int      `json:"servings,omitempty"`
	AvoidIngredients []string `json:"avoidIngredients,omitempty"`
}

// RecipeIngredient is one entry of a suggestion's ingredient list.
type RecipeIngredient struct {
	Name              string `json:"name"`
	Quantity          string `json:"quantity"`
	IsFromUserKitchen bool   `json:"isFromUserKitchen"`
}

// NutritionalInfo holds per-serving nutrition estimates.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// RecipeSuggestion is the canonical recipe unit. Every instance that
// leaves the normalizer satisfies: non-empty title, 1+ ingredients,
// 1+ steps, 1+ tips and a valid difficulty.
type RecipeSuggestion struct {
	ID                   string             `json:"id"`
	Title                string             `json:"title"`
	ShortDescription     string             `json:"shortDescription"`
	CuisineRegion        string             `json:"cuisineRegion"`
	IsVegetarian         bool               `json:"isVegetarian"`
	Tags                 []string           `json:"tags"`
	EstimatedTimeMinutes int                `json:"estimatedTimeMinutes"`
	Difficulty           string             `json:"difficulty"`
	Ingredients          []RecipeIngredient `json:"ingredients"`
	Steps                []string           `json:"steps"`
	Tips                 []string           `json:"tips"`
	ServingSize          *float64           `json:"servingSize,omitempty"`
	Nutrition            *NutritionalInfo   `json:"nutrition,omitempty"`
}

// SuggestRecipesResponse wraps the suggestion list returned to clients.
type SuggestRecipesResponse struct {
	Recipes []RecipeSuggestion `json:"recipes"`
}
