package recipe

import (
	"recipe-recommender/internal/pkg/common"
)

// Query is the user-supplied search input.
type Query = common.RecipeQuery

// Ingredient is one entry of a suggestion's ingredient list.
type Ingredient = common.RecipeIngredient

// NutritionalInfo holds per-serving nutrition estimates.
type NutritionalInfo = common.NutritionalInfo

// Suggestion is the canonical, always-valid recipe unit.
type Suggestion = common.RecipeSuggestion

// SuggestResponse wraps the suggestion list returned to clients.
type SuggestResponse = common.SuggestRecipesResponse

// Difficulty levels.
const (
	DifficultyEasy   = common.DifficultyEasy
	DifficultyMedium = common.DifficultyMedium
	DifficultyHard   = common.DifficultyHard
)
