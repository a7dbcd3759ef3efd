package recipe

import (
	"context"

	"recipe-recommender/internal/core/ai/cache"
	"recipe-recommender/internal/core/ai/prompt"
	"recipe-recommender/internal/pkg/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Completer is the completion client surface the recipe services need.
type Completer interface {
	Complete(ctx context.Context, p prompt.Payload) (string, error)
	Configured() bool
}

// SuggestionService runs the suggestion flow: cache check, prompt,
// completion call, normalization, memoization.
type SuggestionService struct {
	ai    Completer
	cache *cache.Store
}

// NewSuggestionService creates the suggestion service. The store is
// shared with the detail service; keys do not collide.
func NewSuggestionService(ai Completer, store *cache.Store) *SuggestionService {
	return &SuggestionService{
		ai:    ai,
		cache: store,
	}
}

// SuggestRecipes returns 1+ normalized suggestions for the query.
// Input validation (non-empty ingredients) is the caller's job. When no
// credential is configured the flow degrades to a fixed mock suggestion
// so the UI always has content; the mock is not cached.
func (s *SuggestionService) SuggestRecipes(ctx context.Context, query Query) (*SuggestResponse, error) {
	key := suggestionCacheKey(query)

	if v, ok := s.cache.Get(key); ok {
		if cached, okCast := v.(SuggestResponse); okCast {
			common.LogInfo("returning cached recipe suggestions")
			resp := cached
			return &resp, nil
		}
	}

	if !s.ai.Configured() {
		common.LogWarn("AI credential missing, using fallback mock recipes")
		return &SuggestResponse{Recipes: []Suggestion{mockSuggestion(query)}}, nil
	}

	content, err := s.ai.Complete(ctx, prompt.SuggestRecipes(query))
	if err != nil {
		return nil, err
	}

	var raw any
	if err := common.ParseJSON(common.ExtractJSONObject(content), &raw); err != nil {
		common.LogError("failed to parse suggestion response",
			zap.Error(err),
			zap.Int("content_length", len(content)),
		)
		return nil, common.WrapError(common.ErrParseFailure, err)
	}

	sources := recipesArray(raw)
	if len(sources) == 0 {
		return nil, common.ErrInvalidShape
	}

	recipes := make([]Suggestion, 0, len(sources))
	for i, src := range sources {
		m, _ := src.(map[string]any)
		recipes = append(recipes, Normalize(m, nil, i))
	}

	result := SuggestResponse{Recipes: recipes}
	s.cache.Set(key, result)

	common.LogInfo("recipe suggestions generated",
		zap.Int("count", len(recipes)),
	)

	resp := result
	return &resp, nil
}

// suggestionCacheKey is a deterministic serialization of the full query.
func suggestionCacheKey(query Query) string {
	serialized, _ := common.ToJSON(query)
	return "recipes-" + serialized
}

// recipesArray accepts either {"recipes": [...]} or a bare array.
func recipesArray(raw any) []any {
	switch t := raw.(type) {
	case map[string]any:
		if arr, ok := t["recipes"].([]any); ok {
			return arr
		}
		return nil
	case []any:
		return t
	default:
		return nil
	}
}

// mockSuggestion is the configuration-free fallback. Kitchen flags
// reflect whether the query actually mentioned the ingredient.
func mockSuggestion(query Query) Suggestion {
	return Suggestion{
		ID:               uuid.NewString(),
		Title:            "Simple Masala Khichdi",
		ShortDescription: "Comforting one-pot rice and dal with spices, perfect for quick Indian dinner.",
		CuisineRegion:    "North Indian",
		IsVegetarian:     true,
		Tags:             []string{"one-pot", "light", "comfort"},

		EstimatedTimeMinutes: 25,
		Difficulty:           DifficultyEasy,
		Ingredients: []Ingredient{
			{Name: "Rice", Quantity: "1 cup", IsFromUserKitchen: queryHasIngredient(query, "rice")},
			{Name: "Moong dal", Quantity: "1/2 cup", IsFromUserKitchen: queryHasIngredient(query, "dal")},
			{Name: "Onion", Quantity: "1 small, chopped", IsFromUserKitchen: queryHasIngredient(query, "onion")},
		},
		Steps: []string{
			"Wash rice and dal together.",
			"In a pressure cooker, temper jeera, ginger, and chilli.",
			"Add onion, tomato, spices, then rice+dal and water.",
			"Pressure cook for 2–3 whistles until soft.",
		},
		Tips: []string{
			"Adjust water for softer or drier khichdi.",
			"Serve with curd and pickle.",
		},
	}
}

func queryHasIngredient(query Query, name string) bool {
	for _, ing := range query.Ingredients {
		if ing == name {
			return true
		}
	}
	return false
}
