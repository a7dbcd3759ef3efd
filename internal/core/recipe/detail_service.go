package recipe

import (
	"context"
	"fmt"

	"recipe-recommender/internal/core/ai/cache"
	"recipe-recommender/internal/core/ai/prompt"
	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// DetailService runs the enrichment flow: given a rough suggestion it
// asks the model for a fully fleshed-out version, preserving identity
// and any base-only fields through the normalizer.
type DetailService struct {
	ai    Completer
	cache *cache.Store
}

// NewDetailService creates the detail service. The store is shared with
// the suggestion service.
func NewDetailService(ai Completer, store *cache.Store) *DetailService {
	return &DetailService{
		ai:    ai,
		cache: store,
	}
}

// EnrichRecipe returns an enriched version of base. The caller
// guarantees id and title are present. Unlike the suggestion flow there
// is no mock fallback: without a configured upstream the call fails.
func (s *DetailService) EnrichRecipe(ctx context.Context, base Suggestion) (*Suggestion, error) {
	key := detailCacheKey(base)

	if v, ok := s.cache.Get(key); ok {
		if cached, okCast := v.(Suggestion); okCast {
			common.LogInfo("returning cached recipe details",
				zap.String("recipe_id", base.ID),
			)
			detailed := cached
			return &detailed, nil
		}
	}

	if !s.ai.Configured() {
		return nil, common.ErrConfigMissing
	}

	content, err := s.ai.Complete(ctx, prompt.RecipeDetails(base))
	if err != nil {
		return nil, err
	}

	var raw any
	if err := common.ParseJSON(common.ExtractJSONObject(content), &raw); err != nil {
		common.LogError("failed to parse detail response",
			zap.Error(err),
			zap.String("recipe_id", base.ID),
		)
		return nil, common.WrapError(common.ErrParseFailure, err)
	}

	src := detailSource(raw)
	if src == nil {
		return nil, common.ErrInvalidShape
	}
	if title, ok := src["title"].(string); !ok || title == "" {
		return nil, common.ErrInvalidShape
	}

	result := Normalize(src, &base, 0)
	s.cache.Set(key, result)

	common.LogInfo("recipe details generated",
		zap.String("recipe_id", result.ID),
	)

	detailed := result
	return &detailed, nil
}

// detailCacheKey composes the key from the fields that identify an
// enrichment round-trip.
func detailCacheKey(base Suggestion) string {
	return fmt.Sprintf("recipe-details-%s-%s-%s", base.ID, base.Title, base.CuisineRegion)
}

// detailSource accepts either a single recipe object or the first
// element of a {"recipes": [...]} wrapper.
func detailSource(raw any) map[string]any {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	if arr, ok := m["recipes"].([]any); ok && len(arr) > 0 {
		if first, ok := arr[0].(map[string]any); ok {
			return first
		}
		return nil
	}
	return m
}
