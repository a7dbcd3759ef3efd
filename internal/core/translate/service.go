// Package translate runs the text translation flow against the
// completion endpoint.
package translate

import (
	"context"
	"net/http"
	"strings"

	"recipe-recommender/internal/core/ai/cache"
	"recipe-recommender/internal/core/ai/prompt"
	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrTranslationFailed is the generic failure reported for any upstream
// problem that is not a rate limit.
var ErrTranslationFailed = common.NewError("TRANSLATION_FAILED", "translation failed", http.StatusBadGateway, nil)

// Completer is the completion client surface the translator needs.
type Completer interface {
	Complete(ctx context.Context, p prompt.Payload) (string, error)
	Configured() bool
}

// Service translates short UI and recipe text. Its cache is keyed by
// target language plus trimmed text and never expires; translations are
// stable, so re-buying them is pure cost.
type Service struct {
	ai    Completer
	cache *cache.Store
}

// NewService creates the translation service. store is expected to be
// constructed without a TTL.
func NewService(ai Completer, store *cache.Store) *Service {
	return &Service{
		ai:    ai,
		cache: store,
	}
}

// Translate returns text in the target language. Empty input
// short-circuits to empty output with no network call. An upstream 429
// surfaces as the distinguished rate-limited error; every other
// upstream or transport failure collapses into ErrTranslationFailed.
func (s *Service) Translate(ctx context.Context, text, targetLang string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}

	if !s.ai.Configured() {
		return "", common.ErrConfigMissing
	}

	key := targetLang + ":" + trimmed
	if v, ok := s.cache.Get(key); ok {
		if cached, okCast := v.(string); okCast {
			return cached, nil
		}
	}

	content, err := s.ai.Complete(ctx, prompt.Translate(trimmed, targetLang))
	if err != nil {
		if common.IsRateLimited(err) {
			common.LogWarn("translation rate limit hit",
				zap.String("target_lang", targetLang),
			)
			return "", err
		}
		common.LogError("translation failed",
			zap.Error(err),
			zap.String("target_lang", targetLang),
		)
		return "", common.WrapError(ErrTranslationFailed, err)
	}

	translated := strings.TrimSpace(content)
	s.cache.Set(key, translated)

	return translated, nil
}
