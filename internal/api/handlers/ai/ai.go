// Package ai exposes the AI-backed routes. Handlers validate presence
// of required fields and forward to the core services; specific failure
// kinds are logged server-side while clients get a generic message.
package ai

import (
	"net/http"

	"recipe-recommender/internal/core/ai/prompt"
	"recipe-recommender/internal/core/recipe"
	"recipe-recommender/internal/core/translate"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles the three AI flows.
type Handler struct {
	suggestions *recipe.SuggestionService
	details     *recipe.DetailService
	translator  *translate.Service
}

// NewHandler creates the AI handler.
func NewHandler(suggestions *recipe.SuggestionService, details *recipe.DetailService, translator *translate.Service) *Handler {
	return &Handler{
		suggestions: suggestions,
		details:     details,
		translator:  translator,
	}
}

// SuggestRecipes handles POST /ai/suggest-recipes.
func (h *Handler) SuggestRecipes(c *gin.Context) {
	var query common.RecipeQuery
	if err := c.ShouldBindJSON(&query); err != nil || len(query.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ingredients[] is required"})
		return
	}

	result, err := h.suggestions.SuggestRecipes(c.Request.Context(), query)
	if err != nil {
		ce := common.AsCustomError(err)
		common.LogError("suggest-recipes failed",
			zap.String("code", ce.Code),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate recipes"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecipeDetails handles POST /ai/recipe-details.
func (h *Handler) RecipeDetails(c *gin.Context) {
	var base common.RecipeSuggestion
	if err := c.ShouldBindJSON(&base); err != nil || base.ID == "" || base.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id and title are required"})
		return
	}

	detailed, err := h.details.EnrichRecipe(c.Request.Context(), base)
	if err != nil {
		ce := common.AsCustomError(err)
		common.LogError("recipe-details failed",
			zap.String("code", ce.Code),
			zap.String("recipe_id", base.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate recipe details"})
		return
	}

	c.JSON(http.StatusOK, detailed)
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
}

// Translate handles POST /ai/translate. A rate-limited upstream maps to
// 429 so the UI can show a retry hint; everything else is a generic
// failure.
func (h *Handler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !prompt.SupportedLanguage(req.TargetLang) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "text and a supported targetLang (en, hi, mr) are required"})
		return
	}

	translated, err := h.translator.Translate(c.Request.Context(), req.Text, req.TargetLang)
	if err != nil {
		if common.IsRateLimited(err) {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Translation rate limit reached, please wait and try again."})
			return
		}
		ce := common.AsCustomError(err)
		common.LogError("translate failed",
			zap.String("code", ce.Code),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Translation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"translated": translated})
}
