// Package favorites exposes the favorites CRUD routes.
package favorites

import (
	"net/http"

	"recipe-recommender/internal/core/favorites"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the /favorites routes.
type Handler struct {
	service *favorites.Service
}

// NewHandler creates the favorites handler.
func NewHandler(service *favorites.Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /favorites.
func (h *Handler) List(c *gin.Context) {
	result, err := h.service.List()
	if err != nil {
		common.LogError("failed to list favorites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get favorites"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Add handles POST /favorites.
func (h *Handler) Add(c *gin.Context) {
	var recipe common.RecipeSuggestion
	if err := c.ShouldBindJSON(&recipe); err != nil || recipe.ID == "" || recipe.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe format"})
		return
	}

	saved, err := h.service.Add(recipe)
	if err != nil {
		common.LogError("failed to add favorite",
			zap.String("recipe_id", recipe.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add favorite"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// Remove handles DELETE /favorites/:id.
func (h *Handler) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Remove(id); err != nil {
		common.LogError("failed to remove favorite",
			zap.String("recipe_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove favorite"})
		return
	}
	c.Status(http.StatusNoContent)
}
