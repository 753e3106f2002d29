package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshtrackhq/freshtrack/internal/domain"
)

type recipeRequest struct {
	PantryItems []domain.PantryItem `json:"pantry_items"`
}

func (h *handlers) recipes(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if len(req.PantryItems) == 0 {
		badRequest(c, "pantry_items must not be empty")
		return
	}

	recipes, err := h.svcs.Recipes.Suggest(c.Request.Context(), req.PantryItems)
	if err != nil {
		h.internalError(c, "recipe suggestions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
