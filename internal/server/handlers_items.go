package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/repository"
)

type handlers struct {
	svcs Services
	log  *slog.Logger
}

func (h *handlers) listItems(c *gin.Context) {
	items, err := h.svcs.Items.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) createItem(c *gin.Context) {
	var item domain.PantryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if msg, ok := validateItem(item); !ok {
		badRequest(c, msg)
		return
	}

	created, err := h.svcs.Items.Create(c.Request.Context(), item)
	if err != nil {
		h.internalError(c, "create item", err)
		return
	}
	itemsCreated.Inc()
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) updateItem(c *gin.Context) {
	var item domain.PantryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if msg, ok := validateItem(item); !ok {
		badRequest(c, msg)
		return
	}
	updated, err := h.svcs.Items.Update(c.Request.Context(), c.Param("id"), item)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "item not found")
		return
	}
	if err != nil {
		h.internalError(c, "update item", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) deleteItem(c *gin.Context) {
	err := h.svcs.Items.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "item not found")
		return
	}
	if err != nil {
		h.internalError(c, "delete item", err)
		return
	}
	itemsDeleted.Inc()
	wasteEvents.Inc()
	c.Status(http.StatusNoContent)
}

func validateItem(item domain.PantryItem) (string, bool) {
	if strings.TrimSpace(item.Name) == "" {
		return "name is required", false
	}
	if item.Category != "" && !domain.ValidCategories[item.Category] {
		return "unknown category: " + item.Category, false
	}
	return "", true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func (h *handlers) internalError(c *gin.Context, op string, err error) {
	h.log.Error(op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
