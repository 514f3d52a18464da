package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cardlens/backend/internal/domain"
	"github.com/cardlens/backend/internal/usecase"
)

const (
	serviceName    = "cardlens-backend"
	serviceVersion = "1.0.0"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog *usecase.CatalogService
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. A nil catalog service makes the
// catalog endpoints answer 503.
func NewHandler(catalog *usecase.CatalogService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{catalog: catalog, logger: logger}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// ListCards returns cards, optionally filtered by display category
func (h *Handler) ListCards(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	category := strings.TrimSpace(c.Query("category"))
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	cards, err := h.catalog.ListCards(c.Request.Context(), category, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cards":    cards,
		"count":    len(cards),
		"category": category,
	})
}

// GetCard returns one card by id
func (h *Handler) GetCard(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	card, err := h.catalog.GetCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// ListCategories returns the catalog category set
func (h *Handler) ListCategories(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// benefitRequest is the body of POST /api/v1/benefits/summary
type benefitRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Detail         string          `json:"detail"`
	Category       string          `json:"category"`
	Discount       domain.Discount `json:"discount"`
	IsSelectOption bool            `json:"is_select_option"`
}

// SummarizeBenefit previews the display summary for one benefit
func (h *Handler) SummarizeBenefit(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req benefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	benefit := domain.NormalizedBenefit{
		Title:          req.Title,
		Description:    req.Description,
		Detail:         req.Detail,
		Discount:       req.Discount,
		IsSelectOption: req.IsSelectOption,
	}
	if req.Category != "" {
		category, ok := domain.ParseCategory(req.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + req.Category})
			return
		}
		benefit.Category = category
	}

	display, err := h.catalog.PreviewBenefit(benefit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, display)
}

func (h *Handler) ready(c *gin.Context) bool {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog service not configured"})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
	case errors.Is(err, domain.ErrBenefitDropped):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCatalogNotFound):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not available yet"})
	default:
		h.logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
