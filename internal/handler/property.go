package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"estate/internal/model"
	"estate/internal/service"
	"estate/internal/utils"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles listing-related HTTP requests
type PropertyHandler struct {
	listingService *service.ListingService
	logger         *slog.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(listingService *service.ListingService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		listingService: listingService,
		logger:         logger,
	}
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	var q model.PropertyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	features, unknown := utils.NormalizeFeatures(q.Features)
	if len(unknown) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown features: " + strings.Join(unknown, ", ")})
		return
	}
	q.Features = features

	response, err := h.listingService.Search(c.Request.Context(), &q)
	if err != nil {
		if errors.Is(err, model.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to fetch properties", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/properties/:slug
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.listingService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.logger.Error("failed to fetch property", "slug", c.Param("slug"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// Similar handles GET /api/v1/properties/:slug/similar
func (h *PropertyHandler) Similar(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	response, err := h.listingService.Similar(c.Request.Context(), c.Param("slug"), limit)
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.logger.Error("failed to find similar properties", "slug", c.Param("slug"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch similar properties"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/v1/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := service.ValidatePropertyPayload(body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req model.CreatePropertyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	property, err := h.listingService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProperty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create property", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, property)
}

// Neighborhoods handles GET /api/v1/neighborhoods
func (h *PropertyHandler) Neighborhoods(c *gin.Context) {
	codes := make([]string, 0, len(model.NeighborhoodNames))
	for code := range model.NeighborhoodNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	neighborhoods := make([]model.NeighborhoodInfo, 0, len(codes))
	for _, code := range codes {
		name := model.NeighborhoodNames[code]
		neighborhoods = append(neighborhoods, model.NeighborhoodInfo{
			Code:   code,
			Name:   name.En,
			NameHe: name.He,
			SdeDov: model.IsSdeDovNeighborhood(code),
		})
	}

	c.JSON(http.StatusOK, gin.H{"neighborhoods": neighborhoods})
}
