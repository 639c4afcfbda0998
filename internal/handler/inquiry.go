package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"estate/internal/model"
	"estate/internal/service"

	"github.com/gin-gonic/gin"
)

// InquiryHandler handles inquiry-related HTTP requests
type InquiryHandler struct {
	inquiryService *service.InquiryService
	logger         *slog.Logger
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryService *service.InquiryService, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
		logger:         logger,
	}
}

// Submit handles POST /api/v1/inquiries
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req model.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.inquiryService.Submit(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		case errors.Is(err, service.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		default:
			h.logger.Error("failed to submit inquiry", "property_id", req.PropertyID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, response)
}

// List handles GET /api/v1/inquiries
func (h *InquiryHandler) List(c *gin.Context) {
	var filter model.InquiryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	inquiries, err := h.inquiryService.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: NEW, CONTACTED, SCHEDULED, CLOSED"})
			return
		}
		h.logger.Error("failed to fetch inquiries", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	c.JSON(http.StatusOK, model.InquiryListResponse{Inquiries: inquiries})
}
