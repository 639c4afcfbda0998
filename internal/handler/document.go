package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"estate/internal/model"
	"estate/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles legal document generation
type DocumentHandler struct {
	documentService *service.DocumentService
	logger          *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
	}
}

// Types handles GET /api/v1/documents
func (h *DocumentHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"documents": h.documentService.Types()})
}

// Generate handles POST /api/v1/documents/:type.
// Responds with raw HTML when ?format=html is given, JSON otherwise.
func (h *DocumentHandler) Generate(c *gin.Context) {
	docType := model.DocumentType(strings.ToUpper(c.Param("type")))

	var data model.DocumentData
	if err := c.ShouldBindJSON(&data); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	html, err := h.documentService.Generate(docType, data)
	if err != nil {
		if errors.Is(err, service.ErrUnknownDocumentType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported document type: " + string(docType)})
			return
		}
		h.logger.Error("failed to generate document", "type", docType, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		return
	}

	if c.Query("format") == "html" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}
	c.JSON(http.StatusOK, model.DocumentResponse{Type: docType, HTML: html})
}
