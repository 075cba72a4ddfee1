package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pathiram/backend/internal/model"
	"github.com/pathiram/backend/internal/service"
	"github.com/pathiram/backend/internal/service/exporter"
)

// PreviewHandler serves the live preview and exports of unsaved records.
type PreviewHandler struct {
	preview   *service.PreviewService
	documents *service.DocumentService
}

func NewPreviewHandler(preview *service.PreviewService, documents *service.DocumentService) *PreviewHandler {
	return &PreviewHandler{preview: preview, documents: documents}
}

// DocumentTypes lists the supported templates.
func (h *PreviewHandler) DocumentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, model.DocumentTypes)
}

// Preview composes the posted record and returns the document and its HTML.
func (h *PreviewHandler) Preview(c *gin.Context) {
	docType, ok := parseType(c)
	if !ok {
		return
	}
	record, ok := bindRecord(c)
	if !ok {
		return
	}

	res, err := h.preview.Preview(docType, record)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AmountWords spells ?amount= in Tamil.
func (h *PreviewHandler) AmountWords(c *gin.Context) {
	c.JSON(http.StatusOK, h.preview.AmountWords(c.Query("amount")))
}

// Export renders the posted record without saving it.
func (h *PreviewHandler) Export(c *gin.Context) {
	docType, ok := parseType(c)
	if !ok {
		return
	}
	format, err := exporter.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	record, ok := bindRecord(c)
	if !ok {
		return
	}

	file, err := h.documents.ExportFields(c.Request.Context(), docType, record, format)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, file.Filename, file.ContentType, file.Data)
}
