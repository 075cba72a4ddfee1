package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pathiram/backend/internal/model"
	"github.com/pathiram/backend/internal/service"
	"github.com/pathiram/backend/internal/service/exporter"
)

type DocumentHandler struct {
	service *service.DocumentService
}

func NewDocumentHandler(service *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Create validates and saves a record of the type in the path.
func (h *DocumentHandler) Create(c *gin.Context) {
	docType, ok := parseType(c)
	if !ok {
		return
	}
	record, ok := bindRecord(c)
	if !ok {
		return
	}

	rec, err := h.service.Create(c.Request.Context(), docType, record)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// List searches saved documents: ?type=&q=&page=&page_size=
func (h *DocumentHandler) List(c *gin.Context) {
	filter := service.ListFilter{Query: c.Query("q")}
	if t := c.Query("type"); t != "" {
		docType, err := model.ParseDocumentType(t)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Type = docType
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.PageSize, _ = strconv.Atoi(c.Query("page_size"))

	res, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *DocumentHandler) GetByNumber(c *gin.Context) {
	rec, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, ok := bindRecord(c)
	if !ok {
		return
	}
	rec, err := h.service.Update(c.Request.Context(), id, record)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Export sends a saved document as ?format=docx|pdf.
func (h *DocumentHandler) Export(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	format, err := exporter.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	file, err := h.service.Export(c.Request.Context(), id, format)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, file.Filename, file.ContentType, file.Data)
}
