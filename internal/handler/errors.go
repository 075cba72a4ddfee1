package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pathiram/backend/internal/model"
	"github.com/pathiram/backend/internal/repository"
	"github.com/pathiram/backend/internal/service/exporter"
	"k8s.io/klog/v2"
)

// respondError maps service errors onto a status and a JSON message.
func respondError(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Missing})
	case errors.Is(err, model.ErrUnknownDocumentType),
		errors.Is(err, model.ErrInvalidFields),
		errors.Is(err, exporter.ErrUnknownFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "could not allocate a document number, please retry"})
	case errors.Is(err, exporter.ErrEmptySource):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		klog.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func parseType(c *gin.Context) (model.DocumentType, bool) {
	docType, err := model.ParseDocumentType(c.Param("type"))
	if err != nil {
		respondError(c, err)
		return "", false
	}
	return docType, true
}

// bindRecord reads a flat JSON object. Numbers keep their literal text.
func bindRecord(c *gin.Context) (model.FieldRecord, bool) {
	record := model.FieldRecord{}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return record, true
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid field record: %v", err)})
		return nil, false
	}
	return record, true
}

func sendFile(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
