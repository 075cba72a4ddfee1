package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pathiram/backend/internal/service"
)

type LocationHandler struct {
	service *service.LocationService
}

func NewLocationHandler(service *service.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) States(c *gin.Context) {
	states, err := h.service.States(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, states)
}

func (h *LocationHandler) Districts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	districts, err := h.service.Districts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, districts)
}

func (h *LocationHandler) Taluks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	taluks, err := h.service.Taluks(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, taluks)
}

func (h *LocationHandler) Villages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	villages, err := h.service.Villages(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, villages)
}
