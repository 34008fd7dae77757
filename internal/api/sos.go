package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/relieflink/go-relief-api/internal/geocode"
	"github.com/relieflink/go-relief-api/internal/models"
)

type sosRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *Handler) createSOSCall(c *gin.Context) {
	var req sosRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude are required."})
		return
	}

	lat := strconv.FormatFloat(*req.Latitude, 'f', -1, 64)
	lon := strconv.FormatFloat(*req.Longitude, 'f', -1, 64)

	result, err := h.geo.Reverse(c.Request.Context(), lat, lon)
	if errors.Is(err, geocode.ErrNoResults) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results found for the provided coordinates."})
		return
	}
	if err != nil {
		slog.Error("sos reverse geocode failed", "lat", lat, "lon", lon, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the SOS call."})
		return
	}

	// The reverse-geocoded display address doubles as both name and location.
	call := &models.SOSCall{
		Name:      result.DisplayName,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Location:  result.DisplayName,
	}

	if err := h.store.AddSOSCall(c.Request.Context(), call); err != nil {
		slog.Error("sos insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the SOS call."})
		return
	}

	c.JSON(http.StatusCreated, call)
}
