package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relieflink/go-relief-api/internal/geocode"
	"github.com/relieflink/go-relief-api/internal/models"
	"github.com/relieflink/go-relief-api/internal/repository"
)

type addCampRequest struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Capacity     int      `json:"capacity"`
	Requirements string   `json:"requirements"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type editCampRequest struct {
	ID           string  `json:"id"`
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	Capacity     *int    `json:"capacity"`
	Requirements *string `json:"requirements"`
}

func (h *Handler) addCamp(c *gin.Context) {
	var req addCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	var lat, lng float64
	if req.Latitude == nil || req.Longitude == nil {
		// Coordinates missing, derive them from the address.
		results, err := h.geo.Forward(c.Request.Context(), req.Address)
		if errors.Is(err, geocode.ErrNoResults) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Unable to find coordinates for the given address."})
			return
		}
		if err != nil {
			slog.Error("camp geocode failed", "address", req.Address, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving camp data", "error": err.Error()})
			return
		}

		// First result wins.
		lat, lng, err = results[0].Coordinates()
		if err != nil {
			slog.Error("camp geocode result unusable", "address", req.Address, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving camp data", "error": err.Error()})
			return
		}
	} else {
		lat = *req.Latitude
		lng = *req.Longitude
	}

	camp := &models.Camp{
		Name:         req.Name,
		Address:      req.Address,
		Capacity:     req.Capacity,
		Requirements: req.Requirements,
		Latitude:     lat,
		Longitude:    lng,
	}

	if err := h.store.AddCamp(c.Request.Context(), camp); err != nil {
		slog.Error("camp insert failed", "name", req.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving camp data", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Camp saved successfully", "data": camp})
}

func (h *Handler) editCamp(c *gin.Context) {
	var req editCampRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Camp id is required"})
		return
	}

	camp, err := h.store.UpdateCamp(c.Request.Context(), req.ID, repository.CampUpdate{
		Name:         req.Name,
		Address:      req.Address,
		Capacity:     req.Capacity,
		Requirements: req.Requirements,
	})
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Camp not found"})
		return
	}
	if err != nil {
		slog.Error("camp update failed", "id", req.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating camp data", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Camp updated successfully", "data": camp})
}

func (h *Handler) listCamps(c *gin.Context) {
	camps, err := h.store.ListCamps(c.Request.Context())
	if err != nil {
		slog.Error("camp list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving camp data", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Camps retrieved successfully", "data": camps})
}
