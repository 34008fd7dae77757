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

type addAlertRequest struct {
	Location string   `json:"location"`
	Disease  string   `json:"disease"`
	Radius   *float64 `json:"radius"`
}

func (h *Handler) addAlert(c *gin.Context) {
	var req addAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Location == "" || req.Disease == "" || req.Radius == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required: location, disease, radius."})
		return
	}

	results, err := h.geo.Forward(c.Request.Context(), req.Location)
	if errors.Is(err, geocode.ErrNoResults) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results found for the provided location."})
		return
	}
	if err != nil {
		slog.Error("alert geocode failed", "location", req.Location, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the alert."})
		return
	}

	lat, lon, err := results[0].Coordinates()
	if err != nil {
		slog.Error("alert geocode result unusable", "location", req.Location, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the alert."})
		return
	}

	alert := &models.Alert{
		Latitude:  lat,
		Longitude: lon,
		Disease:   req.Disease,
		Radius:    *req.Radius,
		Location:  req.Location,
	}

	if err := h.store.AddAlert(c.Request.Context(), alert); err != nil {
		slog.Error("alert insert failed", "location", req.Location, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the alert."})
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (h *Handler) listAlerts(c *gin.Context) {
	alerts, err := h.store.ListAlerts(c.Request.Context())
	if err != nil {
		slog.Error("alert list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (h *Handler) deleteAlert(c *gin.Context) {
	id := c.Param("id")

	alert, err := h.store.DeleteAlert(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found."})
		return
	}
	if err != nil {
		slog.Error("alert delete failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while deleting the alert."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert removed successfully.", "alert": alert})
}
