package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relieflink/go-relief-api/internal/models"
)

type addDiseaseRequest struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	Severity  string `json:"severity"`
	Mortality string `json:"mortality"`
	Location  string `json:"location"`
}

func (h *Handler) addDisease(c *gin.Context) {
	var req addDiseaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	disease := &models.Disease{
		Name:      req.Name,
		Date:      req.Date,
		Severity:  req.Severity,
		Mortality: req.Mortality,
		Location:  req.Location,
	}

	updated, err := h.store.UpsertDisease(c.Request.Context(), disease)
	if err != nil {
		slog.Error("disease upsert failed", "name", req.Name, "location", req.Location, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding disease data", "error": err.Error()})
		return
	}

	message := "New disease added successfully"
	if updated {
		message = "Existing disease updated successfully"
	}

	c.JSON(http.StatusCreated, gin.H{"message": message, "data": disease})
}

func (h *Handler) listDiseases(c *gin.Context) {
	diseases, err := h.store.ListDiseases(c.Request.Context())
	if err != nil {
		slog.Error("disease list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving diseases", "error": err.Error()})
		return
	}

	if len(diseases) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No diseases found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diseases retrieved successfully", "data": diseases})
}

func (h *Handler) largestDisease(c *gin.Context) {
	diseases, err := h.store.ListDiseases(c.Request.Context())
	if err != nil {
		slog.Error("disease list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error retrieving disease with the largest number of cases",
			"error":   err.Error(),
		})
		return
	}

	if len(diseases) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No diseases found"})
		return
	}

	// Strictly-greater scan: on ties the first record in retrieved order wins.
	largest := diseases[0]
	for _, d := range diseases[1:] {
		if d.Number > largest.Number {
			largest = d
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Disease with the largest number of cases retrieved successfully",
		"data":    largest,
	})
}
