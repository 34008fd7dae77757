package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relieflink/go-relief-api/internal/geocode"
	"github.com/relieflink/go-relief-api/internal/repository"
)

// Geocoder is the outbound mapping-provider surface the handlers depend on.
type Geocoder interface {
	Forward(ctx context.Context, query string) ([]geocode.Result, error)
	Reverse(ctx context.Context, lat, lon string) (*geocode.Result, error)
}

// NewsFetcher fetches the latest-epidemics payload from the news provider.
type NewsFetcher interface {
	Latest(ctx context.Context) ([]byte, error)
}

type Handler struct {
	store repository.Store
	geo   Geocoder
	news  NewsFetcher
}

func NewHandler(store repository.Store, geo Geocoder, news NewsFetcher) *Handler {
	return &Handler{
		store: store,
		geo:   geo,
		news:  news,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)

	r.GET("/api/geocode", h.geocodeAddress)
	r.GET("/api/reverse", h.reverseGeocode)
	r.POST("/api/sos", h.createSOSCall)
	r.GET("/api/latest-epidemics", h.latestEpidemics)

	r.POST("/camp/add", h.addCamp)
	r.PATCH("/camp/edit", h.editCamp)
	r.GET("/camp/all", h.listCamps)

	r.POST("/disease/add", h.addDisease)
	r.GET("/disease/all", h.listDiseases)
	r.GET("/disease/largest", h.largestDisease)

	r.POST("/api/alert", h.addAlert)
	r.GET("/api/alerts", h.listAlerts)
	r.DELETE("/api/alerts/:id", h.deleteAlert)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) geocodeAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address query parameter is required."})
		return
	}

	results, err := h.geo.Forward(c.Request.Context(), address)
	if errors.Is(err, geocode.ErrNoResults) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results found."})
		return
	}
	if err != nil {
		slog.Error("forward geocode failed", "address", address, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching data from Nominatim."})
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) reverseGeocode(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude query parameters are required."})
		return
	}

	result, err := h.geo.Reverse(c.Request.Context(), lat, lon)
	if errors.Is(err, geocode.ErrNoResults) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results found."})
		return
	}
	if err != nil {
		slog.Error("reverse geocode failed", "lat", lat, "lon", lon, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching data from Nominatim."})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) latestEpidemics(c *gin.Context) {
	payload, err := h.news.Latest(c.Request.Context())
	if err != nil {
		slog.Error("news fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error fetching latest epidemics",
			"error":   err.Error(),
		})
		return
	}

	// Relay the provider payload untouched.
	c.Data(http.StatusOK, "application/json", payload)
}
