package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safety-hub-go/internal/upstream"
)

// WeatherHandler serves current conditions fetched from Open-Meteo.
type WeatherHandler struct {
	client *upstream.OpenMeteoClient
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(client *upstream.OpenMeteoClient) *WeatherHandler {
	return &WeatherHandler{client: client}
}

// GetWeather handles GET /api/weather
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}

	current, ok := h.client.CurrentConditions(lat, lon)
	if !ok {
		// Weather degrades loudly: the caller must be able to tell an
		// outage apart from an empty conditions block.
		c.JSON(http.StatusBadGateway, gin.H{
			"current": nil,
			"source":  "open-meteo",
			"note":    "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current": current, "source": "open-meteo"})
}
