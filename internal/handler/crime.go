package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"safety-hub-go/internal/georegion"
)

// CrimeHandler serves mock per-state crime statistics resolved from a
// coordinate via the bounding-box classifier.
type CrimeHandler struct {
	logger *logrus.Logger
}

// NewCrimeHandler creates a new crime statistics handler
func NewCrimeHandler(logger *logrus.Logger) *CrimeHandler {
	return &CrimeHandler{logger: logger}
}

// GetCrime handles GET /api/crime
func (h *CrimeHandler) GetCrime(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}

	latF, latErr := strconv.ParseFloat(lat, 64)
	lonF, lonErr := strconv.ParseFloat(lon, 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be numeric"})
		return
	}

	code, ok := georegion.Locate(latF, lonF)

	// Diagnostic only; clients never depend on this line.
	h.logger.WithFields(logrus.Fields{
		"lat":   lat,
		"lon":   lon,
		"state": code,
	}).Info("mapped coordinates to state")

	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"scope":  "demo",
			"source": "demo",
			"state":  nil,
			"stats":  georegion.DemoStats(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scope":  "state",
		"source": "mock",
		"state":  code,
		"stats":  georegion.StatsFor(code),
	})
}
