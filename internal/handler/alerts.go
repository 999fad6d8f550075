package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safety-hub-go/internal/upstream"
)

// AlertHandler serves active hazard alerts fetched from the NWS.
type AlertHandler struct {
	client *upstream.NWSClient
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(client *upstream.NWSClient) *AlertHandler {
	return &AlertHandler{client: client}
}

// GetAlerts handles GET /api/alerts
//
// An unreachable or malformed upstream is reported as zero alerts with a
// 200, not an error. This asymmetry with the weather endpoint's 502 policy
// is part of the contract.
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}

	alerts := h.client.ActiveAlerts(lat, lon)
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "source": "NWS"})
}
