package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safety-hub-go/internal/upstream"
	"safety-hub-go/pkg/model"
)

// AmberHandler serves missing-person bulletins from the NCMEC feed.
type AmberHandler struct {
	client *upstream.AmberClient
}

// NewAmberHandler creates a new AMBER feed handler
func NewAmberHandler(client *upstream.AmberClient) *AmberHandler {
	return &AmberHandler{client: client}
}

// GetAmber handles GET /api/amber
func (h *AmberHandler) GetAmber(c *gin.Context) {
	items, ok := h.client.Bulletins()
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{
			"items":  []model.FeedItem{},
			"source": "NCMEC",
			"note":   "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "source": "NCMEC"})
}
