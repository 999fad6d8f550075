package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safety-hub-go/internal/safety"
)

// GetProtocols handles GET /api/protocols
func GetProtocols(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"protocols": safety.Protocols()})
}
