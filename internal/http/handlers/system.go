package handlers

import (
	"net/http"

	"frontend/internal/config"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (h Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func (h Handlers) DBCheck(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusOK, gin.H{"sessions": "memory"})
		return
	}
	if err := config.EnsureDB(); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "session database unreachable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": "mysql"})
}
