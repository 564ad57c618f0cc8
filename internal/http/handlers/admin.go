package handlers

import (
	"net/http"

	"frontend/internal/domain"
	"frontend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// requireAdmin gates the dashboard pages on the session role. Display
// gating only — the backend enforces authorization on every call.
func (h Handlers) requireAdmin(c *gin.Context) bool {
	sess := middleware.GetSession(c)
	u := sess.User()
	if sess.Token() == "" || u == nil || u.Role != domain.RoleAdmin {
		RespondError(c, http.StatusForbidden, "admin access required", nil)
		return false
	}
	return true
}

// GET /api/admin/dashboard
func (h Handlers) AdminDashboard(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	stats, err := h.authedAPI(c).DashboardStats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GET /api/admin/pending
func (h Handlers) AdminPending(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	pending, err := h.authedAPI(c).PendingSummary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": pending})
}
