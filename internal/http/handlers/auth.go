package handlers

import (
	"net/http"

	"frontend/internal/api"
	"frontend/internal/http/middleware"
	"frontend/internal/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	resp, err := h.API.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	sess := middleware.GetSession(c)
	if err := sess.Login(c.Request.Context(), resp.Token, resp.User); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to persist session", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "email="+req.Email)
	c.JSON(http.StatusOK, gin.H{
		"token": resp.Token,
		"user":  sess.User(),
	})
}

// POST /api/auth/register
func (h Handlers) Register(c *gin.Context) {
	var req api.RegisterRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	resp, err := h.API.Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// registering may log the user straight in when the backend returns
	// a token alongside the profile
	if resp.Token != "" {
		sess := middleware.GetSession(c)
		if err := sess.Login(c.Request.Context(), resp.Token, resp.User); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to persist session", err)
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": resp.Message,
		"user":    resp.User,
	})
}

// POST /api/auth/logout
func (h Handlers) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	if err := sess.Logout(c.Request.Context()); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to clear session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

type verifyEmailRequest struct {
	Token string `json:"token"`
}

// POST /api/auth/verify-email
func (h Handlers) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := h.API.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		RespondDomainError(c, err)
		return
	}

	sess := middleware.GetSession(c)
	sess.UpdateVerification(true)
	c.JSON(http.StatusOK, gin.H{
		"message": "email verified",
		"user":    sess.User(),
	})
}

// GET /api/auth/me
//
// Refresh is best-effort: when the backend is unreachable the session's
// prior profile is returned untouched.
func (h Handlers) Me(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess.Token() == "" {
		RespondError(c, http.StatusUnauthorized, "not logged in", nil)
		return
	}

	if err := sess.RefreshUser(c.Request.Context()); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "me", "refresh failed: "+err.Error())
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.User()})
}
