package handlers

import (
	"net/http"

	"frontend/internal/api"
	"frontend/internal/config"
	"frontend/internal/http/middleware"
	"frontend/internal/session"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the gateway's dependencies. One instance is built at
// startup and shared by the router.
type Handlers struct {
	Env     config.Env
	API     *api.Client
	Storage session.TokenStorage
}

// authedAPI returns a backend client carrying the session's bearer token.
func (h Handlers) authedAPI(c *gin.Context) *api.Client {
	if s := middleware.GetSession(c); s != nil {
		if tok := s.Token(); tok != "" {
			return h.API.WithToken(tok)
		}
	}
	return h.API
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
