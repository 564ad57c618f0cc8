package middleware

import (
	"net/http"

	"frontend/internal/session"
	"frontend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionStoreKey = "session_store"
	sessionCookie   = "travel_sid"
	cookieMaxAge    = 30 * 24 * 3600
)

// Session resolves the caller's session store for this request. The
// session key comes from the sid cookie (or X-Session-ID for non-browser
// clients); a missing key mints a new one. The store is initialized from
// persisted token state before handlers run.
func Session(storage session.TokenStorage, fetcher session.UserFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Session-ID")
		if key == "" {
			if v, err := c.Cookie(sessionCookie); err == nil {
				key = v
			}
		}
		if key == "" {
			key = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, key, cookieMaxAge, "/", "", false, true)
		}

		store := session.NewStore(storage, key, fetcher)
		if err := store.Initialize(c.Request.Context()); err != nil {
			utils.LogEvent(GetRequestID(c), "session", "init", err.Error())
			// a broken session store must not take pages down; continue
			// with a fresh anonymous session
		}
		c.Set(sessionStoreKey, store)
		c.Next()
	}
}

// GetSession returns the request's session store. Handlers behind the
// Session middleware can rely on it being present.
func GetSession(c *gin.Context) *session.Store {
	if v, ok := c.Get(sessionStoreKey); ok {
		if s, ok := v.(*session.Store); ok {
			return s
		}
	}
	return nil
}
