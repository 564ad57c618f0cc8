package api

import (
	"log"
	stdhttp "net/http"
	"time"

	backend "frontend/internal/api"
	"frontend/internal/config"
	h "frontend/internal/http/handlers"
	"frontend/internal/http/middleware"
	"frontend/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env config.Env, client *backend.Client, storage session.TokenStorage) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Session-ID", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	hs := h.Handlers{Env: env, API: client, Storage: storage}

	api := r.Group("/api")
	api.Use(middleware.Session(storage, client))
	{
		api.GET("/health", hs.Health)
		api.GET("/db-check", hs.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", hs.Login)
		auth.POST("/register", hs.Register)
		auth.POST("/logout", hs.Logout)
		auth.POST("/verify-email", hs.VerifyEmail)
		auth.GET("/me", hs.Me)

		bookings := api.Group("/bookings")
		bookings.POST("", hs.SubmitBooking)
		bookings.GET("/my", hs.MyBookings)
		bookings.GET("/:id/receipt", hs.BookingReceipt)

		api.GET("/transportation", hs.ListTransportation)
		api.GET("/transportation/:id", hs.GetTransportation)
		api.GET("/tours", hs.ListTours)
		api.GET("/tours/:id", hs.GetTour)
		api.GET("/accommodations", hs.ListAccommodations)
		api.GET("/accommodations/:id", hs.GetAccommodation)

		admin := api.Group("/admin")
		admin.GET("/dashboard", hs.AdminDashboard)
		admin.GET("/pending", hs.AdminPending)
	}

	return r
}
