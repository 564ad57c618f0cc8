package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontend/internal/api"
	"frontend/internal/config"
	router "frontend/internal/http"
	"frontend/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	client := api.NewClient(env.APIBaseURL)

	var storage session.TokenStorage = session.NewMemoryStorage()
	if env.SessionDSN != "" {
		db, err := config.ConnectDB(env.SessionDSN)
		if err != nil {
			log.Fatalf("session database unavailable: %v", err)
		}
		defer config.CloseDB()

		mysqlStore := session.MySQLStorage{DB: db}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := mysqlStore.EnsureSchema(ctx); err != nil {
			cancel()
			log.Fatalf("session schema: %v", err)
		}
		cancel()
		storage = mysqlStore
	}

	r := router.NewRouter(env, client, storage)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("gateway listening on %s (backend %s)", env.AppAddr, env.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
