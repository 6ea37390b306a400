package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/planora/planora-go/internal/config"
	"github.com/planora/planora-go/internal/handler"
	"github.com/planora/planora-go/internal/middleware"
	"github.com/planora/planora-go/internal/repository"
	"github.com/planora/planora-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	eventRepo := repository.NewEventRepository(db)
	eventService := service.NewEventService(eventRepo, cfg.EventQuota)
	eventHandler := handler.NewEventHandler(eventService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)
		r.Patch("/api/v1/auth/me", authHandler.HandleUpdateMe)
	})

	r.Post("/api/v1/events", eventHandler.HandleCreate)
	r.Get("/api/v1/events", eventHandler.HandleList)
	r.Get("/api/v1/events/{event_id}", eventHandler.HandleGet)
	r.Put("/api/v1/events/{event_id}/guests", eventHandler.HandleReplaceGuests)
	r.Put("/api/v1/events/{event_id}/budget", eventHandler.HandleReplaceBudget)
	r.Delete("/api/v1/events/{event_id}", eventHandler.HandleDelete)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
