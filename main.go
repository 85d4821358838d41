package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"tcpworld-api/internal/auth"
	auth_api "tcpworld-api/internal/auth/api"
	auth_db "tcpworld-api/internal/auth/db"
	"tcpworld-api/internal/awards"
	award_api "tcpworld-api/internal/awards/api"
	award_db "tcpworld-api/internal/awards/db"
	"tcpworld-api/internal/catalog"
	catalog_api "tcpworld-api/internal/catalog/api"
	catalog_db "tcpworld-api/internal/catalog/db"
	"tcpworld-api/internal/config"
	"tcpworld-api/internal/database/migrations"
	"tcpworld-api/internal/events"
	event_api "tcpworld-api/internal/events/api"
	event_db "tcpworld-api/internal/events/db"
	"tcpworld-api/internal/logger"
	"tcpworld-api/internal/stats"
	stats_api "tcpworld-api/internal/stats/api"
	"tcpworld-api/internal/utils"
)

func connectDatabase(cfg *config.Config, log *logger.Logger) *bun.DB {
	dsn := cfg.Database.DSN()

	connector := pgdriver.NewConnector(pgdriver.WithDSN(dsn))
	sqldb := sql.OpenDB(connector)
	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	var err error
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		err = sqldb.Ping()
		if err == nil {
			break
		}
		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	log.Info("DATABASE", "PostgreSQL connection successful")
	return bun.NewDB(sqldb, pgdialect.New())
}

func root(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"message": "TCPWorld API - Conference and Awards Platform",
	})
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting TCPWorld API initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()

	bunDB := connectDatabase(cfg, log)
	defer bunDB.Close()

	runner := migrations.NewRunner(bunDB, migrations.DefaultOptions())
	if err := runner.MigrateUp(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Migrations failed: %v", err))
	}
	if version, dirty, err := runner.Version(); err == nil && !dirty {
		log.Info("DATABASE", fmt.Sprintf("Schema at version %d", version))
	}

	authService := auth.NewService(&auth_db.DB{Bun: bunDB}, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	eventService := events.NewService(&event_db.DB{Bun: bunDB})
	awardService := awards.NewService(&award_db.DB{Bun: bunDB})
	catalogService := catalog.NewService(&catalog_db.DB{Bun: bunDB})
	statsService := stats.NewService(bunDB)

	authHandler := auth_api.NewHandler(authService, log)
	eventHandler := event_api.NewHandler(eventService, log)
	awardHandler := award_api.NewHandler(awardService, log)
	catalogHandler := catalog_api.NewHandler(catalogService, log)
	statsHandler := stats_api.NewHandler(statsService, log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", root)

		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/events", eventHandler.ListEvents)
		r.Get("/events/{eventId}", eventHandler.GetEvent)
		r.Get("/events/{eventId}/calendar", eventHandler.ExportCalendar)
		r.Get("/awards", awardHandler.ListAwards)
		r.Get("/speakers", catalogHandler.ListSpeakers)
		r.Get("/speakers/{speakerId}", catalogHandler.GetSpeaker)
		r.Get("/sessions", catalogHandler.ListSessions)
		r.Post("/inquiries", catalogHandler.CreateInquiry)
		log.Info("ROUTER", "Public routes registered under /api")

		// --- Authenticated routes ---
		r.Group(func(r chi.Router) {
			r.Use(authService.Middleware())
			log.Info("AUTH", "Bearer token middleware applied to protected routes")

			r.Get("/auth/me", authHandler.Me)
			r.Post("/registrations", eventHandler.CreateRegistration)
			r.Get("/registrations/my", eventHandler.MyRegistrations)
			r.Post("/nominations", awardHandler.CreateNomination)
			r.Get("/nominations/my", awardHandler.MyNominations)

			// --- Admin-only routes ---
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				r.Post("/events", eventHandler.CreateEvent)
				r.Put("/events/{eventId}", eventHandler.UpdateEvent)
				r.Delete("/events/{eventId}", eventHandler.DeleteEvent)
				r.Get("/registrations", eventHandler.ListRegistrations)
				r.Post("/awards", awardHandler.CreateAward)
				r.Put("/awards/{awardId}", awardHandler.UpdateAward)
				r.Get("/nominations", awardHandler.ListNominations)
				r.Put("/nominations/{nominationId}/status", awardHandler.UpdateNominationStatus)
				r.Post("/speakers", catalogHandler.CreateSpeaker)
				r.Put("/speakers/{speakerId}", catalogHandler.UpdateSpeaker)
				r.Post("/sessions", catalogHandler.CreateSession)
				r.Get("/inquiries", catalogHandler.ListInquiries)
				r.Get("/stats/overview", statsHandler.Overview)
			})
			log.Info("ROUTER", "Admin routes registered under /api")
		})
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("TCPWorld API running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "TCPWorld API shutdown complete")
	}
}
