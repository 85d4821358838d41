// Command seed loads a small set of sample data for local development.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"tcpworld-api/internal/config"
	"tcpworld-api/internal/logger"
	"tcpworld-api/internal/models"
)

func main() {
	log := logger.NewLogger()
	defer log.Close()

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	}

	cfg := config.Load()

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Database.DSN()))
	sqldb := sql.OpenDB(connector)
	defer sqldb.Close()

	ctx := context.Background()
	if err := sqldb.PingContext(ctx); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
	}
	bunDB := bun.NewDB(sqldb, pgdialect.New())

	log.Info("APP", "Seeding TCPWorld database")

	now := time.Now().UTC()

	events := []models.Event{
		{
			ID:          uuid.NewString(),
			Title:       "CyberSecurity Summit 2026",
			Description: "Three days of threat intelligence, zero-trust architecture and AI-powered security.",
			EventType:   "conference",
			StartDate:   now.AddDate(0, 1, 0),
			EndDate:     now.AddDate(0, 1, 2),
			Venue:       "San Francisco Convention Center",
			City:        "San Francisco",
			Country:     "USA",
			Capacity:    500, AvailableSeats: 500,
			TicketPrice: 999,
			IsFeatured:  true,
			Status:      models.EventUpcoming,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "AI Innovation Conference",
			Description: "Applied machine learning for industry practitioners.",
			EventType:   "conference",
			StartDate:   now.AddDate(0, 2, 0),
			EndDate:     now.AddDate(0, 2, 1),
			Venue:       "ExCeL London",
			City:        "London",
			Country:     "UK",
			Capacity:    300, AvailableSeats: 300,
			TicketPrice: 749,
			Status:      models.EventUpcoming,
			CreatedAt:   now,
		},
	}

	awards := []models.Award{
		{
			ID:          uuid.NewString(),
			Title:       "Cybersecurity Leader of the Year",
			Category:    "cybersecurity",
			Description: "Recognizing outstanding leadership in cybersecurity.",
			Year:        now.Year(),
			NominationStart: now, NominationEnd: now.AddDate(0, 3, 0),
			Status:    models.AwardOpen,
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "AI Innovation Excellence",
			Category:    "ai",
			Description: "For breakthrough applications of artificial intelligence.",
			Year:        now.Year(),
			NominationStart: now, NominationEnd: now.AddDate(0, 3, 0),
			Status:    models.AwardOpen,
			CreatedAt: now,
		},
	}

	speakers := []models.Speaker{
		{
			ID:           uuid.NewString(),
			Name:         "Dr. Sarah Chen",
			Title:        "Chief Security Officer",
			Organization: "SecureNet Global",
			Bio:          "Twenty years in enterprise security and threat research.",
			Expertise:    []string{"zero-trust", "threat intelligence"},
			IsFeatured:   true,
			CreatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Michael Rodriguez",
			Title:        "Head of AI Research",
			Organization: "DeepLogic Labs",
			Bio:          "Leads applied research on large-scale ML systems.",
			Expertise:    []string{"machine learning", "mlops"},
			CreatedAt:    now,
		},
	}

	for i := range events {
		if _, err := bunDB.NewInsert().Model(&events[i]).Exec(ctx); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Failed to seed event: %v", err))
		}
	}
	for i := range awards {
		if _, err := bunDB.NewInsert().Model(&awards[i]).Exec(ctx); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Failed to seed award: %v", err))
		}
	}
	for i := range speakers {
		if _, err := bunDB.NewInsert().Model(&speakers[i]).Exec(ctx); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Failed to seed speaker: %v", err))
		}
	}

	sessions := []models.Session{
		{
			ID:          uuid.NewString(),
			EventID:     events[0].ID,
			Title:       "Opening Keynote: The State of Cyber Defense",
			Description: "Where enterprise defense stands and where it is heading.",
			SpeakerIDs:  []string{speakers[0].ID},
			StartTime:   events[0].StartDate.Add(9 * time.Hour),
			EndTime:     events[0].StartDate.Add(10 * time.Hour),
			Room:        "Main Hall",
			SessionType: "keynote",
			CreatedAt:   now,
		},
	}
	for i := range sessions {
		if _, err := bunDB.NewInsert().Model(&sessions[i]).Exec(ctx); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Failed to seed session: %v", err))
		}
	}

	log.Info("APP", fmt.Sprintf("Seeded %d events, %d awards, %d speakers, %d sessions",
		len(events), len(awards), len(speakers), len(sessions)))
}
