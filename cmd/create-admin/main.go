// Command create-admin creates the initial admin account. Safe to run more
// than once: an existing admin email is left untouched.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"tcpworld-api/internal/auth"
	auth_db "tcpworld-api/internal/auth/db"
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

	adminEmail := getEnv("ADMIN_EMAIL", "admin@tcpworld.ai")
	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Database.DSN()))
	sqldb := sql.OpenDB(connector)
	defer sqldb.Close()

	ctx := context.Background()
	if err := sqldb.PingContext(ctx); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
	}
	bunDB := bun.NewDB(sqldb, pgdialect.New())

	users := &auth_db.DB{Bun: bunDB}

	existing, err := users.GetUserByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Lookup failed: %v", err))
	}
	if existing != nil {
		log.Info("APP", fmt.Sprintf("Admin user already exists: %s", adminEmail))
		return
	}

	digest, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("APP", fmt.Sprintf("Failed to hash password: %v", err))
	}

	admin := &models.User{
		ID:             uuid.NewString(),
		Email:          adminEmail,
		FullName:       "TCPWorld Admin",
		Role:           models.RoleAdmin,
		Organization:   "TCPWorld",
		HashedPassword: digest,
		CreatedAt:      time.Now().UTC(),
	}
	if err := users.CreateUser(ctx, admin); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to create admin: %v", err))
	}

	log.Info("APP", fmt.Sprintf("Admin user created: %s", adminEmail))
	log.Warn("APP", "Change the admin password after first login")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
