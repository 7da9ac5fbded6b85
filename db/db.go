// db/db.go
package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/config"
	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
)

//go:embed schema.sql
var schemaSQL string

var Postgres *sql.DB

func InitPostgres() error {
	var err error
	dsn := config.GetString("postgres.dsn")
	Postgres, err = sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open Postgres: %w", err)
	}

	Postgres.SetMaxOpenConns(config.GetInt("postgres.maxOpenConns"))
	Postgres.SetMaxIdleConns(config.GetInt("postgres.maxIdleConns"))
	Postgres.SetConnMaxLifetime(15 * time.Minute)
	Postgres.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Postgres.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if Postgres != nil {
		if err := Postgres.Close(); err != nil {
			logger.Error("Error closing Postgres connection", zap.Error(err))
		} else {
			logger.Info("Postgres connection closed successfully")
		}
	}
}

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, conn *sql.DB) error {
	start := time.Now()
	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info("Schema applied", zap.Duration("duration", time.Since(start)))
	return nil
}

// Ping backs the readiness check.
func Ping(ctx context.Context) error {
	if Postgres == nil {
		return fmt.Errorf("postgres not initialised")
	}
	return Postgres.PingContext(ctx)
}
