package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/leadflow/leadflow/config"
)

const driverName = "postgres"

// GetConnectionPoolSettings returns connection pool settings based on environment.
// A positive cfg.MaxOpenConns overrides the open connection cap.
func GetConnectionPoolSettings(cfg *config.DatabaseConfig) (maxOpen, maxIdle int, maxLifetime time.Duration) {
	if os.Getenv("ENVIRONMENT") == "test" || os.Getenv("INTEGRATION_TESTS") == "true" {
		maxOpen, maxIdle, maxLifetime = 10, 5, 2*time.Minute
	} else {
		maxOpen, maxIdle, maxLifetime = 25, 25, 20*time.Minute
	}

	if cfg != nil && cfg.MaxOpenConns > 0 {
		maxOpen = cfg.MaxOpenConns
		if maxIdle > maxOpen {
			maxIdle = maxOpen
		}
	}
	return maxOpen, maxIdle, maxLifetime
}

// GetDSN returns the DSN for the leadflow database
func GetDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		sslMode(cfg),
	)
}

// GetPostgresDSN returns the DSN for connecting to the PostgreSQL server without a database
func GetPostgresDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/postgres?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		sslMode(cfg),
	)
}

func sslMode(cfg *config.DatabaseConfig) string {
	if cfg.SSLMode == "" {
		return "disable"
	}
	return cfg.SSLMode
}

// EnsureDatabaseExists creates the named database if it doesn't exist.
// db must be connected to the server's maintenance database.
func EnsureDatabaseExists(ctx context.Context, db *sql.DB, dbName string) error {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := db.QueryRowContext(ctx, query, dbName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return nil
	}

	createDBQuery := fmt.Sprintf(`CREATE DATABASE "%s"`, strings.ReplaceAll(dbName, `"`, `""`))
	if _, err := db.ExecContext(ctx, createDBQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

// DriverName returns the sql driver to open connections with. With tracing
// enabled the postgres driver is wrapped so every query produces a span.
func DriverName(tracingEnabled bool) (string, error) {
	if !tracingEnabled {
		return driverName, nil
	}
	name, err := ocsql.Register(driverName, ocsql.WithAllTraceOptions())
	if err != nil {
		return "", fmt.Errorf("failed to register opencensus sql driver: %w", err)
	}
	return name, nil
}

// Connect ensures the configured database exists, opens a pooled connection
// to it and bootstraps the schema.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, tracingEnabled bool) (*sql.DB, error) {
	driver, err := DriverName(tracingEnabled)
	if err != nil {
		return nil, err
	}

	server, err := sql.Open(driver, GetPostgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL server: %w", err)
	}
	defer server.Close()

	if err := server.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL server: %w", err)
	}
	if err := EnsureDatabaseExists(ctx, server, cfg.DBName); err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, GetDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	ConfigurePool(db, cfg)

	if err := InitializeDatabase(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}
	return db, nil
}

// ConfigurePool applies the connection pool settings to db
func ConfigurePool(db *sql.DB, cfg *config.DatabaseConfig) {
	maxOpen, maxIdle, maxLifetime := GetConnectionPoolSettings(cfg)
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)
	db.SetConnMaxIdleTime(maxLifetime / 2)
}
