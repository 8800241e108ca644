package db

import (
	"database/sql"
	"fmt"
	"time"

	"shopswift-be/internal/config"
	"shopswift-be/internal/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// NewDatabase opens and pings the Postgres database backing the key-value store.
func NewDatabase(cfg *config.Config) (*sql.DB, error) {
	return newDatabaseWithDriver(cfg, "postgres")
}

func newDatabaseWithDriver(cfg *config.Config, driver string) (*sql.DB, error) {
	db, err := sql.Open(driver, buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	logger.L().Info("database connection established",
		zap.String("host", cfg.DBHost),
		zap.String("db", cfg.DBName),
	)
	return db, nil
}

func buildDSN(cfg *config.Config) string {
	return cfg.PostgresDSN()
}
