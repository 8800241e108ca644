package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"shopswift-be/internal/config"
	"shopswift-be/internal/logger"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "up", "migration mode: up or down")
	dir := flag.String("dir", "./migrations", "directory holding the *.sql migrations")
	flag.Parse()

	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()
	log := logger.L()

	db, err := sql.Open("postgres", dsn())
	if err != nil {
		log.Fatal("failed to connect db", zap.Error(err))
	}
	defer db.Close()

	if err := run(db, *mode, *dir); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
}

// dsn prefers DB_URL and falls back to the DB_* variables the server uses.
func dsn() string {
	if url := os.Getenv("DB_URL"); url != "" {
		return url
	}
	cfg := &config.Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	return cfg.PostgresDSN()
}

func run(db *sql.DB, mode, migrationsDir string) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	slices.Sort(files)

	switch mode {
	case "up":
		return runMigrationsUp(db, files)
	case "down":
		return runMigrationsDown(db, files)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}

func runMigrationsUp(db *sql.DB, files []string) error {
	log := logger.L()
	applied := 0

	for _, file := range files {
		version := filepath.Base(file)

		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			log.Debug("skipping applied migration", zap.String("version", version))
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		upSQL := extractMigrationPart(string(content), "Up")
		if strings.TrimSpace(upSQL) == "" {
			return fmt.Errorf("migration %s has no Up section", version)
		}

		log.Info("applying migration", zap.String("version", version))
		if _, err := db.Exec(upSQL); err != nil {
			return fmt.Errorf("migration failed (%s): %w", version, err)
		}

		_, err = db.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version)
		if err != nil {
			return fmt.Errorf("failed to record migration version: %w", err)
		}
		applied++
	}

	log.Info("migrations up to date", zap.Int("applied", applied))
	return nil
}

// runMigrationsDown rolls back the most recently applied migration only.
func runMigrationsDown(db *sql.DB, files []string) error {
	log := logger.L()

	var lastVersion string
	err := db.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1`).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("no migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	idx := slices.IndexFunc(files, func(f string) bool { return filepath.Base(f) == lastVersion })
	if idx < 0 {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}
	filePath := files[idx]

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	downSQL := extractMigrationPart(string(content), "Down")
	log.Info("rolling back migration", zap.String("version", lastVersion))

	if _, err := db.Exec(downSQL); err != nil {
		return fmt.Errorf("rollback failed (%s): %w", filePath, err)
	}

	_, err = db.Exec(`DELETE FROM schema_migrations WHERE version = $1`, lastVersion)
	if err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	log.Info("rollback complete", zap.String("version", lastVersion))
	return nil
}

// extractMigrationPart returns the lines between "-- +migrate <section>" and
// the next marker.
func extractMigrationPart(content string, section string) string {
	lines := strings.Split(content, "\n")
	var part strings.Builder
	var inPart bool

	for _, line := range lines {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line + "\n")
		}
	}
	return part.String()
}
