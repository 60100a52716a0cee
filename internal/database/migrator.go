package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"

	defaultReadyAttempts = 30
	defaultReadyInterval = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies db/migrations and, optionally, the db/seeds sample
// dataset to a postgres source database
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seedEnabled    bool
	readyAttempts  int
	readyInterval  time.Duration
}

type MigrationOption func(*MigrationRunner)

func WithMigrationsPath(path string) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.migrationsPath = path
	}
}

func WithSeedsPath(path string) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.seedsPath = path
	}
}

func WithSeeds(enabled bool) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.seedEnabled = enabled
	}
}

// WithReadiness sets how often and how long WaitForDatabase pings
func WithReadiness(attempts int, interval time.Duration) MigrationOption {
	return func(mr *MigrationRunner) {
		if attempts > 0 {
			mr.readyAttempts = attempts
		}
		if interval > 0 {
			mr.readyInterval = interval
		}
	}
}

func NewMigrationRunner(db *sql.DB, opts ...MigrationOption) *MigrationRunner {
	mr := &MigrationRunner{
		db:             db,
		migrationsPath: defaultMigrationsPath,
		seedsPath:      defaultSeedsPath,
		readyAttempts:  defaultReadyAttempts,
		readyInterval:  defaultReadyInterval,
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until the database answers or the attempts run out
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.readyAttempts; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", attempt, mr.readyAttempts, lastErr)

		if attempt == mr.readyAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(mr.readyInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts: %w", mr.readyAttempts, lastErr)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path: %w", err)
	}
	if _, err := os.Stat(absPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, mr.migrationsPath)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres migration driver: %w", err)
	}

	return migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(absPath), "postgres", driver)
}

// RunMigrations applies every pending migration. A dirty version is forced
// clean first so a crashed run can be retried. A missing migrations
// directory is skipped.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if errors.Is(err, ErrMigrationsNotFound) {
		log.Printf("Migrations directory not found at %s, skipping migrations", mr.migrationsPath)
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		log.Printf("Warning: schema is dirty at version %d, forcing it clean", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// LoadSeeds runs every *.sql file of the seeds directory in name order, each
// in its own transaction. A failing file is rolled back, logged and skipped;
// the number of files applied is returned.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) (int, error) {
	if !mr.seedEnabled {
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("list seed files: %w", err)
	}
	if len(files) == 0 {
		log.Printf("No seed files found at %s", mr.seedsPath)
		return 0, nil
	}

	applied := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("read seed file %s: %w", file, err)
		}

		if err := mr.execSeed(ctx, string(content)); err != nil {
			log.Printf("Warning: seed file %s failed: %v", filepath.Base(file), err)
			continue
		}
		applied++
	}

	log.Printf("Applied %d of %d seed files", applied, len(files))
	return applied, nil
}

func (mr *MigrationRunner) execSeed(ctx context.Context, statements string) error {
	tx, err := mr.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, statements); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// GetMigrationStatus reports the applied schema version
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled is the startup hook of the database source:
// AUTO_MIGRATE=true migrates, SEED_DATABASE=true also loads db/seeds.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, enabled bool) error {
	if !enabled {
		return nil
	}

	runner := NewMigrationRunner(db, WithSeeds(os.Getenv("SEED_DATABASE") == "true"))

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return err
	}
	if _, err := runner.LoadSeeds(ctx); err != nil {
		log.Printf("Warning: seed data loading failed: %v", err)
	}

	if version, dirty, err := runner.GetMigrationStatus(); err == nil {
		log.Printf("Schema version %d (dirty: %v)", version, dirty)
	}
	return nil
}
