package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var MigrationFiles embed.FS

// openSource opens the embedded migration files as a golang-migrate source.
func openSource() (source.Driver, error) {
	d, err := iofs.New(MigrationFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}
	return d, nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := openSource()
	if err != nil {
		return nil, err
	}
	target, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("schedules migration target: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", target)
	if err != nil {
		return nil, fmt.Errorf("schedules migrator: %w", err)
	}
	return m, nil
}

// schemaVersion reports the applied version; 0 means nothing applied yet.
func schemaVersion(m *migrate.Migrate) (uint, bool, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading schedules schema version: %w", err)
	}
	return v, dirty, nil
}

// RunMigrations brings the schedules schema up to date. With autoMigrate
// false it only reports the current version.
func RunMigrations(db *sql.DB, autoMigrate bool) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	from, dirty, err := schemaVersion(m)
	if err != nil {
		return err
	}
	if dirty {
		// The schedules DDL uses IF [NOT] EXISTS throughout.
		slog.Warn("Schedules schema left dirty, clearing flag", "version", from)
		if err := m.Force(int(from)); err != nil {
			return fmt.Errorf("clearing dirty schedules schema at version %d: %w", from, err)
		}
	}

	if !autoMigrate {
		slog.Info("Schedules schema not migrated (auto_migrate off)", "version", from)
		return nil
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("Schedules schema current", "version", from)
		return nil
	case err != nil:
		return fmt.Errorf("migrating schedules schema from version %d: %w", from, err)
	}

	to, _, err := schemaVersion(m)
	if err != nil {
		return err
	}
	slog.Info("Schedules schema migrated", "from", from, "to", to)
	return nil
}
