package helper

import (
	"errors"
	"fmt"
	"net"

	"buslink/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

// MigrateUp applies every pending migration against the write database.
func MigrateUp(cfg *config.Config) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("No pending migrations")

			return nil
		}

		return fmt.Errorf("applying migrations: %w", err)
	}

	log.Info().Msg("Migrations applied")

	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(cfg *config.Config) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("rolling back migration: %w", err)
	}

	log.Info().Msg("Migration rolled back")

	return nil
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	write := cfg.DB.Postgres.Write

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		write.Name,
		write.SSLMode,
		cfg.DB.Postgres.MigrationTable,
	)

	m, err := migrate.New(migrationSource, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating migrator: %w", err)
	}

	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		log.Error().Err(sourceErr).Msg("Failed to close migration source")
	}

	if dbErr != nil {
		log.Error().Err(dbErr).Msg("Failed to close migration database")
	}
}
