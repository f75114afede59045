package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"suitespot/config"
	"suitespot/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

func connectionString(config *config.Config) string {
	extra := url.Values{}
	if table := config.DB.Postgres.MigrationTable; table != "" {
		extra.Set("x-migrations-table", table)
	}

	return postgres.DSN(config, config.DB.Postgres.Write, extra)
}

// run applies one migration action. ErrNoChange counts as success.
func run(mig *migrate.Migrate, action string) error {
	var err error

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	return nil
}

func Runner(config *config.Config, action string) error {
	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := run(mig, action); err != nil {
		return err
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
