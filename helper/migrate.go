package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"proccms/config"
	"proccms/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

type migration struct {
	run     func(mig *migrate.Migrate) error
	message string
}

var migrations = map[string]migration{
	ActionUp: {
		run:     func(mig *migrate.Migrate) error { return mig.Up() },
		message: "Database migrations completed successfully",
	},
	ActionDown: {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(-1) },
		message: "Rolled back the latest migration",
	},
	ActionStepUp: {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(1) },
		message: "Applied the next migration",
	},
	ActionDrop: {
		run:     func(mig *migrate.Migrate) error { return mig.Down() },
		message: "Rolled back every migration",
	},
	ActionVersion: {
		run:     logVersion,
		message: "Read migration version",
	},
}

// migrationURL points golang-migrate at the write endpoint with the configured history table.
func migrationURL(cfg *config.Config) (string, error) {
	parsed, err := url.Parse(postgres.DSN(cfg, cfg.DB.Postgres.Write))
	if err != nil {
		return "", fmt.Errorf("parsing postgres dsn: %w", err)
	}

	query := parsed.Query()
	query.Del("application_name")
	query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func logVersion(mig *migrate.Migrate) error {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("No migration has been applied")

		return nil
	}

	if err != nil {
		return err
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current migration version")

	return nil
}

func Runner(cfg *config.Config, action string) error {
	step, ok := migrations[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	databaseURL, err := migrationURL(cfg)
	if err != nil {
		return err
	}

	mig, err := migrate.New(cfg.DB.Postgres.MigrationPath, databaseURL)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := step.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg(step.message)

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
