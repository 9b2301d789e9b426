package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/persistence"
	"github.com/golang-migrate/migrate/v4"
)

const usage = "usage: migrate up | down [steps] | version"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := cfg.Logger.NewLogger()

	if err := run(os.Args[1:], &cfg.Database, logger); err != nil {
		logger.Error("migration failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(args []string, dbConfig *config.DatabaseConfig, logger *slog.Logger) error {
	if args[0] == "up" {
		return persistence.MigrateUp(dbConfig, logger)
	}

	m, err := persistence.NewMigrator(dbConfig)
	if err != nil {
		return err
	}
	defer m.Close()

	switch args[0] {
	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		logger.Info("migrations rolled back", "steps", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		logger.Info("current schema version", "version", version, "dirty", dirty)
	default:
		return errors.New(usage)
	}
	return nil
}
