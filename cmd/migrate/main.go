package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"bookrest/internal/config"
	"bookrest/internal/logger"
	"bookrest/internal/platform/database"
	"bookrest/internal/platform/migrations"

	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, version, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := config.Load()
	log := logger.New(logger.Config{Level: "info", Environment: cfg.Env})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	migrations.SetLogger(log)

	if *command == "create" {
		if *name == "" {
			log.Fatal().Msg("name is required for 'create' command")
		}
		dir := migrationsDir(cfg.DBDriver)
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			log.Fatal().Err(err).Msg("failed to create migration")
		}
		log.Info().Str("dir", dir).Str("name", *name).Msg("migration created")
		return
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN, 5*time.Second)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	switch *command {
	case "up":
		if err := migrations.Up(ctx, db.SQL(), db.Driver()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied successfully")
	case "down":
		if err := migrations.Down(ctx, db.SQL(), db.Driver()); err != nil {
			log.Fatal().Err(err).Msg("failed to rollback migrations")
		}
		log.Info().Msg("migrations rolled back successfully")
	case "status":
		if err := migrations.Status(ctx, db.SQL(), db.Driver()); err != nil {
			log.Fatal().Err(err).Msg("failed to check migration status")
		}
	case "version":
		v, err := migrations.Version(ctx, db.SQL(), db.Driver())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read schema version")
		}
		fmt.Fprintln(os.Stdout, v)
	default:
		log.Fatal().Msgf("unknown command: %s. Use: up, down, status, version, create", *command)
	}
}
