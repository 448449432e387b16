// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed sql/postgres/*.sql sql/sqlite/*.sql
var files embed.FS

var gooseLog goose.Logger = zerologAdapter{log: zerolog.Nop()}

// SetLogger sends goose output to log. Output is discarded until it is called.
func SetLogger(log zerolog.Logger) {
	gooseLog = zerologAdapter{log: log.With().Str("component", "migrations").Logger()}
	goose.SetLogger(gooseLog)
}

type zerologAdapter struct {
	log zerolog.Logger
}

func (a zerologAdapter) Printf(format string, v ...interface{}) {
	a.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (a zerologAdapter) Fatalf(format string, v ...interface{}) {
	a.log.Fatal().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Dir returns the embedded migration directory for a database driver.
func Dir(driver string) (string, error) {
	switch driver {
	case "postgres":
		return "sql/postgres", nil
	case "sqlite":
		return "sql/sqlite", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

func dialect(driver string) string {
	if driver == "sqlite" {
		return "sqlite3"
	}
	return driver
}

func setup(driver string) (string, error) {
	dir, err := Dir(driver)
	if err != nil {
		return "", err
	}
	goose.SetBaseFS(files)
	goose.SetLogger(gooseLog)
	if err := goose.SetDialect(dialect(driver)); err != nil {
		return "", err
	}
	return dir, nil
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	dir, err := setup(driver)
	if err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, driver string) error {
	dir, err := setup(driver)
	if err != nil {
		return err
	}
	return goose.DownContext(ctx, db, dir)
}

// Status logs the state of every migration.
func Status(ctx context.Context, db *sql.DB, driver string) error {
	dir, err := setup(driver)
	if err != nil {
		return err
	}
	return goose.StatusContext(ctx, db, dir)
}

// Version returns the current schema version.
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	if _, err := setup(driver); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}
