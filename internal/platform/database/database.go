// Package database opens the configured book store and hands out the
// matching repository.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bookrest/internal/book"
	"bookrest/internal/config"
	"bookrest/internal/platform/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB is an open connection to either PostgreSQL or SQLite.
type DB struct {
	driver string
	pool   *pgxpool.Pool
	sqlx   *sqlx.DB
	std    *sql.DB
}

// Open connects to dsn with the given driver and pings it.
func Open(ctx context.Context, driver, dsn string, pingTimeout time.Duration) (*DB, error) {
	var db *DB

	switch driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("create db pool: %w", err)
		}
		db = &DB{driver: driver, pool: pool, std: stdlib.OpenDBFromPool(pool)}
	case config.DriverSQLite:
		x, err := sqlx.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// a single writer avoids SQLITE_BUSY and keeps :memory: databases shared
		x.SetMaxOpenConns(1)
		db = &DB{driver: driver, sqlx: x, std: x.DB}
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database (%s): %w", driver, config.RedactDSN(dsn), err)
	}
	return db, nil
}

func (d *DB) Driver() string { return d.driver }

// SQL exposes a database/sql handle for tooling such as goose.
func (d *DB) SQL() *sql.DB { return d.std }

func (d *DB) Ping(ctx context.Context) error {
	if d.pool != nil {
		return d.pool.Ping(ctx)
	}
	return d.std.PingContext(ctx)
}

// Migrate applies every pending schema migration.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Up(ctx, d.std, d.driver)
}

// Books returns the book repository backed by this connection.
func (d *DB) Books(timeout time.Duration) book.Repository {
	if d.pool != nil {
		return book.NewPostgresRepo(d.pool, timeout)
	}
	return book.NewSQLRepo(d.sqlx, book.DialectSQLite, timeout)
}

func (d *DB) Close() {
	_ = d.std.Close()
	if d.pool != nil {
		d.pool.Close()
	}
}
