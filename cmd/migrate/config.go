package main

import (
	"os"
	"path/filepath"
)

// migrationsDir is where `create` writes new migration files. The other
// commands use the migrations embedded in the binary.
func migrationsDir(driver string) string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("internal", "platform", "migrations", "sql", driver)
}
