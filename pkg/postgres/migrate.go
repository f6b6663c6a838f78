package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrateUp applies every pending migration found at path. It reports whether
// the schema changed.
func MigrateUp(path, dsn string) (bool, error) {
	const op = "postgres.MigrateUp"

	changed, err := runMigrations(path, dsn, (*migrate.Migrate).Up)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return changed, nil
}

// MigrateDown rolls back every applied migration found at path.
func MigrateDown(path, dsn string) (bool, error) {
	const op = "postgres.MigrateDown"

	changed, err := runMigrations(path, dsn, (*migrate.Migrate).Down)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return changed, nil
}

func runMigrations(path, dsn string, apply func(*migrate.Migrate) error) (bool, error) {
	m, err := migrate.New(path, dsn)
	if err != nil {
		return false, fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := apply(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("failed to run migrations: %w", err)
	}

	return true, nil
}
