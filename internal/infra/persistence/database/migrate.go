package database

import (
	"context"
	"embed"
	"io/fs"

	"cryofood/config"
	"cryofood/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies every pending up migration for driver.
func Migrate(ctx context.Context, db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	sub, err := fs.Sub(migrationsFS, "migrations/"+driver)
	if err != nil {
		return errors.Wrapf(err, "no migrations for driver %s", driver)
	}

	src, err := iofs.New(sub, ".")
	if err != nil {
		return errors.Wrap(err, "failed to load migrations")
	}

	var drv migratedb.Driver
	switch driver {
	case config.DriverSQLite:
		drv, err = sqlite.WithInstance(sqlDB, &sqlite.Config{})
	case config.DriverPostgres:
		// A dedicated connection from the shared pool, released when done.
		conn, connErr := sqlDB.Conn(ctx)
		if connErr != nil {
			return errors.Wrap(connErr, "failed to acquire migration connection")
		}
		defer conn.Close()

		drv, err = migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
	default:
		return errors.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, drv)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
