package database

import (
	"database/sql"
	"fmt"
	"net/url"

	"cryofood/config"
	"cryofood/internal/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, registers "sqlite"
)

// OpenSQLite opens the database file at cfg.Path, creating it if needed.
func OpenSQLite(cfg *config.SQLiteConfig, gormLogger logger.Interface) (*gorm.DB, error) {
	sqlDB, err := sql.Open("sqlite", sqliteDSN(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	// SQLite serializes writers; one connection avoids SQLITE_BUSY between our own writers.
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.New(sqlite.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})
	if err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to create SQLite client")
	}

	return db, nil
}

func sqliteDSN(cfg *config.SQLiteConfig) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Set("_time_format", "sqlite")

	return "file:" + cfg.Path + "?" + q.Encode()
}
