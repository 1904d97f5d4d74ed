package database

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cryofood/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(&config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "test.sqlite"),
		BusyTimeout: time.Second,
	}, logger.Discard)
	require.NoError(t, err)

	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	assert.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))
	assert.True(t, db.Migrator().HasTable("accounts"))
	assert.True(t, db.Migrator().HasTable("food_items"))
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db := newTestDB(t)

	assert.Error(t, Migrate(context.Background(), db, "oracle"))
}

func TestMigrate_PostgresRequiresPostgresConnection(t *testing.T) {
	db := newTestDB(t)

	err := Migrate(context.Background(), db, config.DriverPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create migration driver")

	// The dedicated connection went back to the single-connection pool.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.PingContext(context.Background()))
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}

func TestSQLiteDSN(t *testing.T) {
	dsn := sqliteDSN(&config.SQLiteConfig{Path: "/tmp/food.sqlite", BusyTimeout: 5 * time.Second})

	assert.Contains(t, dsn, "file:/tmp/food.sqlite?")
	assert.Contains(t, dsn, "busy_timeout%285000%29")
	assert.Contains(t, dsn, "journal_mode%28WAL%29")
	assert.Contains(t, dsn, "_time_format=sqlite")
}

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond}

	_, _, ok := poolWaitAttrs(prev, prev)
	assert.False(t, ok)

	cur := sql.DBStats{WaitCount: 3, WaitDuration: 101 * time.Millisecond}
	attrs, level, ok := poolWaitAttrs(prev, cur)
	require.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
	assert.Equal(t, "waitCountDelta", attrs[0].Key)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())

	cur = sql.DBStats{WaitCount: 2, WaitDuration: 2 * time.Millisecond}
	_, level, ok = poolWaitAttrs(prev, cur)
	require.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
}
