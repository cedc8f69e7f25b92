package persistence

import (
	"testing"

	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/stretchr/testify/require"
)

// newTestDatabase opens an in-memory sqlite database with every table migrated
func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(&config.DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}
