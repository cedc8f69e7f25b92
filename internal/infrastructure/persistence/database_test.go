package persistence

import (
	"testing"

	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPlugin struct {
	initialized bool
}

func (p *recordingPlugin) Name() string { return "recording" }

func (p *recordingPlugin) Initialize(*gorm.DB) error {
	p.initialized = true
	return nil
}

func TestNewDatabase(t *testing.T) {
	t.Run("opens sqlite in memory", func(t *testing.T) {
		db := newTestDatabase(t)

		assert.Equal(t, DriverSQLite, db.Driver)
		assert.NoError(t, db.Ping())
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		db, err := NewDatabase(&config.DatabaseConfig{Driver: "oracle"})

		assert.Nil(t, db)
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("registers plugins", func(t *testing.T) {
		plugin := &recordingPlugin{}
		db, err := NewDatabase(&config.DatabaseConfig{
			Driver:     DriverSQLite,
			SQLitePath: ":memory:",
		}, WithPlugins(plugin))
		require.NoError(t, err)
		defer db.Close()

		assert.True(t, plugin.initialized)
	})
}

func TestDatabase_AutoMigrate(t *testing.T) {
	db := newTestDatabase(t)

	for _, table := range []string{"orders", "customer_invoices", "sales_returns", "vouchers", "payments", "inventory_items"} {
		assert.True(t, db.DB.Migrator().HasTable(table), table)
	}
}

func TestDatabase_Stats(t *testing.T) {
	db := newTestDatabase(t)

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)
	assert.Equal(t, stats.OpenConnections, stats.InUse+stats.Idle)
}

func TestDatabase_Transaction(t *testing.T) {
	db := newTestDatabase(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec("DELETE FROM orders").Error
	})
	assert.NoError(t, err)
}
