package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	names, err := Embedded()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"000001_create_trade_tables",
		"000002_create_finance_tables",
		"000003_create_inventory_items",
	}, names)
}

func TestEmbedded_EveryUpHasDown(t *testing.T) {
	names, err := Embedded()
	require.NoError(t, err)

	for _, name := range names {
		down, err := fs.ReadFile(embedded, "sql/"+name+".down.sql")
		require.NoError(t, err, name)
		assert.Contains(t, strings.ToUpper(string(down)), "DROP TABLE", name)
	}
}

func TestEmbedded_CoversEveryTable(t *testing.T) {
	var all strings.Builder
	names, err := Embedded()
	require.NoError(t, err)
	for _, name := range names {
		up, err := fs.ReadFile(embedded, "sql/"+name+".up.sql")
		require.NoError(t, err)
		all.Write(up)
	}

	for _, table := range []string{"orders", "customer_invoices", "sales_returns", "vouchers", "payments", "inventory_items"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
}
