package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjection(t *testing.T) {
	t.Run("populated page", func(t *testing.T) {
		v := NewView(makeOrders(23), orderColumns())
		v.RequestPageChange(3)
		p := v.Projection()

		assert.Equal(t, []string{"Order", "Customer", "Total", "Paid", "Note"}, p.Headers)
		assert.Equal(t, []string{"number", "customer", "total", "paid", "note"}, p.Columns)
		assert.Len(t, p.Rows, 3)
		assert.False(t, p.Empty)
		assert.Equal(t, Showing{From: 21, To: 23, Total: 23}, p.Showing)
		assert.Equal(t, "Showing 21 to 23 of 23 results", p.Summary)
		assert.Equal(t, "Search...", p.SearchPlaceholder)
		assert.Equal(t, LTR, p.Direction)
		assert.Equal(t, 3, p.CurrentPage)
		assert.Equal(t, 3, p.TotalPages)

		require.Len(t, p.Navigation, 7)
		assert.Equal(t, NavFirst, p.Navigation[0].Kind)
		assert.False(t, p.Navigation[0].Disabled)
		assert.Equal(t, NavLast, p.Navigation[6].Kind)
		assert.True(t, p.Navigation[6].Disabled)
		assert.True(t, p.Navigation[4].Active)
		assert.Equal(t, "Page 3", p.Navigation[4].Title)
	})

	t.Run("empty filtered set", func(t *testing.T) {
		v := NewView(makeOrders(5), orderColumns())
		v.SetSearchTerm("nothing matches")
		p := v.Projection()

		assert.True(t, p.Empty)
		assert.Equal(t, "No data found", p.EmptyMessage)
		assert.Empty(t, p.Rows)
		assert.Empty(t, p.Navigation)
		assert.Empty(t, p.Summary)
	})

	t.Run("custom empty message", func(t *testing.T) {
		v := NewView([]testOrder{}, orderColumns(), WithEmptyMessage("No orders yet"))
		assert.Equal(t, "No orders yet", v.Projection().EmptyMessage)
	})

	t.Run("single page has no navigation", func(t *testing.T) {
		p := NewView(makeOrders(4), orderColumns()).Projection()
		assert.Empty(t, p.Navigation)
		assert.Equal(t, "Showing 1 to 4 of 4 results", p.Summary)
	})

	t.Run("disabled paging reports a single page", func(t *testing.T) {
		v := NewView(makeOrders(23), orderColumns(), WithPageable(false))
		v.RequestPageChange(2)
		p := v.Projection()

		assert.Len(t, p.Rows, 23)
		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 1, p.TotalPages)
		assert.Empty(t, p.VisiblePages)
		assert.Empty(t, p.Navigation)
		assert.Equal(t, Showing{From: 1, To: 23, Total: 23}, p.Showing)

		empty := NewView([]testOrder{}, orderColumns(), WithPageable(false)).Projection()
		assert.Equal(t, 0, empty.TotalPages)
		assert.Empty(t, empty.VisiblePages)
	})

	t.Run("non-searchable view has no placeholder", func(t *testing.T) {
		p := NewView(makeOrders(4), orderColumns(), WithSearchable(false)).Projection()
		assert.Empty(t, p.SearchPlaceholder)
	})

	t.Run("labels and direction", func(t *testing.T) {
		labels := func(key string, args ...any) string { return "[" + key + "]" }
		v := NewView(makeOrders(30), orderColumns(), WithLabels(labels), WithDirection(RTL))
		p := v.Projection()

		assert.Equal(t, RTL, p.Direction)
		assert.Equal(t, "[showingResults]", p.Summary)
		require.NotEmpty(t, p.Navigation)
		assert.Equal(t, NavLast, p.Navigation[0].Kind)
		assert.Equal(t, NavFirst, p.Navigation[len(p.Navigation)-1].Kind)
	})
}

func TestNavigation(t *testing.T) {
	w := Paginate(50, 10, 1, 5)
	nav := Navigation(w, nil, LTR)

	require.Len(t, nav, 9)
	assert.True(t, nav[0].Disabled, "first disabled on page one")
	assert.True(t, nav[1].Disabled, "previous disabled on page one")
	assert.Equal(t, 1, nav[1].Page)
	assert.False(t, nav[7].Disabled)
	assert.Equal(t, 2, nav[7].Page)
	assert.Equal(t, 5, nav[8].Page)
	assert.Equal(t, "Next page", nav[7].Title)
}

func TestDefaultLabels(t *testing.T) {
	assert.Equal(t, "Showing 1 to 10 of 42 results", DefaultLabels(LabelShowingResults, 1, 10, 42))
	assert.Equal(t, "No data found", DefaultLabels(LabelNoDataFound))
	assert.Equal(t, "unknownKey", DefaultLabels("unknownKey"))
	assert.True(t, RTL.IsRTL())
	assert.False(t, LTR.IsRTL())
}
