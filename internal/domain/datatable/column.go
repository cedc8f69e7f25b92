// Package datatable implements the searchable, paginated table view used by
// every back-office screen: a text filter over column values, a pagination
// window calculator, and a small stateful view that composes the two.
//
// Nothing in this package performs I/O or returns errors. Malformed input
// (nil accessors, empty columns, non-positive page sizes, out-of-range pages)
// degrades to empty values or clamped numbers.
package datatable

// Column describes how one field of a record is labelled, extracted and rendered.
type Column[R any] struct {
	// Header is the display label of the column.
	Header string
	// Key identifies the column in projections (e.g. "order_number").
	Key string
	// Accessor extracts the raw value of the column from a record.
	Accessor func(R) any
	// Render optionally converts a record into the displayed cell value.
	// rowIndex is the position of the record within the current page.
	Render func(record R, rowIndex int) any
}

// Field is a shorthand for a column without a custom renderer.
func Field[R any](header, key string, accessor func(R) any) Column[R] {
	return Column[R]{Header: header, Key: key, Accessor: accessor}
}

// Value returns the raw accessor value, or nil when no accessor is set.
func (c Column[R]) Value(record R) any {
	if c.Accessor == nil {
		return nil
	}
	return c.Accessor(record)
}

// Display returns the cell value shown for record at rowIndex.
func (c Column[R]) Display(record R, rowIndex int) any {
	if c.Render != nil {
		return c.Render(record, rowIndex)
	}
	return c.Value(record)
}

// Headers returns the header labels of columns in order.
func Headers[R any](columns []Column[R]) []string {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
	}
	return headers
}

// Keys returns the column keys in order.
func Keys[R any](columns []Column[R]) []string {
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = c.Key
	}
	return keys
}
