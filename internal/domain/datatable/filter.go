package datatable

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// matcher holds a lowered search term and the caser used to lower cell values.
// A cases.Caser keeps internal state, so each matcher owns its own.
type matcher struct {
	term  string
	caser cases.Caser
}

func newMatcher(term string) *matcher {
	caser := cases.Lower(language.Und)
	return &matcher{term: caser.String(term), caser: caser}
}

func (m *matcher) contains(v any) bool {
	return strings.Contains(m.caser.String(Stringify(v)), m.term)
}

// Matches reports whether any column value of record contains term,
// ignoring case. An empty term matches every record.
func Matches[R any](record R, columns []Column[R], term string) bool {
	if term == "" {
		return true
	}
	return matchRecord(newMatcher(term), record, columns)
}

func matchRecord[R any](m *matcher, record R, columns []Column[R]) bool {
	for _, c := range columns {
		if m.contains(c.Value(record)) {
			return true
		}
	}
	return false
}

// FilterRecords returns the records matching term, preserving order.
// An empty term returns records unchanged. The input slice is never modified.
func FilterRecords[R any](records []R, columns []Column[R], term string) []R {
	if term == "" {
		return records
	}
	m := newMatcher(term)
	out := make([]R, 0, len(records))
	for _, r := range records {
		if matchRecord(m, r, columns) {
			out = append(out, r)
		}
	}
	return out
}
