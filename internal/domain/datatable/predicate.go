package datatable

import (
	"fmt"
	"strings"
	"time"
)

// Predicate decides whether a record stays in the filtered set.
type Predicate[R any] interface {
	Match(record R) bool
	Description() string
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc[R any] func(R) bool

// Match implements Predicate.
func (f PredicateFunc[R]) Match(record R) bool { return f(record) }

// Description implements Predicate.
func (f PredicateFunc[R]) Description() string { return "custom" }

// TextSearch is the free-text search stage: see Matches.
type TextSearch[R any] struct {
	Columns []Column[R]
	Term    string
}

// Match implements Predicate.
func (p TextSearch[R]) Match(record R) bool {
	return Matches(record, p.Columns, p.Term)
}

// Description implements Predicate.
func (p TextSearch[R]) Description() string {
	return fmt.Sprintf("search %q", p.Term)
}

// Equals keeps records whose categorical value equals Value.
// An empty Value disables the stage (the "all" option of a status dropdown).
type Equals[R any] struct {
	Name     string
	Accessor func(R) any
	Value    string
}

// Match implements Predicate.
func (p Equals[R]) Match(record R) bool {
	if p.Value == "" {
		return true
	}
	if p.Accessor == nil {
		return false
	}
	return strings.EqualFold(Stringify(p.Accessor(record)), p.Value)
}

// Description implements Predicate.
func (p Equals[R]) Description() string {
	return fmt.Sprintf("%s = %q", p.Name, p.Value)
}

// DateRange keeps records whose date falls within [From, To].
// Nil bounds are open. Records with a zero date fail any bounded range.
type DateRange[R any] struct {
	Name     string
	Accessor func(R) time.Time
	From     *time.Time
	To       *time.Time
}

// DayRange builds a DateRange whose upper bound covers the whole day of to.
func DayRange[R any](name string, accessor func(R) time.Time, from, to *time.Time) DateRange[R] {
	r := DateRange[R]{Name: name, Accessor: accessor, From: from}
	if to != nil {
		end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).
			AddDate(0, 0, 1).Add(-time.Nanosecond)
		r.To = &end
	}
	return r
}

// Match implements Predicate.
func (p DateRange[R]) Match(record R) bool {
	if p.From == nil && p.To == nil {
		return true
	}
	if p.Accessor == nil {
		return false
	}
	d := p.Accessor(record)
	if d.IsZero() {
		return false
	}
	if p.From != nil && d.Before(*p.From) {
		return false
	}
	if p.To != nil && d.After(*p.To) {
		return false
	}
	return true
}

// Description implements Predicate.
func (p DateRange[R]) Description() string {
	from, to := "-inf", "+inf"
	if p.From != nil {
		from = p.From.Format(time.DateOnly)
	}
	if p.To != nil {
		to = p.To.Format(time.DateOnly)
	}
	return fmt.Sprintf("%s in [%s, %s]", p.Name, from, to)
}

// LogicOp combines predicates.
type LogicOp int

const (
	// LogicAND requires all predicates to pass.
	LogicAND LogicOp = iota
	// LogicOR requires at least one predicate to pass.
	LogicOR
)

// String returns the operator name.
func (op LogicOp) String() string {
	switch op {
	case LogicAND:
		return "AND"
	case LogicOR:
		return "OR"
	default:
		return fmt.Sprintf("unknown(%d)", op)
	}
}

// Composite combines predicates with AND or OR logic.
// An empty composite passes every record.
type Composite[R any] struct {
	Predicates []Predicate[R]
	Logic      LogicOp
}

// All returns an AND composite.
func All[R any](predicates ...Predicate[R]) Composite[R] {
	return Composite[R]{Predicates: predicates, Logic: LogicAND}
}

// Any returns an OR composite.
func Any[R any](predicates ...Predicate[R]) Composite[R] {
	return Composite[R]{Predicates: predicates, Logic: LogicOR}
}

// Match implements Predicate.
func (c Composite[R]) Match(record R) bool {
	if len(c.Predicates) == 0 {
		return true
	}
	if c.Logic == LogicOR {
		for _, p := range c.Predicates {
			if p.Match(record) {
				return true
			}
		}
		return false
	}
	for _, p := range c.Predicates {
		if !p.Match(record) {
			return false
		}
	}
	return true
}

// Description implements Predicate.
func (c Composite[R]) Description() string {
	if len(c.Predicates) == 0 {
		return "empty filter"
	}
	parts := make([]string, len(c.Predicates))
	for i, p := range c.Predicates {
		parts[i] = p.Description()
	}
	return "(" + strings.Join(parts, " "+c.Logic.String()+" ") + ")"
}

// Apply returns the records that satisfy p, preserving order.
// A nil predicate returns records unchanged.
func Apply[R any](records []R, p Predicate[R]) []R {
	if p == nil {
		return records
	}
	out := make([]R, 0, len(records))
	for _, r := range records {
		if p.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
