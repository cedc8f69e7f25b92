package datatable

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

// TimeLayout is the layout used when a cell value is a time.Time.
const TimeLayout = "2006-01-02 15:04:05"

// Stringify converts a cell value to the string the search predicate compares
// against. nil values and nil pointers become the empty string.
func Stringify(v any) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	v = rv.Interface()

	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return t.Format(TimeLayout)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		// Slices, maps and plain structs have no cast conversion.
		return fmt.Sprint(v)
	}
	return s
}
