package datatable

import "fmt"

// Label keys resolved through a LabelFunc.
const (
	LabelSearch         = "search"
	LabelNoDataFound    = "noDataFound"
	LabelShowingResults = "showingResults" // args: from, to, total
	LabelFirst          = "first"
	LabelPrevious       = "previous"
	LabelNext           = "next"
	LabelLast           = "last"
	LabelPage           = "page" // args: page number
)

// LabelFunc resolves a label key, with optional arguments, to display text.
type LabelFunc func(key string, args ...any) string

var englishLabels = map[string]string{
	LabelSearch:         "Search...",
	LabelNoDataFound:    "No data found",
	LabelShowingResults: "Showing %d to %d of %d results",
	LabelFirst:          "First page",
	LabelPrevious:       "Previous page",
	LabelNext:           "Next page",
	LabelLast:           "Last page",
	LabelPage:           "Page %d",
}

// DefaultLabels resolves keys to built-in English text. Unknown keys are
// returned as-is.
func DefaultLabels(key string, args ...any) string {
	format, ok := englishLabels[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Direction is the reading direction of the rendering layer.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// IsRTL reports whether d is right-to-left.
func (d Direction) IsRTL() bool {
	return d == RTL
}

// NavKind identifies a navigation control.
type NavKind string

const (
	NavFirst    NavKind = "first"
	NavPrevious NavKind = "previous"
	NavPage     NavKind = "page"
	NavNext     NavKind = "next"
	NavLast     NavKind = "last"
)

// NavControl is one button of the page navigation bar.
type NavControl struct {
	Kind     NavKind `json:"kind"`
	Page     int     `json:"page"`
	Title    string  `json:"title"`
	Disabled bool    `json:"disabled,omitempty"`
	Active   bool    `json:"active,omitempty"`
}

// Navigation builds the navigation bar for a window in display order.
// Right-to-left layouts get the same controls reversed.
func Navigation(w Window, labels LabelFunc, dir Direction) []NavControl {
	if labels == nil {
		labels = DefaultLabels
	}
	atStart := w.CurrentPage <= 1
	atEnd := w.CurrentPage >= w.TotalPages

	controls := make([]NavControl, 0, len(w.VisiblePages)+4)
	controls = append(controls,
		NavControl{Kind: NavFirst, Page: 1, Title: labels(LabelFirst), Disabled: atStart},
		NavControl{Kind: NavPrevious, Page: ClampPage(w.CurrentPage-1, w.TotalPages), Title: labels(LabelPrevious), Disabled: atStart},
	)
	for _, p := range w.VisiblePages {
		controls = append(controls, NavControl{
			Kind:   NavPage,
			Page:   p,
			Title:  labels(LabelPage, p),
			Active: p == w.CurrentPage,
		})
	}
	controls = append(controls,
		NavControl{Kind: NavNext, Page: ClampPage(w.CurrentPage+1, w.TotalPages), Title: labels(LabelNext), Disabled: atEnd},
		NavControl{Kind: NavLast, Page: max(w.TotalPages, 1), Title: labels(LabelLast), Disabled: atEnd},
	)

	if dir.IsRTL() {
		for i, j := 0, len(controls)-1; i < j; i, j = i+1, j-1 {
			controls[i], controls[j] = controls[j], controls[i]
		}
	}
	return controls
}
