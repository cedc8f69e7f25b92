package datatable

const (
	// DefaultPageSize is the number of rows per page when none is configured.
	DefaultPageSize = 10
	// DefaultMaxVisiblePages is the number of page buttons shown at once.
	DefaultMaxVisiblePages = 5
)

// Window describes the visible slice of a filtered set and the page buttons
// to display for it.
type Window struct {
	StartIndex   int   `json:"start_index"`
	EndIndex     int   `json:"end_index"` // exclusive
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	VisiblePages []int `json:"visible_pages"`
}

// Len returns the number of items inside the window.
func (w Window) Len() int {
	return w.EndIndex - w.StartIndex
}

// normalizePageSize coerces non-positive page sizes to 1.
func normalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	return pageSize
}

// TotalPages returns ceil(length / pageSize), or 0 for an empty set.
func TotalPages(length, pageSize int) int {
	if length <= 0 {
		return 0
	}
	pageSize = normalizePageSize(pageSize)
	return 1 + (length-1)/pageSize
}

// ClampPage clamps a requested page into [1, totalPages].
// With no pages at all the result is 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// VisiblePages returns the page numbers to show as buttons: a window of up to
// maxButtons pages around currentPage that stays anchored at the edges.
//
// The window is computed in two passes: it is first started half a window
// before currentPage and cut at totalPages, then, if that left it short, its
// start is pulled back from the end. Near the last page this shifts the window
// left instead of centring it on currentPage.
func VisiblePages(currentPage, totalPages, maxButtons int) []int {
	if maxButtons < 1 {
		maxButtons = DefaultMaxVisiblePages
	}
	currentPage = max(currentPage, 1)
	half := maxButtons / 2
	start := max(1, currentPage-half)
	end := totalPages
	if start < totalPages-maxButtons+1 {
		end = start + maxButtons - 1
	}
	if end-start+1 < maxButtons {
		start = max(1, end-maxButtons+1)
	}

	pages := make([]int, 0, max(end-start+1, 0))
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Paginate computes the window for a filtered set of the given length.
// currentPage is not clamped against totalPages: a page past the end yields an
// empty slice, the way a stale page does after the data shrinks.
func Paginate(length, pageSize, currentPage, maxButtons int) Window {
	if length < 0 {
		length = 0
	}
	pageSize = normalizePageSize(pageSize)
	if currentPage < 1 {
		currentPage = 1
	}

	totalPages := TotalPages(length, pageSize)
	// pages past the end are checked before multiplying so that huge page
	// numbers cannot wrap around into the first page
	start := length
	if currentPage <= totalPages {
		start = (currentPage - 1) * pageSize
	}
	end := start + min(pageSize, length-start)

	return Window{
		StartIndex:   start,
		EndIndex:     end,
		TotalPages:   totalPages,
		CurrentPage:  currentPage,
		VisiblePages: VisiblePages(currentPage, totalPages, maxButtons),
	}
}

// Slice returns the items of w. The result shares storage with items.
func Slice[R any](items []R, w Window) []R {
	start := min(max(w.StartIndex, 0), len(items))
	end := min(max(w.EndIndex, start), len(items))
	return items[start:end]
}
