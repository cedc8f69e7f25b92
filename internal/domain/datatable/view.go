package datatable

// Options configures a View.
type Options struct {
	// Searchable enables the text search stage. When false every record passes.
	Searchable bool
	// Pageable enables slicing. When false the whole filtered set is visible.
	Pageable bool
	// PageSize is the number of rows per page. Non-positive values become 1.
	PageSize int
	// EmptyMessage is shown when the filtered set is empty. Blank falls back to
	// the noDataFound label.
	EmptyMessage string
	// MaxVisiblePages is the number of page buttons in the navigation bar.
	MaxVisiblePages int
	// Labels resolves localized strings.
	Labels LabelFunc
	// Direction orders the navigation controls.
	Direction Direction
}

// DefaultOptions returns the options of a view created without any Option.
func DefaultOptions() Options {
	return Options{
		Searchable:      true,
		Pageable:        true,
		PageSize:        DefaultPageSize,
		MaxVisiblePages: DefaultMaxVisiblePages,
		Labels:          DefaultLabels,
		Direction:       LTR,
	}
}

// Option is a functional option for NewView.
type Option func(*Options)

// WithSearchable toggles the search stage.
func WithSearchable(enabled bool) Option {
	return func(o *Options) { o.Searchable = enabled }
}

// WithPageable toggles pagination.
func WithPageable(enabled bool) Option {
	return func(o *Options) { o.Pageable = enabled }
}

// WithPageSize sets the page size.
func WithPageSize(size int) Option {
	return func(o *Options) { o.PageSize = size }
}

// WithEmptyMessage sets the message shown for an empty filtered set.
func WithEmptyMessage(msg string) Option {
	return func(o *Options) { o.EmptyMessage = msg }
}

// WithMaxVisiblePages sets the size of the page button window.
func WithMaxVisiblePages(n int) Option {
	return func(o *Options) { o.MaxVisiblePages = n }
}

// WithLabels sets the label resolver.
func WithLabels(labels LabelFunc) Option {
	return func(o *Options) {
		if labels != nil {
			o.Labels = labels
		}
	}
}

// WithDirection sets the layout direction.
func WithDirection(dir Direction) Option {
	return func(o *Options) { o.Direction = dir }
}

// State is the mutable part of a view. It is small enough to be persisted
// between requests and handed back to Restore.
type State struct {
	SearchTerm  string `json:"search_term"`
	CurrentPage int    `json:"current_page"`
}

// Row is one visible record with its projected cells.
type Row[R any] struct {
	Record R
	// Index is the position of the record within the current page.
	Index int
	// Position is the position of the record within the filtered set.
	Position int
	Cells    []any
}

// View holds the search text and current page of one table and keeps the
// filtered set and page window derived from them up to date.
//
// View is not safe for concurrent use.
type View[R any] struct {
	records   []R
	columns   []Column[R]
	predicate Predicate[R]
	opts      Options
	state     State

	filtered []R
	window   Window
}

// NewView creates a view over records. records and columns are read, never
// modified.
func NewView[R any](records []R, columns []Column[R], opts ...Option) *View[R] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.PageSize = normalizePageSize(o.PageSize)
	if o.MaxVisiblePages < 1 {
		o.MaxVisiblePages = DefaultMaxVisiblePages
	}
	if o.Labels == nil {
		o.Labels = DefaultLabels
	}

	v := &View[R]{
		records: records,
		columns: columns,
		opts:    o,
		state:   State{CurrentPage: 1},
	}
	v.recompute()
	return v
}

// Options returns the effective options of the view.
func (v *View[R]) Options() Options {
	return v.opts
}

// SetPredicate installs extra filter stages applied after the text search
// (category, date range, ...). The current page is kept.
func (v *View[R]) SetPredicate(p Predicate[R]) {
	v.predicate = p
	v.recompute()
}

// SetRecords replaces the input records, e.g. after a fetch completes.
// The current page is kept and may now lie past the last page.
func (v *View[R]) SetRecords(records []R) {
	v.records = records
	v.recompute()
}

// SetColumns replaces the column descriptors.
func (v *View[R]) SetColumns(columns []Column[R]) {
	v.columns = columns
	v.recompute()
}

// SetSearchTerm updates the search text and returns to the first page.
func (v *View[R]) SetSearchTerm(term string) {
	v.state.SearchTerm = term
	v.state.CurrentPage = 1
	v.recompute()
}

// RequestPageChange moves to page, clamped into [1, TotalPages].
// When paging is disabled the page is still recorded but every row stays visible.
func (v *View[R]) RequestPageChange(page int) {
	v.state.CurrentPage = ClampPage(page, v.window.TotalPages)
	v.recomputeWindow()
}

// Restore replaces the view state with a previously saved one.
func (v *View[R]) Restore(s State) {
	if s.CurrentPage < 1 {
		s.CurrentPage = 1
	}
	v.state = s
	v.recompute()
}

// State returns the current view state.
func (v *View[R]) State() State {
	return v.state
}

// SearchTerm returns the current search text.
func (v *View[R]) SearchTerm() string {
	return v.state.SearchTerm
}

// CurrentPage returns the current page number.
func (v *View[R]) CurrentPage() int {
	return v.state.CurrentPage
}

// TotalPages returns the number of pages of the filtered set.
func (v *View[R]) TotalPages() int {
	return v.window.TotalPages
}

// VisiblePageNumbers returns the page buttons to display.
func (v *View[R]) VisiblePageNumbers() []int {
	return v.window.VisiblePages
}

// FilteredCount returns the size of the filtered set.
func (v *View[R]) FilteredCount() int {
	return len(v.filtered)
}

// Filtered returns the filtered set. The result must not be modified.
func (v *View[R]) Filtered() []R {
	return v.filtered
}

// Window returns the current page window.
func (v *View[R]) Window() Window {
	return v.window
}

// VisibleRows returns the rows of the current page with their display cells.
func (v *View[R]) VisibleRows() []Row[R] {
	items := Slice(v.filtered, v.window)
	rows := make([]Row[R], len(items))
	for i, record := range items {
		cells := make([]any, len(v.columns))
		for j, c := range v.columns {
			cells[j] = c.Display(record, i)
		}
		rows[i] = Row[R]{
			Record:   record,
			Index:    i,
			Position: v.window.StartIndex + i,
			Cells:    cells,
		}
	}
	return rows
}

// recompute rebuilds the filtered set, then the page window.
func (v *View[R]) recompute() {
	filtered := v.records
	if v.opts.Searchable {
		filtered = FilterRecords(filtered, v.columns, v.state.SearchTerm)
	}
	if v.predicate != nil {
		filtered = Apply(filtered, v.predicate)
	}
	v.filtered = filtered
	v.recomputeWindow()
}

func (v *View[R]) recomputeWindow() {
	w := Paginate(len(v.filtered), v.opts.PageSize, v.state.CurrentPage, v.opts.MaxVisiblePages)
	if !v.opts.Pageable {
		w.StartIndex = 0
		w.EndIndex = len(v.filtered)
	}
	v.window = w
}
