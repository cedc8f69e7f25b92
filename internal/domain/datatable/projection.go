package datatable

// Showing is the "showing X to Y of Z results" range of a page.
type Showing struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Total int `json:"total"`
}

// Projection is a render-ready snapshot of a view.
type Projection struct {
	Columns           []string     `json:"columns"`
	Headers           []string     `json:"headers"`
	Rows              [][]any      `json:"rows"`
	SearchTerm        string       `json:"search_term"`
	SearchPlaceholder string       `json:"search_placeholder,omitempty"`
	Searchable        bool         `json:"searchable"`
	Pageable          bool         `json:"pageable"`
	PageSize          int          `json:"page_size"`
	CurrentPage       int          `json:"current_page"`
	TotalPages        int          `json:"total_pages"`
	VisiblePages      []int        `json:"visible_pages"`
	Showing           Showing      `json:"showing"`
	Summary           string       `json:"summary,omitempty"`
	Empty             bool         `json:"empty"`
	EmptyMessage      string       `json:"empty_message,omitempty"`
	Direction         Direction    `json:"direction"`
	Navigation        []NavControl `json:"navigation,omitempty"`
}

// Projection snapshots the view for the rendering layer.
func (v *View[R]) Projection() Projection {
	labels := v.opts.Labels
	visible := v.VisibleRows()

	rows := make([][]any, len(visible))
	for i, r := range visible {
		rows[i] = r.Cells
	}

	p := Projection{
		Columns:      Keys(v.columns),
		Headers:      Headers(v.columns),
		Rows:         rows,
		SearchTerm:   v.state.SearchTerm,
		Searchable:   v.opts.Searchable,
		Pageable:     v.opts.Pageable,
		PageSize:     v.opts.PageSize,
		CurrentPage:  v.state.CurrentPage,
		TotalPages:   v.window.TotalPages,
		VisiblePages: v.window.VisiblePages,
		Direction:    v.opts.Direction,
		Empty:        len(v.filtered) == 0,
	}
	if p.Direction == "" {
		p.Direction = LTR
	}
	// without paging the whole filtered set is one page
	if !v.opts.Pageable {
		p.CurrentPage = 1
		p.TotalPages = min(len(v.filtered), 1)
		p.VisiblePages = []int{}
	}
	if v.opts.Searchable {
		p.SearchPlaceholder = labels(LabelSearch)
	}

	if p.Empty {
		p.EmptyMessage = v.opts.EmptyMessage
		if p.EmptyMessage == "" {
			p.EmptyMessage = labels(LabelNoDataFound)
		}
		return p
	}

	if len(visible) > 0 {
		p.Showing = Showing{
			From:  v.window.StartIndex + 1,
			To:    v.window.StartIndex + len(visible),
			Total: len(v.filtered),
		}
	} else {
		p.Showing = Showing{Total: len(v.filtered)}
	}
	p.Summary = labels(LabelShowingResults, p.Showing.From, p.Showing.To, p.Showing.Total)

	if v.opts.Pageable && v.window.TotalPages > 1 {
		p.Navigation = Navigation(v.window, labels, p.Direction)
	}
	return p
}
