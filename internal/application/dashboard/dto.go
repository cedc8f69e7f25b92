package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/datatable"
)

// ScreenInfo describes a screen and its columns
type ScreenInfo struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	FilterField string   `json:"filter_field"`
	Columns     []string `json:"columns"`
	Headers     []string `json:"headers"`
}

// QueryRequest is a one-shot table query
type QueryRequest struct {
	Search         string
	Category       string
	From           *time.Time
	To             *time.Time
	Page           int
	PageSize       int
	Pageable       *bool // nil means enabled
	Searchable     *bool // nil means enabled
	Language       string
	AcceptLanguage string
}

// CreateViewRequest opens a stateful view session
type CreateViewRequest struct {
	Category       string
	From           *time.Time
	To             *time.Time
	PageSize       int
	Pageable       *bool
	Searchable     *bool
	Language       string
	AcceptLanguage string
}

// TablePage is a rendered table plus its aggregate over the filtered set
type TablePage struct {
	Screen     string               `json:"screen"`
	Title      string               `json:"title"`
	Language   string               `json:"language"`
	Projection datatable.Projection `json:"projection"`
	Summary    Summary              `json:"summary"`
}

// ViewResponse is a view session and its current page
type ViewResponse struct {
	ID        uuid.UUID `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	TablePage
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
