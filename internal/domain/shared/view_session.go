package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/datatable"
)

// ViewSession is the persisted state of one stateful table view: which screen
// it shows, how it was configured, and where the user currently is.
type ViewSession struct {
	ID         uuid.UUID       `json:"id"`
	TenantID   uuid.UUID       `json:"tenant_id"`
	Screen     string          `json:"screen"`
	Language   string          `json:"language"`
	Searchable bool            `json:"searchable"`
	Pageable   bool            `json:"pageable"`
	PageSize   int             `json:"page_size"`
	Category   string          `json:"category,omitempty"`
	From       *time.Time      `json:"from,omitempty"`
	To         *time.Time      `json:"to,omitempty"`
	State      datatable.State `json:"state"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ViewStateStore keeps view sessions between requests.
// Get returns ErrNotFound for unknown or expired sessions.
type ViewStateStore interface {
	Save(ctx context.Context, session *ViewSession, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*ViewSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}
