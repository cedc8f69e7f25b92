// Package dashboard serves the back-office management screens as searchable,
// filterable and paginated table projections.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/pos/backoffice/internal/infrastructure/metrics"
	"github.com/pos/backoffice/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

const (
	defaultPageSize        = 10
	defaultMaxPageSize     = 100
	defaultMaxVisiblePages = 5
	defaultSessionTTL      = 30 * time.Minute
)

// TableService computes table pages and manages view sessions
type TableService struct {
	screens    map[string]Screen
	ordered    []Screen
	store      shared.ViewStateStore
	translator Translator
	cfg        config.TableConfig
	logger     *zap.Logger

	tableMetrics *telemetry.TableMetrics
	prom         *metrics.Registry

	now func() time.Time
}

// NewTableService creates a new TableService
func NewTableService(
	screens []Screen,
	store shared.ViewStateStore,
	translator Translator,
	cfg config.TableConfig,
	logger *zap.Logger,
) *TableService {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = defaultPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = defaultMaxPageSize
	}
	if cfg.MaxVisiblePages <= 0 {
		cfg.MaxVisiblePages = defaultMaxVisiblePages
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	byName := make(map[string]Screen, len(screens))
	for _, sc := range screens {
		byName[sc.Name()] = sc
	}

	return &TableService{
		screens:    byName,
		ordered:    screens,
		store:      store,
		translator: translator,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// SetTableMetrics sets the OpenTelemetry instruments for table queries
func (s *TableService) SetTableMetrics(m *telemetry.TableMetrics) {
	s.tableMetrics = m
}

// SetPrometheus sets the Prometheus registry for table queries and sessions
func (s *TableService) SetPrometheus(r *metrics.Registry) {
	s.prom = r
}

// ListScreens returns every screen with its localized headers
func (s *TableService) ListScreens(ctx context.Context, lang, acceptLanguage string) []ScreenInfo {
	_, span := telemetry.StartServiceSpan(ctx, "dashboard", "list_screens")
	defer span.End()

	rc := newRenderContext(s.translator, s.translator.Resolve(lang, acceptLanguage))
	out := make([]ScreenInfo, len(s.ordered))
	for i, sc := range s.ordered {
		out[i] = sc.info(rc)
	}
	return out
}

// Query runs the filter pipeline once: search, category, date range, page
func (s *TableService) Query(ctx context.Context, tenantID uuid.UUID, screen string, req QueryRequest) (*TablePage, error) {
	start := time.Now()
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard", "query",
		telemetry.WithAttribute("screen", screen),
		telemetry.WithAttribute("tenant_id", tenantID.String()),
	)
	defer span.End()

	sc, err := s.screen(screen)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	size, err := s.pageSize(req.PageSize)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := validateRange(req.From, req.To); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	rc := newRenderContext(s.translator, s.translator.Resolve(req.Language, req.AcceptLanguage))
	view, err := s.open(ctx, sc, tenantID, rc, viewSpec{
		Searchable:      boolOr(req.Searchable, true),
		Pageable:        boolOr(req.Pageable, true),
		PageSize:        size,
		MaxVisiblePages: s.cfg.MaxVisiblePages,
		Category:        req.Category,
		From:            req.From,
		To:              req.To,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	view.SetSearchTerm(req.Search)
	view.RequestPageChange(req.Page)

	page := s.tablePage(sc, rc, view)
	s.record(ctx, screen, telemetry.ModeQuery, view.FilteredCount(), start)
	telemetry.SetAttributes(span,
		"filtered", view.FilteredCount(),
		"page", page.Projection.CurrentPage,
		"total_pages", page.Projection.TotalPages,
	)
	s.logger.Debug("Table query",
		zap.String("screen", screen),
		zap.String("tenant_id", tenantID.String()),
		zap.String("search", req.Search),
		zap.String("category", req.Category),
		zap.Int("filtered", view.FilteredCount()),
		zap.Int("page", page.Projection.CurrentPage),
	)
	return page, nil
}

// CreateView opens a view session for a screen and returns its first page
func (s *TableService) CreateView(ctx context.Context, tenantID uuid.UUID, screen string, req CreateViewRequest) (*ViewResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard", "create_view",
		telemetry.WithAttribute("screen", screen),
	)
	defer span.End()

	sc, err := s.screen(screen)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	size, err := s.pageSize(req.PageSize)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := validateRange(req.From, req.To); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	tag := s.translator.Resolve(req.Language, req.AcceptLanguage)
	now := s.now()
	session := &shared.ViewSession{
		ID:         uuid.New(),
		TenantID:   tenantID,
		Screen:     sc.Name(),
		Language:   tag.String(),
		Searchable: boolOr(req.Searchable, true),
		Pageable:   boolOr(req.Pageable, true),
		PageSize:   size,
		Category:   req.Category,
		From:       req.From,
		To:         req.To,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	rc := newRenderContext(s.translator, tag)
	view, err := s.open(ctx, sc, tenantID, rc, s.sessionSpec(session))
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	session.State = view.State()

	if err := s.store.Save(ctx, session, s.cfg.SessionTTL); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to save view session: %w", err)
	}

	s.tableMetrics.RecordSessionOpened(ctx, session.Screen)
	s.prom.SessionOpened()
	s.record(ctx, session.Screen, telemetry.ModeSession, view.FilteredCount(), start)
	s.logger.Debug("View session created",
		zap.String("view_id", session.ID.String()),
		zap.String("screen", session.Screen),
		zap.String("language", session.Language),
	)

	return s.viewResponse(session, sc, rc, view), nil
}

// GetView returns the current page of a view session
func (s *TableService) GetView(ctx context.Context, tenantID, id uuid.UUID) (*ViewResponse, error) {
	return s.withSession(ctx, tenantID, id, "get_view", nil)
}

// SetSearch replaces the search term of a view session and resets it to page 1
func (s *TableService) SetSearch(ctx context.Context, tenantID, id uuid.UUID, term string) (*ViewResponse, error) {
	return s.withSession(ctx, tenantID, id, "set_search", func(v tableView) {
		v.SetSearchTerm(term)
	})
}

// ChangePage moves a view session to page, clamped to the available pages
func (s *TableService) ChangePage(ctx context.Context, tenantID, id uuid.UUID, page int) (*ViewResponse, error) {
	return s.withSession(ctx, tenantID, id, "change_page", func(v tableView) {
		v.RequestPageChange(page)
	})
}

// CloseView discards a view session
func (s *TableService) CloseView(ctx context.Context, tenantID, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard", "close_view",
		telemetry.WithAttribute("view_id", id.String()),
	)
	defer span.End()

	if _, err := s.loadSession(ctx, tenantID, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return fmt.Errorf("failed to delete view session: %w", err)
	}

	s.prom.SessionClosed()
	s.logger.Debug("View session closed", zap.String("view_id", id.String()))
	return nil
}

// withSession rebuilds a session's view, applies mutate and stores the new
// state. Every access extends the session TTL.
func (s *TableService) withSession(ctx context.Context, tenantID, id uuid.UUID, method string, mutate func(tableView)) (*ViewResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard", method,
		telemetry.WithAttribute("view_id", id.String()),
	)
	defer span.End()

	session, err := s.loadSession(ctx, tenantID, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	sc, err := s.screen(session.Screen)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	rc := newRenderContext(s.translator, s.translator.Resolve(session.Language, ""))
	view, err := s.open(ctx, sc, tenantID, rc, s.sessionSpec(session))
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	view.Restore(session.State)
	// the records may have shrunk since the session was saved
	view.RequestPageChange(view.State().CurrentPage)
	if mutate != nil {
		mutate(view)
	}

	session.State = view.State()
	session.UpdatedAt = s.now()
	if err := s.store.Save(ctx, session, s.cfg.SessionTTL); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to save view session: %w", err)
	}

	s.record(ctx, session.Screen, telemetry.ModeSession, view.FilteredCount(), start)
	return s.viewResponse(session, sc, rc, view), nil
}

func (s *TableService) loadSession(ctx context.Context, tenantID, id uuid.UUID) (*shared.ViewSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.TenantID != tenantID {
		return nil, shared.ErrNotFound.WithMessage("View session not found or expired")
	}
	return session, nil
}

func (s *TableService) open(ctx context.Context, sc Screen, tenantID uuid.UUID, rc renderContext, vs viewSpec) (tableView, error) {
	ctx, span := telemetry.StartSpan(ctx, "table.open",
		telemetry.WithAttribute("screen", sc.Name()),
	)
	defer span.End()

	view, err := sc.open(ctx, tenantID, rc, vs)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load %s: %w", sc.Name(), err)
	}
	telemetry.SetAttributes(span, "filtered", view.FilteredCount())
	return view, nil
}

func (s *TableService) sessionSpec(session *shared.ViewSession) viewSpec {
	return viewSpec{
		Searchable:      session.Searchable,
		Pageable:        session.Pageable,
		PageSize:        session.PageSize,
		MaxVisiblePages: s.cfg.MaxVisiblePages,
		Category:        session.Category,
		From:            session.From,
		To:              session.To,
	}
}

func (s *TableService) tablePage(sc Screen, rc renderContext, view tableView) *TablePage {
	return &TablePage{
		Screen:     sc.Name(),
		Title:      rc.text(sc.Title()),
		Language:   rc.tag.String(),
		Projection: view.Projection(),
		Summary:    view.Summary(),
	}
}

func (s *TableService) viewResponse(session *shared.ViewSession, sc Screen, rc renderContext, view tableView) *ViewResponse {
	return &ViewResponse{
		ID:        session.ID,
		ExpiresAt: session.UpdatedAt.Add(s.cfg.SessionTTL),
		TablePage: *s.tablePage(sc, rc, view),
	}
}

func (s *TableService) screen(name string) (Screen, error) {
	sc, ok := s.screens[name]
	if !ok {
		return nil, shared.ErrNotFound.WithMessage(fmt.Sprintf("Unknown screen %q", name))
	}
	return sc, nil
}

// pageSize applies the configured default and limit to a requested size
func (s *TableService) pageSize(requested int) (int, error) {
	switch {
	case requested == 0:
		return s.cfg.DefaultPageSize, nil
	case requested < 0:
		return 0, shared.ErrInvalidInput.WithMessage("page_size must be positive")
	case requested > s.cfg.MaxPageSize:
		return 0, shared.ErrInvalidInput.WithMessage(fmt.Sprintf("page_size cannot exceed %d", s.cfg.MaxPageSize))
	}
	return requested, nil
}

func (s *TableService) record(ctx context.Context, screen, mode string, filtered int, start time.Time) {
	s.tableMetrics.RecordQuery(ctx, screen, mode, filtered, time.Since(start))
	s.prom.RecordTableQuery(screen, mode)
}

func validateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return shared.ErrInvalidInput.WithMessage("from must not be after to")
	}
	return nil
}
