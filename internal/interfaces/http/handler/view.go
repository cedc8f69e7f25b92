package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/application/dashboard"
	"github.com/pos/backoffice/internal/interfaces/http/dto"
	"github.com/pos/backoffice/internal/interfaces/http/middleware"
)

// ViewHandler drives stateful view sessions
type ViewHandler struct {
	BaseHandler
	tableService *dashboard.TableService
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(tableService *dashboard.TableService) *ViewHandler {
	return &ViewHandler{
		tableService: tableService,
	}
}

// SetSearchRequest replaces the search term. An empty term clears the search.
type SetSearchRequest struct {
	Search string `json:"search" binding:"max=200"`
}

// ChangePageRequest requests a page; out-of-range pages are clamped
type ChangePageRequest struct {
	Page *int `json:"page" binding:"required"`
}

// Get returns the current page of a view session
// GET /api/v1/views/:id
func (h *ViewHandler) Get(c *gin.Context) {
	tenantID, id, ok := h.bindView(c)
	if !ok {
		return
	}

	view, err := h.tableService.GetView(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// SetSearch changes the search term of a view session and returns page 1
// PUT /api/v1/views/:id/search
func (h *ViewHandler) SetSearch(c *gin.Context) {
	tenantID, id, ok := h.bindView(c)
	if !ok {
		return
	}
	var req SetSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	view, err := h.tableService.SetSearch(c.Request.Context(), tenantID, id, req.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// ChangePage moves a view session to another page
// PUT /api/v1/views/:id/page
func (h *ViewHandler) ChangePage(c *gin.Context) {
	tenantID, id, ok := h.bindView(c)
	if !ok {
		return
	}
	var req ChangePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	view, err := h.tableService.ChangePage(c.Request.Context(), tenantID, id, *req.Page)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Close discards a view session
// DELETE /api/v1/views/:id
func (h *ViewHandler) Close(c *gin.Context) {
	tenantID, id, ok := h.bindView(c)
	if !ok {
		return
	}

	if err := h.tableService.CloseView(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// bindView resolves the tenant and the session ID of the request; it writes
// the error response itself when either is invalid
func (h *ViewHandler) bindView(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return uuid.Nil, uuid.Nil, false
	}
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, uuid.MustParse(uri.ID), true
}
