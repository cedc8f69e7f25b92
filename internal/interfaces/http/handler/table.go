package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pos/backoffice/internal/application/dashboard"
	"github.com/pos/backoffice/internal/interfaces/http/dto"
	"github.com/pos/backoffice/internal/interfaces/http/middleware"
)

// TableHandler serves the management screens as table projections
type TableHandler struct {
	BaseHandler
	tableService *dashboard.TableService
}

// NewTableHandler creates a new TableHandler
func NewTableHandler(tableService *dashboard.TableService) *TableHandler {
	return &TableHandler{
		tableService: tableService,
	}
}

// TableQueryRequest holds the query parameters of GET /tables/:screen
type TableQueryRequest struct {
	Search     string `form:"search" binding:"omitempty,max=200"`
	Status     string `form:"status" binding:"omitempty,max=64"`
	From       string `form:"from"`
	To         string `form:"to"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	Pageable   *bool  `form:"pageable"`
	Searchable *bool  `form:"searchable"`
	Lang       string `form:"lang" binding:"omitempty,max=35"`
}

// CreateViewRequest is the body of POST /tables/:screen/views. Every field is optional.
type CreateViewRequest struct {
	Status     string `json:"status" binding:"omitempty,max=64"`
	From       string `json:"from"`
	To         string `json:"to"`
	PageSize   int    `json:"page_size"`
	Pageable   *bool  `json:"pageable"`
	Searchable *bool  `json:"searchable"`
	Lang       string `json:"lang" binding:"omitempty,max=35"`
}

// ListScreens lists every table screen with its localized headers
// GET /api/v1/tables
func (h *TableHandler) ListScreens(c *gin.Context) {
	screens := h.tableService.ListScreens(c.Request.Context(), c.Query("lang"), c.GetHeader("Accept-Language"))
	h.Success(c, screens)
}

// Query filters and pages one screen
// GET /api/v1/tables/:screen
func (h *TableHandler) Query(c *gin.Context) {
	var uri dto.ScreenRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	var req TableQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}
	from, err := parseDate("from", req.From)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	to, err := parseDate("to", req.To)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.tableService.Query(c.Request.Context(), tenantID, uri.Screen, dashboard.QueryRequest{
		Search:         req.Search,
		Category:       req.Status,
		From:           from,
		To:             to,
		Page:           req.Page,
		PageSize:       req.PageSize,
		Pageable:       req.Pageable,
		Searchable:     req.Searchable,
		Language:       req.Lang,
		AcceptLanguage: c.GetHeader("Accept-Language"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	p := page.Projection
	h.SuccessWithMeta(c, page, int64(page.Summary.Count), p.CurrentPage, p.PageSize, p.TotalPages)
}

// CreateView opens a stateful view session on a screen
// POST /api/v1/tables/:screen/views
func (h *TableHandler) CreateView(c *gin.Context) {
	var uri dto.ScreenRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	var req CreateViewRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
	}

	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}
	from, err := parseDate("from", req.From)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	to, err := parseDate("to", req.To)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	view, err := h.tableService.CreateView(c.Request.Context(), tenantID, uri.Screen, dashboard.CreateViewRequest{
		Category:       req.Status,
		From:           from,
		To:             to,
		PageSize:       req.PageSize,
		Pageable:       req.Pageable,
		Searchable:     req.Searchable,
		Language:       req.Lang,
		AcceptLanguage: c.GetHeader("Accept-Language"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/views/"+view.ID.String())
	h.Created(c, view)
}
