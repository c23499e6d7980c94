package leave

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
	"github.com/peoplekit/portal/internal/pkg"
)

// LeaveHandler handles REST API requests for leave types and requests.
type LeaveHandler struct {
	svc domain.LeaveService
}

// NewHandler creates a LeaveHandler with the given service.
func NewHandler(svc domain.LeaveService) *LeaveHandler {
	return &LeaveHandler{svc: svc}
}

// CreateType handles POST /api/v1/leave/types.
func (h *LeaveHandler) CreateType(c *gin.Context) {
	var req LeaveTypeInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	t, err := h.svc.CreateType(c.Request.Context(), req.Name, req.MaxDays, req.Paid)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    t,
	})
}

// ListTypes handles GET /api/v1/leave/types.
func (h *LeaveHandler) ListTypes(c *gin.Context) {
	types, err := h.svc.ListTypes(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, types)
}

// UpdateType handles PUT /api/v1/leave/types/:id.
func (h *LeaveHandler) UpdateType(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req LeaveTypeInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	t, err := h.svc.UpdateType(c.Request.Context(), id, req.Name, req.MaxDays, req.Paid)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, t)
}

// DeleteType handles DELETE /api/v1/leave/types/:id.
func (h *LeaveHandler) DeleteType(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteType(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Create handles POST /api/v1/leave/requests.
func (h *LeaveHandler) Create(c *gin.Context) {
	var req LeaveRequestInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	start, _ := time.Parse(domain.DateLayout, req.StartDate)
	end, _ := time.Parse(domain.DateLayout, req.EndDate)
	r := &domain.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		RequestedBy: middleware.GetUserID(c),
	}

	created, err := h.svc.Request(c.Request.Context(), r)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    created,
	})
}

// Get handles GET /api/v1/leave/requests/:id.
func (h *LeaveHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	r, err := h.svc.GetRequest(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, r)
}

// List handles GET /api/v1/leave/requests.
func (h *LeaveHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListRequests(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Approve handles POST /api/v1/leave/requests/:id/approve.
func (h *LeaveHandler) Approve(c *gin.Context) {
	h.review(c, h.svc.Approve)
}

// Reject handles POST /api/v1/leave/requests/:id/reject.
func (h *LeaveHandler) Reject(c *gin.Context) {
	h.review(c, h.svc.Reject)
}

func (h *LeaveHandler) review(c *gin.Context, fn func(ctx context.Context, id, reviewerID uint, note string) (*domain.LeaveRequest, error)) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req ReviewInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	r, err := fn(c.Request.Context(), id, middleware.GetUserID(c), req.Note)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, r)
}

// Cancel handles POST /api/v1/leave/requests/:id/cancel.
func (h *LeaveHandler) Cancel(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	r, err := h.svc.Cancel(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, r)
}
