package attendance

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
	"github.com/peoplekit/portal/internal/pkg"
)

// OffsiteHandler handles REST API requests for offsite requests.
type OffsiteHandler struct {
	svc domain.OffsiteService
}

// NewHandler creates an OffsiteHandler with the given service.
func NewHandler(svc domain.OffsiteService) *OffsiteHandler {
	return &OffsiteHandler{svc: svc}
}

// Create handles POST /api/v1/attendance/offsite.
func (h *OffsiteHandler) Create(c *gin.Context) {
	var req OffsiteRequestInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	date, _ := time.Parse(domain.DateLayout, req.Date)
	r := &domain.OffsiteRequest{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Location:    req.Location,
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

// Get handles GET /api/v1/attendance/offsite/:id.
func (h *OffsiteHandler) Get(c *gin.Context) {
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

// List handles GET /api/v1/attendance/offsite.
func (h *OffsiteHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListRequests(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Approve handles POST /api/v1/attendance/offsite/:id/approve.
func (h *OffsiteHandler) Approve(c *gin.Context) {
	h.review(c, h.svc.Approve)
}

// Reject handles POST /api/v1/attendance/offsite/:id/reject.
func (h *OffsiteHandler) Reject(c *gin.Context) {
	h.review(c, h.svc.Reject)
}

func (h *OffsiteHandler) review(c *gin.Context, fn func(ctx context.Context, id, reviewerID uint, note string) (*domain.OffsiteRequest, error)) {
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

// Cancel handles POST /api/v1/attendance/offsite/:id/cancel.
func (h *OffsiteHandler) Cancel(c *gin.Context) {
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
