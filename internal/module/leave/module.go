package leave

import (
	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
)

// LeaveModule implements the app.Module interface for leave management.
type LeaveModule struct {
	handler *LeaveHandler
	checker domain.PermissionChecker
}

// NewModule creates a LeaveModule. Panics if h or checker is nil.
func NewModule(h *LeaveHandler, checker domain.PermissionChecker) *LeaveModule {
	if h == nil {
		panic("leave.NewModule: handler must not be nil")
	}
	if checker == nil {
		panic("leave.NewModule: checker must not be nil")
	}
	return &LeaveModule{handler: h, checker: checker}
}

// RegisterRoutes registers leave API routes. Leave types are reference data
// managed by roles with company-wide access; requests follow the same split
// as attendance.
func (m *LeaveModule) RegisterRoutes(api *gin.RouterGroup) {
	leave := api.Group("/leave", middleware.RequireView(m.checker, domain.FeatureLeave))

	types := leave.Group("/types")
	types.GET("", m.handler.ListTypes)

	typeWrites := types.Group("", middleware.RequireViewAll(m.checker, domain.FeatureLeave))
	typeWrites.POST("", m.handler.CreateType)
	typeWrites.PUT("/:id", m.handler.UpdateType)
	typeWrites.DELETE("/:id", m.handler.DeleteType)

	requests := leave.Group("/requests")
	requests.GET("", m.handler.List)
	requests.GET("/:id", m.handler.Get)
	requests.POST("", m.handler.Create)
	requests.POST("/:id/cancel", m.handler.Cancel)

	reviews := requests.Group("", middleware.RequireViewAll(m.checker, domain.FeatureLeave))
	reviews.POST("/:id/approve", m.handler.Approve)
	reviews.POST("/:id/reject", m.handler.Reject)
}
