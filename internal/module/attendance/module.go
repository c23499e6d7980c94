package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
)

// AttendanceModule implements the app.Module interface for offsite requests.
type AttendanceModule struct {
	handler *OffsiteHandler
	checker domain.PermissionChecker
}

// NewModule creates an AttendanceModule. Panics if h or checker is nil.
func NewModule(h *OffsiteHandler, checker domain.PermissionChecker) *AttendanceModule {
	if h == nil {
		panic("attendance.NewModule: handler must not be nil")
	}
	if checker == nil {
		panic("attendance.NewModule: checker must not be nil")
	}
	return &AttendanceModule{handler: h, checker: checker}
}

// RegisterRoutes registers offsite request API routes. Creating and
// cancelling a request only needs feature access; reviewing requires
// company-wide access.
func (m *AttendanceModule) RegisterRoutes(api *gin.RouterGroup) {
	offsite := api.Group("/attendance/offsite", middleware.RequireView(m.checker, domain.FeatureAttendance))
	offsite.GET("", m.handler.List)
	offsite.GET("/:id", m.handler.Get)
	offsite.POST("", m.handler.Create)
	offsite.POST("/:id/cancel", m.handler.Cancel)

	reviews := offsite.Group("", middleware.RequireViewAll(m.checker, domain.FeatureAttendance))
	reviews.POST("/:id/approve", m.handler.Approve)
	reviews.POST("/:id/reject", m.handler.Reject)
}
