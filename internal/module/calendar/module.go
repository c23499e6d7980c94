package calendar

import (
	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
)

// CalendarModule implements the app.Module interface for the company
// calendar.
type CalendarModule struct {
	handler *EventHandler
	checker domain.PermissionChecker
}

// NewModule creates a CalendarModule. Panics if h or checker is nil.
func NewModule(h *EventHandler, checker domain.PermissionChecker) *CalendarModule {
	if h == nil {
		panic("calendar.NewModule: handler must not be nil")
	}
	if checker == nil {
		panic("calendar.NewModule: checker must not be nil")
	}
	return &CalendarModule{handler: h, checker: checker}
}

// RegisterRoutes registers calendar API routes. Everyone with calendar
// access can read; managing events requires company-wide access.
func (m *CalendarModule) RegisterRoutes(api *gin.RouterGroup) {
	events := api.Group("/calendar/events", middleware.RequireView(m.checker, domain.FeatureCalendar))
	events.GET("", m.handler.List)
	events.GET("/range", m.handler.Range)
	events.GET("/:id", m.handler.Get)

	writes := events.Group("", middleware.RequireViewAll(m.checker, domain.FeatureCalendar))
	writes.POST("", m.handler.Create)
	writes.PUT("/:id", m.handler.Update)
	writes.DELETE("/:id", m.handler.Delete)
}
