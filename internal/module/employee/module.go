package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
)

// EmployeeModule implements the app.Module interface for the employee domain.
type EmployeeModule struct {
	handler *EmployeeHandler
	checker domain.PermissionChecker
}

// NewModule creates an EmployeeModule. Panics if h or checker is nil.
func NewModule(h *EmployeeHandler, checker domain.PermissionChecker) *EmployeeModule {
	if h == nil {
		panic("employee.NewModule: handler must not be nil")
	}
	if checker == nil {
		panic("employee.NewModule: checker must not be nil")
	}
	return &EmployeeModule{handler: h, checker: checker}
}

// RegisterRoutes registers employee API routes. The whole feature is
// restricted to roles that can see the employee directory; writes require
// company-wide access.
func (m *EmployeeModule) RegisterRoutes(api *gin.RouterGroup) {
	employees := api.Group("/employees", middleware.RequireView(m.checker, domain.FeatureEmployees))
	employees.GET("", m.handler.List)
	employees.GET("/:id", m.handler.Get)

	writes := employees.Group("", middleware.RequireViewAll(m.checker, domain.FeatureEmployees))
	writes.POST("", m.handler.Onboard)
	writes.PUT("/:id", m.handler.Update)
	writes.POST("/:id/terminate", m.handler.Terminate)
	writes.DELETE("/:id", m.handler.Delete)
}
