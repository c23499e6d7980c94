package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
)

// SettingsModule implements the app.Module interface for reference data.
type SettingsModule struct {
	handler *SettingsHandler
	checker domain.PermissionChecker
}

// NewModule creates a SettingsModule. Panics if h or checker is nil.
func NewModule(h *SettingsHandler, checker domain.PermissionChecker) *SettingsModule {
	if h == nil {
		panic("settings.NewModule: handler must not be nil")
	}
	if checker == nil {
		panic("settings.NewModule: checker must not be nil")
	}
	return &SettingsModule{handler: h, checker: checker}
}

// RegisterRoutes registers settings API routes. The whole feature is
// restricted to administrative roles.
func (m *SettingsModule) RegisterRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings", middleware.RequireView(m.checker, domain.FeatureSettings))

	departments := settings.Group("/departments")
	departments.GET("", m.handler.ListDepartments)
	departments.POST("", m.handler.CreateDepartment)
	departments.PUT("/:id", m.handler.UpdateDepartment)
	departments.DELETE("/:id", m.handler.DeleteDepartment)

	positions := settings.Group("/positions")
	positions.GET("", m.handler.ListPositions)
	positions.POST("", m.handler.CreatePosition)
	positions.PUT("/:id", m.handler.UpdatePosition)
	positions.DELETE("/:id", m.handler.DeletePosition)

	categories := settings.Group("/document-categories")
	categories.GET("", m.handler.ListDocumentCategories)
	categories.POST("", m.handler.CreateDocumentCategory)
	categories.PUT("/:id", m.handler.UpdateDocumentCategory)
	categories.DELETE("/:id", m.handler.DeleteDocumentCategory)

	policies := settings.Group("/break-policies")
	policies.GET("", m.handler.ListBreakPolicies)
	policies.POST("", m.handler.CreateBreakPolicy)
	policies.PUT("/:id", m.handler.UpdateBreakPolicy)
	policies.DELETE("/:id", m.handler.DeleteBreakPolicy)
}
