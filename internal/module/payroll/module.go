package payroll

import (
	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
)

// PayrollModule implements the app.Module interface for payroll.
type PayrollModule struct {
	handler *PayrollHandler
	checker domain.PermissionChecker
}

// NewModule creates a PayrollModule. Panics if h or checker is nil.
func NewModule(h *PayrollHandler, checker domain.PermissionChecker) *PayrollModule {
	if h == nil {
		panic("payroll.NewModule: handler must not be nil")
	}
	if checker == nil {
		panic("payroll.NewModule: checker must not be nil")
	}
	return &PayrollModule{handler: h, checker: checker}
}

// RegisterRoutes registers payroll API routes. Employees can read payslips;
// running payroll requires company-wide access.
func (m *PayrollModule) RegisterRoutes(api *gin.RouterGroup) {
	payroll := api.Group("/payroll", middleware.RequireView(m.checker, domain.FeaturePayroll))

	periods := payroll.Group("/periods")
	periods.GET("", m.handler.ListPeriods)
	periods.GET("/:id", m.handler.GetPeriod)

	runs := periods.Group("", middleware.RequireViewAll(m.checker, domain.FeaturePayroll))
	runs.POST("", m.handler.CreatePeriod)
	runs.POST("/:id/process", m.handler.ProcessPeriod)
	runs.POST("/:id/pay", m.handler.MarkPaid)
	runs.GET("/:id/export", m.handler.ExportPeriod)

	payslips := payroll.Group("/payslips")
	payslips.GET("", m.handler.ListPayslips)
	payslips.GET("/:id", m.handler.GetPayslip)
}
