package payroll

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PayrollHandler handles REST API requests for payroll periods and payslips.
type PayrollHandler struct {
	svc domain.PayrollService
}

// NewHandler creates a PayrollHandler with the given service.
func NewHandler(svc domain.PayrollService) *PayrollHandler {
	return &PayrollHandler{svc: svc}
}

// CreatePeriod handles POST /api/v1/payroll/periods.
func (h *PayrollHandler) CreatePeriod(c *gin.Context) {
	var req PeriodInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.CreatePeriod(c.Request.Context(), req.Year, req.Month)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    p,
	})
}

// GetPeriod handles GET /api/v1/payroll/periods/:id.
func (h *PayrollHandler) GetPeriod(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	p, err := h.svc.GetPeriod(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}

// ListPeriods handles GET /api/v1/payroll/periods.
func (h *PayrollHandler) ListPeriods(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListPeriods(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// ProcessPeriod handles POST /api/v1/payroll/periods/:id/process.
func (h *PayrollHandler) ProcessPeriod(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	p, err := h.svc.ProcessPeriod(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}

// MarkPaid handles POST /api/v1/payroll/periods/:id/pay.
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	p, err := h.svc.MarkPaid(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}

// ExportPeriod handles GET /api/v1/payroll/periods/:id/export. The response
// is the xlsx file itself, not the JSON envelope.
func (h *PayrollHandler) ExportPeriod(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	data, filename, err := h.svc.ExportPeriod(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// GetPayslip handles GET /api/v1/payroll/payslips/:id.
func (h *PayrollHandler) GetPayslip(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	s, err := h.svc.GetPayslip(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, s)
}

// ListPayslips handles GET /api/v1/payroll/payslips.
func (h *PayrollHandler) ListPayslips(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListPayslips(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}
