package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

// EmployeeHandler handles REST API requests for the employee resource.
type EmployeeHandler struct {
	svc domain.EmployeeService
}

// NewHandler creates an EmployeeHandler with the given service.
func NewHandler(svc domain.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Onboard handles POST /api/v1/employees.
func (h *EmployeeHandler) Onboard(c *gin.Context) {
	var req OnboardingRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	e, err := h.svc.Onboard(c.Request.Context(), req.toDomain())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    e,
	})
}

// Get handles GET /api/v1/employees/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	e, err := h.svc.GetEmployee(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, e)
}

// List handles GET /api/v1/employees.
func (h *EmployeeHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListEmployees(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/employees/:id.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	e := req.toDomain()
	e.ID = id
	updated, err := h.svc.UpdateEmployee(c.Request.Context(), e)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, updated)
}

// Terminate handles POST /api/v1/employees/:id/terminate.
func (h *EmployeeHandler) Terminate(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	e, err := h.svc.Terminate(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, e)
}

// Delete handles DELETE /api/v1/employees/:id.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteEmployee(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
