package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

// SettingsHandler handles REST API requests for the four settings entities.
type SettingsHandler struct {
	svc domain.SettingsService
}

// NewHandler creates a SettingsHandler with the given service.
func NewHandler(svc domain.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    data,
	})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return 0, false
	}
	return id, true
}

// CreateDepartment handles POST /api/v1/settings/departments.
func (h *SettingsHandler) CreateDepartment(c *gin.Context) {
	var req DepartmentInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	d, err := h.svc.CreateDepartment(c.Request.Context(), req.Name)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	created(c, d)
}

// ListDepartments handles GET /api/v1/settings/departments.
func (h *SettingsHandler) ListDepartments(c *gin.Context) {
	result, err := h.svc.ListDepartments(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// UpdateDepartment handles PUT /api/v1/settings/departments/:id.
func (h *SettingsHandler) UpdateDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DepartmentInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	d, err := h.svc.UpdateDepartment(c.Request.Context(), id, req.Name)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, d)
}

// DeleteDepartment handles DELETE /api/v1/settings/departments/:id.
func (h *SettingsHandler) DeleteDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteDepartment(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// CreatePosition handles POST /api/v1/settings/positions.
func (h *SettingsHandler) CreatePosition(c *gin.Context) {
	var req PositionInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.CreatePosition(c.Request.Context(), req.Name, req.DepartmentID)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	created(c, p)
}

// ListPositions handles GET /api/v1/settings/positions.
func (h *SettingsHandler) ListPositions(c *gin.Context) {
	result, err := h.svc.ListPositions(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// UpdatePosition handles PUT /api/v1/settings/positions/:id.
func (h *SettingsHandler) UpdatePosition(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req PositionInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.UpdatePosition(c.Request.Context(), id, req.Name, req.DepartmentID)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, p)
}

// DeletePosition handles DELETE /api/v1/settings/positions/:id.
func (h *SettingsHandler) DeletePosition(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeletePosition(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// CreateDocumentCategory handles POST /api/v1/settings/document-categories.
func (h *SettingsHandler) CreateDocumentCategory(c *gin.Context) {
	var req DocumentCategoryInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	dc, err := h.svc.CreateDocumentCategory(c.Request.Context(), req.Name, req.RequiresExpiry)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	created(c, dc)
}

// ListDocumentCategories handles GET /api/v1/settings/document-categories.
func (h *SettingsHandler) ListDocumentCategories(c *gin.Context) {
	result, err := h.svc.ListDocumentCategories(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// UpdateDocumentCategory handles PUT /api/v1/settings/document-categories/:id.
func (h *SettingsHandler) UpdateDocumentCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DocumentCategoryInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	dc, err := h.svc.UpdateDocumentCategory(c.Request.Context(), id, req.Name, req.RequiresExpiry)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, dc)
}

// DeleteDocumentCategory handles DELETE /api/v1/settings/document-categories/:id.
func (h *SettingsHandler) DeleteDocumentCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteDocumentCategory(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// CreateBreakPolicy handles POST /api/v1/settings/break-policies.
func (h *SettingsHandler) CreateBreakPolicy(c *gin.Context) {
	var req BreakPolicyInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	b, err := h.svc.CreateBreakPolicy(c.Request.Context(), req.Name, req.DurationMinutes, req.Paid)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	created(c, b)
}

// ListBreakPolicies handles GET /api/v1/settings/break-policies.
func (h *SettingsHandler) ListBreakPolicies(c *gin.Context) {
	result, err := h.svc.ListBreakPolicies(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// UpdateBreakPolicy handles PUT /api/v1/settings/break-policies/:id.
func (h *SettingsHandler) UpdateBreakPolicy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req BreakPolicyInput
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	b, err := h.svc.UpdateBreakPolicy(c.Request.Context(), id, req.Name, req.DurationMinutes, req.Paid)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, b)
}

// DeleteBreakPolicy handles DELETE /api/v1/settings/break-policies/:id.
func (h *SettingsHandler) DeleteBreakPolicy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteBreakPolicy(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
