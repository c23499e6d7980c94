package settings

// DepartmentInput is the payload for creating or updating a department.
type DepartmentInput struct {
	Name string `json:"name" binding:"required,max=100"`
}

// PositionInput is the payload for creating or updating a position.
type PositionInput struct {
	Name         string `json:"name" binding:"required,max=100"`
	DepartmentID *uint  `json:"department_id"`
}

// DocumentCategoryInput is the payload for creating or updating a document
// category.
type DocumentCategoryInput struct {
	Name           string `json:"name" binding:"required,max=100"`
	RequiresExpiry bool   `json:"requires_expiry"`
}

// BreakPolicyInput is the payload for creating or updating a break policy.
type BreakPolicyInput struct {
	Name            string `json:"name" binding:"required,max=100"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gte=1"`
	Paid            bool   `json:"paid"`
}
