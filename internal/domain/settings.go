package domain

import (
	"context"

	"github.com/simp-lee/pagination"
)

// Department is an organizational unit employees belong to.
type Department struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

// Position is a job title, optionally scoped to a department.
type Position struct {
	BaseModel
	Name         string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	DepartmentID *uint  `gorm:"index" json:"department_id,omitempty"`
}

// DocumentCategory classifies employee documents (passport, certificate, ...).
type DocumentCategory struct {
	BaseModel
	Name           string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	RequiresExpiry bool   `gorm:"not null;default:false" json:"requires_expiry"`
}

// BreakPolicy configures a daily break window.
type BreakPolicy struct {
	BaseModel
	Name            string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	DurationMinutes int    `gorm:"not null" json:"duration_minutes"`
	Paid            bool   `gorm:"not null;default:true" json:"paid"`
}

// SettingsRepository defines the data access interface for the four settings
// entities. The List methods share the standard page-request contract.
type SettingsRepository interface {
	CreateDepartment(ctx context.Context, d *Department) error
	GetDepartment(ctx context.Context, id uint) (*Department, error)
	ListDepartments(ctx context.Context, req PageRequest) (*pagination.Pagination[Department], error)
	UpdateDepartment(ctx context.Context, d *Department) error
	DeleteDepartment(ctx context.Context, id uint) error

	CreatePosition(ctx context.Context, p *Position) error
	GetPosition(ctx context.Context, id uint) (*Position, error)
	ListPositions(ctx context.Context, req PageRequest) (*pagination.Pagination[Position], error)
	UpdatePosition(ctx context.Context, p *Position) error
	DeletePosition(ctx context.Context, id uint) error

	CreateDocumentCategory(ctx context.Context, c *DocumentCategory) error
	GetDocumentCategory(ctx context.Context, id uint) (*DocumentCategory, error)
	ListDocumentCategories(ctx context.Context, req PageRequest) (*pagination.Pagination[DocumentCategory], error)
	UpdateDocumentCategory(ctx context.Context, c *DocumentCategory) error
	DeleteDocumentCategory(ctx context.Context, id uint) error

	CreateBreakPolicy(ctx context.Context, b *BreakPolicy) error
	GetBreakPolicy(ctx context.Context, id uint) (*BreakPolicy, error)
	ListBreakPolicies(ctx context.Context, req PageRequest) (*pagination.Pagination[BreakPolicy], error)
	UpdateBreakPolicy(ctx context.Context, b *BreakPolicy) error
	DeleteBreakPolicy(ctx context.Context, id uint) error
}

// SettingsService defines the business logic interface for settings.
// Deleting reference data still in use by employees or requests is a
// conflict, never a cascade.
type SettingsService interface {
	CreateDepartment(ctx context.Context, name string) (*Department, error)
	ListDepartments(ctx context.Context, req PageRequest) (*pagination.Pagination[Department], error)
	UpdateDepartment(ctx context.Context, id uint, name string) (*Department, error)
	DeleteDepartment(ctx context.Context, id uint) error

	CreatePosition(ctx context.Context, name string, departmentID *uint) (*Position, error)
	ListPositions(ctx context.Context, req PageRequest) (*pagination.Pagination[Position], error)
	UpdatePosition(ctx context.Context, id uint, name string, departmentID *uint) (*Position, error)
	DeletePosition(ctx context.Context, id uint) error

	CreateDocumentCategory(ctx context.Context, name string, requiresExpiry bool) (*DocumentCategory, error)
	ListDocumentCategories(ctx context.Context, req PageRequest) (*pagination.Pagination[DocumentCategory], error)
	UpdateDocumentCategory(ctx context.Context, id uint, name string, requiresExpiry bool) (*DocumentCategory, error)
	DeleteDocumentCategory(ctx context.Context, id uint) error

	CreateBreakPolicy(ctx context.Context, name string, durationMinutes int, paid bool) (*BreakPolicy, error)
	ListBreakPolicies(ctx context.Context, req PageRequest) (*pagination.Pagination[BreakPolicy], error)
	UpdateBreakPolicy(ctx context.Context, id uint, name string, durationMinutes int, paid bool) (*BreakPolicy, error)
	DeleteBreakPolicy(ctx context.Context, id uint) error
}
