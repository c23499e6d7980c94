package domain

import (
	"context"
	"time"

	"github.com/simp-lee/pagination"
)

// LeaveType is a configurable category of leave (annual, sick, ...).
type LeaveType struct {
	BaseModel
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	MaxDays int    `gorm:"not null" json:"max_days"`
	Paid    bool   `gorm:"not null;default:true" json:"paid"`
}

// LeaveRequest is a dated leave application moving through the shared
// request state machine.
type LeaveRequest struct {
	BaseModel
	EmployeeID  uint       `gorm:"index;not null" json:"employee_id"`
	LeaveTypeID uint       `gorm:"index;not null" json:"leave_type_id"`
	StartDate   time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate     time.Time  `gorm:"not null" json:"end_date"`
	Reason      string     `gorm:"size:500" json:"reason"`
	Status      string     `gorm:"size:16;not null;default:pending;index" json:"status"`
	RequestedBy uint       `gorm:"not null" json:"requested_by"`
	ReviewedBy  *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote  string     `gorm:"size:500" json:"review_note"`
}

// Days returns the inclusive calendar length of the request.
func (r *LeaveRequest) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// LeaveRepository defines the data access interface for leave.
type LeaveRepository interface {
	CreateType(ctx context.Context, t *LeaveType) error
	GetTypeByID(ctx context.Context, id uint) (*LeaveType, error)
	ListTypes(ctx context.Context) ([]LeaveType, error)
	UpdateType(ctx context.Context, t *LeaveType) error
	DeleteType(ctx context.Context, id uint) error
	CountRequestsByType(ctx context.Context, typeID uint) (int64, error)

	Create(ctx context.Context, r *LeaveRequest) error
	GetByID(ctx context.Context, id uint) (*LeaveRequest, error)
	List(ctx context.Context, req PageRequest) (*pagination.Pagination[LeaveRequest], error)
	Update(ctx context.Context, r *LeaveRequest) error
	FindOverlapping(ctx context.Context, employeeID uint, start, end time.Time) ([]LeaveRequest, error)
}

// LeaveService defines the business logic interface for leave.
type LeaveService interface {
	CreateType(ctx context.Context, name string, maxDays int, paid bool) (*LeaveType, error)
	ListTypes(ctx context.Context) ([]LeaveType, error)
	UpdateType(ctx context.Context, id uint, name string, maxDays int, paid bool) (*LeaveType, error)
	DeleteType(ctx context.Context, id uint) error

	Request(ctx context.Context, r *LeaveRequest) (*LeaveRequest, error)
	GetRequest(ctx context.Context, id uint) (*LeaveRequest, error)
	ListRequests(ctx context.Context, req PageRequest) (*pagination.Pagination[LeaveRequest], error)
	Approve(ctx context.Context, id, reviewerID uint, note string) (*LeaveRequest, error)
	Reject(ctx context.Context, id, reviewerID uint, note string) (*LeaveRequest, error)
	Cancel(ctx context.Context, id, actorID uint) (*LeaveRequest, error)
}
