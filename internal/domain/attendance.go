package domain

import (
	"context"
	"time"

	"github.com/simp-lee/pagination"
)

// Request statuses shared by offsite and leave workflows.
//
// The only legal transitions are pending → approved, pending → rejected,
// and pending → cancelled (by the requester). Everything else is a
// conflict.
const (
	RequestPending   = "pending"
	RequestApproved  = "approved"
	RequestRejected  = "rejected"
	RequestCancelled = "cancelled"
)

// OffsiteRequest is a request to work away from the office for one day.
type OffsiteRequest struct {
	BaseModel
	EmployeeID  uint       `gorm:"index;not null" json:"employee_id"`
	Date        time.Time  `gorm:"not null;index" json:"date"`
	Location    string     `gorm:"size:200;not null" json:"location"`
	Reason      string     `gorm:"size:500" json:"reason"`
	Status      string     `gorm:"size:16;not null;default:pending;index" json:"status"`
	RequestedBy uint       `gorm:"not null" json:"requested_by"`
	ReviewedBy  *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote  string     `gorm:"size:500" json:"review_note"`
}

// OffsiteRepository defines the data access interface for offsite requests.
type OffsiteRepository interface {
	Create(ctx context.Context, r *OffsiteRequest) error
	GetByID(ctx context.Context, id uint) (*OffsiteRequest, error)
	List(ctx context.Context, req PageRequest) (*pagination.Pagination[OffsiteRequest], error)
	Update(ctx context.Context, r *OffsiteRequest) error
}

// OffsiteService defines the business logic interface for offsite requests.
type OffsiteService interface {
	Request(ctx context.Context, r *OffsiteRequest) (*OffsiteRequest, error)
	GetRequest(ctx context.Context, id uint) (*OffsiteRequest, error)
	ListRequests(ctx context.Context, req PageRequest) (*pagination.Pagination[OffsiteRequest], error)
	Approve(ctx context.Context, id, reviewerID uint, note string) (*OffsiteRequest, error)
	Reject(ctx context.Context, id, reviewerID uint, note string) (*OffsiteRequest, error)
	Cancel(ctx context.Context, id, actorID uint) (*OffsiteRequest, error)
}
