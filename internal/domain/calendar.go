package domain

import (
	"context"
	"time"

	"github.com/simp-lee/pagination"
)

// Event is a company calendar entry (holiday, meeting, deadline).
type Event struct {
	BaseModel
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	StartsAt    time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt      time.Time `gorm:"not null" json:"ends_at"`
	AllDay      bool      `gorm:"not null;default:false" json:"all_day"`
	CreatedBy   uint      `gorm:"not null" json:"created_by"`
}

// EventRepository defines the data access interface for calendar events.
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	List(ctx context.Context, req PageRequest) (*pagination.Pagination[Event], error)
	ListRange(ctx context.Context, from, to time.Time) ([]Event, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id uint) error
}

// EventService defines the business logic interface for calendar events.
type EventService interface {
	CreateEvent(ctx context.Context, e *Event) (*Event, error)
	GetEvent(ctx context.Context, id uint) (*Event, error)
	ListEvents(ctx context.Context, req PageRequest) (*pagination.Pagination[Event], error)
	ListRange(ctx context.Context, from, to time.Time) ([]Event, error)
	UpdateEvent(ctx context.Context, e *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}
