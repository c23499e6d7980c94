package calendar

import (
	"context"
	"strings"
	"time"

	"github.com/simp-lee/pagination"

	"github.com/peoplekit/portal/internal/domain"
)

// eventService implements domain.EventService.
type eventService struct {
	repo domain.EventRepository
}

// NewService creates an EventService with the given repository.
func NewService(repo domain.EventRepository) domain.EventService {
	return &eventService{repo: repo}
}

func validateEvent(e *domain.Event) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return domain.NewAppError(domain.CodeValidation, "title is required", nil)
	}
	if e.StartsAt.IsZero() || e.EndsAt.IsZero() {
		return domain.NewAppError(domain.CodeValidation, "start and end times are required", nil)
	}
	if e.EndsAt.Before(e.StartsAt) {
		return domain.NewAppError(domain.CodeValidation, "end time must not be before start time", nil)
	}
	return nil
}

// CreateEvent validates and persists a calendar event.
func (s *eventService) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if err := validateEvent(e); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetEvent retrieves an event by ID.
func (s *eventService) GetEvent(ctx context.Context, id uint) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// ListEvents returns a paginated list of events.
func (s *eventService) ListEvents(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Event], error) {
	return s.repo.List(ctx, req)
}

// ListRange returns all events intersecting [from, to]. The range is capped
// at one year to keep the month and week views from requesting everything.
func (s *eventService) ListRange(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	if from.IsZero() || to.IsZero() {
		return nil, domain.NewAppError(domain.CodeValidation, "from and to are required", nil)
	}
	if to.Before(from) {
		return nil, domain.NewAppError(domain.CodeValidation, "to must not be before from", nil)
	}
	if to.Sub(from) > 366*24*time.Hour {
		return nil, domain.NewAppError(domain.CodeValidation, "range must not exceed one year", nil)
	}
	return s.repo.ListRange(ctx, from, to)
}

// UpdateEvent validates and saves changes to an existing event.
func (s *eventService) UpdateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	existing, err := s.repo.GetByID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	if err := validateEvent(e); err != nil {
		return nil, err
	}

	e.CreatedBy = existing.CreatedBy
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEvent removes an event.
func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
