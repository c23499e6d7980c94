package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/simp-lee/pagination"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/metrics"
)

// leaveService implements domain.LeaveService.
type leaveService struct {
	repo domain.LeaveRepository
	now  func() time.Time
}

// NewService creates a LeaveService with the given repository.
func NewService(repo domain.LeaveRepository) domain.LeaveService {
	return &leaveService{repo: repo, now: time.Now}
}

// CreateType creates a leave category.
func (s *leaveService) CreateType(ctx context.Context, name string, maxDays int, paid bool) (*domain.LeaveType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if maxDays <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "max days must be positive", nil)
	}

	t := &domain.LeaveType{Name: name, MaxDays: maxDays, Paid: paid}
	if err := s.repo.CreateType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTypes returns all leave categories.
func (s *leaveService) ListTypes(ctx context.Context) ([]domain.LeaveType, error) {
	return s.repo.ListTypes(ctx)
}

// UpdateType updates a leave category.
func (s *leaveService) UpdateType(ctx context.Context, id uint, name string, maxDays int, paid bool) (*domain.LeaveType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if maxDays <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "max days must be positive", nil)
	}

	t, err := s.repo.GetTypeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Name = name
	t.MaxDays = maxDays
	t.Paid = paid
	if err := s.repo.UpdateType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteType removes a leave category. Categories referenced by any leave
// request cannot be deleted.
func (s *leaveService) DeleteType(ctx context.Context, id uint) error {
	if _, err := s.repo.GetTypeByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountRequestsByType(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewAppError(domain.CodeConflict, "Cannot delete: in use", nil)
	}

	return s.repo.DeleteType(ctx, id)
}

// Request validates and persists a new leave request in pending status.
func (s *leaveService) Request(ctx context.Context, r *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	if r.EmployeeID == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "employee is required", nil)
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return nil, domain.NewAppError(domain.CodeValidation, "start and end dates are required", nil)
	}
	if r.EndDate.Before(r.StartDate) {
		return nil, domain.NewAppError(domain.CodeValidation, "end date must not be before start date", nil)
	}

	lt, err := s.repo.GetTypeByID(ctx, r.LeaveTypeID)
	if err != nil {
		return nil, err
	}
	if days := r.Days(); days > lt.MaxDays {
		msg := fmt.Sprintf("%s allows at most %d days, requested %d", lt.Name, lt.MaxDays, days)
		return nil, domain.NewAppError(domain.CodeValidation, msg, nil)
	}

	overlapping, err := s.repo.FindOverlapping(ctx, r.EmployeeID, r.StartDate, r.EndDate)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, domain.NewAppError(domain.CodeConflict, "overlaps an existing leave request", nil)
	}

	r.Status = domain.RequestPending
	r.ReviewedBy = nil
	r.ReviewedAt = nil
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetRequest retrieves a leave request by ID.
func (s *leaveService) GetRequest(ctx context.Context, id uint) (*domain.LeaveRequest, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRequests returns a paginated list of leave requests.
func (s *leaveService) ListRequests(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.LeaveRequest], error) {
	return s.repo.List(ctx, req)
}

// Approve moves a pending request to approved.
func (s *leaveService) Approve(ctx context.Context, id, reviewerID uint, note string) (*domain.LeaveRequest, error) {
	return s.review(ctx, id, reviewerID, note, domain.RequestApproved)
}

// Reject moves a pending request to rejected.
func (s *leaveService) Reject(ctx context.Context, id, reviewerID uint, note string) (*domain.LeaveRequest, error) {
	return s.review(ctx, id, reviewerID, note, domain.RequestRejected)
}

func (s *leaveService) review(ctx context.Context, id, reviewerID uint, note, outcome string) (*domain.LeaveRequest, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.RequestPending {
		return nil, domain.NewAppError(domain.CodeConflict, "request has already been "+r.Status, nil)
	}

	now := s.now()
	r.Status = outcome
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	r.ReviewNote = strings.TrimSpace(note)
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	metrics.RequestsReviewed.WithLabelValues("leave", outcome).Inc()
	return r, nil
}

// Cancel withdraws a pending request. Only the requester can cancel.
func (s *leaveService) Cancel(ctx context.Context, id, actorID uint) (*domain.LeaveRequest, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.RequestedBy != actorID {
		return nil, domain.NewAppError(domain.CodeForbidden, "only the requester can cancel this request", nil)
	}
	if r.Status != domain.RequestPending {
		return nil, domain.NewAppError(domain.CodeConflict, "request has already been "+r.Status, nil)
	}

	r.Status = domain.RequestCancelled
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
