package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/simp-lee/pagination"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/metrics"
)

// offsiteService implements domain.OffsiteService.
type offsiteService struct {
	repo domain.OffsiteRepository
	now  func() time.Time
}

// NewService creates an OffsiteService with the given repository.
func NewService(repo domain.OffsiteRepository) domain.OffsiteService {
	return &offsiteService{repo: repo, now: time.Now}
}

// Request validates and persists a new offsite request in pending status.
func (s *offsiteService) Request(ctx context.Context, r *domain.OffsiteRequest) (*domain.OffsiteRequest, error) {
	r.Location = strings.TrimSpace(r.Location)
	if r.EmployeeID == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "employee is required", nil)
	}
	if r.Date.IsZero() {
		return nil, domain.NewAppError(domain.CodeValidation, "date is required", nil)
	}
	if r.Location == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "location is required", nil)
	}

	r.Status = domain.RequestPending
	r.ReviewedBy = nil
	r.ReviewedAt = nil
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetRequest retrieves an offsite request by ID.
func (s *offsiteService) GetRequest(ctx context.Context, id uint) (*domain.OffsiteRequest, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRequests returns a paginated list of offsite requests.
func (s *offsiteService) ListRequests(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.OffsiteRequest], error) {
	return s.repo.List(ctx, req)
}

// Approve moves a pending request to approved. Any other starting state
// is a conflict.
func (s *offsiteService) Approve(ctx context.Context, id, reviewerID uint, note string) (*domain.OffsiteRequest, error) {
	return s.review(ctx, id, reviewerID, note, domain.RequestApproved)
}

// Reject moves a pending request to rejected.
func (s *offsiteService) Reject(ctx context.Context, id, reviewerID uint, note string) (*domain.OffsiteRequest, error) {
	return s.review(ctx, id, reviewerID, note, domain.RequestRejected)
}

func (s *offsiteService) review(ctx context.Context, id, reviewerID uint, note, outcome string) (*domain.OffsiteRequest, error) {
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

	metrics.RequestsReviewed.WithLabelValues("offsite", outcome).Inc()
	return r, nil
}

// Cancel withdraws a pending request. Only the requester can cancel, and
// only while the request is still pending.
func (s *offsiteService) Cancel(ctx context.Context, id, actorID uint) (*domain.OffsiteRequest, error) {
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
