package calendar

import (
	"context"
	"time"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

// Allowed fields for sorting and filtering event lists.
var (
	allowedSortFields   = []string{"id", "title", "starts_at", "created_at"}
	allowedFilterFields = []string{"title", "all_day", "created_by"}
)

// eventRepository implements domain.EventRepository using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewRepository creates an EventRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &e, nil
}

func (r *eventRepository) List(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Event], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Event{}).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var events []domain.Event
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&events).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPage(events, total, req), nil
}

// ListRange returns events intersecting [from, to], ordered by start time.
func (r *eventRepository) ListRange(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	var events []domain.Event
	err := r.db.WithContext(ctx).
		Where("starts_at <= ? AND ends_at >= ?", to, from).
		Order("starts_at").
		Find(&events).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Event{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
