package leave

import (
	"context"
	"time"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

// Allowed fields for sorting and filtering leave request lists.
var (
	allowedSortFields   = []string{"id", "start_date", "end_date", "status", "created_at"}
	allowedFilterFields = []string{"employee_id", "leave_type_id", "status"}
)

// leaveRepository implements domain.LeaveRepository using GORM.
type leaveRepository struct {
	db *gorm.DB
}

// NewRepository creates a LeaveRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) CreateType(ctx context.Context, t *domain.LeaveType) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *leaveRepository) GetTypeByID(ctx context.Context, id uint) (*domain.LeaveType, error) {
	var t domain.LeaveType
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &t, nil
}

func (r *leaveRepository) ListTypes(ctx context.Context) ([]domain.LeaveType, error) {
	var types []domain.LeaveType
	if err := r.db.WithContext(ctx).Order("name").Find(&types).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return types, nil
}

func (r *leaveRepository) UpdateType(ctx context.Context, t *domain.LeaveType) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *leaveRepository) DeleteType(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.LeaveType{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *leaveRepository) CountRequestsByType(ctx context.Context, typeID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.LeaveRequest{}).
		Where("leave_type_id = ?", typeID).
		Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

func (r *leaveRepository) Create(ctx context.Context, req *domain.LeaveRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id uint) (*domain.LeaveRequest, error) {
	var req domain.LeaveRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &req, nil
}

func (r *leaveRepository) List(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.LeaveRequest], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.LeaveRequest{}).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var requests []domain.LeaveRequest
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&requests).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPage(requests, total, req), nil
}

func (r *leaveRepository) Update(ctx context.Context, req *domain.LeaveRequest) error {
	if err := r.db.WithContext(ctx).Save(req).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// FindOverlapping returns the employee's pending and approved requests whose
// date range intersects [start, end].
func (r *leaveRepository) FindOverlapping(ctx context.Context, employeeID uint, start, end time.Time) ([]domain.LeaveRequest, error) {
	var requests []domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{domain.RequestPending, domain.RequestApproved}).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Find(&requests).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return requests, nil
}
