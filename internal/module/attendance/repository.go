package attendance

import (
	"context"
	"time"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "date", "status", "created_at"}
	allowedFilterFields = []string{"employee_id", "status", "location"}
)

// offsiteRepository implements domain.OffsiteRepository using GORM.
type offsiteRepository struct {
	db *gorm.DB
}

// NewRepository creates an OffsiteRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.OffsiteRepository {
	return &offsiteRepository{db: db}
}

// Create inserts a new offsite request.
func (r *offsiteRepository) Create(ctx context.Context, req *domain.OffsiteRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an offsite request by its primary key.
func (r *offsiteRepository) GetByID(ctx context.Context, id uint) (*domain.OffsiteRequest, error) {
	var req domain.OffsiteRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &req, nil
}

// dateRange narrows the list to requests dated within the optional
// date_from/date_to filters. Unparseable values are ignored like unknown
// filter keys.
func dateRange(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v := req.Filter["date_from"]; v != "" {
			if t, err := time.Parse(domain.DateLayout, v); err == nil {
				db = db.Where("date >= ?", t)
			}
		}
		if v := req.Filter["date_to"]; v != "" {
			if t, err := time.Parse(domain.DateLayout, v); err == nil {
				db = db.Where("date <= ?", t)
			}
		}
		return db
	}
}

// List returns a paginated, sorted, and filtered list of offsite requests.
func (r *offsiteRepository) List(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.OffsiteRequest], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.OffsiteRequest{}).
		Scopes(pkg.Filter(req, allowedFilterFields), dateRange(req))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var requests []domain.OffsiteRequest
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&requests).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPage(requests, total, req), nil
}

// Update saves changes to an existing offsite request.
func (r *offsiteRepository) Update(ctx context.Context, req *domain.OffsiteRequest) error {
	if err := r.db.WithContext(ctx).Save(req).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}
