package settings

import (
	"context"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

// All four settings entities share the same list surface: sortable by id,
// name, and creation time, filterable by name.
var (
	allowedSortFields   = []string{"id", "name", "created_at"}
	allowedFilterFields = []string{"name"}
)

// settingsRepository implements domain.SettingsRepository using GORM.
type settingsRepository struct {
	db *gorm.DB
}

// NewRepository creates a SettingsRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.SettingsRepository {
	return &settingsRepository{db: db}
}

func create[T any](ctx context.Context, db *gorm.DB, v *T) error {
	if err := db.WithContext(ctx).Create(v).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func getByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var v T
	if err := db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &v, nil
}

func list[T any](ctx context.Context, db *gorm.DB, req domain.PageRequest) (*pagination.Pagination[T], error) {
	var total int64
	base := db.WithContext(ctx).Model(new(T)).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var items []T
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&items).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPage(items, total, req), nil
}

func save[T any](ctx context.Context, db *gorm.DB, v *T) error {
	if err := db.WithContext(ctx).Save(v).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func remove[T any](ctx context.Context, db *gorm.DB, id uint) error {
	result := db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *settingsRepository) CreateDepartment(ctx context.Context, d *domain.Department) error {
	return create(ctx, r.db, d)
}

func (r *settingsRepository) GetDepartment(ctx context.Context, id uint) (*domain.Department, error) {
	return getByID[domain.Department](ctx, r.db, id)
}

func (r *settingsRepository) ListDepartments(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Department], error) {
	return list[domain.Department](ctx, r.db, req)
}

func (r *settingsRepository) UpdateDepartment(ctx context.Context, d *domain.Department) error {
	return save(ctx, r.db, d)
}

func (r *settingsRepository) DeleteDepartment(ctx context.Context, id uint) error {
	return remove[domain.Department](ctx, r.db, id)
}

func (r *settingsRepository) CreatePosition(ctx context.Context, p *domain.Position) error {
	return create(ctx, r.db, p)
}

func (r *settingsRepository) GetPosition(ctx context.Context, id uint) (*domain.Position, error) {
	return getByID[domain.Position](ctx, r.db, id)
}

func (r *settingsRepository) ListPositions(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Position], error) {
	return list[domain.Position](ctx, r.db, req)
}

func (r *settingsRepository) UpdatePosition(ctx context.Context, p *domain.Position) error {
	return save(ctx, r.db, p)
}

func (r *settingsRepository) DeletePosition(ctx context.Context, id uint) error {
	return remove[domain.Position](ctx, r.db, id)
}

func (r *settingsRepository) CreateDocumentCategory(ctx context.Context, c *domain.DocumentCategory) error {
	return create(ctx, r.db, c)
}

func (r *settingsRepository) GetDocumentCategory(ctx context.Context, id uint) (*domain.DocumentCategory, error) {
	return getByID[domain.DocumentCategory](ctx, r.db, id)
}

func (r *settingsRepository) ListDocumentCategories(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.DocumentCategory], error) {
	return list[domain.DocumentCategory](ctx, r.db, req)
}

func (r *settingsRepository) UpdateDocumentCategory(ctx context.Context, c *domain.DocumentCategory) error {
	return save(ctx, r.db, c)
}

func (r *settingsRepository) DeleteDocumentCategory(ctx context.Context, id uint) error {
	return remove[domain.DocumentCategory](ctx, r.db, id)
}

func (r *settingsRepository) CreateBreakPolicy(ctx context.Context, b *domain.BreakPolicy) error {
	return create(ctx, r.db, b)
}

func (r *settingsRepository) GetBreakPolicy(ctx context.Context, id uint) (*domain.BreakPolicy, error) {
	return getByID[domain.BreakPolicy](ctx, r.db, id)
}

func (r *settingsRepository) ListBreakPolicies(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.BreakPolicy], error) {
	return list[domain.BreakPolicy](ctx, r.db, req)
}

func (r *settingsRepository) UpdateBreakPolicy(ctx context.Context, b *domain.BreakPolicy) error {
	return save(ctx, r.db, b)
}

func (r *settingsRepository) DeleteBreakPolicy(ctx context.Context, id uint) error {
	return remove[domain.BreakPolicy](ctx, r.db, id)
}
