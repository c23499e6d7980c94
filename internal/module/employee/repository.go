package employee

import (
	"context"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "first_name", "last_name", "email", "status", "created_at"}
	allowedFilterFields = []string{"first_name", "last_name", "email", "status", "department_id", "position_id"}
)

// employeeRepository implements domain.EmployeeRepository using GORM.
type employeeRepository struct {
	db *gorm.DB
}

// NewRepository creates an EmployeeRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create inserts an employee together with its nested sections and
// documents in one transaction via GORM association handling.
func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an employee with all nested sections preloaded.
func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*domain.Employee, error) {
	var e domain.Employee
	err := r.db.WithContext(ctx).
		Preload("NextOfKin").
		Preload("EmergencyContact").
		Preload("Contract").
		Preload("Payment").
		Preload("Property").
		Preload("Documents").
		First(&e, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &e, nil
}

// List returns a paginated, sorted, and filtered list of employees without
// nested sections.
func (r *employeeRepository) List(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Employee], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Employee{}).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var employees []domain.Employee
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&employees).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPage(employees, total, req), nil
}

// ListActiveWithContracts returns all active employees with their contracts
// preloaded, for payroll processing.
func (r *employeeRepository) ListActiveWithContracts(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Contract").
		Where("status = ?", domain.EmploymentActive).
		Order("id").
		Find(&employees).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return employees, nil
}

// Update saves changes to an existing employee and its loaded sections.
func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(e).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes an employee and its dependent rows.
func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		for _, dep := range []any{
			&domain.NextOfKin{}, &domain.EmergencyContact{}, &domain.EmploymentContract{},
			&domain.PaymentProfile{}, &domain.PropertyItem{}, &domain.EmployeeDocument{},
		} {
			if err := tx.Where("employee_id = ?", id).Delete(dep).Error; err != nil {
				return pkg.MapDBError(err)
			}
		}
		result := tx.Delete(&domain.Employee{}, id)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// CountByDepartment returns how many employees belong to a department.
func (r *employeeRepository) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).
		Where("department_id = ?", departmentID).Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

// CountByPosition returns how many employees hold a position.
func (r *employeeRepository) CountByPosition(ctx context.Context, positionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).
		Where("position_id = ?", positionID).Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

// CountDocumentsByCategory returns how many employee documents reference a
// document category.
func (r *employeeRepository) CountDocumentsByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.EmployeeDocument{}).
		Where("category_id = ?", categoryID).Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}
