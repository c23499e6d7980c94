package payroll

import (
	"context"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

// Allowed fields for sorting and filtering list queries.
var (
	periodSortFields   = []string{"id", "year", "month", "status", "created_at"}
	periodFilterFields = []string{"year", "month", "status"}

	payslipSortFields   = []string{"id", "employee_name", "gross", "net", "created_at"}
	payslipFilterFields = []string{"period_id", "employee_id", "reference"}
)

// payrollRepository implements domain.PayrollRepository using GORM.
type payrollRepository struct {
	db *gorm.DB
}

// NewRepository creates a PayrollRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) CreatePeriod(ctx context.Context, p *domain.PayrollPeriod) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *payrollRepository) GetPeriodByID(ctx context.Context, id uint) (*domain.PayrollPeriod, error) {
	var p domain.PayrollPeriod
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &p, nil
}

func (r *payrollRepository) ListPeriods(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.PayrollPeriod], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.PayrollPeriod{}).
		Scopes(pkg.Filter(req, periodFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var periods []domain.PayrollPeriod
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, periodSortFields),
	).Find(&periods).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPage(periods, total, req), nil
}

func (r *payrollRepository) UpdatePeriod(ctx context.Context, p *domain.PayrollPeriod) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// ReplacePayslips atomically swaps the period's payslips for a fresh set and
// saves the period's updated rollups. Reprocessing a draft period that was
// processed before must not leave stale slips behind.
func (r *payrollRepository) ReplacePayslips(ctx context.Context, period *domain.PayrollPeriod, slips []domain.Payslip) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("period_id = ?", period.ID).Delete(&domain.Payslip{}).Error; err != nil {
			return err
		}
		if len(slips) > 0 {
			if err := tx.Create(&slips).Error; err != nil {
				return err
			}
		}
		return tx.Save(period).Error
	})
	if err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *payrollRepository) GetPayslipByID(ctx context.Context, id uint) (*domain.Payslip, error) {
	var s domain.Payslip
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &s, nil
}

func (r *payrollRepository) ListPayslips(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Payslip], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Payslip{}).
		Scopes(pkg.Filter(req, payslipFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var slips []domain.Payslip
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, payslipSortFields),
	).Find(&slips).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPage(slips, total, req), nil
}

func (r *payrollRepository) PayslipsForPeriod(ctx context.Context, periodID uint) ([]domain.Payslip, error) {
	var slips []domain.Payslip
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("employee_name").
		Find(&slips).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return slips, nil
}
