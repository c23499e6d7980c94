package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simp-lee/pagination"

	"github.com/peoplekit/portal/internal/config"
	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/metrics"
)

// payrollService implements domain.PayrollService.
type payrollService struct {
	repo      domain.PayrollRepository
	employees domain.EmployeeRepository
	compute   *computer
}

// NewService creates a PayrollService. The payroll configuration supplies
// tax bands and deduction rates for payslip computation.
func NewService(repo domain.PayrollRepository, employees domain.EmployeeRepository, cfg config.PayrollConfig) domain.PayrollService {
	return &payrollService{
		repo:      repo,
		employees: employees,
		compute:   newComputer(cfg),
	}
}

// CreatePeriod creates a draft period for the given year and month. Year and
// month pairs are unique; a duplicate surfaces as an already-exists error.
func (s *payrollService) CreatePeriod(ctx context.Context, year, month int) (*domain.PayrollPeriod, error) {
	if year < 2000 || year > 2100 {
		return nil, domain.NewAppError(domain.CodeValidation, "year must be between 2000 and 2100", nil)
	}
	if month < 1 || month > 12 {
		return nil, domain.NewAppError(domain.CodeValidation, "month must be between 1 and 12", nil)
	}

	p := &domain.PayrollPeriod{Year: year, Month: month, Status: domain.PeriodDraft}
	if err := s.repo.CreatePeriod(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPeriod retrieves a period by ID.
func (s *payrollService) GetPeriod(ctx context.Context, id uint) (*domain.PayrollPeriod, error) {
	return s.repo.GetPeriodByID(ctx, id)
}

// ListPeriods returns a paginated list of periods.
func (s *payrollService) ListPeriods(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.PayrollPeriod], error) {
	return s.repo.ListPeriods(ctx, req)
}

// ProcessPeriod computes a payslip for every active employee with a contract
// and moves the period from draft to processed. A draft period can be
// processed again; earlier payslips are replaced wholesale.
func (s *payrollService) ProcessPeriod(ctx context.Context, id uint) (*domain.PayrollPeriod, error) {
	p, err := s.repo.GetPeriodByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PeriodDraft {
		return nil, domain.NewAppError(domain.CodeConflict, "period has already been "+p.Status, nil)
	}

	employees, err := s.employees.ListActiveWithContracts(ctx)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, domain.NewAppError(domain.CodeConflict, "no active employees with contracts to process", nil)
	}

	slips := make([]domain.Payslip, 0, len(employees))
	totalGross := decimal.Zero
	totalNet := decimal.Zero
	for i := range employees {
		e := &employees[i]
		if e.Contract == nil {
			continue
		}
		slip := s.compute.payslip(p.ID, e)
		totalGross = totalGross.Add(slip.Gross)
		totalNet = totalNet.Add(slip.Net)
		slips = append(slips, slip)
	}

	p.Status = domain.PeriodProcessed
	p.EmployeeCount = len(slips)
	p.TotalGross = totalGross
	p.TotalNet = totalNet
	if err := s.repo.ReplacePayslips(ctx, p, slips); err != nil {
		return nil, err
	}

	metrics.PayrollPeriodsProcessed.Inc()
	metrics.PayslipsGenerated.Add(float64(len(slips)))
	return p, nil
}

// MarkPaid moves a processed period to paid. Draft and already-paid periods
// are conflicts.
func (s *payrollService) MarkPaid(ctx context.Context, id uint) (*domain.PayrollPeriod, error) {
	p, err := s.repo.GetPeriodByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PeriodProcessed {
		return nil, domain.NewAppError(domain.CodeConflict,
			fmt.Sprintf("period is %s, only processed periods can be marked paid", p.Status), nil)
	}

	p.Status = domain.PeriodPaid
	if err := s.repo.UpdatePeriod(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPayslip retrieves a payslip by ID.
func (s *payrollService) GetPayslip(ctx context.Context, id uint) (*domain.Payslip, error) {
	return s.repo.GetPayslipByID(ctx, id)
}

// ListPayslips returns a paginated list of payslips.
func (s *payrollService) ListPayslips(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Payslip], error) {
	return s.repo.ListPayslips(ctx, req)
}

// ExportPeriod renders the period's payslips as an xlsx workbook and returns
// the file bytes plus a suggested filename. Draft periods have nothing to
// export.
func (s *payrollService) ExportPeriod(ctx context.Context, periodID uint) ([]byte, string, error) {
	p, err := s.repo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return nil, "", err
	}
	if p.Status == domain.PeriodDraft {
		return nil, "", domain.NewAppError(domain.CodeConflict, "period has not been processed yet", nil)
	}

	slips, err := s.repo.PayslipsForPeriod(ctx, periodID)
	if err != nil {
		return nil, "", err
	}

	data, err := renderWorkbook(p, slips)
	if err != nil {
		return nil, "", domain.NewAppError(domain.CodeInternal, "failed to render export", err)
	}

	filename := fmt.Sprintf("payroll-%04d-%02d.xlsx", p.Year, p.Month)
	return data, filename, nil
}

// periodLabel formats a period for display, e.g. "March 2026".
func periodLabel(p *domain.PayrollPeriod) string {
	return fmt.Sprintf("%s %d", time.Month(p.Month), p.Year)
}
