package payroll

import (
	"bytes"
	"context"
	"testing"

	"github.com/simp-lee/pagination"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

type fakePayrollRepo struct {
	periods      map[uint]*domain.PayrollPeriod
	slips        map[uint][]domain.Payslip
	nextPeriodID uint
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		periods:      make(map[uint]*domain.PayrollPeriod),
		slips:        make(map[uint][]domain.Payslip),
		nextPeriodID: 1,
	}
}

func (f *fakePayrollRepo) CreatePeriod(_ context.Context, p *domain.PayrollPeriod) error {
	for _, existing := range f.periods {
		if existing.Year == p.Year && existing.Month == p.Month {
			return domain.NewAppError(domain.CodeAlreadyExists, "record already exists", nil)
		}
	}
	p.ID = f.nextPeriodID
	f.nextPeriodID++
	cp := *p
	f.periods[p.ID] = &cp
	return nil
}

func (f *fakePayrollRepo) GetPeriodByID(_ context.Context, id uint) (*domain.PayrollPeriod, error) {
	p, ok := f.periods[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePayrollRepo) ListPeriods(_ context.Context, req domain.PageRequest) (*pagination.Pagination[domain.PayrollPeriod], error) {
	var items []domain.PayrollPeriod
	for _, p := range f.periods {
		items = append(items, *p)
	}
	return pkg.NewPage(items, int64(len(items)), req), nil
}

func (f *fakePayrollRepo) UpdatePeriod(_ context.Context, p *domain.PayrollPeriod) error {
	if _, ok := f.periods[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.periods[p.ID] = &cp
	return nil
}

func (f *fakePayrollRepo) ReplacePayslips(_ context.Context, period *domain.PayrollPeriod, slips []domain.Payslip) error {
	if _, ok := f.periods[period.ID]; !ok {
		return domain.ErrNotFound
	}
	f.slips[period.ID] = append([]domain.Payslip(nil), slips...)
	cp := *period
	f.periods[period.ID] = &cp
	return nil
}

func (f *fakePayrollRepo) GetPayslipByID(_ context.Context, id uint) (*domain.Payslip, error) {
	for _, slips := range f.slips {
		for _, s := range slips {
			if s.ID == id {
				cp := s
				return &cp, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePayrollRepo) ListPayslips(_ context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Payslip], error) {
	var items []domain.Payslip
	for _, slips := range f.slips {
		items = append(items, slips...)
	}
	return pkg.NewPage(items, int64(len(items)), req), nil
}

func (f *fakePayrollRepo) PayslipsForPeriod(_ context.Context, periodID uint) ([]domain.Payslip, error) {
	return append([]domain.Payslip(nil), f.slips[periodID]...), nil
}

// fakeEmployeeRepo only serves ListActiveWithContracts; payroll never
// touches the rest of the employee repository.
type fakeEmployeeRepo struct {
	active []domain.Employee
}

func (f *fakeEmployeeRepo) Create(context.Context, *domain.Employee) error { return nil }
func (f *fakeEmployeeRepo) GetByID(context.Context, uint) (*domain.Employee, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeEmployeeRepo) List(_ context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Employee], error) {
	return pkg.NewPage[domain.Employee](nil, 0, req), nil
}
func (f *fakeEmployeeRepo) ListActiveWithContracts(context.Context) ([]domain.Employee, error) {
	return append([]domain.Employee(nil), f.active...), nil
}
func (f *fakeEmployeeRepo) Update(context.Context, *domain.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(context.Context, uint) error             { return nil }
func (f *fakeEmployeeRepo) CountByDepartment(context.Context, uint) (int64, error) {
	return 0, nil
}
func (f *fakeEmployeeRepo) CountByPosition(context.Context, uint) (int64, error) { return 0, nil }
func (f *fakeEmployeeRepo) CountDocumentsByCategory(context.Context, uint) (int64, error) {
	return 0, nil
}

func newTestPayroll(repo domain.PayrollRepository, employees domain.EmployeeRepository) domain.PayrollService {
	return NewService(repo, employees, testPayrollConfig())
}

func TestCreatePeriod(t *testing.T) {
	svc := newTestPayroll(newFakePayrollRepo(), &fakeEmployeeRepo{})

	p, err := svc.CreatePeriod(context.Background(), 2026, 3)
	if err != nil {
		t.Fatalf("CreatePeriod() error = %v", err)
	}
	if p.Status != domain.PeriodDraft {
		t.Errorf("status = %q; want draft", p.Status)
	}

	if _, err := svc.CreatePeriod(context.Background(), 2026, 3); !domain.IsAlreadyExists(err) {
		t.Errorf("duplicate CreatePeriod() error = %v; want already exists", err)
	}

	if _, err := svc.CreatePeriod(context.Background(), 2026, 13); !domain.IsValidation(err) {
		t.Errorf("CreatePeriod(month=13) error = %v; want validation error", err)
	}
}

func TestProcessPeriod(t *testing.T) {
	repo := newFakePayrollRepo()
	employees := &fakeEmployeeRepo{active: []domain.Employee{
		salariedEmployee(1, "Amara", "Diallo", 5000, 500),
		salariedEmployee(2, "Kofi", "Mensah", 2000, 0),
	}}
	svc := newTestPayroll(repo, employees)

	p, err := svc.CreatePeriod(context.Background(), 2026, 3)
	if err != nil {
		t.Fatalf("CreatePeriod() error = %v", err)
	}

	processed, err := svc.ProcessPeriod(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("ProcessPeriod() error = %v", err)
	}
	if processed.Status != domain.PeriodProcessed {
		t.Errorf("status = %q; want processed", processed.Status)
	}
	if processed.EmployeeCount != 2 {
		t.Errorf("employee count = %d; want 2", processed.EmployeeCount)
	}
	// 5500 gross → 4415 net; 2000 gross → tax 100, pension 100, health 40 → 1760 net.
	assertDecimal(t, "total gross", processed.TotalGross, "7500")
	assertDecimal(t, "total net", processed.TotalNet, "6175")

	slips, err := repo.PayslipsForPeriod(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("PayslipsForPeriod() error = %v", err)
	}
	if len(slips) != 2 {
		t.Fatalf("len(slips) = %d; want 2", len(slips))
	}
	if slips[0].Reference == slips[1].Reference {
		t.Error("payslip references should be unique")
	}

	if _, err := svc.ProcessPeriod(context.Background(), p.ID); !domain.IsConflict(err) {
		t.Errorf("second ProcessPeriod() error = %v; want conflict", err)
	}
}

func TestProcessPeriod_NoEmployees(t *testing.T) {
	svc := newTestPayroll(newFakePayrollRepo(), &fakeEmployeeRepo{})

	p, err := svc.CreatePeriod(context.Background(), 2026, 3)
	if err != nil {
		t.Fatalf("CreatePeriod() error = %v", err)
	}

	if _, err := svc.ProcessPeriod(context.Background(), p.ID); !domain.IsConflict(err) {
		t.Errorf("ProcessPeriod() error = %v; want conflict", err)
	}
}

func TestMarkPaid(t *testing.T) {
	repo := newFakePayrollRepo()
	employees := &fakeEmployeeRepo{active: []domain.Employee{
		salariedEmployee(1, "Amara", "Diallo", 5000, 500),
	}}
	svc := newTestPayroll(repo, employees)

	p, _ := svc.CreatePeriod(context.Background(), 2026, 3)

	if _, err := svc.MarkPaid(context.Background(), p.ID); !domain.IsConflict(err) {
		t.Errorf("MarkPaid() on draft error = %v; want conflict", err)
	}

	if _, err := svc.ProcessPeriod(context.Background(), p.ID); err != nil {
		t.Fatalf("ProcessPeriod() error = %v", err)
	}

	paid, err := svc.MarkPaid(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("MarkPaid() error = %v", err)
	}
	if paid.Status != domain.PeriodPaid {
		t.Errorf("status = %q; want paid", paid.Status)
	}

	if _, err := svc.MarkPaid(context.Background(), p.ID); !domain.IsConflict(err) {
		t.Errorf("second MarkPaid() error = %v; want conflict", err)
	}
}

func TestExportPeriod(t *testing.T) {
	repo := newFakePayrollRepo()
	employees := &fakeEmployeeRepo{active: []domain.Employee{
		salariedEmployee(1, "Amara", "Diallo", 5000, 500),
	}}
	svc := newTestPayroll(repo, employees)

	p, _ := svc.CreatePeriod(context.Background(), 2026, 3)

	if _, _, err := svc.ExportPeriod(context.Background(), p.ID); !domain.IsConflict(err) {
		t.Errorf("ExportPeriod() on draft error = %v; want conflict", err)
	}

	if _, err := svc.ProcessPeriod(context.Background(), p.ID); err != nil {
		t.Fatalf("ProcessPeriod() error = %v", err)
	}

	data, filename, err := svc.ExportPeriod(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("ExportPeriod() error = %v", err)
	}
	if filename != "payroll-2026-03.xlsx" {
		t.Errorf("filename = %q", filename)
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("export does not look like an xlsx file")
	}
}
