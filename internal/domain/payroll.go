package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/simp-lee/pagination"
)

// Payroll period statuses. A period is created as draft, processing
// computes payslips and moves it to processed, and paying a processed
// period is terminal.
const (
	PeriodDraft     = "draft"
	PeriodProcessed = "processed"
	PeriodPaid      = "paid"
)

// PayrollPeriod is one month's payroll run. Year+Month are unique.
type PayrollPeriod struct {
	BaseModel
	Year         int             `gorm:"not null;uniqueIndex:idx_period_year_month" json:"year"`
	Month        int             `gorm:"not null;uniqueIndex:idx_period_year_month" json:"month"`
	Status       string          `gorm:"size:16;not null;default:draft" json:"status"`
	EmployeeCount int            `gorm:"not null;default:0" json:"employee_count"`
	TotalGross   decimal.Decimal `gorm:"type:decimal(14,2)" json:"total_gross"`
	TotalNet     decimal.Decimal `gorm:"type:decimal(14,2)" json:"total_net"`
}

// Payslip is the per-employee result of processing a period.
type Payslip struct {
	BaseModel
	Reference       string          `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	PeriodID        uint            `gorm:"index;not null;uniqueIndex:idx_payslip_period_employee" json:"period_id"`
	EmployeeID      uint            `gorm:"not null;uniqueIndex:idx_payslip_period_employee" json:"employee_id"`
	EmployeeName    string          `gorm:"size:200;not null" json:"employee_name"`
	Gross           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"gross"`
	Tax             decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax"`
	Pension         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"pension"`
	Health          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"health"`
	TotalDeductions decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_deductions"`
	Net             decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"net"`
}

// PayrollRepository defines the data access interface for payroll.
type PayrollRepository interface {
	CreatePeriod(ctx context.Context, p *PayrollPeriod) error
	GetPeriodByID(ctx context.Context, id uint) (*PayrollPeriod, error)
	ListPeriods(ctx context.Context, req PageRequest) (*pagination.Pagination[PayrollPeriod], error)
	UpdatePeriod(ctx context.Context, p *PayrollPeriod) error
	ReplacePayslips(ctx context.Context, period *PayrollPeriod, slips []Payslip) error
	GetPayslipByID(ctx context.Context, id uint) (*Payslip, error)
	ListPayslips(ctx context.Context, req PageRequest) (*pagination.Pagination[Payslip], error)
	PayslipsForPeriod(ctx context.Context, periodID uint) ([]Payslip, error)
}

// PayrollService defines the business logic interface for payroll.
type PayrollService interface {
	CreatePeriod(ctx context.Context, year, month int) (*PayrollPeriod, error)
	GetPeriod(ctx context.Context, id uint) (*PayrollPeriod, error)
	ListPeriods(ctx context.Context, req PageRequest) (*pagination.Pagination[PayrollPeriod], error)
	ProcessPeriod(ctx context.Context, id uint) (*PayrollPeriod, error)
	MarkPaid(ctx context.Context, id uint) (*PayrollPeriod, error)
	GetPayslip(ctx context.Context, id uint) (*Payslip, error)
	ListPayslips(ctx context.Context, req PageRequest) (*pagination.Pagination[Payslip], error)
	ExportPeriod(ctx context.Context, periodID uint) ([]byte, string, error)
}
