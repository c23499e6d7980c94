package payroll

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/peoplekit/portal/internal/config"
	"github.com/peoplekit/portal/internal/domain"
)

// computer turns an employee's contract terms into a payslip using the
// configured tax bands and deduction rates.
type computer struct {
	bands       []config.TaxBand
	pensionRate decimal.Decimal
	healthRate  decimal.Decimal
}

func newComputer(cfg config.PayrollConfig) *computer {
	return &computer{
		bands:       cfg.TaxBands,
		pensionRate: decimal.NewFromFloat(cfg.PensionRate),
		healthRate:  decimal.NewFromFloat(cfg.HealthRate),
	}
}

// payslip computes one employee's slip for the period. All monetary values
// are rounded to 2 decimal places; net is derived from the rounded parts so
// the printed columns always add up.
func (c *computer) payslip(periodID uint, e *domain.Employee) domain.Payslip {
	gross := e.Contract.BaseSalary.Add(e.Contract.Allowances).Round(2)

	tax := c.tax(gross).Round(2)
	pension := gross.Mul(c.pensionRate).Round(2)
	health := gross.Mul(c.healthRate).Round(2)
	deductions := tax.Add(pension).Add(health)

	return domain.Payslip{
		Reference:       uuid.NewString(),
		PeriodID:        periodID,
		EmployeeID:      e.ID,
		EmployeeName:    e.FullName(),
		Gross:           gross,
		Tax:             tax,
		Pension:         pension,
		Health:          health,
		TotalDeductions: deductions,
		Net:             gross.Sub(deductions),
	}
}

// tax applies the progressive bands to gross pay. Each band taxes the slice
// of income between the previous band's upper bound and its own; a band with
// UpTo == 0 is unbounded and taxes everything above the previous bound.
func (c *computer) tax(gross decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	lower := decimal.Zero

	for _, band := range c.bands {
		if gross.LessThanOrEqual(lower) {
			break
		}

		upper := gross
		if band.UpTo > 0 {
			bound := decimal.NewFromFloat(band.UpTo)
			if bound.LessThan(upper) {
				upper = bound
			}
		}

		slice := upper.Sub(lower)
		total = total.Add(slice.Mul(decimal.NewFromFloat(band.Rate)))
		lower = upper
	}

	return total
}
