package payroll

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/peoplekit/portal/internal/domain"
)

const exportSheet = "Payslips"

var exportHeader = []any{
	"Reference", "Employee", "Gross", "Tax", "Pension", "Health", "Total Deductions", "Net",
}

// renderWorkbook builds the xlsx export for one processed period: a header
// row, one row per payslip, and a totals row matching the period rollups.
func renderWorkbook(p *domain.PayrollPeriod, slips []domain.Payslip) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(exportSheet, "A1", periodLabel(p)); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A2", &exportHeader); err != nil {
		return nil, err
	}

	for i, s := range slips {
		row := []any{
			s.Reference,
			s.EmployeeName,
			s.Gross.InexactFloat64(),
			s.Tax.InexactFloat64(),
			s.Pension.InexactFloat64(),
			s.Health.InexactFloat64(),
			s.TotalDeductions.InexactFloat64(),
			s.Net.InexactFloat64(),
		}
		cell := fmt.Sprintf("A%d", i+3)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	totals := []any{
		"", fmt.Sprintf("Total (%d employees)", p.EmployeeCount),
		p.TotalGross.InexactFloat64(), "", "", "", "",
		p.TotalNet.InexactFloat64(),
	}
	cell := fmt.Sprintf("A%d", len(slips)+3)
	if err := f.SetSheetRow(exportSheet, cell, &totals); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
