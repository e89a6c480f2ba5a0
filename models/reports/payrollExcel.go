package reports

import (
	"context"
	"fmt"
	"io"

	"github.com/castellodata/payroll_backend/models"
	"github.com/xuri/excelize/v2"
)

// ExportPayrollBatchExcel streams one batch as an xlsx workbook, one row
// per payroll entry.
func ExportPayrollBatchExcel(ctx context.Context, batchId int, w io.Writer) error {

	batch, err := models.GetPayrollBatch(ctx, batchId)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	sheetName := "Payroll"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headings := []string{
		"EmployeeCode", "EmployeeName", "GrossSalary", "Deductions",
		"Advances", "NetSalary", "BankStatus", "ValidationStatus", "Issues",
	}
	for i, h := range headings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, h)
	}

	for i, entry := range batch.Entries {
		employee, err := models.GetEmployee(ctx, entry.EmployeeId)
		if err != nil {
			return err
		}
		row := i + 2
		f.SetCellValue(sheetName, "A"+fmt.Sprint(row), employee.EmployeeCode)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(row), employee.FullName)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(row), entry.GrossSalary.InexactFloat64())
		f.SetCellValue(sheetName, "D"+fmt.Sprint(row), entry.DeductionsTotal.InexactFloat64())
		f.SetCellValue(sheetName, "E"+fmt.Sprint(row), entry.LoansTotal.InexactFloat64())
		f.SetCellValue(sheetName, "F"+fmt.Sprint(row), entry.NetSalary.InexactFloat64())
		f.SetCellValue(sheetName, "G"+fmt.Sprint(row), string(entry.BankStatus))
		f.SetCellValue(sheetName, "H"+fmt.Sprint(row), string(entry.ValidationStatus))
		if entry.Issues != nil {
			f.SetCellValue(sheetName, "I"+fmt.Sprint(row), *entry.Issues)
		}
	}

	return f.Write(w)
}
