package workflow

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PayrollRow struct {
	RowNum      int
	EmployeeId  string
	Name        string
	BaseSalary  string
	Allowances  string
	Deductions  string
	Advances    string
	NetSalary   string
	BankAccount string
}

type RowIssue struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

type PayrollValidation struct {
	Errors   []RowIssue `json:"errors"`
	Warnings []RowIssue `json:"warnings"`
}

type PayrollImportResult struct {
	Success   bool       `json:"success"`
	FileName  string     `json:"fileName"`
	RowCount  int        `json:"rowCount"`
	ValidRows int        `json:"validRows"`
	Errors    []RowIssue `json:"errors"`
	Warnings  []RowIssue `json:"warnings"`
	BatchId   *int       `json:"batchId,omitempty"`
}

// ParsePayrollCSV reads a header-first CSV into rows. Unknown columns are
// ignored; missing columns surface later as required-field errors. Row
// numbering starts at 2, matching what a spreadsheet shows for the first
// data row.
func ParsePayrollCSV(r io.Reader) ([]PayrollRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF")))] = i
	}

	field := func(record []string, name string) string {
		idx, ok := colIndex[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []PayrollRow
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", rowNum+1, err)
		}
		rowNum++

		empty := true
		for _, cell := range record {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		rows = append(rows, PayrollRow{
			RowNum:      rowNum,
			EmployeeId:  field(record, "employee_id"),
			Name:        field(record, "name"),
			BaseSalary:  field(record, "base_salary"),
			Allowances:  field(record, "allowances"),
			Deductions:  field(record, "deductions"),
			Advances:    field(record, "advances"),
			NetSalary:   field(record, "net_salary"),
			BankAccount: field(record, "bank_account"),
		})
	}
	return rows, nil
}

// ValidatePayrollRows applies the upload checks. Errors make the file
// unimportable; warnings only mark the affected entries.
func ValidatePayrollRows(rows []PayrollRow) PayrollValidation {
	var validation PayrollValidation
	seenEmployees := make(map[string]bool)

	for _, row := range rows {
		required := []struct{ field, value string }{
			{"employee_id", row.EmployeeId},
			{"name", row.Name},
			{"base_salary", row.BaseSalary},
			{"net_salary", row.NetSalary},
		}
		for _, req := range required {
			if req.value == "" {
				validation.Errors = append(validation.Errors, RowIssue{
					Row:     row.RowNum,
					Field:   req.field,
					Message: fmt.Sprintf("الحقل %q مطلوب", req.field),
				})
			}
		}

		if row.EmployeeId != "" {
			if seenEmployees[row.EmployeeId] {
				validation.Errors = append(validation.Errors, RowIssue{
					Row:     row.RowNum,
					Field:   "employee_id",
					Message: "رقم الموظف مكرر",
					Value:   row.EmployeeId,
				})
			}
			seenEmployees[row.EmployeeId] = true
		}

		numeric := []struct{ field, value string }{
			{"base_salary", row.BaseSalary},
			{"allowances", row.Allowances},
			{"deductions", row.Deductions},
			{"advances", row.Advances},
			{"net_salary", row.NetSalary},
		}
		numericOk := true
		for _, num := range numeric {
			if num.value == "" {
				continue
			}
			if _, err := utils.ParseAmount(num.value); err != nil {
				numericOk = false
				validation.Errors = append(validation.Errors, RowIssue{
					Row:     row.RowNum,
					Field:   num.field,
					Message: fmt.Sprintf("يجب أن يكون %q رقماً", num.field),
					Value:   num.value,
				})
			}
		}
		if !numericOk {
			continue
		}

		baseSalary := amountOrZero(row.BaseSalary)
		allowances := amountOrZero(row.Allowances)
		deductions := amountOrZero(row.Deductions)
		advances := amountOrZero(row.Advances)
		netSalary := amountOrZero(row.NetSalary)

		expectedNet := baseSalary.Add(allowances).Sub(deductions).Sub(advances)
		if expectedNet.Sub(netSalary).Abs().GreaterThan(decimal.NewFromInt(1)) {
			validation.Warnings = append(validation.Warnings, RowIssue{
				Row:     row.RowNum,
				Field:   "net_salary",
				Message: fmt.Sprintf("صافي الراتب قد يكون غير صحيح. المتوقع: %s، الموجود: %s", expectedNet, netSalary),
			})
		}

		if baseSalary.IsNegative() || allowances.IsNegative() {
			field := "base_salary"
			if !baseSalary.IsNegative() {
				field = "allowances"
			}
			validation.Warnings = append(validation.Warnings, RowIssue{
				Row:     row.RowNum,
				Field:   field,
				Message: "القيمة سالبة - يرجى المراجعة",
			})
		}

		if row.BankAccount != "" && !isValidSaudiIban(row.BankAccount) {
			validation.Warnings = append(validation.Warnings, RowIssue{
				Row:     row.RowNum,
				Field:   "bank_account",
				Message: "رقم IBAN قد يكون غير صحيح",
				Value:   row.BankAccount,
			})
		}
	}

	return validation
}

func amountOrZero(v string) decimal.Decimal {
	if v == "" {
		return decimal.Zero
	}
	d, err := utils.ParseAmount(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Saudi IBANs are "SA" followed by 22 digits.
func isValidSaudiIban(iban string) bool {
	cleaned := strings.ReplaceAll(iban, " ", "")
	if len(cleaned) != 24 || !strings.HasPrefix(cleaned, "SA") {
		return false
	}
	for _, r := range cleaned[2:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ImportPayrollCSV parses and validates the upload and, when no errors
// were found, creates a DRAFT batch with one entry per row inside a single
// transaction. Rows referencing unknown employee codes fail the import.
func ImportPayrollCSV(ctx context.Context, fileName string, month time.Time, r io.Reader) (*PayrollImportResult, error) {

	logger := config.GetLogger()
	db := config.GetDB()

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user id is required")
	}

	rows, err := ParsePayrollCSV(r)
	if err != nil {
		return &PayrollImportResult{
			FileName: fileName,
			Errors:   []RowIssue{{Row: 0, Field: "file", Message: "فشل تحليل الملف: " + err.Error()}},
		}, nil
	}

	validation := ValidatePayrollRows(rows)
	result := PayrollImportResult{
		FileName:  fileName,
		RowCount:  len(rows),
		ValidRows: len(rows) - len(validation.Errors),
		Errors:    validation.Errors,
		Warnings:  validation.Warnings,
	}
	if result.ValidRows < 0 {
		result.ValidRows = 0
	}
	if len(validation.Errors) > 0 {
		return &result, nil
	}

	warningRows := make(map[int][]string)
	for _, warning := range validation.Warnings {
		warningRows[warning.Row] = append(warningRows[warning.Row], warning.Message)
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		batch := models.PayrollBatch{
			Month:        month,
			UploadedById: userId,
			Status:       models.PayrollBatchStatusDraft,
		}
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}

		for _, row := range rows {
			var employee models.Employee
			if err := tx.Where("employee_code = ?", row.EmployeeId).First(&employee).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("row %d: unknown employee code %q", row.RowNum, row.EmployeeId)
				}
				return err
			}

			deductions := amountOrZero(row.Deductions)
			entry := models.PayrollEntry{
				BatchId:         batch.ID,
				EmployeeId:      employee.ID,
				GrossSalary:     amountOrZero(row.BaseSalary).Add(amountOrZero(row.Allowances)),
				DeductionsTotal: deductions,
				LoansTotal:      amountOrZero(row.Advances),
				NetSalary:       amountOrZero(row.NetSalary),
				BankStatus:      models.BankStatusActive,
			}
			if row.BankAccount != "" && !isValidSaudiIban(row.BankAccount) {
				entry.BankStatus = models.BankStatusInvalid
			}
			if messages, ok := warningRows[row.RowNum]; ok {
				joined := strings.Join(messages, "; ")
				entry.Issues = &joined
				entry.ValidationStatus = models.ValidationStatusWarning
			} else {
				entry.ValidationStatus = models.ValidationStatusOk
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		if err := models.CreateHistory(tx, "CREATE", batch.ID, "payroll_batches", nil, &batch,
			fmt.Sprintf("Imported payroll file %q (%d rows)", fileName, len(rows))); err != nil {
			return err
		}

		result.BatchId = &batch.ID
		return nil
	})
	if err != nil {
		config.LogError(logger, "PayrollImport.go", "ImportPayrollCSV", "Create batch transaction", fileName, err)
		return nil, err
	}

	result.Success = true
	logger.WithFields(logrus.Fields{
		"field":     "ImportPayrollCSV",
		"file_name": fileName,
		"rows":      len(rows),
		"batch_id":  utils.DereferencePtr(result.BatchId, 0),
	}).Info("payroll batch imported")

	return &result, nil
}
