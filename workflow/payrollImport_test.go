package workflow

import (
	"strings"
	"testing"
)

const validCSV = `employee_id,name,base_salary,allowances,deductions,advances,net_salary,bank_account
EMP0001,Ali Hassan,5000,500,300,0,5200,SA1234567890123456789012
EMP0002,Sara Omar,7000,,400,1000,5600,
`

func TestParsePayrollCSV(t *testing.T) {
	rows, err := ParsePayrollCSV(strings.NewReader(validCSV))
	if err != nil {
		t.Fatalf("ParsePayrollCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].RowNum != 2 || rows[1].RowNum != 3 {
		t.Fatalf("expected row numbers 2 and 3, got %d and %d", rows[0].RowNum, rows[1].RowNum)
	}
	if rows[0].EmployeeId != "EMP0001" || rows[0].NetSalary != "5200" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Allowances != "" {
		t.Fatalf("expected empty allowances, got %q", rows[1].Allowances)
	}
}

func TestParsePayrollCSVSkipsEmptyLines(t *testing.T) {
	csv := "employee_id,name,base_salary,net_salary\nEMP0001,Ali,5000,5000\n,,,\n"
	rows, err := ParsePayrollCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParsePayrollCSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestValidatePayrollRowsClean(t *testing.T) {
	rows, err := ParsePayrollCSV(strings.NewReader(validCSV))
	if err != nil {
		t.Fatalf("ParsePayrollCSV: %v", err)
	}
	validation := ValidatePayrollRows(rows)
	if len(validation.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", validation.Errors)
	}
	if len(validation.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", validation.Warnings)
	}
}

func TestValidatePayrollRowsRequiredFields(t *testing.T) {
	rows := []PayrollRow{{RowNum: 2, EmployeeId: "EMP0001", BaseSalary: "5000"}}
	validation := ValidatePayrollRows(rows)
	if len(validation.Errors) != 2 {
		t.Fatalf("expected 2 errors (name, net_salary), got %+v", validation.Errors)
	}
	fields := map[string]bool{}
	for _, issue := range validation.Errors {
		fields[issue.Field] = true
		if issue.Row != 2 {
			t.Fatalf("expected row 2, got %d", issue.Row)
		}
	}
	if !fields["name"] || !fields["net_salary"] {
		t.Fatalf("expected name and net_salary errors, got %+v", validation.Errors)
	}
}

func TestValidatePayrollRowsDuplicateEmployee(t *testing.T) {
	rows := []PayrollRow{
		{RowNum: 2, EmployeeId: "EMP0001", Name: "Ali", BaseSalary: "5000", NetSalary: "5000"},
		{RowNum: 3, EmployeeId: "EMP0001", Name: "Ali", BaseSalary: "5000", NetSalary: "5000"},
	}
	validation := ValidatePayrollRows(rows)
	if len(validation.Errors) != 1 {
		t.Fatalf("expected 1 duplicate error, got %+v", validation.Errors)
	}
	if validation.Errors[0].Field != "employee_id" || validation.Errors[0].Row != 3 {
		t.Fatalf("unexpected duplicate error: %+v", validation.Errors[0])
	}
}

func TestValidatePayrollRowsNonNumeric(t *testing.T) {
	rows := []PayrollRow{
		{RowNum: 2, EmployeeId: "EMP0001", Name: "Ali", BaseSalary: "abc", NetSalary: "5000"},
	}
	validation := ValidatePayrollRows(rows)
	if len(validation.Errors) != 1 {
		t.Fatalf("expected 1 numeric error, got %+v", validation.Errors)
	}
	if validation.Errors[0].Field != "base_salary" {
		t.Fatalf("unexpected error field: %+v", validation.Errors[0])
	}
}

func TestValidatePayrollRowsNetMismatchWarning(t *testing.T) {
	// expected net = 5000 + 500 - 300 - 0 = 5200; off by 2 triggers the warning.
	rows := []PayrollRow{
		{RowNum: 2, EmployeeId: "EMP0001", Name: "Ali", BaseSalary: "5000", Allowances: "500", Deductions: "300", NetSalary: "5202"},
	}
	validation := ValidatePayrollRows(rows)
	if len(validation.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", validation.Errors)
	}
	if len(validation.Warnings) != 1 || validation.Warnings[0].Field != "net_salary" {
		t.Fatalf("expected net_salary warning, got %+v", validation.Warnings)
	}

	// Off by exactly 1 is tolerated.
	rows[0].NetSalary = "5201"
	validation = ValidatePayrollRows(rows)
	if len(validation.Warnings) != 0 {
		t.Fatalf("expected no warnings for 1 SAR difference, got %+v", validation.Warnings)
	}
}

func TestValidatePayrollRowsNegativeSalaryWarning(t *testing.T) {
	rows := []PayrollRow{
		{RowNum: 2, EmployeeId: "EMP0001", Name: "Ali", BaseSalary: "-5000", NetSalary: "-5000"},
	}
	validation := ValidatePayrollRows(rows)
	found := false
	for _, warning := range validation.Warnings {
		if warning.Field == "base_salary" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected negative base_salary warning, got %+v", validation.Warnings)
	}
}

func TestValidatePayrollRowsIbanWarning(t *testing.T) {
	rows := []PayrollRow{
		{RowNum: 2, EmployeeId: "EMP0001", Name: "Ali", BaseSalary: "5000", NetSalary: "5000", BankAccount: "GB1234"},
	}
	validation := ValidatePayrollRows(rows)
	if len(validation.Warnings) != 1 || validation.Warnings[0].Field != "bank_account" {
		t.Fatalf("expected bank_account warning, got %+v", validation.Warnings)
	}
}

func TestIsValidSaudiIban(t *testing.T) {
	cases := []struct {
		iban string
		want bool
	}{
		{"SA1234567890123456789012", true},
		{"SA12 3456 7890 1234 5678 9012", true},
		{"SA123", false},
		{"GB1234567890123456789012", false},
		{"SA12345678901234567890AB", false},
	}
	for _, tc := range cases {
		if got := isValidSaudiIban(tc.iban); got != tc.want {
			t.Fatalf("isValidSaudiIban(%q) = %v, want %v", tc.iban, got, tc.want)
		}
	}
}
