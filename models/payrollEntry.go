package models

import (
	"context"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/shopspring/decimal"
)

type PayrollEntry struct {
	ID               int              `gorm:"primary_key" json:"id"`
	BatchId          int              `gorm:"index;not null" json:"batch_id"`
	EmployeeId       int              `gorm:"index;not null" json:"employee_id"`
	Employee         *Employee        `json:"employee,omitempty"`
	GrossSalary      decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"gross_salary"`
	DeductionsTotal  decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"deductions_total"`
	LoansTotal       decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"loans_total"`
	NetSalary        decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"net_salary"`
	BankStatus       BankStatus       `gorm:"type:enum('ACTIVE', 'INVALID');default:ACTIVE" json:"bank_status"`
	ValidationStatus ValidationStatus `gorm:"type:enum('OK', 'WARNING', 'ERROR');default:OK;index" json:"validation_status"`
	Issues           *string          `gorm:"type:text" json:"issues"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// latestPayrollEntry returns the most recent entry for an employee, or nil.
func latestPayrollEntry(ctx context.Context, employeeId int) (*PayrollEntry, error) {
	db := config.GetDB()
	var entries []*PayrollEntry
	if err := db.WithContext(ctx).
		Where("employee_id = ?", employeeId).
		Order("created_at DESC").
		Limit(1).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}
