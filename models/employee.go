package models

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           int             `gorm:"primary_key" json:"id"`
	EmployeeCode string          `gorm:"size:20;not null;unique" json:"employee_code" binding:"required"`
	FullName     string          `gorm:"size:150;not null" json:"full_name" binding:"required"`
	IqamaNumber  *string         `gorm:"size:20;index" json:"iqama_number"`
	Nationality  string          `gorm:"size:50" json:"nationality"`
	Phone        string          `gorm:"size:20" json:"phone"`
	BranchId     int             `gorm:"index;not null" json:"branch_id"`
	Branch       *Branch         `json:"branch,omitempty"`
	BasicSalary  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"basic_salary"`
	BankAccount  *string         `gorm:"size:34" json:"bank_account"`
	BankName     string          `gorm:"size:100" json:"bank_name"`
	HireDate     time.Time       `json:"hire_date"`
	Status       EmployeeStatus  `gorm:"type:enum('ACTIVE', 'INACTIVE');default:ACTIVE;index" json:"status"`
	Documents    []EmployeeDocument `gorm:"foreignKey:EmployeeId" json:"documents,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewEmployee struct {
	EmployeeCode string          `json:"employee_code" binding:"required"`
	FullName     string          `json:"full_name" binding:"required"`
	IqamaNumber  *string         `json:"iqama_number"`
	Nationality  string          `json:"nationality"`
	Phone        string          `json:"phone"`
	BranchId     int             `json:"branch_id" binding:"required"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	BankAccount  *string         `json:"bank_account"`
	BankName     string          `json:"bank_name"`
	HireDate     time.Time       `json:"hire_date"`
}

func (input *NewEmployee) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[Employee](ctx, "employee_code", input.EmployeeCode, id); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Branch](ctx, input.BranchId); err != nil {
		return errors.New("branch not found")
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return errors.New("invalid phone number")
		}
	}
	if input.BasicSalary.IsNegative() {
		return utils.ErrorInvalidInput
	}
	return nil
}

func CreateEmployee(ctx context.Context, input *NewEmployee) (*Employee, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	db := config.GetDB()
	employee := Employee{
		EmployeeCode: input.EmployeeCode,
		FullName:     input.FullName,
		IqamaNumber:  input.IqamaNumber,
		Nationality:  input.Nationality,
		Phone:        input.Phone,
		BranchId:     input.BranchId,
		BasicSalary:  input.BasicSalary,
		BankAccount:  input.BankAccount,
		BankName:     input.BankName,
		HireDate:     input.HireDate,
		Status:       EmployeeStatusActive,
	}
	if err := db.WithContext(ctx).Create(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func UpdateEmployee(ctx context.Context, id int, input *NewEmployee) (*Employee, error) {
	employee, err := utils.FetchModel[Employee](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(employee).Updates(map[string]interface{}{
		"EmployeeCode": input.EmployeeCode,
		"FullName":     input.FullName,
		"IqamaNumber":  input.IqamaNumber,
		"Nationality":  input.Nationality,
		"Phone":        input.Phone,
		"BranchId":     input.BranchId,
		"BasicSalary":  input.BasicSalary,
		"BankAccount":  input.BankAccount,
		"BankName":     input.BankName,
	}).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func GetEmployee(ctx context.Context, id int) (*Employee, error) {
	return utils.FetchModel[Employee](ctx, id, "Branch", "Documents")
}

type EmployeeFilter struct {
	Search      string
	Branch      string
	Nationality string
}

// EmployeeListItem is the row shape the employees table consumes.
type EmployeeListItem struct {
	Id                   string          `json:"id"`
	Name                 string          `json:"name"`
	Email                string          `json:"email"`
	Avatar               string          `json:"avatar"`
	Branch               string          `json:"branch"`
	Nationality          string          `json:"nationality"`
	IqamaNumber          string          `json:"iqamaNumber"`
	Salary               decimal.Decimal `json:"salary"`
	Advances             decimal.Decimal `json:"advances"`
	Deductions           decimal.Decimal `json:"deductions"`
	NetSalary            decimal.Decimal `json:"netSalary"`
	BankAccount          string          `json:"bankAccount"`
	CompletionPercentage int             `json:"completionPercentage"`
}

func ListEmployees(ctx context.Context, filter EmployeeFilter) ([]*EmployeeListItem, error) {
	db := config.GetDB()

	dbCtx := db.WithContext(ctx).Model(&Employee{}).
		Where("status = ?", EmployeeStatusActive).
		Preload("Branch").Preload("Documents").
		Order("full_name ASC").
		Limit(config.SearchLimit)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		dbCtx = dbCtx.Where("full_name LIKE ? OR employee_code LIKE ? OR iqama_number LIKE ?", like, like, like)
	}
	if filter.Branch != "" {
		dbCtx = dbCtx.Where("branch_id IN (?)",
			db.Model(&Branch{}).Select("id").Where("name = ?", filter.Branch))
	}
	if filter.Nationality != "" {
		dbCtx = dbCtx.Where("nationality = ?", filter.Nationality)
	}

	var employees []*Employee
	if err := dbCtx.Find(&employees).Error; err != nil {
		return nil, err
	}

	items := make([]*EmployeeListItem, 0, len(employees))
	for _, emp := range employees {
		entry, err := latestPayrollEntry(ctx, emp.ID)
		if err != nil {
			return nil, err
		}
		item := &EmployeeListItem{
			Id:                   emp.EmployeeCode,
			Name:                 emp.FullName,
			Email:                strings.ToLower(emp.EmployeeCode) + "@castello.com",
			Avatar:               avatarUrl(emp.FullName),
			Nationality:          emp.Nationality,
			IqamaNumber:          utils.DereferencePtr(emp.IqamaNumber, ""),
			Salary:               emp.BasicSalary,
			NetSalary:            emp.BasicSalary,
			BankAccount:          utils.DereferencePtr(emp.BankAccount, ""),
			CompletionPercentage: emp.documentCompletion(),
		}
		if emp.Branch != nil {
			item.Branch = emp.Branch.Name
		}
		if entry != nil {
			item.Advances = entry.LoansTotal
			item.Deductions = entry.DeductionsTotal
			item.NetSalary = entry.NetSalary
		}
		items = append(items, item)
	}
	return items, nil
}

// documentCompletion is the share of required documents currently VALID.
func (emp *Employee) documentCompletion() int {
	completed := 0
	required := 0
	for _, doc := range emp.Documents {
		if doc.IsRequired != nil && *doc.IsRequired {
			required++
		}
		if doc.Status == DocumentStatusValid {
			completed++
		}
	}
	if required == 0 {
		return 0
	}
	pct := 100 * completed / required
	if pct > 100 {
		pct = 100
	}
	return pct
}

func avatarUrl(fullName string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=C62828&color=fff&size=128&font-size=0.4&bold=true",
		url.QueryEscape(fullName))
}
