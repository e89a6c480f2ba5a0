package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/gamify"
	"github.com/castellodata/payroll_backend/utils"
)

type Alert struct {
	ID           int           `gorm:"primary_key" json:"id"`
	Type         AlertType     `gorm:"size:30;not null;index" json:"type"`
	Severity     AlertSeverity `gorm:"type:enum('INFO', 'WARNING', 'CRITICAL');not null;index" json:"severity"`
	Title        string        `gorm:"size:255;not null" json:"title"`
	Description  string        `gorm:"type:text" json:"description"`
	EmployeeId   *int          `gorm:"index" json:"employee_id"`
	Employee     *Employee     `json:"employee,omitempty"`
	Status       AlertStatus   `gorm:"type:enum('OPEN', 'RESOLVED');default:OPEN;index" json:"status"`
	ResolvedAt   *time.Time    `json:"resolved_at"`
	ResolvedById *int          `json:"resolved_by_id"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewAlert struct {
	Type        AlertType     `json:"type" binding:"required"`
	Severity    AlertSeverity `json:"severity" binding:"required"`
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	EmployeeId  *int          `json:"employee_id"`
}

func CreateAlert(ctx context.Context, input *NewAlert) (*Alert, error) {
	if input.EmployeeId != nil {
		if err := utils.ValidateResourceId[Employee](ctx, *input.EmployeeId); err != nil {
			return nil, utils.ErrorRecordNotFound
		}
	}

	db := config.GetDB()
	alert := Alert{
		Type:        input.Type,
		Severity:    input.Severity,
		Title:       input.Title,
		Description: input.Description,
		EmployeeId:  input.EmployeeId,
		Status:      AlertStatusOpen,
	}
	if err := db.WithContext(ctx).Create(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func GetAlert(ctx context.Context, id int) (*Alert, error) {
	return utils.FetchModel[Alert](ctx, id, "Employee")
}

type AlertFilter struct {
	Severity string
	Status   string
	Type     string
}

// AlertView is the JSON row the alerts page consumes. XpReward carries the
// reward the resolver would earn; it uses the same severity mapping as the
// award itself.
type AlertView struct {
	Id           string  `json:"id"`
	Type         string  `json:"type"`
	Severity     string  `json:"severity"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	EmployeeName *string `json:"employeeName,omitempty"`
	EmployeeId   *string `json:"employeeId,omitempty"`
	Branch       *string `json:"branch,omitempty"`
	XpReward     int     `json:"xpReward"`
	Resolved     bool    `json:"resolved"`
	CreatedAt    string  `json:"createdAt"`
	ResolvedAt   *string `json:"resolvedAt,omitempty"`
}

func ListAlerts(ctx context.Context, filter AlertFilter) ([]*AlertView, error) {
	db := config.GetDB()

	dbCtx := db.WithContext(ctx).Model(&Alert{}).
		Preload("Employee").Preload("Employee.Branch").
		Order("created_at DESC").
		Limit(config.SearchLimit)

	if filter.Severity != "" && !strings.EqualFold(filter.Severity, "ALL") {
		dbCtx = dbCtx.Where("severity = ?", strings.ToUpper(filter.Severity))
	}
	if filter.Status != "" {
		dbCtx = dbCtx.Where("status = ?", strings.ToUpper(filter.Status))
	}
	if filter.Type != "" {
		dbCtx = dbCtx.Where("type = ?", strings.ToUpper(filter.Type))
	}

	var alerts []*Alert
	if err := dbCtx.Find(&alerts).Error; err != nil {
		return nil, err
	}

	views := make([]*AlertView, 0, len(alerts))
	for _, alert := range alerts {
		views = append(views, alert.View())
	}
	return views, nil
}

func (alert *Alert) View() *AlertView {
	view := &AlertView{
		Id:          fmt.Sprint(alert.ID),
		Type:        string(alert.Type),
		Severity:    strings.ToLower(string(alert.Severity)),
		Title:       alert.Title,
		Description: alert.Description,
		XpReward:    gamify.SeverityXP(string(alert.Severity)),
		Resolved:    alert.Status == AlertStatusResolved,
		CreatedAt:   alert.CreatedAt.UTC().Format(time.RFC3339),
	}
	if alert.Employee != nil {
		view.EmployeeName = &alert.Employee.FullName
		view.EmployeeId = &alert.Employee.EmployeeCode
		if alert.Employee.Branch != nil {
			view.Branch = &alert.Employee.Branch.Name
		}
	}
	if alert.ResolvedAt != nil {
		resolvedAt := alert.ResolvedAt.UTC().Format(time.RFC3339)
		view.ResolvedAt = &resolvedAt
	}
	return view
}
