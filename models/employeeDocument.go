package models

import (
	"context"
	"errors"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/utils"
)

type EmployeeDocument struct {
	ID           int            `gorm:"primary_key" json:"id"`
	EmployeeId   int            `gorm:"index;not null" json:"employee_id"`
	DocumentType DocumentType   `gorm:"size:20;not null" json:"document_type" binding:"required"`
	FileUrl      string         `gorm:"size:255" json:"file_url"`
	IssueDate    *time.Time     `json:"issue_date"`
	ExpiryDate   *time.Time     `json:"expiry_date"`
	IsRequired   *bool          `gorm:"not null;default:false" json:"is_required"`
	Status       DocumentStatus `gorm:"type:enum('VALID', 'EXPIRING_SOON', 'EXPIRED', 'MISSING');default:MISSING;index" json:"status"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewEmployeeDocument struct {
	EmployeeId   int          `json:"employee_id" binding:"required"`
	DocumentType DocumentType `json:"document_type" binding:"required"`
	FileUrl      string       `json:"file_url"`
	IssueDate    *time.Time   `json:"issue_date"`
	ExpiryDate   *time.Time   `json:"expiry_date"`
	IsRequired   *bool        `json:"is_required"`
}

func CreateEmployeeDocument(ctx context.Context, input *NewEmployeeDocument) (*EmployeeDocument, error) {
	if err := utils.ValidateResourceId[Employee](ctx, input.EmployeeId); err != nil {
		return nil, errors.New("employee not found")
	}

	db := config.GetDB()
	doc := EmployeeDocument{
		EmployeeId:   input.EmployeeId,
		DocumentType: input.DocumentType,
		FileUrl:      input.FileUrl,
		IssueDate:    input.IssueDate,
		ExpiryDate:   input.ExpiryDate,
		IsRequired:   input.IsRequired,
		Status:       documentStatusFromExpiry(input.ExpiryDate, time.Now()),
	}
	if doc.IsRequired == nil {
		doc.IsRequired = utils.NewFalse()
	}
	if err := db.WithContext(ctx).Create(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// Documents within 30 days of expiry count as expiring.
const expiryWarningWindow = 30 * 24 * time.Hour

func documentStatusFromExpiry(expiryDate *time.Time, now time.Time) DocumentStatus {
	if expiryDate == nil {
		return DocumentStatusMissing
	}
	if expiryDate.Before(now) {
		return DocumentStatusExpired
	}
	if expiryDate.Before(now.Add(expiryWarningWindow)) {
		return DocumentStatusExpiringSoon
	}
	return DocumentStatusValid
}
