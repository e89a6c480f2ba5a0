package models

import (
	"context"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/utils"
)

type PayrollBatch struct {
	ID               int                `gorm:"primary_key" json:"id"`
	Month            time.Time          `gorm:"index;not null" json:"month"`
	UploadedById     int                `gorm:"index" json:"uploaded_by_id"`
	UploadedBy       *User              `gorm:"foreignKey:UploadedById" json:"uploaded_by,omitempty"`
	Status           PayrollBatchStatus `gorm:"type:enum('DRAFT', 'VALIDATED', 'APPROVED', 'PROCESSED');default:DRAFT;index" json:"status"`
	DataQualityScore int                `json:"data_quality_score"`
	Entries          []PayrollEntry     `gorm:"foreignKey:BatchId" json:"entries,omitempty"`
	CreatedAt        time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetPayrollBatch(ctx context.Context, id int) (*PayrollBatch, error) {
	return utils.FetchModel[PayrollBatch](ctx, id, "Entries")
}

func ListPayrollBatches(ctx context.Context) ([]*PayrollBatch, error) {
	db := config.GetDB()
	var batches []*PayrollBatch
	if err := db.WithContext(ctx).
		Preload("UploadedBy").
		Order("month DESC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// latestProcessedBatches returns the newest batch that reached at least
// VALIDATED, and the one before it. Either pointer may be nil.
func LatestProcessedBatches(ctx context.Context) (current *PayrollBatch, previous *PayrollBatch, err error) {
	db := config.GetDB()
	statuses := []PayrollBatchStatus{PayrollBatchStatusValidated, PayrollBatchStatusApproved, PayrollBatchStatusProcessed}

	var batches []*PayrollBatch
	if err := db.WithContext(ctx).
		Where("status IN ?", statuses).
		Preload("Entries").
		Order("month DESC").
		Limit(2).
		Find(&batches).Error; err != nil {
		return nil, nil, err
	}
	if len(batches) > 0 {
		current = batches[0]
	}
	if len(batches) > 1 {
		previous = batches[1]
	}
	return current, previous, nil
}
