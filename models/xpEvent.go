package models

import (
	"context"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/utils"
	"gorm.io/gorm"
)

// XpEvent is the append-only log of experience grants. A user's total is
// always derived by summing their events; there is no separately stored
// counter that could drift out of sync.
type XpEvent struct {
	ID                int         `gorm:"primary_key" json:"id"`
	UserId            int         `gorm:"index;not null" json:"user_id"`
	EventType         XpEventType `gorm:"size:30;not null" json:"event_type"`
	XpPoints          int         `gorm:"not null" json:"xp_points"`
	RelatedEmployeeId *int        `gorm:"index" json:"related_employee_id"`
	RelatedEmployee   *Employee   `gorm:"foreignKey:RelatedEmployeeId" json:"related_employee,omitempty"`
	CreatedAt         time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

// AwardXp appends one XpEvent inside the caller's transaction. Callers that
// pair the award with another state change (alert resolution) must pass the
// same tx so both commit or neither does.
func AwardXp(tx *gorm.DB, userId int, points int, eventType XpEventType, relatedEmployeeId *int) (*XpEvent, error) {
	if points <= 0 {
		return nil, utils.ErrorInvalidInput
	}
	event := XpEvent{
		UserId:            userId,
		EventType:         eventType,
		XpPoints:          points,
		RelatedEmployeeId: relatedEmployeeId,
	}
	if err := tx.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// TotalXpForUser sums all XP points for the user. COALESCE keeps the sum at
// zero for users with no events yet.
func TotalXpForUser(ctx context.Context, userId int) (int, error) {
	db := config.GetDB()
	var total int
	err := db.WithContext(ctx).Model(&XpEvent{}).
		Where("user_id = ?", userId).
		Select("COALESCE(SUM(xp_points), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func RecentXpEvents(ctx context.Context, userId int, limit int) ([]*XpEvent, error) {
	db := config.GetDB()
	var events []*XpEvent
	if err := db.WithContext(ctx).
		Where("user_id = ?", userId).
		Preload("RelatedEmployee").
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
