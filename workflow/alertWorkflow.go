package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/gamify"
	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AlertResolution struct {
	Success  bool              `json:"success"`
	XpGained int               `json:"xpGained"`
	Alert    *ResolvedAlertRef `json:"alert"`
}

type ResolvedAlertRef struct {
	Id         string `json:"id"`
	Status     string `json:"status"`
	ResolvedAt string `json:"resolvedAt"`
}

// ResolveAlert flips one OPEN alert to RESOLVED and awards the resolver
// the XP for its severity. The status flip and the XP event commit in the
// same transaction; a conditional UPDATE guards the transition so two
// concurrent resolvers can never both earn the award.
//
// Returns utils.ErrorRecordNotFound when the alert does not exist and
// utils.ErrorAlreadyResolved when it was resolved before this call.
func ResolveAlert(ctx context.Context, alertId int) (*AlertResolution, error) {

	logger := config.GetLogger()
	db := config.GetDB()

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return nil, errors.New("user id is required")
	}

	// Best-effort: shortcut duplicate clicks before they hit the row lock.
	// The conditional UPDATE stays authoritative when Redis is down.
	if locker := config.GetRedisLock(); locker != nil {
		lock, err := locker.Obtain(ctx, fmt.Sprintf("AlertResolve:%d", alertId), 30*time.Second, nil)
		if err == nil {
			defer func() {
				_ = lock.Release(ctx)
			}()
		} else if err != redislock.ErrNotObtained {
			logger.WithFields(logrus.Fields{
				"field":    "ResolveAlert",
				"alert_id": alertId,
			}).Warn("error obtaining redis lock; proceeding without redis lock: " + err.Error())
		}
	}

	var resolution AlertResolution

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		result := tx.Model(&models.Alert{}).
			Where("id = ? AND status <> ?", alertId, models.AlertStatusResolved).
			Updates(map[string]interface{}{
				"status":         models.AlertStatusResolved,
				"resolved_at":    now,
				"resolved_by_id": userId,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Distinguish a missing alert from one already resolved.
			var count int64
			if err := tx.Model(&models.Alert{}).Where("id = ?", alertId).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return utils.ErrorRecordNotFound
			}
			return utils.ErrorAlreadyResolved
		}

		var alert models.Alert
		if err := tx.First(&alert, alertId).Error; err != nil {
			return err
		}

		xpGained := gamify.SeverityXP(string(alert.Severity))
		if _, err := models.AwardXp(tx, userId, xpGained, models.XpEventTypeFixedAlert, alert.EmployeeId); err != nil {
			return err
		}

		if err := models.CreateHistory(tx, "UPDATE", alert.ID, "alerts", nil, &alert,
			fmt.Sprintf("Resolved alert %q", alert.Title)); err != nil {
			return err
		}

		resolution = AlertResolution{
			Success:  true,
			XpGained: xpGained,
			Alert: &ResolvedAlertRef{
				Id:         fmt.Sprint(alert.ID),
				Status:     string(alert.Status),
				ResolvedAt: now.UTC().Format(time.RFC3339),
			},
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, utils.ErrorRecordNotFound) && !errors.Is(err, utils.ErrorAlreadyResolved) {
			config.LogError(logger, "AlertWorkflow.go", "ResolveAlert", "Resolve transaction", alertId, err)
		}
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"field":     "ResolveAlert",
		"alert_id":  alertId,
		"user_id":   userId,
		"xp_gained": resolution.XpGained,
	}).Info("alert resolved")

	return &resolution, nil
}
