package main

import (
	"net/http"
	"time"

	"github.com/castellodata/payroll_backend/gamify"
	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/gin-gonic/gin"
)

type xpEventView struct {
	Id           int     `json:"id"`
	Type         string  `json:"type"`
	XpPoints     int     `json:"xpPoints"`
	EmployeeName *string `json:"employeeName,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

type xpSummaryResponse struct {
	gamify.LevelState
	RecentEvents []xpEventView `json:"recentEvents"`
}

func xpSummaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId, _ := utils.GetUserIdFromContext(ctx)

		totalXp, err := models.TotalXpForUser(ctx, userId)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch xp"})
			return
		}

		events, err := models.RecentXpEvents(ctx, userId, 5)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch xp events"})
			return
		}

		response := xpSummaryResponse{
			LevelState:   gamify.ComputeLevel(totalXp),
			RecentEvents: make([]xpEventView, 0, len(events)),
		}
		for _, event := range events {
			view := xpEventView{
				Id:        event.ID,
				Type:      string(event.EventType),
				XpPoints:  event.XpPoints,
				CreatedAt: event.CreatedAt.UTC().Format(time.RFC3339),
			}
			if event.RelatedEmployee != nil {
				view.EmployeeName = &event.RelatedEmployee.FullName
			}
			response.RecentEvents = append(response.RecentEvents, view)
		}
		c.JSON(http.StatusOK, response)
	}
}
