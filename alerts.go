package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/castellodata/payroll_backend/workflow"
	"github.com/gin-gonic/gin"
)

func listAlertsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.AlertFilter{
			Severity: c.Query("severity"),
			Status:   c.Query("status"),
			Type:     c.Query("type"),
		}

		views, err := models.ListAlerts(c.Request.Context(), filter)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alerts"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

func resolveAlertHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
			return
		}

		ctx, span := tracer.Start(c.Request.Context(), "ResolveAlert")
		defer span.End()

		resolution, err := workflow.ResolveAlert(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrorRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
			case errors.Is(err, utils.ErrorAlreadyResolved):
				c.JSON(http.StatusConflict, gin.H{"error": "alert already resolved"})
			default:
				c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve alert"})
			}
			return
		}
		c.JSON(http.StatusOK, resolution)
	}
}
