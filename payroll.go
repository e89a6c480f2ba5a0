package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/models/reports"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/castellodata/payroll_backend/workflow"
	"github.com/gin-gonic/gin"
)

func listPayrollBatchesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		batches, err := models.ListPayrollBatches(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payroll batches"})
			return
		}
		c.JSON(http.StatusOK, batches)
	}
}

// importPayrollHandler accepts a multipart upload with a "file" part and a
// "month" form value (YYYY-MM). Validation errors come back as 422 with
// the per-row breakdown.
func importPayrollHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		month, err := time.Parse("2006-01", c.PostForm("month"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month is required (YYYY-MM)"})
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
			return
		}
		defer file.Close()

		result, err := workflow.ImportPayrollCSV(c.Request.Context(), fileHeader.Filename, month, file)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !result.Success {
			c.JSON(http.StatusUnprocessableEntity, result)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func exportPayrollBatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch id"})
			return
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payroll-batch-%d.xlsx", id))
		if err := reports.ExportPayrollBatchExcel(c.Request.Context(), id, c.Writer); err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export batch"})
		}
	}
}
