package main

import (
	"net/http"

	"github.com/castellodata/payroll_backend/models/reports"
	"github.com/gin-gonic/gin"
)

func qualityScoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := reports.GetQualityScore(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute quality score"})
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}
