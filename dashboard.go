package main

import (
	"net/http"

	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/models/reports"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/gin-gonic/gin"
)

func dashboardKpisHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		kpis, err := reports.GetPayrollKpis(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute kpis"})
			return
		}
		c.JSON(http.StatusOK, kpis)
	}
}

func dashboardTrendsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		trends, err := reports.GetMonthlyTrends(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute trends"})
			return
		}
		c.JSON(http.StatusOK, trends)
	}
}

func dashboardNationalityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		distribution, err := reports.GetNationalityDistribution(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute nationality distribution"})
			return
		}
		c.JSON(http.StatusOK, distribution)
	}
}

func dashboardBranchesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		salaries, err := reports.GetBranchSalaries(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute branch salaries"})
			return
		}
		c.JSON(http.StatusOK, salaries)
	}
}

type branchView struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	EmployeeCount int    `json:"employeeCount"`
}

func listBranchesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		branches, err := models.ListBranches(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list branches"})
			return
		}

		views := make([]branchView, 0, len(branches))
		for _, branch := range branches {
			count, err := utils.ResourceCountWhere[models.Employee](c.Request.Context(),
				"branch_id = ? AND status = ?", branch.ID, models.EmployeeStatusActive)
			if err != nil {
				c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list branches"})
				return
			}
			views = append(views, branchView{
				Id:            branch.ID,
				Name:          branch.Name,
				City:          branch.City,
				EmployeeCount: int(count),
			})
		}
		c.JSON(http.StatusOK, views)
	}
}
