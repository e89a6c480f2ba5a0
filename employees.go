package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/gin-gonic/gin"
)

func listEmployeesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.EmployeeFilter{
			Search:      c.Query("search"),
			Branch:      c.Query("branch"),
			Nationality: c.Query("nationality"),
		}

		items, err := models.ListEmployees(c.Request.Context(), filter)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func getEmployeeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
			return
		}

		employee, err := models.GetEmployee(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch employee"})
			return
		}
		c.JSON(http.StatusOK, employee)
	}
}

func updateEmployeeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
			return
		}

		var input models.NewEmployee
		if err := c.ShouldBindJSON(&input); err != nil {
			if fields := utils.ProcessValidationErrors(err); fields != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		employee, err := models.UpdateEmployee(c.Request.Context(), id, &input)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, employee)
	}
}
