package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raihanahmadkhan/fintrak-backend/models"
	"github.com/raihanahmadkhan/fintrak-backend/models/reports"
)

func scopeFromQuery(c *gin.Context) (models.ExpenseScope, bool) {
	raw := c.DefaultQuery("scope", string(models.ScopeOwn))
	scope, err := models.ParseExpenseScope(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return scope, true
}

func summaryHandler(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := models.CurrentUser(ctx); err != nil {
		respondError(c, err)
		return
	}

	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}

	expenses, err := models.FetchExpenses(ctx, scope)
	if err != nil {
		respondError(c, err)
		return
	}
	expenses = filterFromQuery(c).Apply(expenses)
	c.JSON(http.StatusOK, reports.Summarize(expenses, time.Now().UTC()))
}

func exportExpensesHandler(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := models.CurrentUser(ctx); err != nil {
		respondError(c, err)
		return
	}

	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}

	expenses, err := models.FetchExpenses(ctx, scope)
	if err != nil {
		respondError(c, err)
		return
	}
	expenses = filterFromQuery(c).Apply(expenses)

	ids := make([]int, 0, len(expenses))
	seen := map[int]bool{}
	for _, e := range expenses {
		if !seen[e.EmployeeId] {
			seen[e.EmployeeId] = true
			ids = append(ids, e.EmployeeId)
		}
	}
	employees, err := models.MapUsers(ctx, ids)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := reports.ExportExpensesExcel(c.Writer, expenses, employees); err != nil {
		respondError(c, err)
	}
}
