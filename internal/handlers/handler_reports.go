package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type reportsHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportRoutes registers the report routes.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportsHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/expense-by-category", h.expenseByCategory)
		reports.GET("/monthly-series", h.monthlySeries)
	}
}

// expenseByCategory godoc
// @Summary Expense breakdown by category
// @Description Sums expenses per category over the window; defaults to the current month
// @Tags reports
// @Produce json
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {array} domain.CategorySlice
// @Failure 400 {object} map[string]string "Invalid window"
// @Security BearerAuth
// @Router /reports/expense-by-category [get]
func (h *reportsHandler) expenseByCategory(c *gin.Context) {
	logger := requestLogger(c)

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if raw := c.Query("startDate"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be YYYY-MM-DD"})
			return
		}
		end = parsed
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not precede startDate"})
		return
	}

	slices, err := h.reportingService.ExpenseByCategory(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, logger, err, "compute expense breakdown")
		return
	}

	c.JSON(http.StatusOK, slices)
}

// monthlySeries godoc
// @Summary Monthly income/expense series
// @Description Per-month totals for the trailing window ending this month, oldest first
// @Tags reports
// @Produce json
// @Param months query int false "Number of months (default 6)"
// @Success 200 {array} domain.MonthlyPoint
// @Failure 400 {object} map[string]string "Invalid months"
// @Security BearerAuth
// @Router /reports/monthly-series [get]
func (h *reportsHandler) monthlySeries(c *gin.Context) {
	logger := requestLogger(c)

	months := 6
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 60 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be between 1 and 60"})
			return
		}
		months = parsed
	}

	series, err := h.reportingService.MonthlySeries(c.Request.Context(), time.Now(), months)
	if err != nil {
		respondError(c, logger, err, "compute monthly series")
		return
	}

	c.JSON(http.StatusOK, series)
}
