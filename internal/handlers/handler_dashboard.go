package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &dashboardHandler{reportingService: reportingService}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Returns the six summary cards, chart series and recent activity, all derived from raw records at request time
// @Tags dashboard
// @Produce json
// @Param asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid asOf date"
// @Failure 500 {object} map[string]string "Failed to compute dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := requestLogger(c)

	asOf := time.Now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "compute dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}
