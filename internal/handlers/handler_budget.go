package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: budgetService}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/status", h.budgetStatus)
		budgets.GET("/:id", h.getBudget)
	}
}

// createBudget godoc
// @Summary Create a budget
// @Description Creates a spending ceiling for a category over a window
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Referenced category not found"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create budget")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// listBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce json
// @Param activeOnly query bool false "Only budgets whose window covers today"
// @Success 200 {array} dto.BudgetResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := requestLogger(c)
	activeOnly := c.Query("activeOnly") == "true"

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), activeOnly, time.Now())
	if err != nil {
		respondError(c, logger, err, "list budgets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

// budgetStatus godoc
// @Summary Budget status
// @Description Sums active budgets against this month's spending
// @Tags budgets
// @Produce json
// @Success 200 {object} domain.BudgetStatus
// @Security BearerAuth
// @Router /budgets/status [get]
func (h *budgetHandler) budgetStatus(c *gin.Context) {
	logger := requestLogger(c)

	status, err := h.budgetService.BudgetStatus(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, logger, err, "compute budget status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// getBudget godoc
// @Summary Get a budget by ID
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := requestLogger(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "retrieve budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}
