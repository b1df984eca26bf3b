package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

// registerRecurringRoutes registers routes related to recurring transactions.
func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := &recurringHandler{recurringService: recurringService}

	recurring := rg.Group("/recurring")
	{
		recurring.POST("", h.createRecurring)
		recurring.GET("", h.listRecurring)
		recurring.GET("/:id", h.getRecurring)
		recurring.PUT("/:id", h.updateRecurring)
		recurring.DELETE("/:id", h.deactivateRecurring)
		recurring.POST("/process", h.processDue)
	}
}

// createRecurring godoc
// @Summary Schedule a recurring transaction
// @Tags recurring
// @Accept json
// @Produce json
// @Param recurring body dto.CreateRecurringRequest true "Template details"
// @Success 201 {object} dto.RecurringResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Referenced account not found"
// @Security BearerAuth
// @Router /recurring [post]
func (h *recurringHandler) createRecurring(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRecurring", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rec, err := h.recurringService.CreateRecurring(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create recurring transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecurringResponse(rec))
}

// listRecurring godoc
// @Summary List recurring transactions
// @Tags recurring
// @Produce json
// @Param activeOnly query bool false "Only active templates"
// @Success 200 {array} dto.RecurringResponse
// @Security BearerAuth
// @Router /recurring [get]
func (h *recurringHandler) listRecurring(c *gin.Context) {
	logger := requestLogger(c)
	activeOnly := c.Query("activeOnly") == "true"

	recs, err := h.recurringService.ListRecurring(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, logger, err, "list recurring transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecurringResponse(recs))
}

// getRecurring godoc
// @Summary Get a recurring transaction by ID
// @Tags recurring
// @Produce json
// @Param id path int true "Recurring transaction ID"
// @Success 200 {object} dto.RecurringResponse
// @Failure 404 {object} map[string]string "Template not found"
// @Security BearerAuth
// @Router /recurring/{id} [get]
func (h *recurringHandler) getRecurring(c *gin.Context) {
	logger := requestLogger(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rec, err := h.recurringService.GetRecurringByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "retrieve recurring transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringResponse(rec))
}

// updateRecurring godoc
// @Summary Update a recurring transaction
// @Description Merges the provided fields onto the template
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path int true "Recurring transaction ID"
// @Param recurring body dto.UpdateRecurringRequest true "Fields to update"
// @Success 200 {object} dto.RecurringResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Template not found"
// @Security BearerAuth
// @Router /recurring/{id} [put]
func (h *recurringHandler) updateRecurring(c *gin.Context) {
	logger := requestLogger(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateRecurring", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rec, err := h.recurringService.UpdateRecurring(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "update recurring transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringResponse(rec))
}

// deactivateRecurring godoc
// @Summary Deactivate a recurring transaction
// @Tags recurring
// @Produce json
// @Param id path int true "Recurring transaction ID"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "Template not found"
// @Security BearerAuth
// @Router /recurring/{id} [delete]
func (h *recurringHandler) deactivateRecurring(c *gin.Context) {
	logger := requestLogger(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recurringService.DeactivateRecurring(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "deactivate recurring transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

// processDue godoc
// @Summary Process due recurring transactions now
// @Description Materializes every pending occurrence; the scheduler runs this automatically
// @Tags recurring
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /recurring/process [post]
func (h *recurringHandler) processDue(c *gin.Context) {
	logger := requestLogger(c)

	created, err := h.recurringService.ProcessDue(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, logger, err, "process recurring transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"created": created})
}
