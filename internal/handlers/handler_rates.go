package handlers

import (
	"net/http"

	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type ratesHandler struct {
	ratesService portssvc.RatesSvcFacade
}

// registerRatesRoutes registers the exchange rates route.
func registerRatesRoutes(rg *gin.RouterGroup, ratesService portssvc.RatesSvcFacade) {
	h := &ratesHandler{ratesService: ratesService}
	rg.GET("/rates", h.latestRates)
}

// latestRates godoc
// @Summary Latest reference exchange rates
// @Description Daily ECB reference rates keyed by ISO currency code, quoted against EUR
// @Tags rates
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 502 {object} map[string]string "Upstream feed unavailable"
// @Security BearerAuth
// @Router /rates [get]
func (h *ratesHandler) latestRates(c *gin.Context) {
	logger := requestLogger(c)

	rates, err := h.ratesService.LatestRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch reference rates", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Reference rates are temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, rates)
}
