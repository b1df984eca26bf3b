package handlers

import (
	"log/slog"
	"net/http"

	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/finanzas-app/finanzas_backend/internal/platform/config"
	"github.com/finanzas-app/finanzas_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler issues tokens for the single configured user.
type authHandler struct {
	cfg *config.Config
}

// registerAuthRoutes registers the public authentication routes. Login gets
// its own tight rate limit on top of the global one.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := &authHandler{cfg: cfg}

	rate, _ := limiter.NewRateFromFormatted("5-M")
	loginLimiter := limitergin.NewMiddleware(limiter.New(memory.NewStore(), rate))

	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimiter, h.login)
	}
}

// login godoc
// @Summary Log in
// @Description Validates the configured credentials and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if req.Username != h.cfg.AppUsername || !utils.CheckPasswordHash(req.Password, h.cfg.AppPasswordHash) {
		logger.Warn("Login rejected", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(req.Username, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	logger.Info("Login succeeded", slog.String("username", req.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.cfg.JWTExpiryDuration.Seconds()),
	})
}
