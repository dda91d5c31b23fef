package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
	"github.com/LBaravalle/payroll_engine_app/internal/platform/config"
	"github.com/LBaravalle/payroll_engine_app/internal/utils"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthHandler authenticates the payroll operator against the configured
// service credential and issues JWT bearer tokens.
type AuthHandler struct {
	authUser         string
	authPasswordHash []byte
	jwtSecret        string
	jwtDuration      time.Duration
	jwtIssuer        string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUser:         cfg.AuthUser,
		authPasswordHash: cfg.AuthPasswordHash,
		jwtSecret:        cfg.JWTSecret,
		jwtDuration:      cfg.JWTExpiryDuration,
		jwtIssuer:        cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// 5 login attempts per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
	}
}

// Login godoc
// @Summary Operator login
// @Description Authenticates the payroll operator and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	if len(h.authPasswordHash) == 0 || req.Username != h.authUser ||
		!utils.CheckPasswordHash(req.Password, h.authPasswordHash) {
		logger.Warn("Login rejected", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	signed, err := utils.GenerateJWT(h.authUser, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}

	logger.Info("Operator logged in", slog.String("username", h.authUser))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     signed,
		ExpiresIn: int(h.jwtDuration.Seconds()),
	})
}
