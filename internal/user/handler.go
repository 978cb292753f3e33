package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitswitch/internal/api"
	"fitswitch/internal/auth"
)

// Backend is the account slice of the FitSwitch API. Registration and login
// are unauthenticated; the rest carry the member's token.
type Backend interface {
	Register(ctx context.Context, req RegisterRequest) (*StatusEnvelope, error)
	VerifyOtp(ctx context.Context, req VerifyOtpRequest) (*StatusEnvelope, error)
	ResendOtp(ctx context.Context, email string) (*StatusEnvelope, error)
	Login(ctx context.Context, req LoginRequest) (*LoginEnvelope, error)
	Profile(ctx context.Context, token string) (*ProfileEnvelope, error)
	DashboardStats(ctx context.Context, token string) (*DashboardStats, error)
	DigitalCard(ctx context.Context, token string) (*DigitalCard, error)
}

type Handler struct {
	backend Backend
}

func NewHandler(backend Backend) *Handler {
	return &Handler{backend: backend}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}

	env, err := h.backend.Register(c.Request.Context(), req)
	if err != nil {
		api.RespondBackendError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusOK, env)
}

func (h *Handler) VerifyOtp(c *gin.Context) {
	var req VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}

	env, err := h.backend.VerifyOtp(c.Request.Context(), req)
	if err != nil {
		api.RespondBackendError(c, err, "OTP verification failed")
		return
	}

	c.JSON(http.StatusOK, env)
}

func (h *Handler) ResendOtp(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email is required"})
		return
	}

	env, err := h.backend.ResendOtp(c.Request.Context(), email)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to resend OTP")
		return
	}

	c.JSON(http.StatusOK, env)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}

	env, err := h.backend.Login(c.Request.Context(), req)
	if err != nil {
		api.RespondBackendError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, env)
}

func (h *Handler) Profile(c *gin.Context) {
	token, _ := auth.GetToken(c)

	env, err := h.backend.Profile(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, env)
}

func (h *Handler) DashboardStats(c *gin.Context) {
	token, _ := auth.GetToken(c)

	stats, err := h.backend.DashboardStats(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) DigitalCard(c *gin.Context) {
	token, _ := auth.GetToken(c)

	card, err := h.backend.DigitalCard(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch digital card")
		return
	}

	c.JSON(http.StatusOK, card)
}
