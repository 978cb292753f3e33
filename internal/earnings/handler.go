package earnings

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitswitch/internal/api"
	"fitswitch/internal/auth"
)

// Backend is the owner-earnings slice of the FitSwitch API.
type Backend interface {
	OwnerEarnings(ctx context.Context, token string) ([]Earning, error)
	GymEarnings(ctx context.Context, token string, gymID int64) ([]Earning, error)
	TotalEarnings(ctx context.Context, token string) (float64, error)
	GymTotalEarnings(ctx context.Context, token string, gymID int64) (float64, error)
}

type Handler struct {
	backend Backend
}

func NewHandler(backend Backend) *Handler {
	return &Handler{backend: backend}
}

func (h *Handler) List(c *gin.Context) {
	token, _ := auth.GetToken(c)

	earnings, err := h.backend.OwnerEarnings(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch earnings")
		return
	}

	c.JSON(http.StatusOK, earnings)
}

func (h *Handler) ListByGym(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	token, _ := auth.GetToken(c)

	earnings, err := h.backend.GymEarnings(c.Request.Context(), token, gymID)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch gym earnings")
		return
	}

	c.JSON(http.StatusOK, earnings)
}

func (h *Handler) Total(c *gin.Context) {
	token, _ := auth.GetToken(c)

	total, err := h.backend.TotalEarnings(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch total earnings")
		return
	}

	c.JSON(http.StatusOK, Total{Total: total})
}

func (h *Handler) TotalByGym(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	token, _ := auth.GetToken(c)

	total, err := h.backend.GymTotalEarnings(c.Request.Context(), token, gymID)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch gym total earnings")
		return
	}

	c.JSON(http.StatusOK, Total{Total: total})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
