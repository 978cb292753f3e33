package wallet

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitswitch/internal/api"
	"fitswitch/internal/auth"
)

// Backend is the wallet slice of the FitSwitch API. The wallet itself lives
// server-side; this gateway only relays.
type Backend interface {
	WalletBalance(ctx context.Context, token string) (*Wallet, error)
	AddMoney(ctx context.Context, token string, req AddMoneyRequest) (*Wallet, error)
	UseFacility(ctx context.Context, token string, req FacilityUsageRequest) (*FacilityUsageResult, error)
	WalletTransactions(ctx context.Context, token string) ([]Transaction, error)
}

type Handler struct {
	backend Backend
}

func NewHandler(backend Backend) *Handler {
	return &Handler{backend: backend}
}

func (h *Handler) Balance(c *gin.Context) {
	token, _ := auth.GetToken(c)

	w, err := h.backend.WalletBalance(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch wallet balance")
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *Handler) AddMoney(c *gin.Context) {
	var req AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	w, err := h.backend.AddMoney(c.Request.Context(), token, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to add money")
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *Handler) UseFacility(c *gin.Context) {
	var req FacilityUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	result, err := h.backend.UseFacility(c.Request.Context(), token, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to use facility")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) Transactions(c *gin.Context) {
	token, _ := auth.GetToken(c)

	txns, err := h.backend.WalletTransactions(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch transactions")
		return
	}

	c.JSON(http.StatusOK, txns)
}
