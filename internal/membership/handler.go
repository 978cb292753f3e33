package membership

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitswitch/internal/api"
	"fitswitch/internal/auth"
)

// Backend is the membership slice of the FitSwitch API: purchase and history,
// facility subscriptions, switching, and the unsubscribe/refund flow.
type Backend interface {
	ListMemberships(ctx context.Context, token string) ([]Membership, error)
	PurchaseMembership(ctx context.Context, token string, req PurchaseRequest) (*Membership, error)
	ListFacilitySubscriptions(ctx context.Context, token string) ([]FacilitySubscription, error)
	SubscribeFacility(ctx context.Context, token string, req SubscribeFacilityRequest) (*FacilitySubscription, error)
	SwitchMembership(ctx context.Context, token string, req SwitchRequest) (*Membership, error)
	RefundCalculation(ctx context.Context, token string, membershipID int64) (*RefundCalculation, error)
	CreateUnsubscribeRequest(ctx context.Context, token string, req UnsubscribeRequest) (*UnsubscribeRecord, error)
	ListUnsubscribeRequests(ctx context.Context, token string) ([]UnsubscribeRecord, error)
	ListOwnerUnsubscribeRequests(ctx context.Context, token string) ([]UnsubscribeRecord, error)
	ApproveUnsubscribeRequest(ctx context.Context, token string, id int64, req ApprovalRequest) (*UnsubscribeRecord, error)
	RejectUnsubscribeRequest(ctx context.Context, token string, id int64, req ApprovalRequest) (*UnsubscribeRecord, error)
	GymMembers(ctx context.Context, token string, gymID int64) ([]GymMember, error)
	GymMemberStats(ctx context.Context, token string, gymID, userID int64) (*MemberStats, error)
}

type Handler struct {
	backend Backend
}

func NewHandler(backend Backend) *Handler {
	return &Handler{backend: backend}
}

func (h *Handler) List(c *gin.Context) {
	token, _ := auth.GetToken(c)

	memberships, err := h.backend.ListMemberships(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch memberships")
		return
	}

	c.JSON(http.StatusOK, memberships)
}

func (h *Handler) Purchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	m, err := h.backend.PurchaseMembership(c.Request.Context(), token, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to purchase membership")
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListFacilitySubscriptions(c *gin.Context) {
	token, _ := auth.GetToken(c)

	subs, err := h.backend.ListFacilitySubscriptions(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch facility subscriptions")
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (h *Handler) SubscribeFacility(c *gin.Context) {
	var req SubscribeFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	sub, err := h.backend.SubscribeFacility(c.Request.Context(), token, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to subscribe to facility")
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *Handler) Switch(c *gin.Context) {
	var req SwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	m, err := h.backend.SwitchMembership(c.Request.Context(), token, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to switch membership")
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) RefundCalculation(c *gin.Context) {
	membershipID, ok := pathID(c, "membershipID")
	if !ok {
		return
	}
	token, _ := auth.GetToken(c)

	calc, err := h.backend.RefundCalculation(c.Request.Context(), token, membershipID)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to calculate refund")
		return
	}

	c.JSON(http.StatusOK, calc)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	rec, err := h.backend.CreateUnsubscribeRequest(c.Request.Context(), token, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to submit unsubscribe request")
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListUnsubscribeRequests(c *gin.Context) {
	token, _ := auth.GetToken(c)

	recs, err := h.backend.ListUnsubscribeRequests(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch unsubscribe requests")
		return
	}

	c.JSON(http.StatusOK, recs)
}

func (h *Handler) ListOwnerUnsubscribeRequests(c *gin.Context) {
	token, _ := auth.GetToken(c)

	recs, err := h.backend.ListOwnerUnsubscribeRequests(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch unsubscribe requests")
		return
	}

	c.JSON(http.StatusOK, recs)
}

func (h *Handler) ApproveUnsubscribe(c *gin.Context) {
	h.decideUnsubscribe(c, h.backend.ApproveUnsubscribeRequest, "Failed to approve request")
}

func (h *Handler) RejectUnsubscribe(c *gin.Context) {
	h.decideUnsubscribe(c, h.backend.RejectUnsubscribeRequest, "Failed to reject request")
}

func (h *Handler) decideUnsubscribe(
	c *gin.Context,
	decide func(ctx context.Context, token string, id int64, req ApprovalRequest) (*UnsubscribeRecord, error),
	fallback string,
) {
	id, ok := pathID(c, "requestID")
	if !ok {
		return
	}
	// Notes are optional; an empty body means no notes.
	var req ApprovalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
			return
		}
	}
	token, _ := auth.GetToken(c)

	rec, err := decide(c.Request.Context(), token, id, req)
	if err != nil {
		api.RespondBackendError(c, err, fallback)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ListGymMembers is the owner's member roster for one gym.
func (h *Handler) ListGymMembers(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	token, _ := auth.GetToken(c)

	members, err := h.backend.GymMembers(c.Request.Context(), token, gymID)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch gym members")
		return
	}

	c.JSON(http.StatusOK, members)
}

func (h *Handler) GymMemberStats(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}
	token, _ := auth.GetToken(c)

	stats, err := h.backend.GymMemberStats(c.Request.Context(), token, gymID, userID)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch member stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
