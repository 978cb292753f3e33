package session

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitswitch/internal/api"
	"fitswitch/internal/auth"
)

// HistoryAPI answers past-visit lookups; the backend client implements it.
type HistoryAPI interface {
	SessionHistory(ctx context.Context, token string) ([]HistoryEntry, error)
	FacilitySessionHistory(ctx context.Context, token string) ([]HistoryEntry, error)
}

// Handler exposes the session lifecycle for both kinds. The routes are
// symmetric; only the identifier field differs: membershipId for gym
// memberships, facilitySubscriptionId for facility subscriptions.
type Handler struct {
	memberships *Controller
	facilities  *Controller
	resolver    *Resolver
	history     HistoryAPI
}

func NewHandler(memberships, facilities *Controller, resolver *Resolver, history HistoryAPI) *Handler {
	return &Handler{
		memberships: memberships,
		facilities:  facilities,
		resolver:    resolver,
		history:     history,
	}
}

type transitionRequest struct {
	MembershipID   int64  `json:"membershipId"`
	SubscriptionID int64  `json:"facilitySubscriptionId"`
	GymID          int64  `json:"gymId"`
	GymName        string `json:"gymName"`
}

func (r transitionRequest) idFor(kind Kind) int64 {
	if kind == KindFacility {
		return r.SubscriptionID
	}
	return r.MembershipID
}

// StateResponse is the polled verdict for one membership or subscription.
// GymResolution reports how (or whether) the gym identity used for the local
// visit record was established.
type StateResponse struct {
	Snapshot
	GymResolution GymResolution `json:"gymResolution"`
}

func (h *Handler) MembershipCheckIn(c *gin.Context) { h.checkIn(c, h.memberships) }
func (h *Handler) FacilityCheckIn(c *gin.Context)   { h.checkIn(c, h.facilities) }

func (h *Handler) MembershipCheckOut(c *gin.Context) { h.checkOut(c, h.memberships) }
func (h *Handler) FacilityCheckOut(c *gin.Context)   { h.checkOut(c, h.facilities) }

func (h *Handler) MembershipState(c *gin.Context) { h.state(c, h.memberships) }
func (h *Handler) FacilityState(c *gin.Context)   { h.state(c, h.facilities) }

func (h *Handler) MembershipActive(c *gin.Context) { h.active(c, h.memberships) }
func (h *Handler) FacilityActive(c *gin.Context)   { h.active(c, h.facilities) }

func (h *Handler) MembershipHistory(c *gin.Context) {
	h.historyList(c, h.history.SessionHistory)
}

func (h *Handler) FacilityHistory(c *gin.Context) {
	h.historyList(c, h.history.FacilitySessionHistory)
}

func (h *Handler) checkIn(c *gin.Context, ctrl *Controller) {
	req, userID, token, ok := h.transitionInput(c, ctrl.kind)
	if !ok {
		return
	}

	sess, err := ctrl.CheckIn(c.Request.Context(), token, userID, req.idFor(ctrl.kind))
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

func (h *Handler) checkOut(c *gin.Context, ctrl *Controller) {
	req, userID, token, ok := h.transitionInput(c, ctrl.kind)
	if !ok {
		return
	}

	resolution := h.resolver.ResolveGym(c.Request.Context(), token, MembershipRef{
		GymID:   req.GymID,
		GymName: req.GymName,
	})

	sess, err := ctrl.CheckOut(c.Request.Context(), token, userID, req.idFor(ctrl.kind), resolution.GymID)
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// state answers the polled per-day verdict. A missing identifier is not an
// error: it means the member has nothing to check in against, and the
// verdict is NO_MEMBERSHIP.
func (h *Handler) state(c *gin.Context, ctrl *Controller) {
	userID, _ := auth.GetUserID(c)
	token, _ := auth.GetToken(c)

	id := queryID(c, idParamFor(ctrl.kind))
	if id == 0 {
		c.JSON(http.StatusOK, StateResponse{
			Snapshot:      Snapshot{State: StateNoMembership, Today: ctrl.now()},
			GymResolution: GymResolution{Source: Unresolved},
		})
		return
	}

	resolution := h.resolver.ResolveGym(c.Request.Context(), token, MembershipRef{
		GymID:   queryID(c, "gymId"),
		GymName: c.Query("gymName"),
	})

	snap := ctrl.Refresh(c.Request.Context(), token, userID, id, resolution.GymID)

	c.JSON(http.StatusOK, StateResponse{Snapshot: *snap, GymResolution: resolution})
}

func (h *Handler) active(c *gin.Context, ctrl *Controller) {
	token, _ := auth.GetToken(c)

	sessions, err := ctrl.Active(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch active sessions")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func (h *Handler) historyList(c *gin.Context, fetch func(context.Context, string) ([]HistoryEntry, error)) {
	token, _ := auth.GetToken(c)

	entries, err := fetch(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch session history")
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *Handler) transitionInput(c *gin.Context, kind Kind) (transitionRequest, int64, string, bool) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return req, 0, "", false
	}
	if req.idFor(kind) <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing " + idParamFor(kind)})
		return req, 0, "", false
	}
	userID, _ := auth.GetUserID(c)
	token, _ := auth.GetToken(c)
	return req, userID, token, true
}

// respondTransitionError keeps transition failures inline-friendly: the
// reason is the text the UI shows next to the control that caused it.
func respondTransitionError(c *gin.Context, err error) {
	if errors.Is(err, ErrRequestInFlight) {
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		return
	}

	var in *CheckInError
	if errors.As(err, &in) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: in.Reason})
		return
	}
	var out *CheckOutError
	if errors.As(err, &out) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: out.Reason})
		return
	}

	c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Session request failed"})
}

func idParamFor(kind Kind) string {
	if kind == KindFacility {
		return "facilitySubscriptionId"
	}
	return "membershipId"
}

func queryID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
