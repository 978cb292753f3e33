package catalog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitswitch/internal/api"
	"fitswitch/internal/auth"
)

// OwnerBackend is the owner-side slice of the FitSwitch API: gym, plan and
// facility management. Writes go straight to the backend and bypass the read
// cache; members see updates once the cached entries expire.
type OwnerBackend interface {
	ListOwnerGyms(ctx context.Context, token string) ([]Gym, error)
	CreateGym(ctx context.Context, token string, req CreateGymRequest) (*Gym, error)
	UpdateGym(ctx context.Context, token string, gymID int64, req CreateGymRequest) (*Gym, error)
	CreatePlan(ctx context.Context, token string, gymID int64, req CreatePlanRequest) (*Plan, error)
	UpdatePlan(ctx context.Context, token string, gymID, planID int64, req CreatePlanRequest) (*Plan, error)
	CreateFacility(ctx context.Context, token string, gymID int64, req CreateFacilityRequest) (*Facility, error)
	UpdateFacility(ctx context.Context, token string, gymID, facilityID int64, req CreateFacilityRequest) (*Facility, error)
}

type Handler struct {
	service *Service
	owner   OwnerBackend
}

func NewHandler(service *Service, owner OwnerBackend) *Handler {
	return &Handler{service: service, owner: owner}
}

func (h *Handler) ListGyms(c *gin.Context) {
	token, _ := auth.GetToken(c)

	gyms, err := h.service.ListGyms(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch gyms")
		return
	}

	c.JSON(http.StatusOK, gyms)
}

func (h *Handler) GetGym(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	token, _ := auth.GetToken(c)

	gym, err := h.service.GetGym(c.Request.Context(), token, gymID)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch gym")
		return
	}

	c.JSON(http.StatusOK, gym)
}

func (h *Handler) ListPlans(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	token, _ := auth.GetToken(c)

	plans, err := h.service.ListPlans(c.Request.Context(), token, gymID)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *Handler) ListFacilities(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	token, _ := auth.GetToken(c)

	facilities, err := h.service.ListFacilities(c.Request.Context(), token, gymID)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch facilities")
		return
	}

	c.JSON(http.StatusOK, facilities)
}

func (h *Handler) ListOwnerGyms(c *gin.Context) {
	token, _ := auth.GetToken(c)

	gyms, err := h.owner.ListOwnerGyms(c.Request.Context(), token)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to fetch gyms")
		return
	}

	c.JSON(http.StatusOK, gyms)
}

func (h *Handler) CreateGym(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	gym, err := h.owner.CreateGym(c.Request.Context(), token, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to create gym")
		return
	}

	c.JSON(http.StatusCreated, gym)
}

func (h *Handler) UpdateGym(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	gym, err := h.owner.UpdateGym(c.Request.Context(), token, gymID, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to update gym")
		return
	}

	c.JSON(http.StatusOK, gym)
}

func (h *Handler) CreatePlan(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	plan, err := h.owner.CreatePlan(c.Request.Context(), token, gymID, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to create plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *Handler) UpdatePlan(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	planID, ok := pathID(c, "planID")
	if !ok {
		return
	}
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	plan, err := h.owner.UpdatePlan(c.Request.Context(), token, gymID, planID, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to update plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *Handler) CreateFacility(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	facility, err := h.owner.CreateFacility(c.Request.Context(), token, gymID, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to create facility")
		return
	}

	c.JSON(http.StatusCreated, facility)
}

func (h *Handler) UpdateFacility(c *gin.Context) {
	gymID, ok := pathID(c, "gymID")
	if !ok {
		return
	}
	facilityID, ok := pathID(c, "facilityID")
	if !ok {
		return
	}
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindError(err)})
		return
	}
	token, _ := auth.GetToken(c)

	facility, err := h.owner.UpdateFacility(c.Request.Context(), token, gymID, facilityID, req)
	if err != nil {
		api.RespondBackendError(c, err, "Failed to update facility")
		return
	}

	c.JSON(http.StatusOK, facility)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

