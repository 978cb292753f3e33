package backend

import (
	"context"
	"fmt"
	"net/http"

	"fitswitch/internal/catalog"
)

// Member-facing browse reads. These feed the catalog cache layer.

func (c *Client) ListGyms(ctx context.Context, token string) ([]catalog.Gym, error) {
	var gyms []catalog.Gym
	if err := c.do(ctx, token, "catalog.list_gyms", http.MethodGet, "/gyms", nil, nil, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

func (c *Client) GetGym(ctx context.Context, token string, gymID int64) (*catalog.Gym, error) {
	var gym catalog.Gym
	path := fmt.Sprintf("/gyms/%d", gymID)
	if err := c.do(ctx, token, "catalog.get_gym", http.MethodGet, path, nil, nil, &gym); err != nil {
		return nil, err
	}
	return &gym, nil
}

func (c *Client) ListPlans(ctx context.Context, token string, gymID int64) ([]catalog.Plan, error) {
	var plans []catalog.Plan
	path := fmt.Sprintf("/gyms/%d/plans", gymID)
	if err := c.do(ctx, token, "catalog.list_plans", http.MethodGet, path, nil, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) ListFacilities(ctx context.Context, token string, gymID int64) ([]catalog.Facility, error) {
	var facilities []catalog.Facility
	path := fmt.Sprintf("/gyms/%d/facilities", gymID)
	if err := c.do(ctx, token, "catalog.list_facilities", http.MethodGet, path, nil, nil, &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

// Owner-side catalog management.

func (c *Client) ListOwnerGyms(ctx context.Context, token string) ([]catalog.Gym, error) {
	var gyms []catalog.Gym
	if err := c.do(ctx, token, "catalog.list_owner_gyms", http.MethodGet, "/owner/gyms", nil, nil, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

func (c *Client) CreateGym(ctx context.Context, token string, req catalog.CreateGymRequest) (*catalog.Gym, error) {
	var gym catalog.Gym
	if err := c.do(ctx, token, "catalog.create_gym", http.MethodPost, "/owner/gyms", nil, req, &gym); err != nil {
		return nil, err
	}
	return &gym, nil
}

func (c *Client) UpdateGym(ctx context.Context, token string, gymID int64, req catalog.CreateGymRequest) (*catalog.Gym, error) {
	var gym catalog.Gym
	path := fmt.Sprintf("/owner/gyms/%d", gymID)
	if err := c.do(ctx, token, "catalog.update_gym", http.MethodPut, path, nil, req, &gym); err != nil {
		return nil, err
	}
	return &gym, nil
}

func (c *Client) CreatePlan(ctx context.Context, token string, gymID int64, req catalog.CreatePlanRequest) (*catalog.Plan, error) {
	var plan catalog.Plan
	req.GymID = gymID
	path := fmt.Sprintf("/owner/gyms/%d/plans", gymID)
	if err := c.do(ctx, token, "catalog.create_plan", http.MethodPost, path, nil, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) UpdatePlan(ctx context.Context, token string, gymID, planID int64, req catalog.CreatePlanRequest) (*catalog.Plan, error) {
	var plan catalog.Plan
	req.GymID = gymID
	path := fmt.Sprintf("/owner/gyms/%d/plans/%d", gymID, planID)
	if err := c.do(ctx, token, "catalog.update_plan", http.MethodPut, path, nil, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) CreateFacility(ctx context.Context, token string, gymID int64, req catalog.CreateFacilityRequest) (*catalog.Facility, error) {
	var facility catalog.Facility
	req.GymID = gymID
	path := fmt.Sprintf("/owner/gyms/%d/facilities", gymID)
	if err := c.do(ctx, token, "catalog.create_facility", http.MethodPost, path, nil, req, &facility); err != nil {
		return nil, err
	}
	return &facility, nil
}

func (c *Client) UpdateFacility(ctx context.Context, token string, gymID, facilityID int64, req catalog.CreateFacilityRequest) (*catalog.Facility, error) {
	var facility catalog.Facility
	req.GymID = gymID
	path := fmt.Sprintf("/owner/gyms/%d/facilities/%d", gymID, facilityID)
	if err := c.do(ctx, token, "catalog.update_facility", http.MethodPut, path, nil, req, &facility); err != nil {
		return nil, err
	}
	return &facility, nil
}
