package backend

import (
	"context"
	"fmt"
	"net/http"

	"fitswitch/internal/membership"
)

func (c *Client) ListMemberships(ctx context.Context, token string) ([]membership.Membership, error) {
	var memberships []membership.Membership
	if err := c.do(ctx, token, "membership.list", http.MethodGet, "/user/memberships", nil, nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (c *Client) PurchaseMembership(ctx context.Context, token string, req membership.PurchaseRequest) (*membership.Membership, error) {
	var m membership.Membership
	if err := c.do(ctx, token, "membership.purchase", http.MethodPost, "/user/memberships", nil, req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) ListFacilitySubscriptions(ctx context.Context, token string) ([]membership.FacilitySubscription, error) {
	var subs []membership.FacilitySubscription
	if err := c.do(ctx, token, "membership.list_facility_subs", http.MethodGet, "/user/facility/subscriptions", nil, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *Client) SubscribeFacility(ctx context.Context, token string, req membership.SubscribeFacilityRequest) (*membership.FacilitySubscription, error) {
	var sub membership.FacilitySubscription
	if err := c.do(ctx, token, "membership.subscribe_facility", http.MethodPost, "/user/facility/subscribe", nil, req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) SwitchMembership(ctx context.Context, token string, req membership.SwitchRequest) (*membership.Membership, error) {
	var m membership.Membership
	if err := c.do(ctx, token, "membership.switch", http.MethodPost, "/api/membership/switch", nil, req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) RefundCalculation(ctx context.Context, token string, membershipID int64) (*membership.RefundCalculation, error) {
	var calc membership.RefundCalculation
	path := fmt.Sprintf("/api/user/membership/%d/refund-calculation", membershipID)
	if err := c.do(ctx, token, "membership.refund_calculation", http.MethodGet, path, nil, nil, &calc); err != nil {
		return nil, err
	}
	return &calc, nil
}

func (c *Client) CreateUnsubscribeRequest(ctx context.Context, token string, req membership.UnsubscribeRequest) (*membership.UnsubscribeRecord, error) {
	var rec membership.UnsubscribeRecord
	if err := c.do(ctx, token, "membership.unsubscribe", http.MethodPost, "/api/user/subscription/unsubscribe", nil, req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) ListUnsubscribeRequests(ctx context.Context, token string) ([]membership.UnsubscribeRecord, error) {
	var recs []membership.UnsubscribeRecord
	if err := c.do(ctx, token, "membership.list_unsubscribe", http.MethodGet, "/api/user/unsubscribe-requests", nil, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *Client) ListOwnerUnsubscribeRequests(ctx context.Context, token string) ([]membership.UnsubscribeRecord, error) {
	var recs []membership.UnsubscribeRecord
	if err := c.do(ctx, token, "membership.list_owner_unsubscribe", http.MethodGet, "/api/owner/unsubscribe-requests", nil, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *Client) ApproveUnsubscribeRequest(ctx context.Context, token string, id int64, req membership.ApprovalRequest) (*membership.UnsubscribeRecord, error) {
	var rec membership.UnsubscribeRecord
	path := fmt.Sprintf("/api/owner/unsubscribe-requests/%d/approve", id)
	if err := c.do(ctx, token, "membership.approve_unsubscribe", http.MethodPost, path, nil, req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) RejectUnsubscribeRequest(ctx context.Context, token string, id int64, req membership.ApprovalRequest) (*membership.UnsubscribeRecord, error) {
	var rec membership.UnsubscribeRecord
	path := fmt.Sprintf("/api/owner/unsubscribe-requests/%d/reject", id)
	if err := c.do(ctx, token, "membership.reject_unsubscribe", http.MethodPost, path, nil, req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) GymMembers(ctx context.Context, token string, gymID int64) ([]membership.GymMember, error) {
	var out []membership.GymMember
	path := fmt.Sprintf("/owner/gyms/%d/users", gymID)
	if err := c.do(ctx, token, "membership.gym_members", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GymMemberStats(ctx context.Context, token string, gymID, userID int64) (*membership.MemberStats, error) {
	var out membership.MemberStats
	path := fmt.Sprintf("/owner/gyms/%d/users/%d/stats", gymID, userID)
	if err := c.do(ctx, token, "membership.gym_member_stats", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
