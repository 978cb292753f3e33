package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"fitswitch/internal/session"
)

type sessionRequest struct {
	MembershipID   int64 `json:"membershipId,omitempty"`
	SubscriptionID int64 `json:"facilitySubscriptionId,omitempty"`
}

// MembershipSessions adapts the client to the membership-session endpoints.
// It satisfies session.API.
type MembershipSessions struct {
	c *Client
}

func (c *Client) MembershipSessions() *MembershipSessions {
	return &MembershipSessions{c: c}
}

func (s *MembershipSessions) Current(ctx context.Context, token string, id int64) (*session.Session, error) {
	q := url.Values{"membershipId": {strconv.FormatInt(id, 10)}}
	var out session.Session
	err := s.c.do(ctx, token, "membership_session.current", http.MethodGet, "/user/membership-session/current", q, nil, &out)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if out.ID == 0 {
		// An empty body means no session today.
		return nil, nil
	}
	return &out, nil
}

func (s *MembershipSessions) CheckIn(ctx context.Context, token string, id int64) (*session.Session, error) {
	var out session.Session
	err := s.c.do(ctx, token, "membership_session.check_in", http.MethodPost, "/user/membership-session/check-in", nil, sessionRequest{MembershipID: id}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MembershipSessions) CheckOut(ctx context.Context, token string, id int64) (*session.Session, error) {
	var out session.Session
	err := s.c.do(ctx, token, "membership_session.check_out", http.MethodPost, "/user/membership-session/check-out", nil, sessionRequest{MembershipID: id}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MembershipSessions) Active(ctx context.Context, token string) ([]session.ActiveInfo, error) {
	var out []session.ActiveInfo
	err := s.c.do(ctx, token, "membership_session.active", http.MethodGet, "/user/membership-session/active", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FacilitySessions mirrors MembershipSessions for facility subscriptions.
type FacilitySessions struct {
	c *Client
}

func (c *Client) FacilitySessions() *FacilitySessions {
	return &FacilitySessions{c: c}
}

func (s *FacilitySessions) Current(ctx context.Context, token string, id int64) (*session.Session, error) {
	q := url.Values{"facilitySubscriptionId": {strconv.FormatInt(id, 10)}}
	var out session.Session
	err := s.c.do(ctx, token, "facility_session.current", http.MethodGet, "/user/facility-session/current", q, nil, &out)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if out.ID == 0 {
		// An empty body means no session today.
		return nil, nil
	}
	return &out, nil
}

func (s *FacilitySessions) CheckIn(ctx context.Context, token string, id int64) (*session.Session, error) {
	var out session.Session
	err := s.c.do(ctx, token, "facility_session.check_in", http.MethodPost, "/user/facility-session/check-in", nil, sessionRequest{SubscriptionID: id}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FacilitySessions) CheckOut(ctx context.Context, token string, id int64) (*session.Session, error) {
	var out session.Session
	err := s.c.do(ctx, token, "facility_session.check_out", http.MethodPost, "/user/facility-session/check-out", nil, sessionRequest{SubscriptionID: id}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FacilitySessions) Active(ctx context.Context, token string) ([]session.ActiveInfo, error) {
	var out []session.ActiveInfo
	err := s.c.do(ctx, token, "facility_session.active", http.MethodGet, "/user/facility-session/active", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SessionHistory lists the member's past gym visits, newest first.
func (c *Client) SessionHistory(ctx context.Context, token string) ([]session.HistoryEntry, error) {
	var out []session.HistoryEntry
	err := c.do(ctx, token, "history.sessions", http.MethodGet, "/user/history/sessions", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FacilitySessionHistory lists past facility visits.
func (c *Client) FacilitySessionHistory(ctx context.Context, token string) ([]session.HistoryEntry, error) {
	var out []session.HistoryEntry
	err := c.do(ctx, token, "history.facility_sessions", http.MethodGet, "/user/history/facility-sessions", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
