package backend

import (
	"context"
	"net/http"
	"net/url"

	"fitswitch/internal/user"
)

func (c *Client) Register(ctx context.Context, req user.RegisterRequest) (*user.StatusEnvelope, error) {
	var env user.StatusEnvelope
	if err := c.do(ctx, "", "user.register", http.MethodPost, "/auth/register", nil, req, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Client) VerifyOtp(ctx context.Context, req user.VerifyOtpRequest) (*user.StatusEnvelope, error) {
	var env user.StatusEnvelope
	if err := c.do(ctx, "", "user.verify_otp", http.MethodPost, "/auth/verify-otp", nil, req, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Client) ResendOtp(ctx context.Context, email string) (*user.StatusEnvelope, error) {
	var env user.StatusEnvelope
	query := url.Values{"email": {email}}
	if err := c.do(ctx, "", "user.resend_otp", http.MethodPost, "/auth/resend-otp", query, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Client) Login(ctx context.Context, req user.LoginRequest) (*user.LoginEnvelope, error) {
	var env user.LoginEnvelope
	if err := c.do(ctx, "", "user.login", http.MethodPost, "/auth/login", nil, req, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*user.ProfileEnvelope, error) {
	var env user.ProfileEnvelope
	if err := c.do(ctx, token, "user.profile", http.MethodGet, "/auth/profile", nil, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Client) DashboardStats(ctx context.Context, token string) (*user.DashboardStats, error) {
	var stats user.DashboardStats
	if err := c.do(ctx, token, "user.dashboard_stats", http.MethodGet, "/user/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) DigitalCard(ctx context.Context, token string) (*user.DigitalCard, error) {
	var card user.DigitalCard
	if err := c.do(ctx, token, "user.digital_card", http.MethodGet, "/api/digital-card/data", nil, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}
