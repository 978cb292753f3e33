package backend

import (
	"context"
	"fmt"
	"net/http"

	"fitswitch/internal/earnings"
)

func (c *Client) OwnerEarnings(ctx context.Context, token string) ([]earnings.Earning, error) {
	var list []earnings.Earning
	if err := c.do(ctx, token, "earnings.list", http.MethodGet, "/api/owner/earnings", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GymEarnings(ctx context.Context, token string, gymID int64) ([]earnings.Earning, error) {
	var list []earnings.Earning
	path := fmt.Sprintf("/api/owner/earnings/gym/%d", gymID)
	if err := c.do(ctx, token, "earnings.list_by_gym", http.MethodGet, path, nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// The total endpoints answer with a bare JSON number.
func (c *Client) TotalEarnings(ctx context.Context, token string) (float64, error) {
	var total float64
	if err := c.do(ctx, token, "earnings.total", http.MethodGet, "/api/owner/earnings/total", nil, nil, &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) GymTotalEarnings(ctx context.Context, token string, gymID int64) (float64, error) {
	var total float64
	path := fmt.Sprintf("/api/owner/earnings/gym/%d/total", gymID)
	if err := c.do(ctx, token, "earnings.total_by_gym", http.MethodGet, path, nil, nil, &total); err != nil {
		return 0, err
	}
	return total, nil
}
