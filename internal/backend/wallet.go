package backend

import (
	"context"
	"net/http"

	"fitswitch/internal/wallet"
)

func (c *Client) WalletBalance(ctx context.Context, token string) (*wallet.Wallet, error) {
	var w wallet.Wallet
	if err := c.do(ctx, token, "wallet.balance", http.MethodGet, "/api/wallet/balance", nil, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) AddMoney(ctx context.Context, token string, req wallet.AddMoneyRequest) (*wallet.Wallet, error) {
	var w wallet.Wallet
	if err := c.do(ctx, token, "wallet.add_money", http.MethodPost, "/api/wallet/add-money", nil, req, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) UseFacility(ctx context.Context, token string, req wallet.FacilityUsageRequest) (*wallet.FacilityUsageResult, error) {
	var result wallet.FacilityUsageResult
	if err := c.do(ctx, token, "wallet.use_facility", http.MethodPost, "/api/wallet/use-facility", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) WalletTransactions(ctx context.Context, token string) ([]wallet.Transaction, error) {
	var txns []wallet.Transaction
	if err := c.do(ctx, token, "wallet.transactions", http.MethodGet, "/api/wallet/transactions", nil, nil, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}
