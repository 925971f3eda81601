package liteapi

import (
	"context"
	"net/http"
)

// Loyalty returns the account's loyalty program settings.
func (c *Client) Loyalty(ctx context.Context, opts ...CallOption) *Result {
	return c.dashboard(ctx, "loyalty.get", http.MethodGet, "/loyalties", nil, opts)
}

func (c *Client) EnableLoyalty(ctx context.Context, s LoyaltySettings, opts ...CallOption) *Result {
	if errs := validateLoyalty(s); errs.failed() {
		return c.reject("loyalty.enable", errs...)
	}
	return c.dashboard(ctx, "loyalty.enable", http.MethodPost, "/loyalties", s, opts)
}

func (c *Client) UpdateLoyalty(ctx context.Context, s LoyaltySettings, opts ...CallOption) *Result {
	if errs := validateLoyalty(s); errs.failed() {
		return c.reject("loyalty.update", errs...)
	}
	return c.dashboard(ctx, "loyalty.update", http.MethodPut, "/loyalties", s, opts)
}

func validateLoyalty(s LoyaltySettings) violations {
	var v violations
	v.check(present(s.Status), "status is required")
	v.check(s.CashbackRate >= 0, "cashbackRate must not be negative")
	return v
}
