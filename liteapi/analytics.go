package liteapi

import (
	"context"
	"net/http"
)

// WeeklyAnalytics returns bookings and revenue aggregated per week.
func (c *Client) WeeklyAnalytics(ctx context.Context, r DateRange, opts ...CallOption) *Result {
	return c.analytics(ctx, "analytics.weekly", "/analytics/weekly", r, opts)
}

// AnalyticsReport returns the detailed revenue and sales report.
func (c *Client) AnalyticsReport(ctx context.Context, r DateRange, opts ...CallOption) *Result {
	return c.analytics(ctx, "analytics.report", "/analytics/report", r, opts)
}

// MarketAnalytics returns bookings aggregated by destination market.
func (c *Client) MarketAnalytics(ctx context.Context, r DateRange, opts ...CallOption) *Result {
	return c.analytics(ctx, "analytics.market", "/analytics/market", r, opts)
}

func (c *Client) MostBookedHotels(ctx context.Context, r DateRange, opts ...CallOption) *Result {
	return c.analytics(ctx, "analytics.hotels", "/analytics/hotels", r, opts)
}

func (c *Client) analytics(ctx context.Context, endpoint, path string, r DateRange, opts []CallOption) *Result {
	var v violations
	v.check(present(r.From), "from is required")
	v.check(present(r.To), "to is required")
	if present(r.From) {
		v.check(isDate(r.From), "from must be a date in YYYY-MM-DD format")
	}
	if present(r.To) {
		v.check(isDate(r.To), "to must be a date in YYYY-MM-DD format")
	}
	if isDate(r.From) && isDate(r.To) {
		v.check(r.From <= r.To, "from must not be after to")
	}
	if v.failed() {
		return c.reject(endpoint, v...)
	}
	return c.dashboard(ctx, endpoint, http.MethodPost, path, r, opts)
}
