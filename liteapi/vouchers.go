package liteapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) dashboard(ctx context.Context, endpoint, method, path string, body any, opts []CallOption) *Result {
	return c.do(ctx, request{
		endpoint: endpoint,
		service:  dashboardService,
		method:   method,
		path:     path,
		body:     body,
	}, opts...)
}

// Vouchers lists every voucher on the account.
func (c *Client) Vouchers(ctx context.Context, opts ...CallOption) *Result {
	return c.dashboard(ctx, "vouchers.list", http.MethodGet, "/vouchers", nil, opts)
}

// Voucher returns one voucher by ID.
func (c *Client) Voucher(ctx context.Context, voucherID string, opts ...CallOption) *Result {
	if !present(voucherID) {
		return c.reject("vouchers.get", "voucherID is required")
	}
	return c.dashboard(ctx, "vouchers.get", http.MethodGet, "/vouchers/"+url.PathEscape(voucherID), nil, opts)
}

func (c *Client) CreateVoucher(ctx context.Context, v Voucher, opts ...CallOption) *Result {
	if errs := validateVoucher(v); errs.failed() {
		return c.reject("vouchers.create", errs...)
	}
	return c.dashboard(ctx, "vouchers.create", http.MethodPost, "/vouchers", v, opts)
}

// UpdateVoucher replaces the voucher's definition.
func (c *Client) UpdateVoucher(ctx context.Context, voucherID string, v Voucher, opts ...CallOption) *Result {
	var errs violations
	errs.check(present(voucherID), "voucherID is required")
	errs = append(errs, validateVoucher(v)...)
	if errs.failed() {
		return c.reject("vouchers.update", errs...)
	}
	return c.dashboard(ctx, "vouchers.update", http.MethodPut, "/vouchers/"+url.PathEscape(voucherID), v, opts)
}

// UpdateVoucherStatus switches a voucher between states such as active and
// inactive.
func (c *Client) UpdateVoucherStatus(ctx context.Context, voucherID, status string, opts ...CallOption) *Result {
	if !present(voucherID) {
		return c.reject("vouchers.status", "voucherID is required")
	}
	if !present(status) {
		return c.reject("vouchers.status", "status is required")
	}
	body := map[string]string{"status": status}
	return c.dashboard(ctx, "vouchers.status", http.MethodPut, "/vouchers/"+url.PathEscape(voucherID)+"/status", body, opts)
}

func validateVoucher(v Voucher) violations {
	var errs violations
	errs.check(present(v.VoucherCode), "voucher_code is required")
	errs.check(present(v.DiscountType), "discount_type is required")
	errs.check(v.DiscountValue > 0, "discount_value must be greater than 0")
	errs.check(v.MinimumSpend >= 0, "minimum_spend must not be negative")
	errs.check(v.MaximumDiscountAmount >= 0, "maximum_discount_amount must not be negative")
	errs.check(present(v.Currency), "currency is required")
	errs.check(present(v.ValidityStart), "validity_start is required")
	errs.check(present(v.ValidityEnd), "validity_end is required")
	if isDate(v.ValidityStart) && isDate(v.ValidityEnd) {
		errs.check(v.ValidityStart <= v.ValidityEnd, "validity_end must not be before validity_start")
	}
	errs.check(v.UsagesLimit >= 0, "usages_limit must not be negative")
	return errs
}
