package liteapi

import "context"

// BookingRef is a light-weight handle bound to a specific booking ID.
// It exposes helpers that forward to Client methods.
type BookingRef struct {
	ID     string
	Client *Client
}

// Booking returns a handle for a given booking ID.
func (c *Client) Booking(id string) BookingRef { return BookingRef{ID: id, Client: c} }

// Retrieve returns the booking's current status and details.
func (b BookingRef) Retrieve(ctx context.Context, opts ...CallOption) *Result {
	return b.Client.RetrieveBooking(ctx, b.ID, opts...)
}

// Cancel requests cancellation of the bound booking.
func (b BookingRef) Cancel(ctx context.Context, opts ...CallOption) *Result {
	return b.Client.CancelBooking(ctx, b.ID, opts...)
}

// VoucherHandle is bound to a specific voucher ID.
type VoucherHandle struct {
	ID     string
	Client *Client
}

// VoucherRef returns a handle for a given voucher ID.
func (c *Client) VoucherRef(id string) VoucherHandle { return VoucherHandle{ID: id, Client: c} }

func (v VoucherHandle) Get(ctx context.Context, opts ...CallOption) *Result {
	return v.Client.Voucher(ctx, v.ID, opts...)
}

func (v VoucherHandle) Update(ctx context.Context, voucher Voucher, opts ...CallOption) *Result {
	return v.Client.UpdateVoucher(ctx, v.ID, voucher, opts...)
}

// SetStatus switches the bound voucher to status.
func (v VoucherHandle) SetStatus(ctx context.Context, status string, opts ...CallOption) *Result {
	return v.Client.UpdateVoucherStatus(ctx, v.ID, status, opts...)
}
