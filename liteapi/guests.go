package liteapi

import (
	"context"
	"net/http"
	"net/url"
)

// Guest returns a guest profile, including loyalty level.
func (c *Client) Guest(ctx context.Context, guestID string, opts ...CallOption) *Result {
	if !present(guestID) {
		return c.reject("guests.get", "The guest ID is required")
	}
	return c.do(ctx, request{
		endpoint: "guests.get",
		service:  bookService,
		method:   http.MethodGet,
		path:     "/guests/" + url.PathEscape(guestID),
	}, opts...)
}

// GuestBookings lists the bookings made by a guest.
func (c *Client) GuestBookings(ctx context.Context, guestID string, opts ...CallOption) *Result {
	if !present(guestID) {
		return c.reject("guests.bookings", "The guest ID is required")
	}
	return c.do(ctx, request{
		endpoint: "guests.bookings",
		service:  bookService,
		method:   http.MethodGet,
		path:     "/guests/" + url.PathEscape(guestID) + "/bookings",
	}, opts...)
}
