package liteapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// PreBook locks an offer returned by a rate search and yields a prebook ID
// with the confirmed price and policies.
func (c *Client) PreBook(ctx context.Context, req PrebookRequest, opts ...CallOption) *Result {
	var v violations
	v.check(present(req.OfferID), "The offer ID is required")
	if v.failed() {
		return c.reject("rates.prebook", v...)
	}
	return c.do(ctx, request{
		endpoint: "rates.prebook",
		service:  bookService,
		method:   http.MethodPost,
		path:     "/rates/prebook",
		body:     req,
	}, opts...)
}

// Book confirms a prebooked offer for the given holder and guests.
func (c *Client) Book(ctx context.Context, req BookRequest, opts ...CallOption) *Result {
	if errs := validateBook(req); errs.failed() {
		return c.reject("rates.book", errs...)
	}
	return c.do(ctx, request{
		endpoint: "rates.book",
		service:  bookService,
		method:   http.MethodPost,
		path:     "/rates/book",
		body:     req,
	}, opts...)
}

func validateBook(req BookRequest) violations {
	var v violations
	v.check(present(req.PrebookID), "The prebook ID is required")
	v.check(present(req.Holder.FirstName), "holder.firstName is required")
	v.check(present(req.Holder.LastName), "holder.lastName is required")
	v.check(present(req.Holder.Email), "holder.email is required")
	v.check(present(req.Payment.Method), "Payment Method is required")
	v.check(len(req.Guests) > 0, "At least one guest is required")
	for i, g := range req.Guests {
		v.check(present(g.FirstName), fmt.Sprintf("guests[%d].firstName is required", i))
		v.check(present(g.LastName), fmt.Sprintf("guests[%d].lastName is required", i))
		v.check(present(g.Email), fmt.Sprintf("guests[%d].email is required", i))
		v.check(g.OccupancyNumber >= 0, fmt.Sprintf("guests[%d].occupancyNumber must not be negative", i))
	}
	return v
}

// ListBookings lists bookings by client reference or guest ID.
func (c *Client) ListBookings(ctx context.Context, p ListBookingsParams, opts ...CallOption) *Result {
	if !present(p.ClientReference) && !present(p.GuestID) {
		return c.reject("bookings.list", "The client reference or guest ID is required")
	}
	q := url.Values{}
	if present(p.ClientReference) {
		q.Set("clientReference", p.ClientReference)
	}
	if present(p.GuestID) {
		q.Set("guestId", p.GuestID)
	}
	return c.do(ctx, request{
		endpoint: "bookings.list",
		service:  bookService,
		method:   http.MethodGet,
		path:     "/bookings",
		query:    q,
	}, opts...)
}

// RetrieveBooking returns the status and details of one booking.
func (c *Client) RetrieveBooking(ctx context.Context, bookingID string, opts ...CallOption) *Result {
	if !present(bookingID) {
		return c.reject("bookings.retrieve", "The booking ID is required")
	}
	return c.do(ctx, request{
		endpoint: "bookings.retrieve",
		service:  bookService,
		method:   http.MethodGet,
		path:     "/bookings/" + url.PathEscape(bookingID),
	}, opts...)
}

// CancelBooking requests cancellation of a confirmed booking. Whether it
// succeeds depends on the booking's cancellation policy.
func (c *Client) CancelBooking(ctx context.Context, bookingID string, opts ...CallOption) *Result {
	if !present(bookingID) {
		return c.reject("bookings.cancel", "The booking ID is required")
	}
	return c.do(ctx, request{
		endpoint: "bookings.cancel",
		service:  bookService,
		method:   http.MethodPut,
		path:     "/bookings/" + url.PathEscape(bookingID),
	}, opts...)
}
