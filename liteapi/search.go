package liteapi

import (
	"context"
	"fmt"
	"net/http"
)

// GetFullRates returns every available room and rate, with cancellation
// policies, for the requested hotels and dates. Data is the whole upstream
// payload, including siblings of its data member such as guestLevel.
func (c *Client) GetFullRates(ctx context.Context, req RateSearchRequest, opts ...CallOption) *Result {
	return c.searchRates(ctx, "rates.full", "/hotels/rates", req, opts...)
}

// GetMinRates returns the cheapest available rate per hotel.
func (c *Client) GetMinRates(ctx context.Context, req RateSearchRequest, opts ...CallOption) *Result {
	return c.searchRates(ctx, "rates.min", "/hotels/min-rates", req, opts...)
}

func (c *Client) searchRates(ctx context.Context, endpoint, path string, req RateSearchRequest, opts ...CallOption) *Result {
	req.Currency = orDefault(req.Currency, "USD")
	req.GuestNationality = orDefault(req.GuestNationality, "US")
	if errs := validateRateSearch(req); errs.failed() {
		return c.reject(endpoint, errs...)
	}
	return c.do(ctx, request{
		endpoint: endpoint,
		service:  searchService,
		method:   http.MethodPost,
		path:     path,
		body:     req,
		envelope: envelopeRaw,
	}, opts...)
}

func validateRateSearch(req RateSearchRequest) violations {
	var v violations
	v.check(len(req.HotelIDs) > 0, "The hotel ids list is required")
	for i, id := range req.HotelIDs {
		v.check(present(id), fmt.Sprintf("hotelIds[%d] must not be empty", i))
	}
	v.check(present(req.Checkin), "Checkin date is required")
	v.check(present(req.Checkout), "Checkout date is required")
	if present(req.Checkin) && present(req.Checkout) && isDate(req.Checkin) && isDate(req.Checkout) {
		v.check(req.Checkin < req.Checkout, "Checkout date must be after checkin date")
	}
	v.check(len(req.Occupancies) > 0, "Occupancies are required")
	for i, occ := range req.Occupancies {
		v.check(occ.Adults > 0, fmt.Sprintf("occupancies[%d].adults must be a number greater than 0", i))
		for j, age := range occ.Children {
			v.check(age >= 0, fmt.Sprintf("occupancies[%d].children[%d] must be a non-negative age", i, j))
		}
	}
	return v
}
