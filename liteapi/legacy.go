package liteapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Payment methods accepted by the v2 booking endpoint.
const (
	LegacyCreditCard  = "CREDIT_CARD"
	LegacyStripeToken = "STRIPE_TOKEN"
)

// LegacyRateQuery carries the v2 rate search parameters, which travel in the
// query string. Currency and GuestNationality default to USD and US.
type LegacyRateQuery struct {
	Checkin          string
	Checkout         string
	Currency         string
	GuestNationality string
	HotelIDs         []string
	Adults           int
	Children         []int // ages
	GuestID          string
}

// LegacyGuestInfo is the v2 lead guest.
type LegacyGuestInfo struct {
	GuestFirstName string `json:"guestFirstName"`
	GuestLastName  string `json:"guestLastName"`
	GuestEmail     string `json:"guestEmail"`
}

// LegacyPaymentInfo holds card details for CREDIT_CARD or a token for
// STRIPE_TOKEN.
type LegacyPaymentInfo struct {
	CardNumber string
	ExpMonth   int
	ExpYear    string
	CVC        string
	Token      string
}

// legacyPayment is the v2 wire form of a payment.
type legacyPayment struct {
	Method     string `json:"method"`
	HolderName string `json:"holderName"`
	Number     string `json:"number,omitempty"`
	ExpireDate string `json:"expireDate,omitempty"`
	CVC        string `json:"cvc,omitempty"`
	Token      string `json:"token,omitempty"`
}

// Legacy exposes the deprecated v2 surface. Each call is translated into the
// same request descriptor the current methods use, against LegacyURL.
//
// Deprecated: use the Client methods, which target the v3 services.
type Legacy struct {
	c *Client
}

// Legacy returns the v2 adapter.
func (c *Client) Legacy() Legacy { return Legacy{c: c} }

func (l Legacy) call(ctx context.Context, endpoint, method, path string, q url.Values, body any, opts []CallOption) *Result {
	return l.c.do(ctx, request{
		endpoint: endpoint,
		service:  legacyService,
		method:   method,
		path:     path,
		query:    q,
		body:     body,
	}, opts...)
}

// MinimumRates returns the cheapest rate per hotel.
func (l Legacy) MinimumRates(ctx context.Context, q LegacyRateQuery, opts ...CallOption) *Result {
	return l.rates(ctx, "legacy.rates.min", "/hotels", q, opts)
}

// FullRates returns every room and rate per hotel.
func (l Legacy) FullRates(ctx context.Context, q LegacyRateQuery, opts ...CallOption) *Result {
	return l.rates(ctx, "legacy.rates.full", "/hotels/rates", q, opts)
}

func (l Legacy) rates(ctx context.Context, endpoint, path string, q LegacyRateQuery, opts []CallOption) *Result {
	var v violations
	v.check(present(q.Checkin), "Checkin date is required")
	v.check(present(q.Checkout), "Checkout date is required")
	v.check(q.Adults > 0, "Number of adults is required")
	v.check(len(q.HotelIDs) > 0, "The hotel ids list is required")
	for _, age := range q.Children {
		if age < 0 {
			v.check(false, "Children must be a list of ages, ex: [2,8]")
			break
		}
	}
	if v.failed() {
		return l.c.reject(endpoint, v...)
	}

	vals := url.Values{}
	vals.Set("checkin", q.Checkin)
	vals.Set("checkout", q.Checkout)
	vals.Set("adults", strconv.Itoa(q.Adults))
	vals.Set("currency", orDefault(q.Currency, "USD"))
	vals.Set("guestNationality", orDefault(q.GuestNationality, "US"))
	vals.Set("hotelIds", strings.Join(q.HotelIDs, ","))
	if len(q.Children) > 0 {
		ages := make([]string, len(q.Children))
		for i, a := range q.Children {
			ages[i] = strconv.Itoa(a)
		}
		vals.Set("children", strings.Join(ages, ","))
	}
	if present(q.GuestID) {
		vals.Set("guestId", q.GuestID)
	}
	return l.call(ctx, endpoint, http.MethodGet, path, vals, nil, opts)
}

// PreBook locks a v2 rate.
func (l Legacy) PreBook(ctx context.Context, rateID string, opts ...CallOption) *Result {
	if !present(rateID) {
		return l.c.reject("legacy.prebook", "The rate ID is required")
	}
	body := map[string]string{"rateId": rateID}
	return l.call(ctx, "legacy.prebook", http.MethodPost, "/rates/prebook", nil, body, opts)
}

// Book confirms a v2 prebook. method is LegacyCreditCard or
// LegacyStripeToken; the matching fields of info are required.
func (l Legacy) Book(ctx context.Context, prebookID string, guest LegacyGuestInfo, method, holderName string, info LegacyPaymentInfo, opts ...CallOption) *Result {
	var v violations
	v.check(present(prebookID), "The prebook ID is required")
	v.check(present(guest.GuestFirstName) && present(guest.GuestLastName) && present(guest.GuestEmail),
		"Invalid guestInfo, guestFirstName, guestLastName and guestEmail are required")
	switch {
	case !present(method):
		v.check(false, "Payment Method is required")
	case method != LegacyCreditCard && method != LegacyStripeToken:
		v.check(false, "Available Payment Method are : CREDIT_CARD and STRIPE_TOKEN")
	}
	v.check(present(holderName), "Holder name is required")

	pay := legacyPayment{Method: method, HolderName: holderName}
	switch method {
	case LegacyCreditCard:
		ok := present(info.CardNumber) && info.ExpMonth >= 1 && info.ExpMonth <= 12 && present(info.ExpYear) && present(info.CVC)
		v.check(ok, "The paymentInfo is invalid, card_number, exp_month, exp_year and cvc are required")
		pay.Number = info.CardNumber
		pay.ExpireDate = strconv.Itoa(info.ExpMonth) + "/" + info.ExpYear
		pay.CVC = info.CVC
	case LegacyStripeToken:
		v.check(present(info.Token), "The paymentInfo is invalid, token is required")
		pay.Token = info.Token
	}
	if v.failed() {
		return l.c.reject("legacy.book", v...)
	}

	body := struct {
		PrebookID string          `json:"prebookId"`
		GuestInfo LegacyGuestInfo `json:"guestInfo"`
		Payment   legacyPayment   `json:"payment"`
	}{prebookID, guest, pay}
	return l.call(ctx, "legacy.book", http.MethodPost, "/rates/book", nil, body, opts)
}

// BookingsByGuestID lists the booking IDs of a guest.
func (l Legacy) BookingsByGuestID(ctx context.Context, guestID string, opts ...CallOption) *Result {
	if !present(guestID) {
		return l.c.reject("legacy.bookings", "The guest ID is required")
	}
	return l.call(ctx, "legacy.bookings", http.MethodGet, "/bookings", url.Values{"guestId": {guestID}}, nil, opts)
}

// GuestIDs looks up guest IDs, optionally filtered by email.
func (l Legacy) GuestIDs(ctx context.Context, email string, opts ...CallOption) *Result {
	var q url.Values
	if present(email) {
		q = url.Values{"email": {email}}
	}
	return l.call(ctx, "legacy.guests", http.MethodGet, "/guests", q, nil, opts)
}
