package liteapi

// ---- Search Models ----

// Occupancy describes one room: adult count and child ages.
type Occupancy struct {
	Adults   int   `json:"adults"`
	Children []int `json:"children,omitempty"`
}

// RateSearchRequest is shared by full-rate and minimum-rate searches.
// Currency and GuestNationality default to USD and US.
type RateSearchRequest struct {
	HotelIDs         []string    `json:"hotelIds"`
	Checkin          string      `json:"checkin"`
	Checkout         string      `json:"checkout"`
	Currency         string      `json:"currency"`
	GuestNationality string      `json:"guestNationality"`
	Occupancies      []Occupancy `json:"occupancies"`
	GuestID          string      `json:"guestId,omitempty"`
	// Timeout is the upstream search budget in seconds, not the HTTP timeout.
	Timeout float64 `json:"timeout,omitempty"`
}

// ---- Booking Models ----

type PrebookRequest struct {
	OfferID       string `json:"offerId"`
	UsePaymentSdk bool   `json:"usePaymentSdk"`
}

// Holder is the booking contact.
type Holder struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Guest occupies the room identified by OccupancyNumber (1-based).
type Guest struct {
	OccupancyNumber int    `json:"occupancyNumber,omitempty"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Remarks         string `json:"remarks,omitempty"`
}

// Payment is opaque to the client beyond its method, for example
// ACC_CREDIT_CARD or TRANSACTION_ID.
type Payment struct {
	Method        string `json:"method"`
	TransactionID string `json:"transactionId,omitempty"`
}

type BookRequest struct {
	PrebookID       string  `json:"prebookId"`
	Holder          Holder  `json:"holder"`
	Payment         Payment `json:"payment"`
	Guests          []Guest `json:"guests"`
	ClientReference string  `json:"clientReference,omitempty"`
}

// ListBookingsParams selects bookings by client reference or guest ID.
// One of the two is required.
type ListBookingsParams struct {
	ClientReference string
	GuestID         string
}

// ---- Static Data Models ----

// HotelsQuery filters the hotel list. CountryCode and CityName are required.
type HotelsQuery struct {
	CountryCode string
	CityName    string
	Offset      int
	Limit       int
	Longitude   *float64
	Latitude    *float64
	Distance    int // meters
	Language    string
}

// ---- Dashboard Models ----

type Voucher struct {
	VoucherCode           string  `json:"voucher_code"`
	DiscountType          string  `json:"discount_type"`
	DiscountValue         float64 `json:"discount_value"`
	MinimumSpend          float64 `json:"minimum_spend,omitempty"`
	MaximumDiscountAmount float64 `json:"maximum_discount_amount,omitempty"`
	Currency              string  `json:"currency"`
	ValidityStart         string  `json:"validity_start"`
	ValidityEnd           string  `json:"validity_end"`
	UsagesLimit           int     `json:"usages_limit,omitempty"`
	Status                string  `json:"status,omitempty"`
}

type LoyaltySettings struct {
	Status       string  `json:"status"`
	CashbackRate float64 `json:"cashbackRate"`
}

// DateRange bounds an analytics query. Both ends are YYYY-MM-DD.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}
