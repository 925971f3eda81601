package liteapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// lookup issues a GET against the search service with the data envelope.
func (c *Client) lookup(ctx context.Context, endpoint, path string, q url.Values, opts []CallOption) *Result {
	return c.do(ctx, request{
		endpoint: endpoint,
		service:  searchService,
		method:   http.MethodGet,
		path:     path,
		query:    q,
	}, opts...)
}

// Cities lists the cities of a country given as an ISO-2 code.
func (c *Client) Cities(ctx context.Context, countryCode string, opts ...CallOption) *Result {
	if !present(countryCode) {
		return c.reject("data.cities", "The country code is required")
	}
	return c.lookup(ctx, "data.cities", "/data/cities", url.Values{"countryCode": {countryCode}}, opts)
}

func (c *Client) Countries(ctx context.Context, opts ...CallOption) *Result {
	return c.lookup(ctx, "data.countries", "/data/countries", nil, opts)
}

func (c *Client) Currencies(ctx context.Context, opts ...CallOption) *Result {
	return c.lookup(ctx, "data.currencies", "/data/currencies", nil, opts)
}

func (c *Client) Facilities(ctx context.Context, opts ...CallOption) *Result {
	return c.lookup(ctx, "data.facilities", "/data/facilities", nil, opts)
}

func (c *Client) HotelTypes(ctx context.Context, opts ...CallOption) *Result {
	return c.lookup(ctx, "data.hotelTypes", "/data/hotelTypes", nil, opts)
}

func (c *Client) Chains(ctx context.Context, opts ...CallOption) *Result {
	return c.lookup(ctx, "data.chains", "/data/chains", nil, opts)
}

// IATACodes lists airports with their IATA codes and coordinates.
func (c *Client) IATACodes(ctx context.Context, opts ...CallOption) *Result {
	return c.lookup(ctx, "data.iataCodes", "/data/iataCodes", nil, opts)
}

// Places searches places by free text. placeType is optional; language
// defaults to en.
func (c *Client) Places(ctx context.Context, textQuery, placeType, language string, opts ...CallOption) *Result {
	if !present(textQuery) {
		return c.reject("data.places", "The text query is required")
	}
	q := url.Values{}
	q.Set("textQuery", textQuery)
	if present(placeType) {
		q.Set("type", placeType)
	}
	q.Set("language", orDefault(language, "en"))
	return c.lookup(ctx, "data.places", "/data/places", q, opts)
}

// Hotels lists hotels in a city, optionally narrowed to a radius around a
// coordinate.
func (c *Client) Hotels(ctx context.Context, hq HotelsQuery, opts ...CallOption) *Result {
	if !present(hq.CountryCode) {
		return c.reject("data.hotels", "Country code is required")
	}
	if !present(hq.CityName) {
		return c.reject("data.hotels", "City name is required")
	}
	return c.lookup(ctx, "data.hotels", "/data/hotels", hq.values(), opts)
}

func (hq HotelsQuery) values() url.Values {
	q := url.Values{}
	q.Set("countryCode", hq.CountryCode)
	q.Set("cityName", hq.CityName)
	q.Set("language", orDefault(hq.Language, "en"))
	if hq.Offset > 0 {
		q.Set("offset", strconv.Itoa(hq.Offset))
	}
	if hq.Limit > 0 {
		q.Set("limit", strconv.Itoa(hq.Limit))
	}
	if hq.Longitude != nil {
		q.Set("longitude", strconv.FormatFloat(*hq.Longitude, 'f', -1, 64))
	}
	if hq.Latitude != nil {
		q.Set("latitude", strconv.FormatFloat(*hq.Latitude, 'f', -1, 64))
	}
	if hq.Distance > 0 {
		q.Set("distance", strconv.Itoa(hq.Distance))
	}
	return q
}

// HotelDetails returns the static content of one hotel: description,
// address, amenities, images and policies.
func (c *Client) HotelDetails(ctx context.Context, hotelID, language string, opts ...CallOption) *Result {
	if !present(hotelID) {
		return c.reject("data.hotel", "The Hotel code is required")
	}
	q := url.Values{}
	q.Set("hotelId", hotelID)
	q.Set("language", orDefault(language, "en"))
	return c.lookup(ctx, "data.hotel", "/data/hotel", q, opts)
}

// Reviews returns guest reviews for a hotel. With getSentiment the result
// also carries SentimentAnalysis. A non-positive limit leaves the server
// default.
func (c *Client) Reviews(ctx context.Context, hotelID string, limit int, getSentiment bool, opts ...CallOption) *Result {
	if !present(hotelID) {
		return c.reject("data.reviews", "The Hotel code is required")
	}
	q := url.Values{}
	q.Set("hotelId", hotelID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	q.Set("getSentiment", strconv.FormatBool(getSentiment))
	return c.lookup(ctx, "data.reviews", "/data/reviews", q, opts)
}
