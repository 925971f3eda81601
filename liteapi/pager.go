package liteapi

import (
	"context"

	json "github.com/goccy/go-json"
)

// HotelPager iterates through the hotel list using repeated Hotels calls.
// It maintains offset state and stops when a page comes back empty or fails.
type HotelPager struct {
	Client *Client
	Query  HotelsQuery
	Done   bool
}

// NewHotelPager returns a pager over q starting at q.Offset. A non-positive
// q.Limit is replaced with 100.
func (c *Client) NewHotelPager(q HotelsQuery) *HotelPager {
	if q.Limit <= 0 {
		q.Limit = 100
	}
	return &HotelPager{Client: c, Query: q}
}

// Next returns the next page of hotels, or nil when iteration finishes.
// A failed page ends iteration and its cause is returned.
func (p *HotelPager) Next(ctx context.Context, opts ...CallOption) ([]json.RawMessage, error) {
	if p.Done {
		return nil, nil
	}
	res := p.Client.Hotels(ctx, p.Query, opts...)
	if err := res.Err(); err != nil {
		p.Done = true
		return nil, err
	}
	var page []json.RawMessage
	if err := res.Decode(&page); err != nil {
		p.Done = true
		return nil, err
	}
	if len(page) == 0 {
		p.Done = true
		return nil, nil
	}
	p.Query.Offset += len(page)
	return page, nil
}
