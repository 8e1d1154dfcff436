package responses

import "fmt"

type MarketClock struct {
	Date          *string `json:"date,omitempty"`
	UnixTime      *string `json:"unixtime,omitempty"`
	Message       *string `json:"message,omitempty"`
	CurrentStatus *string `json:"current,omitempty"`
	NextStatus    *string `json:"next,omitempty"`
	ChangeAt      *string `json:"change_at,omitempty"`
}

var marketClockSchema = []field[MarketClock]{
	{key: "date", set: func(c *MarketClock) **string { return &c.Date }},
	{key: "unixtime", set: func(c *MarketClock) **string { return &c.UnixTime }},
	{key: "message", set: func(c *MarketClock) **string { return &c.Message }},
	{group: "status", key: "current", set: func(c *MarketClock) **string { return &c.CurrentStatus }},
	{group: "status", key: "next", set: func(c *MarketClock) **string { return &c.NextStatus }},
	{group: "status", key: "change_at", set: func(c *MarketClock) **string { return &c.ChangeAt }},
}

// ParseClock maps market/clock, whose fields sit directly in the envelope.
func ParseClock(p *Payload) (*MarketClock, error) {
	srcs, err := items(p)
	if err != nil {
		return nil, fmt.Errorf("ParseClock: %w", err)
	}

	c := new(MarketClock)
	populate(srcs[0], marketClockSchema, c)

	return c, nil
}
