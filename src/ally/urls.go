package ally

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jiaming2012/ally-invest/src/responses"
)

const DefaultBaseURL = "https://api.tradeking.com/v1/"

// URLs renders endpoint URLs for one base URL and response format. Every endpoint ends
// in the format suffix, e.g. accounts/12345678/holdings.json.
type URLs struct {
	base   string
	format responses.Format
}

func NewURLs(base string, format responses.Format) (*URLs, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("NewURLs: %w", err)
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("NewURLs: invalid base url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("NewURLs: base url must be absolute: %s", base)
	}

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return &URLs{base: base, format: format}, nil
}

func (u *URLs) Format() responses.Format {
	return u.format
}

func (u *URLs) endpoint(path string, ids ...string) string {
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, url.PathEscape(id))
	}

	return fmt.Sprintf("%s%s.%s", u.base, fmt.Sprintf(path, args...), u.format)
}

// accounts

func (u *URLs) Accounts() string         { return u.endpoint("accounts") }
func (u *URLs) AccountsBalances() string { return u.endpoint("accounts/balances") }
func (u *URLs) Account(id string) string { return u.endpoint("accounts/%s", id) }

func (u *URLs) AccountBalances(id string) string {
	return u.endpoint("accounts/%s/balances", id)
}

func (u *URLs) AccountHistory(id string) string {
	return u.endpoint("accounts/%s/history", id)
}

func (u *URLs) AccountHoldings(id string) string {
	return u.endpoint("accounts/%s/holdings", id)
}

// orders

// AccountOrders serves both the order status listing (GET) and order entry (POST).
func (u *URLs) AccountOrders(id string) string {
	return u.endpoint("accounts/%s/orders", id)
}

func (u *URLs) AccountOrdersPreview(id string) string {
	return u.endpoint("accounts/%s/orders/preview", id)
}

// market

func (u *URLs) Clock() string                { return u.endpoint("market/clock") }
func (u *URLs) Quotes() string               { return u.endpoint("market/ext/quotes") }
func (u *URLs) NewsSearch() string           { return u.endpoint("market/news/search") }
func (u *URLs) NewsArticle(id string) string { return u.endpoint("market/news/%s", id) }
func (u *URLs) OptionsSearch() string        { return u.endpoint("market/options/search") }
func (u *URLs) OptionsStrikes() string       { return u.endpoint("market/options/strikes") }
func (u *URLs) OptionsExpirations() string   { return u.endpoint("market/options/expirations") }
func (u *URLs) TimeSales() string            { return u.endpoint("market/timesales") }

func (u *URLs) Toplists(listType ToplistType) string {
	return u.endpoint("market/toplists/%s", string(listType))
}

// member and utilities

func (u *URLs) MemberProfile() string { return u.endpoint("member/profile") }
func (u *URLs) Status() string        { return u.endpoint("utility/status") }
func (u *URLs) Version() string       { return u.endpoint("utility/version") }

// watchlists

func (u *URLs) Watchlists() string         { return u.endpoint("watchlists") }
func (u *URLs) Watchlist(id string) string { return u.endpoint("watchlists/%s", id) }

func (u *URLs) WatchlistSymbols(id string) string {
	return u.endpoint("watchlists/%s/symbols", id)
}

// WithQuery appends encoded query parameters to an endpoint.
func WithQuery(endpoint string, query url.Values) string {
	if len(query) == 0 {
		return endpoint
	}

	return endpoint + "?" + query.Encode()
}
