package ally

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/ally-invest/src/orders"
	"github.com/jiaming2012/ally-invest/src/responses"
	"github.com/jiaming2012/ally-invest/src/utils"
)

const dateLayout = "01/02/2006"

var ErrInvalidDateRange = errors.New("start date is after end date")

func (c *Client) Clock(ctx context.Context) (*responses.MarketClock, error) {
	p, err := c.transport.Get(ctx, c.urls.Clock())
	if err != nil {
		return nil, fmt.Errorf("Clock: %w", err)
	}

	return responses.ParseClock(p)
}

type quotesParams struct {
	Symbols string `schema:"symbols"`
	Fields  string `schema:"fids,omitempty"`
}

// FetchQuotes returns quotes for stock or option symbols. fields optionally restricts
// the returned fields (the API's fids). Too many symbols fail with ErrURITooLong.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string, fields ...string) ([]*responses.Quote, error) {
	joined, err := utils.JoinSymbols(symbols)
	if err != nil {
		return nil, fmt.Errorf("FetchQuotes: %w", err)
	}

	query, err := encodeQuery(quotesParams{Symbols: joined, Fields: strings.Join(fields, ",")})
	if err != nil {
		return nil, fmt.Errorf("FetchQuotes: %w", err)
	}

	p, err := c.transport.Get(ctx, WithQuery(c.urls.Quotes(), query))
	if err != nil {
		return nil, fmt.Errorf("FetchQuotes: %w", err)
	}

	return responses.ParseQuotes(p)
}

// FetchOptionQuote quotes one option contract identified by its underlying,
// expiration, class and strike.
func (c *Client) FetchOptionQuote(ctx context.Context, underlying string, expiration time.Time, class orders.OptionClass, strike decimal.Decimal) ([]*responses.Quote, error) {
	symbol, err := orders.OptionSymbol(underlying, expiration, class, strike)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionQuote: %w", err)
	}

	return c.FetchQuotes(ctx, []string{symbol})
}

type NewsSearchRequest struct {
	Symbols   []string
	MaxHits   int
	StartDate time.Time
	EndDate   time.Time
}

type newsSearchParams struct {
	Symbols   string `schema:"symbols"`
	MaxHits   int    `schema:"maxhits,omitempty"`
	StartDate string `schema:"startdate,omitempty"`
	EndDate   string `schema:"enddate,omitempty"`
}

func (r NewsSearchRequest) params(logger *log.Entry) (newsSearchParams, error) {
	joined, err := utils.JoinSymbols(r.Symbols)
	if err != nil {
		return newsSearchParams{}, err
	}

	params := newsSearchParams{Symbols: joined, MaxHits: r.MaxHits}

	switch {
	case r.StartDate.IsZero() && r.EndDate.IsZero():
	case r.StartDate.IsZero() || r.EndDate.IsZero():
		logger.Warn("NewsSearch: either start date or end date is not specified, ignoring both")
	case r.EndDate.Before(r.StartDate):
		return newsSearchParams{}, ErrInvalidDateRange
	default:
		params.StartDate = r.StartDate.Format(dateLayout)
		params.EndDate = r.EndDate.Format(dateLayout)
	}

	return params, nil
}

// NewsSearch lists headlines for symbols. A date range is only sent when both ends
// are set.
func (c *Client) NewsSearch(ctx context.Context, req NewsSearchRequest) ([]*responses.Article, error) {
	params, err := req.params(log.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("NewsSearch: %w", err)
	}

	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("NewsSearch: %w", err)
	}

	p, err := c.transport.Get(ctx, WithQuery(c.urls.NewsSearch(), query))
	if err != nil {
		return nil, fmt.Errorf("NewsSearch: %w", err)
	}

	return responses.ParseArticles(p)
}

func (c *Client) NewsArticle(ctx context.Context, id string) (*responses.Article, error) {
	if id == "" {
		return nil, fmt.Errorf("NewsArticle: article id is required")
	}

	p, err := c.transport.Get(ctx, c.urls.NewsArticle(id))
	if err != nil {
		return nil, fmt.Errorf("NewsArticle: %w", err)
	}

	return responses.ParseArticle(p)
}

type toplistParams struct {
	Exchange Exchange `schema:"exchange,omitempty"`
}

// Toplists returns a ranked list of quotes. An empty exchange uses the API default.
func (c *Client) Toplists(ctx context.Context, listType ToplistType, exchange Exchange) ([]*responses.Quote, error) {
	if err := listType.Validate(); err != nil {
		return nil, fmt.Errorf("Toplists: %w", err)
	}

	if exchange != "" {
		if err := exchange.Validate(); err != nil {
			return nil, fmt.Errorf("Toplists: %w", err)
		}
	}

	query, err := encodeQuery(toplistParams{Exchange: exchange})
	if err != nil {
		return nil, fmt.Errorf("Toplists: %w", err)
	}

	p, err := c.transport.Get(ctx, WithQuery(c.urls.Toplists(listType), query))
	if err != nil {
		return nil, fmt.Errorf("Toplists: %w", err)
	}

	return responses.ParseToplist(p)
}

type optionsParams struct {
	Symbol string `schema:"symbol"`
	Query  string `schema:"query,omitempty"`
}

// OptionsSearch returns option quotes of an underlying matching query, e.g.
// "xdate-gte:20240601 AND strikeprice-lte:15".
func (c *Client) OptionsSearch(ctx context.Context, symbol, query string) ([]*responses.Quote, error) {
	if err := utils.ValidateSymbol(symbol); err != nil {
		return nil, fmt.Errorf("OptionsSearch: %w", err)
	}

	q, err := encodeQuery(optionsParams{Symbol: symbol, Query: query})
	if err != nil {
		return nil, fmt.Errorf("OptionsSearch: %w", err)
	}

	p, err := c.transport.Get(ctx, WithQuery(c.urls.OptionsSearch(), q))
	if err != nil {
		return nil, fmt.Errorf("OptionsSearch: %w", err)
	}

	return responses.ParseQuotes(p)
}

func (c *Client) OptionsStrikes(ctx context.Context, symbol string) ([]string, error) {
	if err := utils.ValidateSymbol(symbol); err != nil {
		return nil, fmt.Errorf("OptionsStrikes: %w", err)
	}

	q, err := encodeQuery(optionsParams{Symbol: symbol})
	if err != nil {
		return nil, fmt.Errorf("OptionsStrikes: %w", err)
	}

	p, err := c.transport.Get(ctx, WithQuery(c.urls.OptionsStrikes(), q))
	if err != nil {
		return nil, fmt.Errorf("OptionsStrikes: %w", err)
	}

	return responses.ParseStrikes(p)
}

func (c *Client) OptionsExpirations(ctx context.Context, symbol string) ([]string, error) {
	if err := utils.ValidateSymbol(symbol); err != nil {
		return nil, fmt.Errorf("OptionsExpirations: %w", err)
	}

	q, err := encodeQuery(optionsParams{Symbol: symbol})
	if err != nil {
		return nil, fmt.Errorf("OptionsExpirations: %w", err)
	}

	p, err := c.transport.Get(ctx, WithQuery(c.urls.OptionsExpirations(), q))
	if err != nil {
		return nil, fmt.Errorf("OptionsExpirations: %w", err)
	}

	return responses.ParseExpirations(p)
}

// TimeSalesRequest queries market/timesales. Interval is one of "tick", "1min",
// "5min"; zero dates are left to the API.
type TimeSalesRequest struct {
	Symbols   []string
	Interval  string
	StartDate time.Time
	EndDate   time.Time
}

type timeSalesParams struct {
	Symbols   string `schema:"symbols"`
	Interval  string `schema:"interval,omitempty"`
	StartDate string `schema:"startdate,omitempty"`
	EndDate   string `schema:"enddate,omitempty"`
}

func (c *Client) TimeSales(ctx context.Context, req TimeSalesRequest) ([]*responses.Quote, error) {
	joined, err := utils.JoinSymbols(req.Symbols)
	if err != nil {
		return nil, fmt.Errorf("TimeSales: %w", err)
	}

	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("TimeSales: %w", ErrInvalidDateRange)
	}

	params := timeSalesParams{Symbols: joined, Interval: req.Interval}
	if !req.StartDate.IsZero() {
		params.StartDate = req.StartDate.Format(time.DateOnly)
	}
	if !req.EndDate.IsZero() {
		params.EndDate = req.EndDate.Format(time.DateOnly)
	}

	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("TimeSales: %w", err)
	}

	p, err := c.transport.Get(ctx, WithQuery(c.urls.TimeSales(), query))
	if err != nil {
		return nil, fmt.Errorf("TimeSales: %w", err)
	}

	return responses.ParseQuotes(p)
}
