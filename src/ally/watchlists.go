package ally

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jiaming2012/ally-invest/src/responses"
	"github.com/jiaming2012/ally-invest/src/utils"
)

type watchlistParams struct {
	ID      string `schema:"id,omitempty"`
	Symbols string `schema:"symbols,omitempty"`
}

func formHeader() http.Header {
	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	return header
}

func (c *Client) postForm(ctx context.Context, endpoint string, params watchlistParams) (*responses.Payload, error) {
	form, err := encodeQuery(params)
	if err != nil {
		return nil, err
	}

	p, err := c.transport.Post(ctx, endpoint, []byte(form.Encode()), formHeader())
	if err != nil {
		return nil, err
	}

	if err := responses.CheckEnvelope(p); err != nil {
		return nil, err
	}

	return p, nil
}

// Watchlists lists the ids of the member's watchlists.
func (c *Client) Watchlists(ctx context.Context) ([]*responses.Watchlist, error) {
	p, err := c.transport.Get(ctx, c.urls.Watchlists())
	if err != nil {
		return nil, fmt.Errorf("Watchlists: %w", err)
	}

	return responses.ParseWatchlists(p)
}

// Watchlist returns one watchlist with its symbols.
func (c *Client) Watchlist(ctx context.Context, id string) (*responses.Watchlist, error) {
	if id == "" {
		return nil, fmt.Errorf("Watchlist: watchlist id is required")
	}

	p, err := c.transport.Get(ctx, c.urls.Watchlist(id))
	if err != nil {
		return nil, fmt.Errorf("Watchlist: %w", err)
	}

	lists, err := responses.ParseWatchlists(p)
	if err != nil {
		return nil, fmt.Errorf("Watchlist: %w", err)
	}

	if len(lists) == 0 {
		return nil, fmt.Errorf("Watchlist: %s: %w", id, responses.ErrNotFound)
	}

	return lists[0], nil
}

// CreateWatchlist creates a watchlist, optionally seeded with symbols, and returns the
// member's watchlists.
func (c *Client) CreateWatchlist(ctx context.Context, id string, symbols []string) ([]*responses.Watchlist, error) {
	if id == "" {
		return nil, fmt.Errorf("CreateWatchlist: watchlist id is required")
	}

	params := watchlistParams{ID: id}
	if len(symbols) > 0 {
		joined, err := utils.JoinSymbols(symbols)
		if err != nil {
			return nil, fmt.Errorf("CreateWatchlist: %w", err)
		}
		params.Symbols = joined
	}

	p, err := c.postForm(ctx, c.urls.Watchlists(), params)
	if err != nil {
		return nil, fmt.Errorf("CreateWatchlist: %w", err)
	}

	return responses.ParseWatchlists(p)
}

func (c *Client) DeleteWatchlist(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("DeleteWatchlist: watchlist id is required")
	}

	p, err := c.transport.Delete(ctx, c.urls.Watchlist(id))
	if err != nil {
		return fmt.Errorf("DeleteWatchlist: %w", err)
	}

	if err := responses.CheckEnvelope(p); err != nil {
		return fmt.Errorf("DeleteWatchlist: %w", err)
	}

	return nil
}

func (c *Client) AddWatchlistSymbols(ctx context.Context, id string, symbols []string) error {
	joined, err := utils.JoinSymbols(symbols)
	if err != nil {
		return fmt.Errorf("AddWatchlistSymbols: %w", err)
	}

	if id == "" {
		return fmt.Errorf("AddWatchlistSymbols: watchlist id is required")
	}

	if _, err := c.postForm(ctx, c.urls.WatchlistSymbols(id), watchlistParams{Symbols: joined}); err != nil {
		return fmt.Errorf("AddWatchlistSymbols: %w", err)
	}

	return nil
}

func (c *Client) DeleteWatchlistSymbols(ctx context.Context, id string, symbols []string) error {
	joined, err := utils.JoinSymbols(symbols)
	if err != nil {
		return fmt.Errorf("DeleteWatchlistSymbols: %w", err)
	}

	if id == "" {
		return fmt.Errorf("DeleteWatchlistSymbols: watchlist id is required")
	}

	query, err := encodeQuery(watchlistParams{Symbols: joined})
	if err != nil {
		return fmt.Errorf("DeleteWatchlistSymbols: %w", err)
	}

	p, err := c.transport.Delete(ctx, WithQuery(c.urls.WatchlistSymbols(id), query))
	if err != nil {
		return fmt.Errorf("DeleteWatchlistSymbols: %w", err)
	}

	if err := responses.CheckEnvelope(p); err != nil {
		return fmt.Errorf("DeleteWatchlistSymbols: %w", err)
	}

	return nil
}
