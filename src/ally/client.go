package ally

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/jiaming2012/ally-invest/src/responses"
)

var ErrMissingAccountID = errors.New("account id is required")

var encoder = schema.NewEncoder()

// Client is the Ally Invest API. It keeps no mutable state and is safe to share.
type Client struct {
	urls      *URLs
	transport Transport
	accountID string
}

func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewClient: %w", err)
	}

	urls, err := NewURLs(cfg.BaseURL, cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("NewClient: %w", err)
	}

	return NewClientWithTransport(urls, NewHTTPTransport(cfg.Credentials, cfg.Format), cfg.AccountID), nil
}

// NewClientWithTransport builds a client over any Transport. accountID is the default
// used when a call is given an empty account id.
func NewClientWithTransport(urls *URLs, transport Transport, accountID string) *Client {
	return &Client{
		urls:      urls,
		transport: transport,
		accountID: accountID,
	}
}

func (c *Client) AccountID() string {
	return c.accountID
}

func (c *Client) account(id string) (string, error) {
	if id != "" {
		return id, nil
	}

	if c.accountID != "" {
		return c.accountID, nil
	}

	return "", ErrMissingAccountID
}

func encodeQuery(params interface{}) (url.Values, error) {
	query := url.Values{}
	if err := encoder.Encode(params, query); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	return query, nil
}

// getChecked fetches a payload and verifies its envelope.
func (c *Client) getChecked(ctx context.Context, endpoint string) (*responses.Payload, error) {
	p, err := c.transport.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if err := responses.CheckEnvelope(p); err != nil {
		return nil, err
	}

	return p, nil
}

// accounts

// Accounts returns the raw summary of every account of the member.
func (c *Client) Accounts(ctx context.Context) (*responses.Payload, error) {
	p, err := c.getChecked(ctx, c.urls.Accounts())
	if err != nil {
		return nil, fmt.Errorf("Accounts: %w", err)
	}

	return p, nil
}

// Account returns the raw detail of one account.
func (c *Client) Account(ctx context.Context, id string) (*responses.Payload, error) {
	id, err := c.account(id)
	if err != nil {
		return nil, fmt.Errorf("Account: %w", err)
	}

	p, err := c.getChecked(ctx, c.urls.Account(id))
	if err != nil {
		return nil, fmt.Errorf("Account: %w", err)
	}

	return p, nil
}

func (c *Client) FetchAccountsBalances(ctx context.Context) (map[string]*responses.AccountBalance, error) {
	p, err := c.transport.Get(ctx, c.urls.AccountsBalances())
	if err != nil {
		return nil, fmt.Errorf("FetchAccountsBalances: %w", err)
	}

	return responses.ParseAccountsBalances(p)
}

func (c *Client) FetchAccountBalance(ctx context.Context, id string) (*responses.AccountBalance, error) {
	id, err := c.account(id)
	if err != nil {
		return nil, fmt.Errorf("FetchAccountBalance: %w", err)
	}

	p, err := c.transport.Get(ctx, c.urls.AccountBalances(id))
	if err != nil {
		return nil, fmt.Errorf("FetchAccountBalance: %w", err)
	}

	return responses.ParseAccountBalance(p)
}

type HistoryRange string

const (
	HistoryAll          HistoryRange = "all"
	HistoryToday        HistoryRange = "today"
	HistoryCurrentWeek  HistoryRange = "current_week"
	HistoryCurrentMonth HistoryRange = "current_month"
	HistoryLastMonth    HistoryRange = "last_month"
)

type TransactionType string

const (
	TransactionsAll         TransactionType = "all"
	TransactionsBookkeeping TransactionType = "bookkeeping"
	TransactionsTrade       TransactionType = "trade"
)

// HistoryRequest filters accounts/{id}/history. Empty fields use the API defaults.
type HistoryRequest struct {
	Range        HistoryRange    `schema:"range,omitempty"`
	Transactions TransactionType `schema:"transactions,omitempty"`
}

func (c *Client) FetchHistory(ctx context.Context, id string, req HistoryRequest) ([]*responses.Transaction, error) {
	id, err := c.account(id)
	if err != nil {
		return nil, fmt.Errorf("FetchHistory: %w", err)
	}

	query, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("FetchHistory: %w", err)
	}

	p, err := c.transport.Get(ctx, WithQuery(c.urls.AccountHistory(id), query))
	if err != nil {
		return nil, fmt.Errorf("FetchHistory: %w", err)
	}

	return responses.ParseHistory(p)
}

func (c *Client) FetchHoldings(ctx context.Context, id string) ([]*responses.Holding, error) {
	id, err := c.account(id)
	if err != nil {
		return nil, fmt.Errorf("FetchHoldings: %w", err)
	}

	p, err := c.transport.Get(ctx, c.urls.AccountHoldings(id))
	if err != nil {
		return nil, fmt.Errorf("FetchHoldings: %w", err)
	}

	return responses.ParseHoldings(p)
}

// member and utilities

func (c *Client) MemberProfile(ctx context.Context) (*responses.Payload, error) {
	p, err := c.getChecked(ctx, c.urls.MemberProfile())
	if err != nil {
		return nil, fmt.Errorf("MemberProfile: %w", err)
	}

	return p, nil
}

func (c *Client) Status(ctx context.Context) (*responses.Payload, error) {
	p, err := c.getChecked(ctx, c.urls.Status())
	if err != nil {
		return nil, fmt.Errorf("Status: %w", err)
	}

	return p, nil
}

func (c *Client) Version(ctx context.Context) (*responses.Payload, error) {
	p, err := c.getChecked(ctx, c.urls.Version())
	if err != nil {
		return nil, fmt.Errorf("Version: %w", err)
	}

	return p, nil
}
