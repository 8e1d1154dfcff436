package ally

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
)

// AuthorizationWindow is how long a signing authorization is used before it is
// recomputed.
const AuthorizationWindow = 10 * time.Second

// Credentials are the consumer and access-token pairs issued on the Ally Invest
// applications page.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
}

func (c Credentials) Validate() error {
	var errs []error
	if c.ConsumerKey == "" {
		errs = append(errs, errors.New("consumer key is required"))
	}
	if c.ConsumerSecret == "" {
		errs = append(errs, errors.New("consumer secret is required"))
	}
	if c.Token == "" {
		errs = append(errs, errors.New("oauth token is required"))
	}
	if c.TokenSecret == "" {
		errs = append(errs, errors.New("oauth token secret is required"))
	}

	return errors.Join(errs...)
}

// Authorization signs requests with OAuth 1.0a until ValidUntil. It is an immutable
// value; callers compute a fresh one once it expires.
type Authorization struct {
	config     *oauth1.Config
	token      *oauth1.Token
	ValidUntil time.Time
}

func (c Credentials) Authorize(now time.Time) Authorization {
	return Authorization{
		config:     oauth1.NewConfig(c.ConsumerKey, c.ConsumerSecret),
		token:      oauth1.NewToken(c.Token, c.TokenSecret),
		ValidUntil: now.Add(AuthorizationWindow),
	}
}

func (a Authorization) Valid(now time.Time) bool {
	return a.config != nil && now.Before(a.ValidUntil)
}

// Client returns an http.Client that signs every request it sends over base's
// transport, keeping base's timeout.
func (a Authorization) Client(ctx context.Context, base *http.Client) *http.Client {
	ctx = context.WithValue(ctx, oauth1.HTTPClient, base)

	client := a.config.Client(ctx, a.token)
	client.Timeout = base.Timeout

	return client
}
