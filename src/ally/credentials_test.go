package ally

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Authorize(t *testing.T) {
	t.Run("valid for the window", func(t *testing.T) {
		now := time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC)

		auth := testCredentials.Authorize(now)

		assert.Equal(t, now.Add(AuthorizationWindow), auth.ValidUntil)
		assert.True(t, auth.Valid(now.Add(9*time.Second)))
		assert.False(t, auth.Valid(now.Add(10*time.Second)))
	})

	t.Run("zero value is never valid", func(t *testing.T) {
		assert.False(t, Authorization{}.Valid(time.Now()))
	})

	t.Run("signed requests", func(t *testing.T) {
		// arrange
		var header string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header = r.Header.Get("Authorization")
		}))
		defer srv.Close()

		base := &http.Client{Timeout: 3 * time.Second}
		client := testCredentials.Authorize(time.Now()).Client(context.Background(), base)

		// act
		res, err := client.Get(srv.URL + "/v1/accounts.json")

		// assert
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, 3*time.Second, client.Timeout)
		assert.Contains(t, header, "OAuth ")
		assert.Contains(t, header, `oauth_consumer_key="consumer-key"`)
		assert.Contains(t, header, `oauth_token="oauth-token"`)
		assert.Contains(t, header, `oauth_signature_method="HMAC-SHA1"`)
	})
}

func TestCredentials_Validate(t *testing.T) {
	assert.NoError(t, testCredentials.Validate())

	err := Credentials{ConsumerKey: "k"}.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "consumer secret")
	assert.Contains(t, err.Error(), "oauth token secret")
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ALLY_CONSUMER_KEY", "ck")
		t.Setenv("ALLY_CONSUMER_SECRET", "cs")
		t.Setenv("ALLY_OAUTH_TOKEN", "tok")
		t.Setenv("ALLY_OAUTH_SECRET", "ts")
		t.Setenv("ALLY_ACCOUNT_ID", "")
		t.Setenv("ALLY_RESPONSE_FORMAT", "")
		t.Setenv("ALLY_BASE_URL", "")

		cfg, err := NewConfigFromEnv()

		require.NoError(t, err)
		assert.Equal(t, "tok", cfg.Credentials.Token)
		assert.Equal(t, "json", string(cfg.Format))
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("xml and account", func(t *testing.T) {
		t.Setenv("ALLY_CONSUMER_KEY", "ck")
		t.Setenv("ALLY_CONSUMER_SECRET", "cs")
		t.Setenv("ALLY_OAUTH_TOKEN", "tok")
		t.Setenv("ALLY_OAUTH_SECRET", "ts")
		t.Setenv("ALLY_ACCOUNT_ID", "123")
		t.Setenv("ALLY_RESPONSE_FORMAT", "XML")

		cfg, err := NewConfigFromEnv()

		require.NoError(t, err)
		assert.Equal(t, "123", cfg.AccountID)
		assert.Equal(t, "xml", string(cfg.Format))
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("ALLY_CONSUMER_KEY", "ck")
		t.Setenv("ALLY_CONSUMER_SECRET", "")

		_, err := NewConfigFromEnv()

		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Setenv("ALLY_CONSUMER_KEY", "ck")
		t.Setenv("ALLY_CONSUMER_SECRET", "cs")
		t.Setenv("ALLY_OAUTH_TOKEN", "tok")
		t.Setenv("ALLY_OAUTH_SECRET", "ts")
		t.Setenv("ALLY_RESPONSE_FORMAT", "csv")

		_, err := NewConfigFromEnv()

		assert.Error(t, err)
	})
}
