package ally

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/ally-invest/src/responses"
)

func TestHTTPTransport(t *testing.T) {
	t.Run("decodes json", func(t *testing.T) {
		f := newFakeAlly(t)
		f.handle(http.MethodGet, "/v1/utility/status.json", http.StatusOK, `{"response": {"time": "Mon, 03 Jun 2024 10:00:00 -0400", "error": "Success"}}`)
		transport := NewHTTPTransport(testCredentials, responses.FormatJSON)

		p, err := transport.Get(context.Background(), f.server.URL+"/v1/utility/status.json")

		require.NoError(t, err)
		assert.NoError(t, responses.CheckEnvelope(p))
		require.Len(t, f.received(), 1)
		assert.Contains(t, f.received()[0].Header.Get("Authorization"), "OAuth ")
	})

	t.Run("decodes xml", func(t *testing.T) {
		f := newFakeAlly(t)
		f.handle(http.MethodGet, "/v1/utility/version.xml", http.StatusOK, `<response><version>1.0</version><error>Success</error></response>`)
		transport := NewHTTPTransport(testCredentials, responses.FormatXML)

		p, err := transport.Get(context.Background(), f.server.URL+"/v1/utility/version.xml")

		require.NoError(t, err)
		require.NotNil(t, p.XML)
		assert.Equal(t, "1.0", p.XML.Child("version").TrimmedText())
	})

	t.Run("rate limited", func(t *testing.T) {
		// arrange
		f := newFakeAlly(t)
		f.handle(http.MethodGet, "/v1/market/ext/quotes.json", http.StatusTooManyRequests, `Too many requests`)
		transport := NewHTTPTransport(testCredentials, responses.FormatJSON)

		// act
		_, err := transport.Get(context.Background(), f.server.URL+"/v1/market/ext/quotes.json")

		// assert
		assert.True(t, errors.Is(err, ErrRateLimited))
		var terr *TransportError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, http.StatusTooManyRequests, terr.StatusCode)
		assert.Equal(t, "Too many requests", terr.Body)
	})

	t.Run("uri too long", func(t *testing.T) {
		f := newFakeAlly(t)
		f.handle(http.MethodGet, "/v1/market/ext/quotes.json", http.StatusRequestURITooLong, ``)
		transport := NewHTTPTransport(testCredentials, responses.FormatJSON)

		_, err := transport.Get(context.Background(), f.server.URL+"/v1/market/ext/quotes.json")

		assert.True(t, errors.Is(err, ErrURITooLong))
		assert.False(t, errors.Is(err, ErrRateLimited))
	})

	t.Run("other failures", func(t *testing.T) {
		f := newFakeAlly(t)
		f.handle(http.MethodDelete, "/v1/watchlists/X.json", http.StatusInternalServerError, `oops`)
		transport := NewHTTPTransport(testCredentials, responses.FormatJSON)

		_, err := transport.Delete(context.Background(), f.server.URL+"/v1/watchlists/X.json")

		var terr *TransportError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, http.MethodDelete, terr.Method)
		assert.False(t, errors.Is(err, ErrRateLimited))
		assert.False(t, errors.Is(err, ErrURITooLong))
	})

	t.Run("undecodable body", func(t *testing.T) {
		f := newFakeAlly(t)
		f.handle(http.MethodGet, "/v1/accounts.json", http.StatusOK, `<html>`)
		transport := NewHTTPTransport(testCredentials, responses.FormatJSON)

		_, err := transport.Get(context.Background(), f.server.URL+"/v1/accounts.json")

		assert.Error(t, err)
		var terr *TransportError
		assert.False(t, errors.As(err, &terr))
	})

	t.Run("post headers are sent verbatim", func(t *testing.T) {
		f := newFakeAlly(t)
		f.handle(http.MethodPost, "/v1/accounts/1/orders.json", http.StatusOK, `{"response": {"error": "Success"}}`)
		transport := NewHTTPTransport(testCredentials, responses.FormatJSON)

		_, err := transport.Post(context.Background(), f.server.URL+"/v1/accounts/1/orders.json", []byte("<FIXML/>"), orderHeader())

		require.NoError(t, err)
		req := f.received()[0]
		assert.Equal(t, "<FIXML/>", req.Body)
		assert.Equal(t, "application/xml", req.Header.Get("Content-Type"))
		assert.Equal(t, "true", req.Header.Get("TKI_OVERRIDE"))
	})
}
