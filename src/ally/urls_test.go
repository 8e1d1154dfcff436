package ally

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/ally-invest/src/responses"
)

func TestURLs(t *testing.T) {
	t.Run("templates", func(t *testing.T) {
		urls, err := NewURLs(DefaultBaseURL, responses.FormatJSON)
		require.NoError(t, err)

		for want, got := range map[string]string{
			"https://api.tradeking.com/v1/accounts.json":                    urls.Accounts(),
			"https://api.tradeking.com/v1/accounts/balances.json":           urls.AccountsBalances(),
			"https://api.tradeking.com/v1/accounts/123.json":                urls.Account("123"),
			"https://api.tradeking.com/v1/accounts/123/balances.json":       urls.AccountBalances("123"),
			"https://api.tradeking.com/v1/accounts/123/history.json":        urls.AccountHistory("123"),
			"https://api.tradeking.com/v1/accounts/123/holdings.json":       urls.AccountHoldings("123"),
			"https://api.tradeking.com/v1/accounts/123/orders.json":         urls.AccountOrders("123"),
			"https://api.tradeking.com/v1/accounts/123/orders/preview.json": urls.AccountOrdersPreview("123"),
			"https://api.tradeking.com/v1/market/clock.json":                urls.Clock(),
			"https://api.tradeking.com/v1/market/ext/quotes.json":           urls.Quotes(),
			"https://api.tradeking.com/v1/market/news/search.json":          urls.NewsSearch(),
			"https://api.tradeking.com/v1/market/news/abc.json":             urls.NewsArticle("abc"),
			"https://api.tradeking.com/v1/market/toplists/topgainers.json":  urls.Toplists(ToplistTopGainers),
			"https://api.tradeking.com/v1/market/options/search.json":       urls.OptionsSearch(),
			"https://api.tradeking.com/v1/market/options/strikes.json":      urls.OptionsStrikes(),
			"https://api.tradeking.com/v1/market/options/expirations.json":  urls.OptionsExpirations(),
			"https://api.tradeking.com/v1/market/timesales.json":            urls.TimeSales(),
			"https://api.tradeking.com/v1/member/profile.json":              urls.MemberProfile(),
			"https://api.tradeking.com/v1/utility/status.json":              urls.Status(),
			"https://api.tradeking.com/v1/utility/version.json":             urls.Version(),
			"https://api.tradeking.com/v1/watchlists.json":                  urls.Watchlists(),
			"https://api.tradeking.com/v1/watchlists/DEFAULT.json":          urls.Watchlist("DEFAULT"),
			"https://api.tradeking.com/v1/watchlists/DEFAULT/symbols.json":  urls.WatchlistSymbols("DEFAULT"),
		} {
			assert.Equal(t, want, got)
		}
	})

	t.Run("xml suffix and missing slash", func(t *testing.T) {
		urls, err := NewURLs("https://example.com/v1", responses.FormatXML)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/v1/accounts/1/holdings.xml", urls.AccountHoldings("1"))
		assert.Equal(t, responses.FormatXML, urls.Format())
	})

	t.Run("ids are escaped", func(t *testing.T) {
		urls, err := NewURLs(DefaultBaseURL, responses.FormatJSON)

		require.NoError(t, err)
		assert.Equal(t, "https://api.tradeking.com/v1/watchlists/my%20list.json", urls.Watchlist("my list"))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewURLs("api.tradeking.com", responses.FormatJSON)
		assert.Error(t, err)

		_, err = NewURLs(DefaultBaseURL, responses.Format("csv"))
		assert.Error(t, err)
	})

	t.Run("with query", func(t *testing.T) {
		assert.Equal(t, "https://x/a.json", WithQuery("https://x/a.json", url.Values{}))
		assert.Equal(t, "https://x/a.json?symbols=F", WithQuery("https://x/a.json", url.Values{"symbols": {"F"}}))
	})
}
