package responses

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArticles(t *testing.T) {
	articles, err := ParseArticles(decode(t, FormatJSON, `{"response": {"articles": {"article": [
		{"id": "a1", "headline": "Ford rallies", "date": "2024-06-03 10:00"},
		{"id": "a2", "headline": "GE flat"}
	]}}}`))

	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Ford rallies", Value(articles[0].Headline))
	assert.Nil(t, articles[1].Date)
}

func TestParseArticle(t *testing.T) {
	t.Run("story", func(t *testing.T) {
		a, err := ParseArticle(decode(t, FormatXML, `<response><article><id>a1</id><story>Text</story></article></response>`))

		require.NoError(t, err)
		assert.Equal(t, "a1", Value(a.ID))
		assert.Equal(t, "Text", Value(a.Story))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ParseArticle(decode(t, FormatXML, `<response/>`))

		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestParseWatchlists(t *testing.T) {
	p := decode(t, FormatJSON, `{"response": {"watchlists": {"watchlist": {
		"id": "DEFAULT",
		"watchlistitem": [
			{"costbasis": "0", "instrument": {"sym": "F"}, "qty": "0"},
			{"instrument": {"sym": "GE"}},
			{"qty": "1"}
		]
	}}}}`)

	lists, err := ParseWatchlists(p)

	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "DEFAULT", Value(lists[0].ID))
	assert.Equal(t, []string{"F", "GE"}, lists[0].Symbols)
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock(decode(t, FormatJSON, `{"response": {"date": "2024-06-03 10:00:00", "unixtime": 1717423200, "status": {"current": "open", "next": "after"}, "message": "Market is open."}}`))

	require.NoError(t, err)
	assert.Equal(t, "open", Value(c.CurrentStatus))
	assert.Equal(t, "1717423200", Value(c.UnixTime))
	assert.Nil(t, c.ChangeAt)
}

func TestParsePostOrder(t *testing.T) {
	t.Run("preview with warning", func(t *testing.T) {
		r, err := ParsePostOrder(decode(t, FormatJSON, `{"response": {
			"estcommission": "0", "principal": "-13.00", "netamt": "-13.00",
			"warning": {"warningcode": "111", "warningtext": "Market closed"},
			"error": "Success"
		}}`))

		require.NoError(t, err)
		assert.Equal(t, "-13.00", Value(r.Principal))
		assert.Equal(t, "Market closed", Value(r.WarningText))
		assert.Nil(t, r.ClientOrderID)
	})

	t.Run("rejection", func(t *testing.T) {
		_, err := ParsePostOrder(decode(t, FormatXML, `<response><error>Order rejected</error></response>`))

		var perr *PayloadError
		assert.True(t, errors.As(err, &perr))
	})
}

func TestParseStrikes(t *testing.T) {
	t.Run("json list", func(t *testing.T) {
		strikes, err := ParseStrikes(decode(t, FormatJSON, `{"response": {"prices": {"price": ["10.00", 12.5, "15.00"]}}}`))

		require.NoError(t, err)
		assert.Equal(t, []string{"10.00", "12.5", "15.00"}, strikes)
	})

	t.Run("json single", func(t *testing.T) {
		strikes, err := ParseStrikes(decode(t, FormatJSON, `{"response": {"prices": {"price": "10.00"}}}`))

		require.NoError(t, err)
		assert.Equal(t, []string{"10.00"}, strikes)
	})

	t.Run("xml", func(t *testing.T) {
		strikes, err := ParseStrikes(decode(t, FormatXML, `<response><prices><price>10.00</price><price>12.50</price></prices></response>`))

		require.NoError(t, err)
		assert.Equal(t, []string{"10.00", "12.50"}, strikes)
	})
}

func TestParseExpirations(t *testing.T) {
	dates, err := ParseExpirations(decode(t, FormatJSON, `{"response": {"expirationdates": {"date": ["2024-06-21", "2024-07-19"]}}}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-21", "2024-07-19"}, dates)

	dates, err = ParseExpirations(decode(t, FormatJSON, `{"response": {}}`))

	require.NoError(t, err)
	assert.Empty(t, dates)
}
