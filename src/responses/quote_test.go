package responses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuotes(t *testing.T) {
	t.Run("a single quote and a list yield the same shape", func(t *testing.T) {
		// arrange
		single := decode(t, FormatJSON, `{"response": {"quotes": {"quote": {"symbol": "F", "last": "13.05", "bid": "13.04"}}}}`)
		list := decode(t, FormatJSON, `{"response": {"quotes": {"quote": [
			{"symbol": "F", "last": "13.05", "bid": "13.04"},
			{"symbol": "GE", "last": "160.10"}
		]}}}`)

		// act
		one, err := ParseQuotes(single)
		require.NoError(t, err)
		many, err := ParseQuotes(list)
		require.NoError(t, err)

		// assert
		require.Len(t, one, 1)
		require.Len(t, many, 2)
		assert.Equal(t, one[0], many[0])
		assert.Equal(t, "GE", Value(many[1].Symbol))
		assert.Nil(t, many[1].Bid)
	})

	t.Run("xml", func(t *testing.T) {
		p := decode(t, FormatXML, `<response id="1">
			<elapsedtime>0</elapsedtime>
			<quotes>
				<quote><symbol>F</symbol><last>13.05</last></quote>
				<quote><symbol>GE</symbol><ask>160.20</ask></quote>
			</quotes>
			<error>Success</error>
		</response>`)

		quotes, err := ParseQuotes(p)

		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Equal(t, "F", Value(quotes[0].Symbol))
		assert.Equal(t, "13.05", Value(quotes[0].Last))
		assert.Nil(t, quotes[0].Ask)
		assert.Equal(t, "160.20", Value(quotes[1].Ask))
	})

	t.Run("xml and json agree", func(t *testing.T) {
		fromXML, err := ParseQuotes(decode(t, FormatXML, `<response><quotes><quote><symbol>F</symbol><pchg>1.2</pchg></quote></quotes></response>`))
		require.NoError(t, err)
		fromJSON, err := ParseQuotes(decode(t, FormatJSON, `{"response": {"quotes": {"quote": [{"symbol": "F", "pchg": "1.2"}]}}}`))
		require.NoError(t, err)

		assert.Equal(t, fromJSON, fromXML)
	})

	t.Run("missing container is empty", func(t *testing.T) {
		quotes, err := ParseQuotes(decode(t, FormatJSON, `{"response": {"error": "Success"}}`))

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("empty collection rendered as a string", func(t *testing.T) {
		quotes, err := ParseQuotes(decode(t, FormatJSON, `{"response": {"quotes": {"quote": ""}}}`))

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})
}

func TestQuotes_String(t *testing.T) {
	last := "13.05"
	sym := "F"
	vol := "1234567"

	out := Quotes{{Symbol: &sym, Last: &last, Volume: &vol}, nil}.String()

	assert.Contains(t, out, "SYMBOL")
	assert.Contains(t, out, "13.05")
	assert.Contains(t, out, "1,234,567")
}

func TestSummarizeChange(t *testing.T) {
	t.Run("skips quotes without a change", func(t *testing.T) {
		quotes, err := ParseQuotes(decode(t, FormatJSON, `{"response": {"quotes": {"quote": [
			{"symbol": "A", "pchg": "1.0"},
			{"symbol": "B", "pchg": "-3.0"},
			{"symbol": "C", "pchg": "5.0"},
			{"symbol": "D"},
			{"symbol": "E", "pchg": "n/a"}
		]}}}`))
		require.NoError(t, err)

		summary, err := SummarizeChange(quotes)

		require.NoError(t, err)
		assert.Equal(t, 3, summary.Count)
		assert.InDelta(t, 1.0, summary.Mean, 1e-9)
		assert.InDelta(t, 1.0, summary.Median, 1e-9)
		assert.Equal(t, -3.0, summary.Min)
		assert.Equal(t, 5.0, summary.Max)
	})

	t.Run("no data", func(t *testing.T) {
		_, err := SummarizeChange(nil)

		assert.Error(t, err)
	})
}
