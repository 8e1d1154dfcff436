package responses

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, format Format, body string) *Payload {
	t.Helper()

	p, err := DecodePayload(format, []byte(body))
	require.NoError(t, err)

	return p
}

func TestDecodePayload(t *testing.T) {
	t.Run("json numbers keep their text", func(t *testing.T) {
		p := decode(t, FormatJSON, `{"response": {"quotes": {"quote": {"last": 150.10, "vl": 1200}}}}`)

		quotes, err := ParseQuotes(p)

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "150.10", Value(quotes[0].Last))
		assert.Equal(t, "1200", Value(quotes[0].Volume))
	})

	t.Run("malformed bodies fail", func(t *testing.T) {
		_, err := DecodePayload(FormatJSON, []byte(`{"response":`))
		assert.Error(t, err)

		_, err = DecodePayload(FormatXML, []byte(`<response>`))
		assert.Error(t, err)

		_, err = DecodePayload(Format("csv"), []byte(`a,b`))
		assert.Error(t, err)
	})
}

func TestCheckEnvelope(t *testing.T) {
	t.Run("success marker is not an error", func(t *testing.T) {
		p := decode(t, FormatJSON, `{"response": {"@id": "abc", "error": "Success"}}`)

		assert.NoError(t, CheckEnvelope(p))
	})

	t.Run("empty error is not an error", func(t *testing.T) {
		p := decode(t, FormatXML, `<response id="abc"><error></error></response>`)

		assert.NoError(t, CheckEnvelope(p))
	})

	t.Run("json error field", func(t *testing.T) {
		// arrange
		p := decode(t, FormatJSON, `{"response": {"error": "Invalid account", "quotes": {"quote": {"symbol": "F"}}}}`)

		// act
		_, err := ParseQuotes(p)

		// assert
		var perr *PayloadError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "Invalid account", perr.Message)
	})

	t.Run("xml error element", func(t *testing.T) {
		p := decode(t, FormatXML, `<response><error>Invalid symbol</error></response>`)

		err := CheckEnvelope(p)

		var perr *PayloadError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "Invalid symbol", perr.Message)
	})

	t.Run("missing envelope", func(t *testing.T) {
		err := CheckEnvelope(decode(t, FormatJSON, `{"quotes": {}}`))
		assert.Error(t, err)

		err = CheckEnvelope(decode(t, FormatJSON, `[1, 2]`))
		assert.Error(t, err)

		err = CheckEnvelope(decode(t, FormatXML, `<quotes/>`))
		assert.Error(t, err)

		err = CheckEnvelope(nil)
		assert.Error(t, err)
	})
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" XML ")
	require.NoError(t, err)
	assert.Equal(t, FormatXML, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}
