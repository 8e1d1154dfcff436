package run

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/ally-invest/src/responses"
)

func str(s string) *string { return &s }

func TestExportToCsv(t *testing.T) {
	t.Run("writes holdings", func(t *testing.T) {
		// arrange
		dir := filepath.Join(t.TempDir(), "out")
		now := time.Date(2024, time.June, 3, 10, 4, 5, 0, time.UTC)
		rows := []*responses.Holding{
			{Symbol: str("F"), Quantity: str("10"), LastPrice: str("13.05")},
			{Symbol: str("IBM")},
		}

		// act
		path, err := ExportToCsv(dir, rows, "holdings", now)

		// assert
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "holdings_2024-06-03_10-04-05.csv"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
		require.Len(t, lines, 3)
		assert.Contains(t, string(lines[0]), "sym")
		assert.Contains(t, string(lines[1]), "13.05")
		assert.Contains(t, string(lines[2]), "IBM")
	})

	t.Run("orders skip the raw document", func(t *testing.T) {
		dir := t.TempDir()
		rows := []*responses.Order{{OrderID: str("SVI-1"), RawFIXML: "<FIXML/>"}}

		path, err := ExportToCsv(dir, rows, "orders", time.Now())

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "SVI-1")
		assert.NotContains(t, string(data), "FIXML")
	})
}

func TestPrintPayload(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		p, err := responses.DecodePayload(responses.FormatJSON, []byte(`{"response": {"version": "1.0"}}`))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, PrintPayload(&buf, p))

		assert.Contains(t, buf.String(), `"version": "1.0"`)
	})

	t.Run("xml", func(t *testing.T) {
		p, err := responses.DecodePayload(responses.FormatXML, []byte(`<response><version>1.0</version></response>`))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, PrintPayload(&buf, p))

		assert.Contains(t, buf.String(), "<version>1.0</version>")
	})
}
