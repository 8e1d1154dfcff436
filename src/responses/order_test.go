package responses

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const execReport = `<FIXML xmlns="http://www.fixprotocol.org/FIXML-5-0-SP2"><ExecRpt OrdID="SVI-12345678" ID="abc" Stat="0" Acct="12345678" AcctTyp="1" Side="1" Typ="2" Px="13.00" TmInForce="0" LeavesQty="1" TrdDt="2024-06-03T10:11:12.000-04:00" TxnTm="2024-06-03T10:11:12.000-04:00"><Instrmt Sym="F" SecTyp="CS" Desc="FORD MOTOR CO"/><OrdQty Qty="1"/><Comm Comm="0"/></ExecRpt></FIXML>`

func TestParseOrders(t *testing.T) {
	t.Run("embedded fixml is expanded", func(t *testing.T) {
		// arrange
		body, err := json.Marshal(map[string]interface{}{
			"response": map[string]interface{}{
				"orderstatus": map[string]interface{}{
					"order": map[string]interface{}{"fixmlmessage": execReport},
				},
			},
		})
		require.NoError(t, err)

		// act
		orders, err := ParseOrders(decode(t, FormatJSON, string(body)))

		// assert
		require.NoError(t, err)
		require.Len(t, orders, 1)

		o := orders[0]
		assert.Equal(t, "SVI-12345678", Value(o.OrderID))
		assert.Equal(t, "0", Value(o.Status))
		assert.Equal(t, "13.00", Value(o.Price))
		assert.Equal(t, "F", Value(o.Symbol))
		assert.Equal(t, "FORD MOTOR CO", Value(o.Description))
		assert.Equal(t, "1", Value(o.Quantity))
		assert.Equal(t, "0", Value(o.Commission))
		assert.Equal(t, execReport, o.RawFIXML)

		rpt := o.FIXML["FIXML"].(map[string]interface{})["ExecRpt"].(map[string]interface{})
		assert.Equal(t, "12345678", rpt["@Acct"])
	})

	t.Run("xml carries the message escaped", func(t *testing.T) {
		p := decode(t, FormatXML, `<response><orderstatus>
			<order><fixmlmessage>&lt;FIXML&gt;&lt;ExecRpt OrdID="1" Stat="2"&gt;&lt;Instrmt Sym="GE"/&gt;&lt;/ExecRpt&gt;&lt;/FIXML&gt;</fixmlmessage></order>
			<order><fixmlmessage>&lt;FIXML&gt;&lt;ExecRpt OrdID="2" Stat="4"/&gt;&lt;/FIXML&gt;</fixmlmessage></order>
		</orderstatus></response>`)

		orders, err := ParseOrders(p)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "1", Value(orders[0].OrderID))
		assert.Equal(t, "GE", Value(orders[0].Symbol))
		assert.Equal(t, "4", Value(orders[1].Status))
		assert.Nil(t, orders[1].Symbol)
	})

	t.Run("order without a message", func(t *testing.T) {
		orders, err := ParseOrders(decode(t, FormatJSON, `{"response": {"orderstatus": {"order": [{}]}}}`))

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Nil(t, orders[0].OrderID)
		assert.Empty(t, orders[0].RawFIXML)
	})

	t.Run("malformed message", func(t *testing.T) {
		_, err := ParseOrders(decode(t, FormatJSON, `{"response": {"orderstatus": {"order": {"fixmlmessage": "<FIXML><ExecRpt>"}}}}`))

		assert.Error(t, err)
	})

	t.Run("no orders", func(t *testing.T) {
		orders, err := ParseOrders(decode(t, FormatJSON, `{"response": {"orderstatus": {"order": []}}}`))

		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestExpandFIXML(t *testing.T) {
	doc, err := ExpandFIXML(`<FIXML><ExecRpt OrdID="1"/><ExecRpt OrdID="2"/></FIXML>`)
	require.NoError(t, err)

	rpt, ok := executionReport(doc)

	require.True(t, ok)
	assert.Equal(t, "1", rpt["@OrdID"])
}
