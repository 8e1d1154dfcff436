package orders

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("names and codes", func(t *testing.T) {
		o, err := NewOrder(OrderConfig{
			Account:      "A1",
			Symbol:       "AAPL",
			Quantity:     100,
			SecurityType: "CS",
			Side:         "1",
			Type:         "limit",
			TimeInForce:  "gtc",
			Price:        "150.00",
		})

		require.NoError(t, err)
		assert.Equal(t, SecurityTypeCommonStock, o.SecurityType)
		assert.Equal(t, SideBuy, o.Side)
		assert.Equal(t, OrderTypeLimit, o.Type)
		assert.Equal(t, TimeInForceGoodTillCancelled, o.TimeInForce)
		assert.Equal(t, "150", o.Price.String())
		assert.NoError(t, o.Validate())
	})

	t.Run("option fields", func(t *testing.T) {
		o, err := NewOrder(OrderConfig{
			SecurityType:   "option",
			PositionEffect: "close",
			OptionClass:    "OP",
			StrikePrice:    "42.5",
			Maturity:       "2024-06-21",
			ExpirationTag:  "202406",
		})

		require.NoError(t, err)
		assert.Equal(t, PositionEffectClose, o.PositionEffect)
		assert.Equal(t, OptionClassPut, o.OptionClass)
		assert.Equal(t, time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC), o.Maturity)
	})

	t.Run("unknown names fail", func(t *testing.T) {
		_, err := NewOrder(OrderConfig{Side: "hold"})
		assert.Error(t, err)

		_, err = NewOrder(OrderConfig{Price: "abc"})
		assert.Error(t, err)

		_, err = NewOrder(OrderConfig{Maturity: "06/21/2024"})
		assert.Error(t, err)
	})

	t.Run("missing fields are left for validation", func(t *testing.T) {
		o, err := NewOrder(OrderConfig{})

		require.NoError(t, err)
		assert.Error(t, o.Validate())
	})
}

func TestReadOrderFile(t *testing.T) {
	t.Run("single order", func(t *testing.T) {
		f, err := ReadOrderFile(strings.NewReader(`
order:
  acct: "12345678"
  sym: F
  qty: 1
  sec_typ: CS
  side: buy
  typ: limit
  tm_in_force: day
  px: "13"
`))
		require.NoError(t, err)

		doc, err := f.Document()

		require.NoError(t, err)
		assert.Equal(t,
			`<FIXML xmlns="http://www.fixprotocol.org/FIXML-5-0-SP2"><Order Acct="12345678" Typ="2" Side="1" TmInForce="0" Px="13"><Instrmt SecTyp="CS" Sym="F"></Instrmt><OrdQty Qty="1"></OrdQty></Order></FIXML>`,
			doc.String())
		assert.Equal(t, "12345678", f.Account())
	})

	t.Run("legs", func(t *testing.T) {
		f, err := ReadOrderFile(strings.NewReader(`
cancel: false
legs:
  - {acct: A1, sym: IBM, qty: 4, sec_typ: OPT, side: sell, typ: limit, tm_in_force: day, px: "3.10", pos_efct: open, strk_px: "190", cfi: call, mat_dt: "2014-01-18", mmy: "201401"}
  - {acct: A1, sym: IBM, qty: 4, sec_typ: OPT, side: buy, typ: limit, tm_in_force: day, px: "3.10", pos_efct: open, strk_px: "200", cfi: call, mat_dt: "2014-01-18", mmy: "201401"}
`))
		require.NoError(t, err)

		doc, err := f.Document()

		require.NoError(t, err)
		assert.Len(t, doc.Child(TagMultilegNew).ChildrenByTag("Ord"), 2)
		assert.Equal(t, "A1", f.Account())
	})

	t.Run("neither order nor legs", func(t *testing.T) {
		_, err := ReadOrderFile(strings.NewReader("cancel: true\n"))

		assert.Error(t, err)
	})

	t.Run("invalid order in file", func(t *testing.T) {
		f, err := ReadOrderFile(strings.NewReader("order: {acct: A1, sym: F, qty: 0, sec_typ: CS, side: buy, typ: market}\n"))
		require.NoError(t, err)

		_, err = f.Document()

		assert.Error(t, err)
	})
}

func TestOptionSymbol(t *testing.T) {
	t.Run("call", func(t *testing.T) {
		sym, err := OptionSymbol("aapl", time.Date(2019, time.January, 18, 0, 0, 0, 0, time.UTC), OptionClassCall, *price("150"))

		require.NoError(t, err)
		assert.Equal(t, "AAPL190118C00150000", sym)
	})

	t.Run("fractional put strike", func(t *testing.T) {
		sym, err := OptionSymbol("F", time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC), OptionClassPut, *price("12.5"))

		require.NoError(t, err)
		assert.Equal(t, "F240621P00012500", sym)
	})

	t.Run("invalid class", func(t *testing.T) {
		_, err := OptionSymbol("F", time.Now(), 0, *price("1"))

		assert.Error(t, err)
	})

	t.Run("expiration tag", func(t *testing.T) {
		assert.Equal(t, "201401", ExpirationTag(time.Date(2014, time.January, 18, 0, 0, 0, 0, time.UTC)))
	})
}
