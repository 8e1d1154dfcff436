package responses

import (
	"fmt"

	"github.com/jiaming2012/ally-invest/src/fixml"
)

const (
	fixmlMessageKey = "fixmlmessage"
	execReportTag   = "ExecRpt"
)

// Order is the read view of an order status entry. The API embeds each order as an
// escaped FIXML document; RawFIXML keeps that string and FIXML holds its expanded
// object form so callers can reach fields not copied below.
type Order struct {
	OrderID         *string `json:"ord_id,omitempty" csv:"ord_id"`
	ID              *string `json:"id,omitempty" csv:"id"`
	Status          *string `json:"stat,omitempty" csv:"stat"`
	Account         *string `json:"acct,omitempty" csv:"acct"`
	AccountType     *string `json:"acct_typ,omitempty" csv:"acct_typ"`
	Side            *string `json:"side,omitempty" csv:"side"`
	Type            *string `json:"typ,omitempty" csv:"typ"`
	Price           *string `json:"px,omitempty" csv:"px"`
	TimeInForce     *string `json:"tm_in_force,omitempty" csv:"tm_in_force"`
	LeavesQuantity  *string `json:"leaves_qty,omitempty" csv:"leaves_qty"`
	TradeDate       *string `json:"trd_dt,omitempty" csv:"trd_dt"`
	TransactionTime *string `json:"txn_tm,omitempty" csv:"txn_tm"`
	Symbol          *string `json:"sym,omitempty" csv:"sym"`
	SecurityType    *string `json:"sec_typ,omitempty" csv:"sec_typ"`
	Description     *string `json:"desc,omitempty" csv:"desc"`
	Quantity        *string `json:"qty,omitempty" csv:"qty"`
	Commission      *string `json:"comm,omitempty" csv:"comm"`

	RawFIXML string                 `json:"-" csv:"-"`
	FIXML    map[string]interface{} `json:"-" csv:"-"`
}

var orderSchema = []field[Order]{
	{key: "@OrdID", set: func(o *Order) **string { return &o.OrderID }},
	{key: "@ID", set: func(o *Order) **string { return &o.ID }},
	{key: "@Stat", set: func(o *Order) **string { return &o.Status }},
	{key: "@Acct", set: func(o *Order) **string { return &o.Account }},
	{key: "@AcctTyp", set: func(o *Order) **string { return &o.AccountType }},
	{key: "@Side", set: func(o *Order) **string { return &o.Side }},
	{key: "@Typ", set: func(o *Order) **string { return &o.Type }},
	{key: "@Px", set: func(o *Order) **string { return &o.Price }},
	{key: "@TmInForce", set: func(o *Order) **string { return &o.TimeInForce }},
	{key: "@LeavesQty", set: func(o *Order) **string { return &o.LeavesQuantity }},
	{key: "@TrdDt", set: func(o *Order) **string { return &o.TradeDate }},
	{key: "@TxnTm", set: func(o *Order) **string { return &o.TransactionTime }},
	{group: "Instrmt", key: "@Sym", set: func(o *Order) **string { return &o.Symbol }},
	{group: "Instrmt", key: "@SecTyp", set: func(o *Order) **string { return &o.SecurityType }},
	{group: "Instrmt", key: "@Desc", set: func(o *Order) **string { return &o.Description }},
	{group: "OrdQty", key: "@Qty", set: func(o *Order) **string { return &o.Quantity }},
	{group: "Comm", key: "@Comm", set: func(o *Order) **string { return &o.Commission }},
}

// ExpandFIXML parses an embedded FIXML string into its object form,
// e.g. {"FIXML": {"ExecRpt": {"@OrdID": ...}}}.
func ExpandFIXML(raw string) (map[string]interface{}, error) {
	n, err := fixml.ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("ExpandFIXML: %w", err)
	}

	return fixml.ToObject(n), nil
}

// executionReport returns the first ExecRpt of an expanded document.
func executionReport(doc map[string]interface{}) (map[string]interface{}, bool) {
	root, ok := doc[fixml.RootTag].(map[string]interface{})
	if !ok {
		return nil, false
	}

	switch rpt := root[execReportTag].(type) {
	case map[string]interface{}:
		return rpt, true
	case []interface{}:
		if len(rpt) > 0 {
			first, ok := rpt[0].(map[string]interface{})
			return first, ok
		}
	}

	return nil, false
}

func newOrder(src source) (*Order, error) {
	o := new(Order)

	raw, ok := src.value(fixmlMessageKey)
	if !ok || raw == "" {
		return o, nil
	}

	doc, err := ExpandFIXML(raw)
	if err != nil {
		return nil, err
	}

	o.RawFIXML = raw
	o.FIXML = doc

	if rpt, ok := executionReport(doc); ok {
		populate(objectSource(rpt), orderSchema, o)
	}

	return o, nil
}

// ParseOrders maps response.orderstatus.order, expanding each embedded FIXML message.
// An order whose message is not well-formed XML fails the whole call.
func ParseOrders(p *Payload) ([]*Order, error) {
	srcs, err := items(p, "orderstatus", "order")
	if err != nil {
		return nil, fmt.Errorf("ParseOrders: %w", err)
	}

	out := make([]*Order, 0, len(srcs))
	for i, src := range srcs {
		o, err := newOrder(src)
		if err != nil {
			return nil, fmt.Errorf("ParseOrders: order %d: %w", i, err)
		}
		out = append(out, o)
	}

	return out, nil
}
