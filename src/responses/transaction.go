package responses

import "fmt"

// Transaction is one entry of accounts/{id}/history.
type Transaction struct {
	Activity       *string `json:"activity,omitempty" csv:"activity"`
	Amount         *string `json:"amount,omitempty" csv:"amount"`
	Date           *string `json:"date,omitempty" csv:"date"`
	Description    *string `json:"desc,omitempty" csv:"desc"`
	Symbol         *string `json:"symbol,omitempty" csv:"symbol"`
	AccountType    *string `json:"accounttype,omitempty" csv:"accounttype"`
	Commission     *string `json:"commission,omitempty" csv:"commission"`
	Fee            *string `json:"fee,omitempty" csv:"fee"`
	Price          *string `json:"price,omitempty" csv:"price"`
	Quantity       *string `json:"quantity,omitempty" csv:"quantity"`
	SECFee         *string `json:"secfee,omitempty" csv:"secfee"`
	SettlementDate *string `json:"settlementdate,omitempty" csv:"settlementdate"`
	Side           *string `json:"side,omitempty" csv:"side"`
	TradeDate      *string `json:"tradedate,omitempty" csv:"tradedate"`
	TransactionID  *string `json:"transactionid,omitempty" csv:"transactionid"`
	CUSIP          *string `json:"cusip,omitempty" csv:"cusip"`
	SecurityType   *string `json:"sectyp,omitempty" csv:"sectyp"`
	SecuritySymbol *string `json:"sym,omitempty" csv:"sym"`
}

var transactionSchema = []field[Transaction]{
	{key: "activity", set: func(t *Transaction) **string { return &t.Activity }},
	{key: "amount", set: func(t *Transaction) **string { return &t.Amount }},
	{key: "date", set: func(t *Transaction) **string { return &t.Date }},
	{key: "desc", set: func(t *Transaction) **string { return &t.Description }},
	{key: "symbol", set: func(t *Transaction) **string { return &t.Symbol }},
	{group: "transaction", key: "accounttype", set: func(t *Transaction) **string { return &t.AccountType }},
	{group: "transaction", key: "commission", set: func(t *Transaction) **string { return &t.Commission }},
	{group: "transaction", key: "fee", set: func(t *Transaction) **string { return &t.Fee }},
	{group: "transaction", key: "price", set: func(t *Transaction) **string { return &t.Price }},
	{group: "transaction", key: "quantity", set: func(t *Transaction) **string { return &t.Quantity }},
	{group: "transaction", key: "secfee", set: func(t *Transaction) **string { return &t.SECFee }},
	{group: "transaction", key: "settlementdate", set: func(t *Transaction) **string { return &t.SettlementDate }},
	{group: "transaction", key: "side", set: func(t *Transaction) **string { return &t.Side }},
	{group: "transaction", key: "tradedate", set: func(t *Transaction) **string { return &t.TradeDate }},
	{group: "transaction", key: "transactionid", set: func(t *Transaction) **string { return &t.TransactionID }},
	{group: "transaction.security", key: "cusip", set: func(t *Transaction) **string { return &t.CUSIP }},
	{group: "transaction.security", key: "sectyp", set: func(t *Transaction) **string { return &t.SecurityType }},
	{group: "transaction.security", key: "sym", set: func(t *Transaction) **string { return &t.SecuritySymbol }},
}

// ParseHistory maps response.transactions.transaction.
func ParseHistory(p *Payload) ([]*Transaction, error) {
	srcs, err := items(p, "transactions", "transaction")
	if err != nil {
		return nil, fmt.Errorf("ParseHistory: %w", err)
	}

	return parseAll(srcs, transactionSchema), nil
}
