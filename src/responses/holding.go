package responses

import "fmt"

// Holding is one position of accounts/{id}/holdings.
type Holding struct {
	AccountType       *string `json:"accounttype,omitempty" csv:"accounttype"`
	AssetClass        *string `json:"assetclass,omitempty" csv:"assetclass"`
	CFI               *string `json:"cfi,omitempty" csv:"cfi"`
	Change            *string `json:"change,omitempty" csv:"change"`
	CostBasis         *string `json:"costbasis,omitempty" csv:"costbasis"`
	CUSIP             *string `json:"cusip,omitempty" csv:"cusip"`
	Description       *string `json:"desc,omitempty" csv:"desc"`
	Factor            *string `json:"factor,omitempty" csv:"factor"`
	GainLoss          *string `json:"gainloss,omitempty" csv:"gainloss"`
	LastPrice         *string `json:"lastprice,omitempty" csv:"lastprice"`
	MarketValue       *string `json:"marketvalue,omitempty" csv:"marketvalue"`
	MarketValueChange *string `json:"marketvaluechange,omitempty" csv:"marketvaluechange"`
	MaturityDate      *string `json:"matdt,omitempty" csv:"matdt"`
	MMY               *string `json:"mmy,omitempty" csv:"mmy"`
	Multiplier        *string `json:"mult,omitempty" csv:"mult"`
	Price             *string `json:"price,omitempty" csv:"price"`
	PurchasePrice     *string `json:"purchaseprice,omitempty" csv:"purchaseprice"`
	PutCall           *string `json:"putcall,omitempty" csv:"putcall"`
	Quantity          *string `json:"qty,omitempty" csv:"qty"`
	SecurityType      *string `json:"sectyp,omitempty" csv:"sectyp"`
	StrikePrice       *string `json:"strkpx,omitempty" csv:"strkpx"`
	Symbol            *string `json:"sym,omitempty" csv:"sym"`
	TotalSecurities   *string `json:"totalsecurities,omitempty" csv:"totalsecurities"`
}

// Single-leg options report the maturity as instrument.matdt, multi-leg positions as
// instrument.mat. The later entry wins when both are present.
var holdingSchema = []field[Holding]{
	{key: "accounttype", set: func(h *Holding) **string { return &h.AccountType }},
	{key: "assetclass", set: func(h *Holding) **string { return &h.AssetClass }},
	{key: "cfi", set: func(h *Holding) **string { return &h.CFI }},
	{group: "quote", key: "change", set: func(h *Holding) **string { return &h.Change }},
	{key: "costbasis", set: func(h *Holding) **string { return &h.CostBasis }},
	{group: "instrument", key: "cusip", set: func(h *Holding) **string { return &h.CUSIP }},
	{group: "instrument", key: "desc", set: func(h *Holding) **string { return &h.Description }},
	{group: "instrument", key: "factor", set: func(h *Holding) **string { return &h.Factor }},
	{key: "gainloss", set: func(h *Holding) **string { return &h.GainLoss }},
	{group: "quote", key: "lastprice", set: func(h *Holding) **string { return &h.LastPrice }},
	{key: "marketvalue", set: func(h *Holding) **string { return &h.MarketValue }},
	{key: "marketvaluechange", set: func(h *Holding) **string { return &h.MarketValueChange }},
	{group: "instrument", key: "matdt", set: func(h *Holding) **string { return &h.MaturityDate }},
	{group: "instrument", key: "mat", set: func(h *Holding) **string { return &h.MaturityDate }},
	{key: "mmy", set: func(h *Holding) **string { return &h.MMY }},
	{key: "mult", set: func(h *Holding) **string { return &h.Multiplier }},
	{key: "price", set: func(h *Holding) **string { return &h.Price }},
	{key: "purchaseprice", set: func(h *Holding) **string { return &h.PurchasePrice }},
	{group: "instrument", key: "putcall", set: func(h *Holding) **string { return &h.PutCall }},
	{key: "qty", set: func(h *Holding) **string { return &h.Quantity }},
	{group: "instrument", key: "sectyp", set: func(h *Holding) **string { return &h.SecurityType }},
	{group: "instrument", key: "strkpx", set: func(h *Holding) **string { return &h.StrikePrice }},
	{group: "instrument", key: "sym", set: func(h *Holding) **string { return &h.Symbol }},
	{key: "totalsecurities", set: func(h *Holding) **string { return &h.TotalSecurities }},
}

// ParseHoldings maps response.accountholdings.holding. Holdings without a quote or
// instrument group are kept with those fields unset.
func ParseHoldings(p *Payload) ([]*Holding, error) {
	srcs, err := items(p, "accountholdings", "holding")
	if err != nil {
		return nil, fmt.Errorf("ParseHoldings: %w", err)
	}

	return parseAll(srcs, holdingSchema), nil
}
