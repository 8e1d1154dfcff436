package responses

import "fmt"

// Quote is one entry of market/ext/quotes. Every field is optional and carries the
// value exactly as the API rendered it.
type Quote struct {
	Adp100           *string `json:"adp_100,omitempty" csv:"adp_100"`
	Adp200           *string `json:"adp_200,omitempty" csv:"adp_200"`
	Adp50            *string `json:"adp_50,omitempty" csv:"adp_50"`
	Adv21            *string `json:"adv_21,omitempty" csv:"adv_21"`
	Adv30            *string `json:"adv_30,omitempty" csv:"adv_30"`
	Adv90            *string `json:"adv_90,omitempty" csv:"adv_90"`
	Ask              *string `json:"ask,omitempty" csv:"ask"`
	AskTime          *string `json:"ask_time,omitempty" csv:"ask_time"`
	AskSize          *string `json:"asksz,omitempty" csv:"asksz"`
	Basis            *string `json:"basis,omitempty" csv:"basis"`
	Beta             *string `json:"beta,omitempty" csv:"beta"`
	Bid              *string `json:"bid,omitempty" csv:"bid"`
	BidTime          *string `json:"bid_time,omitempty" csv:"bid_time"`
	BidSize          *string `json:"bidsz,omitempty" csv:"bidsz"`
	Bidtick          *string `json:"bidtick,omitempty" csv:"bidtick"`
	Change           *string `json:"chg,omitempty" csv:"chg"`
	ChgSign          *string `json:"chg_sign,omitempty" csv:"chg_sign"`
	ChgT             *string `json:"chg_t,omitempty" csv:"chg_t"`
	Close            *string `json:"cl,omitempty" csv:"cl"`
	ContractSize     *string `json:"contract_size,omitempty" csv:"contract_size"`
	CUSIP            *string `json:"cusip,omitempty" csv:"cusip"`
	Date             *string `json:"date,omitempty" csv:"date"`
	DateTime         *string `json:"datetime,omitempty" csv:"datetime"`
	DaysToExpiration *string `json:"days_to_expiration,omitempty" csv:"days_to_expiration"`
	Dividend         *string `json:"div,omitempty" csv:"div"`
	Divexdate        *string `json:"divexdate,omitempty" csv:"divexdate"`
	Divfreq          *string `json:"divfreq,omitempty" csv:"divfreq"`
	Divpaydt         *string `json:"divpaydt,omitempty" csv:"divpaydt"`
	DollarValue      *string `json:"dollar_value,omitempty" csv:"dollar_value"`
	EPS              *string `json:"eps,omitempty" csv:"eps"`
	Exchange         *string `json:"exch,omitempty" csv:"exch"`
	ExchDesc         *string `json:"exch_desc,omitempty" csv:"exch_desc"`
	High             *string `json:"hi,omitempty" csv:"hi"`
	IAD              *string `json:"iad,omitempty" csv:"iad"`
	Idelta           *string `json:"idelta,omitempty" csv:"idelta"`
	Igamma           *string `json:"igamma,omitempty" csv:"igamma"`
	ImpVolatility    *string `json:"imp_volatility,omitempty" csv:"imp_volatility"`
	IncrVl           *string `json:"incr_vl,omitempty" csv:"incr_vl"`
	Irho             *string `json:"irho,omitempty" csv:"irho"`
	IssueDesc        *string `json:"issue_desc,omitempty" csv:"issue_desc"`
	Itheta           *string `json:"itheta,omitempty" csv:"itheta"`
	Ivega            *string `json:"ivega,omitempty" csv:"ivega"`
	Last             *string `json:"last,omitempty" csv:"last"`
	Low              *string `json:"lo,omitempty" csv:"lo"`
	Name             *string `json:"name,omitempty" csv:"name"`
	OpDelivery       *string `json:"op_delivery,omitempty" csv:"op_delivery"`
	OpFlag           *string `json:"op_flag,omitempty" csv:"op_flag"`
	OpStyle          *string `json:"op_style,omitempty" csv:"op_style"`
	OpSubclass       *string `json:"op_subclass,omitempty" csv:"op_subclass"`
	OpenInterest     *string `json:"openinterest,omitempty" csv:"openinterest"`
	Open             *string `json:"opn,omitempty" csv:"opn"`
	OptVal           *string `json:"opt_val,omitempty" csv:"opt_val"`
	PercentChange    *string `json:"pchg,omitempty" csv:"pchg"`
	PchgSign         *string `json:"pchg_sign,omitempty" csv:"pchg_sign"`
	PrevClose        *string `json:"pcls,omitempty" csv:"pcls"`
	PE               *string `json:"pe,omitempty" csv:"pe"`
	Phi              *string `json:"phi,omitempty" csv:"phi"`
	Plo              *string `json:"plo,omitempty" csv:"plo"`
	Popn             *string `json:"popn,omitempty" csv:"popn"`
	PrAdp100         *string `json:"pr_adp_100,omitempty" csv:"pr_adp_100"`
	PrAdp200         *string `json:"pr_adp_200,omitempty" csv:"pr_adp_200"`
	PrAdp50          *string `json:"pr_adp_50,omitempty" csv:"pr_adp_50"`
	PrDate           *string `json:"pr_date,omitempty" csv:"pr_date"`
	PrOpeninterest   *string `json:"pr_openinterest,omitempty" csv:"pr_openinterest"`
	PriceBook        *string `json:"prbook,omitempty" csv:"prbook"`
	PriorChange      *string `json:"prchg,omitempty" csv:"prchg"`
	PremMult         *string `json:"prem_mult,omitempty" csv:"prem_mult"`
	PutCall          *string `json:"put_call,omitempty" csv:"put_call"`
	PrevVolume       *string `json:"pvol,omitempty" csv:"pvol"`
	Qcond            *string `json:"qcond,omitempty" csv:"qcond"`
	RootSymbol       *string `json:"rootsymbol,omitempty" csv:"rootsymbol"`
	SecurityClass    *string `json:"secclass,omitempty" csv:"secclass"`
	Sesn             *string `json:"sesn,omitempty" csv:"sesn"`
	Sho              *string `json:"sho,omitempty" csv:"sho"`
	StrikePrice      *string `json:"strikeprice,omitempty" csv:"strikeprice"`
	Symbol           *string `json:"symbol,omitempty" csv:"symbol"`
	Tcond            *string `json:"tcond,omitempty" csv:"tcond"`
	Timestamp        *string `json:"timestamp,omitempty" csv:"timestamp"`
	TradeCount       *string `json:"tr_num,omitempty" csv:"tr_num"`
	Tradetick        *string `json:"tradetick,omitempty" csv:"tradetick"`
	Trend            *string `json:"trend,omitempty" csv:"trend"`
	UnderCUSIP       *string `json:"under_cusip,omitempty" csv:"under_cusip"`
	UnderSymbol      *string `json:"undersymbol,omitempty" csv:"undersymbol"`
	Volume           *string `json:"vl,omitempty" csv:"vl"`
	Volatility12     *string `json:"volatility12,omitempty" csv:"volatility12"`
	VWAP             *string `json:"vwap,omitempty" csv:"vwap"`
	Week52High       *string `json:"wk52hi,omitempty" csv:"wk52hi"`
	Week52HighDate   *string `json:"wk52hidate,omitempty" csv:"wk52hidate"`
	Week52Low        *string `json:"wk52lo,omitempty" csv:"wk52lo"`
	Week52LowDate    *string `json:"wk52lodate,omitempty" csv:"wk52lodate"`
	Xdate            *string `json:"xdate,omitempty" csv:"xdate"`
	Xday             *string `json:"xday,omitempty" csv:"xday"`
	Xmonth           *string `json:"xmonth,omitempty" csv:"xmonth"`
	Xyear            *string `json:"xyear,omitempty" csv:"xyear"`
	Yield            *string `json:"yield,omitempty" csv:"yield"`
}

var quoteSchema = []field[Quote]{
	{key: "adp_100", set: func(q *Quote) **string { return &q.Adp100 }},
	{key: "adp_200", set: func(q *Quote) **string { return &q.Adp200 }},
	{key: "adp_50", set: func(q *Quote) **string { return &q.Adp50 }},
	{key: "adv_21", set: func(q *Quote) **string { return &q.Adv21 }},
	{key: "adv_30", set: func(q *Quote) **string { return &q.Adv30 }},
	{key: "adv_90", set: func(q *Quote) **string { return &q.Adv90 }},
	{key: "ask", set: func(q *Quote) **string { return &q.Ask }},
	{key: "ask_time", set: func(q *Quote) **string { return &q.AskTime }},
	{key: "asksz", set: func(q *Quote) **string { return &q.AskSize }},
	{key: "basis", set: func(q *Quote) **string { return &q.Basis }},
	{key: "beta", set: func(q *Quote) **string { return &q.Beta }},
	{key: "bid", set: func(q *Quote) **string { return &q.Bid }},
	{key: "bid_time", set: func(q *Quote) **string { return &q.BidTime }},
	{key: "bidsz", set: func(q *Quote) **string { return &q.BidSize }},
	{key: "bidtick", set: func(q *Quote) **string { return &q.Bidtick }},
	{key: "chg", set: func(q *Quote) **string { return &q.Change }},
	{key: "chg_sign", set: func(q *Quote) **string { return &q.ChgSign }},
	{key: "chg_t", set: func(q *Quote) **string { return &q.ChgT }},
	{key: "cl", set: func(q *Quote) **string { return &q.Close }},
	{key: "contract_size", set: func(q *Quote) **string { return &q.ContractSize }},
	{key: "cusip", set: func(q *Quote) **string { return &q.CUSIP }},
	{key: "date", set: func(q *Quote) **string { return &q.Date }},
	{key: "datetime", set: func(q *Quote) **string { return &q.DateTime }},
	{key: "days_to_expiration", set: func(q *Quote) **string { return &q.DaysToExpiration }},
	{key: "div", set: func(q *Quote) **string { return &q.Dividend }},
	{key: "divexdate", set: func(q *Quote) **string { return &q.Divexdate }},
	{key: "divfreq", set: func(q *Quote) **string { return &q.Divfreq }},
	{key: "divpaydt", set: func(q *Quote) **string { return &q.Divpaydt }},
	{key: "dollar_value", set: func(q *Quote) **string { return &q.DollarValue }},
	{key: "eps", set: func(q *Quote) **string { return &q.EPS }},
	{key: "exch", set: func(q *Quote) **string { return &q.Exchange }},
	{key: "exch_desc", set: func(q *Quote) **string { return &q.ExchDesc }},
	{key: "hi", set: func(q *Quote) **string { return &q.High }},
	{key: "iad", set: func(q *Quote) **string { return &q.IAD }},
	{key: "idelta", set: func(q *Quote) **string { return &q.Idelta }},
	{key: "igamma", set: func(q *Quote) **string { return &q.Igamma }},
	{key: "imp_volatility", set: func(q *Quote) **string { return &q.ImpVolatility }},
	{key: "incr_vl", set: func(q *Quote) **string { return &q.IncrVl }},
	{key: "irho", set: func(q *Quote) **string { return &q.Irho }},
	{key: "issue_desc", set: func(q *Quote) **string { return &q.IssueDesc }},
	{key: "itheta", set: func(q *Quote) **string { return &q.Itheta }},
	{key: "ivega", set: func(q *Quote) **string { return &q.Ivega }},
	{key: "last", set: func(q *Quote) **string { return &q.Last }},
	{key: "lo", set: func(q *Quote) **string { return &q.Low }},
	{key: "name", set: func(q *Quote) **string { return &q.Name }},
	{key: "op_delivery", set: func(q *Quote) **string { return &q.OpDelivery }},
	{key: "op_flag", set: func(q *Quote) **string { return &q.OpFlag }},
	{key: "op_style", set: func(q *Quote) **string { return &q.OpStyle }},
	{key: "op_subclass", set: func(q *Quote) **string { return &q.OpSubclass }},
	{key: "openinterest", set: func(q *Quote) **string { return &q.OpenInterest }},
	{key: "opn", set: func(q *Quote) **string { return &q.Open }},
	{key: "opt_val", set: func(q *Quote) **string { return &q.OptVal }},
	{key: "pchg", set: func(q *Quote) **string { return &q.PercentChange }},
	{key: "pchg_sign", set: func(q *Quote) **string { return &q.PchgSign }},
	{key: "pcls", set: func(q *Quote) **string { return &q.PrevClose }},
	{key: "pe", set: func(q *Quote) **string { return &q.PE }},
	{key: "phi", set: func(q *Quote) **string { return &q.Phi }},
	{key: "plo", set: func(q *Quote) **string { return &q.Plo }},
	{key: "popn", set: func(q *Quote) **string { return &q.Popn }},
	{key: "pr_adp_100", set: func(q *Quote) **string { return &q.PrAdp100 }},
	{key: "pr_adp_200", set: func(q *Quote) **string { return &q.PrAdp200 }},
	{key: "pr_adp_50", set: func(q *Quote) **string { return &q.PrAdp50 }},
	{key: "pr_date", set: func(q *Quote) **string { return &q.PrDate }},
	{key: "pr_openinterest", set: func(q *Quote) **string { return &q.PrOpeninterest }},
	{key: "prbook", set: func(q *Quote) **string { return &q.PriceBook }},
	{key: "prchg", set: func(q *Quote) **string { return &q.PriorChange }},
	{key: "prem_mult", set: func(q *Quote) **string { return &q.PremMult }},
	{key: "put_call", set: func(q *Quote) **string { return &q.PutCall }},
	{key: "pvol", set: func(q *Quote) **string { return &q.PrevVolume }},
	{key: "qcond", set: func(q *Quote) **string { return &q.Qcond }},
	{key: "rootsymbol", set: func(q *Quote) **string { return &q.RootSymbol }},
	{key: "secclass", set: func(q *Quote) **string { return &q.SecurityClass }},
	{key: "sesn", set: func(q *Quote) **string { return &q.Sesn }},
	{key: "sho", set: func(q *Quote) **string { return &q.Sho }},
	{key: "strikeprice", set: func(q *Quote) **string { return &q.StrikePrice }},
	{key: "symbol", set: func(q *Quote) **string { return &q.Symbol }},
	{key: "tcond", set: func(q *Quote) **string { return &q.Tcond }},
	{key: "timestamp", set: func(q *Quote) **string { return &q.Timestamp }},
	{key: "tr_num", set: func(q *Quote) **string { return &q.TradeCount }},
	{key: "tradetick", set: func(q *Quote) **string { return &q.Tradetick }},
	{key: "trend", set: func(q *Quote) **string { return &q.Trend }},
	{key: "under_cusip", set: func(q *Quote) **string { return &q.UnderCUSIP }},
	{key: "undersymbol", set: func(q *Quote) **string { return &q.UnderSymbol }},
	{key: "vl", set: func(q *Quote) **string { return &q.Volume }},
	{key: "volatility12", set: func(q *Quote) **string { return &q.Volatility12 }},
	{key: "vwap", set: func(q *Quote) **string { return &q.VWAP }},
	{key: "wk52hi", set: func(q *Quote) **string { return &q.Week52High }},
	{key: "wk52hidate", set: func(q *Quote) **string { return &q.Week52HighDate }},
	{key: "wk52lo", set: func(q *Quote) **string { return &q.Week52Low }},
	{key: "wk52lodate", set: func(q *Quote) **string { return &q.Week52LowDate }},
	{key: "xdate", set: func(q *Quote) **string { return &q.Xdate }},
	{key: "xday", set: func(q *Quote) **string { return &q.Xday }},
	{key: "xmonth", set: func(q *Quote) **string { return &q.Xmonth }},
	{key: "xyear", set: func(q *Quote) **string { return &q.Xyear }},
	{key: "yield", set: func(q *Quote) **string { return &q.Yield }},
}

// ParseQuotes maps response.quotes.quote.
func ParseQuotes(p *Payload) ([]*Quote, error) {
	srcs, err := items(p, "quotes", "quote")
	if err != nil {
		return nil, fmt.Errorf("ParseQuotes: %w", err)
	}

	return parseAll(srcs, quoteSchema), nil
}

// ParseToplist maps the quotes of a market/toplists response.
func ParseToplist(p *Payload) ([]*Quote, error) {
	srcs, err := items(p, "quotes", "quote")
	if err != nil {
		return nil, fmt.Errorf("ParseToplist: %w", err)
	}

	return parseAll(srcs, quoteSchema), nil
}
