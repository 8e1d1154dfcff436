package responses

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found in response")

type AccountBalance struct {
	Account      *string `json:"account,omitempty" csv:"account"`
	AccountName  *string `json:"accountname,omitempty" csv:"accountname"`
	AccountValue *string `json:"accountvalue,omitempty" csv:"accountvalue"`
	FedCall      *string `json:"fedcall,omitempty" csv:"fedcall"`
	HouseCall    *string `json:"housecall,omitempty" csv:"housecall"`

	// buyingpower
	CashAvailableForWithdrawal *string `json:"cashavailableforwithdrawal,omitempty" csv:"cashavailableforwithdrawal"`
	DayTradingBuyingPower      *string `json:"daytrading,omitempty" csv:"daytrading"`
	EquityPercentage           *string `json:"equitypercentage,omitempty" csv:"equitypercentage"`
	OptionsBuyingPower         *string `json:"options_buyingpower,omitempty" csv:"options_buyingpower"`
	StockBuyingPower           *string `json:"stock_buyingpower,omitempty" csv:"stock_buyingpower"`

	// money
	AccruedInterest   *string `json:"accruedinterest,omitempty" csv:"accruedinterest"`
	Cash              *string `json:"cash,omitempty" csv:"cash"`
	CashAvailable     *string `json:"cashavailable,omitempty" csv:"cashavailable"`
	MarginBalance     *string `json:"marginbalance,omitempty" csv:"marginbalance"`
	MoneyMarketFund   *string `json:"mmf,omitempty" csv:"mmf"`
	MoneyTotal        *string `json:"money_total,omitempty" csv:"money_total"`
	UnclearedDeposits *string `json:"uncleareddeposits,omitempty" csv:"uncleareddeposits"`
	UnsettledFunds    *string `json:"unsettledfunds,omitempty" csv:"unsettledfunds"`

	// securities
	LongOptions     *string `json:"longoptions,omitempty" csv:"longoptions"`
	LongStocks      *string `json:"longstocks,omitempty" csv:"longstocks"`
	ShortOptions    *string `json:"shortoptions,omitempty" csv:"shortoptions"`
	ShortStocks     *string `json:"shortstocks,omitempty" csv:"shortstocks"`
	SecuritiesTotal *string `json:"securities_total,omitempty" csv:"securities_total"`
}

var accountBalanceSchema = []field[AccountBalance]{
	{key: "account", set: func(b *AccountBalance) **string { return &b.Account }},
	{key: "accountname", set: func(b *AccountBalance) **string { return &b.AccountName }},
	{key: "accountvalue", set: func(b *AccountBalance) **string { return &b.AccountValue }},
	{key: "fedcall", set: func(b *AccountBalance) **string { return &b.FedCall }},
	{key: "housecall", set: func(b *AccountBalance) **string { return &b.HouseCall }},

	{group: "buyingpower", key: "cashavailableforwithdrawal", set: func(b *AccountBalance) **string { return &b.CashAvailableForWithdrawal }},
	{group: "buyingpower", key: "daytrading", set: func(b *AccountBalance) **string { return &b.DayTradingBuyingPower }},
	{group: "buyingpower", key: "equitypercentage", set: func(b *AccountBalance) **string { return &b.EquityPercentage }},
	{group: "buyingpower", key: "options", set: func(b *AccountBalance) **string { return &b.OptionsBuyingPower }},
	{group: "buyingpower", key: "stock", set: func(b *AccountBalance) **string { return &b.StockBuyingPower }},

	{group: "money", key: "accruedinterest", set: func(b *AccountBalance) **string { return &b.AccruedInterest }},
	{group: "money", key: "cash", set: func(b *AccountBalance) **string { return &b.Cash }},
	{group: "money", key: "cashavailable", set: func(b *AccountBalance) **string { return &b.CashAvailable }},
	{group: "money", key: "marginbalance", set: func(b *AccountBalance) **string { return &b.MarginBalance }},
	{group: "money", key: "mmf", set: func(b *AccountBalance) **string { return &b.MoneyMarketFund }},
	{group: "money", key: "total", set: func(b *AccountBalance) **string { return &b.MoneyTotal }},
	{group: "money", key: "uncleareddeposits", set: func(b *AccountBalance) **string { return &b.UnclearedDeposits }},
	{group: "money", key: "unsettledfunds", set: func(b *AccountBalance) **string { return &b.UnsettledFunds }},

	{group: "securities", key: "longoptions", set: func(b *AccountBalance) **string { return &b.LongOptions }},
	{group: "securities", key: "longstocks", set: func(b *AccountBalance) **string { return &b.LongStocks }},
	{group: "securities", key: "shortoptions", set: func(b *AccountBalance) **string { return &b.ShortOptions }},
	{group: "securities", key: "shortstocks", set: func(b *AccountBalance) **string { return &b.ShortStocks }},
	{group: "securities", key: "total", set: func(b *AccountBalance) **string { return &b.SecuritiesTotal }},
}

// ParseAccountBalance maps the single response.accountbalance of accounts/{id}/balances.
func ParseAccountBalance(p *Payload) (*AccountBalance, error) {
	srcs, err := items(p, "accountbalance")
	if err != nil {
		return nil, fmt.Errorf("ParseAccountBalance: %w", err)
	}

	if len(srcs) == 0 {
		return nil, fmt.Errorf("ParseAccountBalance: accountbalance: %w", ErrNotFound)
	}

	b := new(AccountBalance)
	populate(srcs[0], accountBalanceSchema, b)

	return b, nil
}

// ParseAccountsBalances maps every response.accountbalance of accounts/balances, keyed
// by account number. Entries without an account number are dropped.
func ParseAccountsBalances(p *Payload) (map[string]*AccountBalance, error) {
	srcs, err := items(p, "accountbalance")
	if err != nil {
		return nil, fmt.Errorf("ParseAccountsBalances: %w", err)
	}

	out := make(map[string]*AccountBalance, len(srcs))
	for _, b := range parseAll(srcs, accountBalanceSchema) {
		if b.Account == nil {
			continue
		}
		out[*b.Account] = b
	}

	return out, nil
}
