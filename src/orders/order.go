package orders

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Ally expects option maturities as midnight Eastern, e.g. 2014-01-18T00:00:00.000-05:00.
const maturitySuffix = "T00:00:00.000-05:00"

// Order is a single-leg stock or option order, or one leg of a multi-leg order.
type Order struct {
	Account         string
	Symbol          string
	Quantity        int
	SecurityType    SecurityType
	Side            Side
	Type            OrderType
	TimeInForce     TimeInForce
	Price           *decimal.Decimal
	StopPrice       *decimal.Decimal
	PositionEffect  PositionEffect
	StrikePrice     *decimal.Decimal
	OptionClass     OptionClass
	Maturity        time.Time
	ExpirationTag   string
	OriginalOrderID string
	ShortCover      bool
}

func (o *Order) IsOption() bool {
	return o.SecurityType == SecurityTypeOption
}

// Validate checks every required-field rule for the order's kind and reports all
// violations at once.
func (o *Order) Validate() error {
	return o.validate().errOrNil()
}

func (o *Order) validate() *ValidationError {
	verr := &ValidationError{}

	if o == nil {
		verr.add("order is missing")
		return verr
	}

	if o.Account == "" {
		verr.add("account is required")
	}

	if o.Symbol == "" {
		verr.add("symbol is required")
	}

	if o.Quantity <= 0 {
		verr.add("quantity must be a positive integer, got %d", o.Quantity)
	}

	if !o.Type.IsValid() {
		verr.add("order type is missing or invalid: %s", o.Type)
	}

	if !o.Side.IsValid() {
		verr.add("side is missing or invalid: %s", o.Side)
	}

	if !o.SecurityType.IsValid() {
		verr.add("security type is missing or invalid: %s", o.SecurityType)
	}

	if o.Type.IsValid() && o.Type != OrderTypeMarket && !o.TimeInForce.IsValid() {
		verr.add("time in force is missing or invalid for %s orders: %s", o.Type, o.TimeInForce)
	}

	if o.Type.HasLimitPrice() {
		if o.Price == nil {
			verr.add("price is required for %s orders", o.Type)
		} else if !o.Price.IsPositive() {
			verr.add("price must be greater than 0, got %s", o.Price)
		}
	}

	if o.StopPrice != nil && !o.StopPrice.IsPositive() {
		verr.add("stop price must be greater than 0, got %s", o.StopPrice)
	}

	if o.IsOption() {
		o.validateOption(verr)
	}

	return verr
}

func (o *Order) validateOption(verr *ValidationError) {
	if !o.PositionEffect.IsValid() {
		verr.add("position effect is missing or invalid: %s", o.PositionEffect)
	}

	if o.StrikePrice == nil {
		verr.add("strike price is required for options")
	} else if !o.StrikePrice.IsPositive() {
		verr.add("strike price must be greater than 0, got %s", o.StrikePrice)
	}

	if !o.OptionClass.IsValid() {
		verr.add("option class is missing or invalid: %s", o.OptionClass)
	}

	if o.Maturity.IsZero() {
		verr.add("maturity date is required for options")
	}

	if o.ExpirationTag == "" {
		verr.add("expiration tag is required for options")
	}
}

// FormatMaturity renders a maturity date in canonical FIXML form.
func FormatMaturity(t time.Time) string {
	return t.Format(time.DateOnly) + maturitySuffix
}

func formatPrice(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}

	return d.String()
}

func (o *Order) String() string {
	return fmt.Sprintf("Order(Acct: %s, Sym: %s, Qty: %d, SecTyp: %s, Side: %s, Typ: %s, Px: %s)",
		o.Account, o.Symbol, o.Quantity, o.SecurityType, o.Side, o.Type, formatPrice(o.Price))
}
