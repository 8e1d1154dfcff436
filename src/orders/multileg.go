package orders

import (
	"fmt"
	"strconv"

	"github.com/jiaming2012/ally-invest/src/fixml"
)

const (
	TagMultilegNew     = "NewOrdMleg"
	TagMultilegCancel  = TagCancelRequest
	TagMultilegReplace = "MlegOrdCxlRplc"
)

// MultilegRootTag applies the new / cancel / replace rule using the shared prior id.
func MultilegRootTag(originalOrderID string, cancel bool) string {
	switch {
	case originalOrderID == "":
		return TagMultilegNew
	case cancel:
		return TagMultilegCancel
	default:
		return TagMultilegReplace
	}
}

// ValidateMultileg checks every leg on its own and every shared field against leg 0.
func ValidateMultileg(legs []*Order) error {
	verr := &ValidationError{}

	if len(legs) == 0 {
		verr.add("multi-leg order needs at least one leg")
		return verr
	}

	for i, leg := range legs {
		if leg == nil {
			verr.add("leg %d: missing", i)
			continue
		}

		verr.merge(fmt.Sprintf("leg %d: ", i), leg.validate())
	}

	first := legs[0]
	if first == nil {
		return verr.errOrNil()
	}

	for i, leg := range legs[1:] {
		if leg == nil {
			continue
		}

		n := i + 1
		if leg.Account != first.Account {
			verr.add("leg %d: account %q differs from leg 0 %q", n, leg.Account, first.Account)
		}

		if leg.Symbol != first.Symbol {
			verr.add("leg %d: symbol %q differs from leg 0 %q", n, leg.Symbol, first.Symbol)
		}

		if leg.Type != first.Type {
			verr.add("leg %d: order type %s differs from leg 0 %s", n, leg.Type, first.Type)
		}

		if leg.TimeInForce != first.TimeInForce {
			verr.add("leg %d: time in force %s differs from leg 0 %s", n, leg.TimeInForce, first.TimeInForce)
		}

		if formatPrice(leg.Price) != formatPrice(first.Price) {
			verr.add("leg %d: price %s differs from leg 0 %s", n, formatPrice(leg.Price), formatPrice(first.Price))
		}

		if leg.OriginalOrderID != first.OriginalOrderID {
			verr.add("leg %d: original order id %q differs from leg 0 %q", n, leg.OriginalOrderID, first.OriginalOrderID)
		}
	}

	return verr.errOrNil()
}

// BuildMultileg validates the legs and renders a complete multi-leg FIXML document.
// The legs are only read.
func BuildMultileg(legs []*Order, cancel bool) (*fixml.Node, error) {
	if err := ValidateMultileg(legs); err != nil {
		return nil, fmt.Errorf("BuildMultileg: %w", err)
	}

	shared := legs[0]
	tag := MultilegRootTag(shared.OriginalOrderID, cancel)

	el := fixml.NewNode(tag)
	el.SetAttr("Acct", shared.Account)

	if tag == TagMultilegCancel {
		el.SetAttr("OrigID", shared.OriginalOrderID)
		el.AddChild(fixml.NewNode("Instrmt").
			SetAttr("SecTyp", SecurityTypeMultileg.Code()).
			SetAttr("Sym", shared.Symbol))

		return fixml.NewDocument(el), nil
	}

	if tag == TagMultilegReplace {
		el.SetAttr("OrigClOrdID", shared.OriginalOrderID)
	}

	el.SetAttr("OrdTyp", shared.Type.Code())

	if shared.Type != OrderTypeMarket {
		el.SetAttr("TmInForce", shared.TimeInForce.Code())
	}

	if shared.Type.HasLimitPrice() {
		el.SetAttr("Px", formatPrice(shared.Price))
	}

	for _, leg := range legs {
		el.AddChild(leg.multilegOrd())
	}

	return fixml.NewDocument(el), nil
}

func (o *Order) multilegOrd() *fixml.Node {
	ord := fixml.NewNode("Ord")
	ord.SetAttr("OrdQty", strconv.Itoa(o.Quantity))

	if o.IsOption() {
		ord.SetAttr("PosEfct", o.PositionEffect.Code())
	}

	leg := fixml.NewNode("Leg")
	leg.SetAttr("Side", o.Side.Code())

	if o.IsOption() {
		leg.SetAttr("Strk", formatPrice(o.StrikePrice))
		leg.SetAttr("Mat", FormatMaturity(o.Maturity))
		leg.SetAttr("MMY", o.ExpirationTag)
	}

	leg.SetAttr("SecTyp", o.SecurityType.Code())

	if o.IsOption() {
		leg.SetAttr("CFI", o.OptionClass.Code())
	}

	leg.SetAttr("Sym", o.Symbol)
	ord.AddChild(leg)

	return ord
}
