package orders

import (
	"fmt"
	"strconv"

	"github.com/jiaming2012/ally-invest/src/fixml"
)

const (
	TagNewOrder             = "Order"
	TagCancelRequest        = "OrdCxlReq"
	TagCancelReplaceRequest = "OrdCxlRplcReq"
)

// RootTag picks the element name for a single-leg order.
func (o *Order) RootTag(cancel bool) string {
	switch {
	case o.OriginalOrderID == "":
		return TagNewOrder
	case cancel:
		return TagCancelRequest
	default:
		return TagCancelReplaceRequest
	}
}

// ToFIXML validates the order and renders its order element. A cancel only carries
// what identifies the order being cancelled.
func (o *Order) ToFIXML(cancel bool) (*fixml.Node, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("Order.ToFIXML: %w", err)
	}

	tag := o.RootTag(cancel)
	cancelOnly := tag == TagCancelRequest

	el := fixml.NewNode(tag)
	el.SetAttr("Acct", o.Account)

	if !cancelOnly {
		el.SetAttr("Typ", o.Type.Code())
	}

	el.SetAttr("Side", o.Side.Code())

	if o.OriginalOrderID != "" {
		el.SetAttr("OrigID", o.OriginalOrderID)
	}

	if !cancelOnly {
		if o.Side == SideBuy && o.ShortCover {
			el.SetAttr("AcctTyp", AccountTypeShortCover.Code())
		}

		if o.Type != OrderTypeMarket {
			el.SetAttr("TmInForce", o.TimeInForce.Code())
			if o.Type != OrderTypeStop {
				el.SetAttr("Px", formatPrice(o.Price))
			}
		}

		if o.Type.HasStopPrice() && o.StopPrice != nil {
			el.SetAttr("StopPx", formatPrice(o.StopPrice))
		}

		if o.IsOption() {
			el.SetAttr("PosEfct", o.PositionEffect.Code())
		}
	}

	el.AddChild(o.instrument())
	el.AddChild(fixml.NewNode("OrdQty").SetAttr("Qty", strconv.Itoa(o.Quantity)))

	return el, nil
}

func (o *Order) instrument() *fixml.Node {
	instrmt := fixml.NewNode("Instrmt")
	instrmt.SetAttr("SecTyp", o.SecurityType.Code())
	instrmt.SetAttr("Sym", o.Symbol)

	if o.IsOption() {
		instrmt.SetAttr("CFI", o.OptionClass.Code())
		instrmt.SetAttr("StrkPx", formatPrice(o.StrikePrice))
		instrmt.SetAttr("MMY", o.ExpirationTag)
		instrmt.SetAttr("MatDt", FormatMaturity(o.Maturity))
	}

	return instrmt
}

// Build renders a complete FIXML document for a single-leg order.
func Build(o *Order, cancel bool) (*fixml.Node, error) {
	el, err := o.ToFIXML(cancel)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return fixml.NewDocument(el), nil
}
