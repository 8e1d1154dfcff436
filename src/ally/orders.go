package ally

import (
	"context"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/ally-invest/src/fixml"
	"github.com/jiaming2012/ally-invest/src/orders"
	"github.com/jiaming2012/ally-invest/src/responses"
)

func orderHeader() http.Header {
	header := http.Header{}
	header.Set("Content-Type", "application/xml")
	header["TKI_OVERRIDE"] = []string{"true"}

	return header
}

func (c *Client) FetchOrders(ctx context.Context, id string) ([]*responses.Order, error) {
	id, err := c.account(id)
	if err != nil {
		return nil, fmt.Errorf("FetchOrders: %w", err)
	}

	p, err := c.transport.Get(ctx, c.urls.AccountOrders(id))
	if err != nil {
		return nil, fmt.Errorf("FetchOrders: %w", err)
	}

	return responses.ParseOrders(p)
}

// PlaceOrder validates and submits a single-leg order. With an original order id set
// the order replaces, or when cancel is true cancels, that order. A validation
// failure is returned before anything is sent.
func (c *Client) PlaceOrder(ctx context.Context, o *orders.Order, cancel bool) (*responses.PostOrderResult, error) {
	doc, err := orders.Build(o, cancel)
	if err != nil {
		return nil, fmt.Errorf("PlaceOrder: %w", err)
	}

	return c.SubmitFIXML(ctx, o.Account, doc, false)
}

// PreviewOrder asks for the commission and margin estimate of an order without
// placing it.
func (c *Client) PreviewOrder(ctx context.Context, o *orders.Order) (*responses.PostOrderResult, error) {
	doc, err := orders.Build(o, false)
	if err != nil {
		return nil, fmt.Errorf("PreviewOrder: %w", err)
	}

	return c.SubmitFIXML(ctx, o.Account, doc, true)
}

func (c *Client) PlaceMultilegOrder(ctx context.Context, legs []*orders.Order, cancel bool) (*responses.PostOrderResult, error) {
	doc, err := orders.BuildMultileg(legs, cancel)
	if err != nil {
		return nil, fmt.Errorf("PlaceMultilegOrder: %w", err)
	}

	return c.SubmitFIXML(ctx, legs[0].Account, doc, false)
}

func (c *Client) PreviewMultilegOrder(ctx context.Context, legs []*orders.Order) (*responses.PostOrderResult, error) {
	doc, err := orders.BuildMultileg(legs, false)
	if err != nil {
		return nil, fmt.Errorf("PreviewMultilegOrder: %w", err)
	}

	return c.SubmitFIXML(ctx, legs[0].Account, doc, true)
}

// SubmitFIXML posts an already built FIXML document to the account's order or preview
// endpoint.
func (c *Client) SubmitFIXML(ctx context.Context, accountID string, doc *fixml.Node, preview bool) (*responses.PostOrderResult, error) {
	id, err := c.account(accountID)
	if err != nil {
		return nil, fmt.Errorf("SubmitFIXML: %w", err)
	}

	body, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("SubmitFIXML: failed to encode document: %w", err)
	}

	endpoint := c.urls.AccountOrders(id)
	if preview {
		endpoint = c.urls.AccountOrdersPreview(id)
	}

	log.WithContext(ctx).WithField("preview", preview).Debugf("submitting order: %s", body)

	p, err := c.transport.Post(ctx, endpoint, body, orderHeader())
	if err != nil {
		return nil, fmt.Errorf("SubmitFIXML: %w", err)
	}

	return responses.ParsePostOrder(p)
}
