package responses

import "fmt"

// PostOrderResult is the answer to an order submission or preview.
type PostOrderResult struct {
	ClientOrderID     *string `json:"clientorderid,omitempty"`
	OrderStatus       *string `json:"orderstatus,omitempty"`
	Principal         *string `json:"principal,omitempty"`
	Commission        *string `json:"commission,omitempty"`
	EstCommission     *string `json:"estcommission,omitempty"`
	MarginRequirement *string `json:"marginrequirement,omitempty"`
	NetAmount         *string `json:"netamt,omitempty"`
	SECFee            *string `json:"secfee,omitempty"`
	WarningCode       *string `json:"warningcode,omitempty"`
	WarningText       *string `json:"warningtext,omitempty"`
}

var postOrderSchema = []field[PostOrderResult]{
	{key: "clientorderid", set: func(r *PostOrderResult) **string { return &r.ClientOrderID }},
	{key: "orderstatus", set: func(r *PostOrderResult) **string { return &r.OrderStatus }},
	{key: "principal", set: func(r *PostOrderResult) **string { return &r.Principal }},
	{key: "commission", set: func(r *PostOrderResult) **string { return &r.Commission }},
	{key: "estcommission", set: func(r *PostOrderResult) **string { return &r.EstCommission }},
	{key: "marginrequirement", set: func(r *PostOrderResult) **string { return &r.MarginRequirement }},
	{key: "netamt", set: func(r *PostOrderResult) **string { return &r.NetAmount }},
	{key: "secfee", set: func(r *PostOrderResult) **string { return &r.SECFee }},
	{group: "warning", key: "warningcode", set: func(r *PostOrderResult) **string { return &r.WarningCode }},
	{group: "warning", key: "warningtext", set: func(r *PostOrderResult) **string { return &r.WarningText }},
}

func ParsePostOrder(p *Payload) (*PostOrderResult, error) {
	srcs, err := items(p)
	if err != nil {
		return nil, fmt.Errorf("ParsePostOrder: %w", err)
	}

	r := new(PostOrderResult)
	populate(srcs[0], postOrderSchema, r)

	return r, nil
}
