package orders

import (
	"fmt"
	"strings"
)

type OrderType int

const (
	OrderTypeMarket OrderType = iota + 1
	OrderTypeLimit
	OrderTypeStop
	OrderTypeStopLimit
)

var orderTypeNames = map[OrderType]string{
	OrderTypeMarket:    "market",
	OrderTypeLimit:     "limit",
	OrderTypeStop:      "stop",
	OrderTypeStopLimit: "stop_limit",
}

var orderTypeCodes = map[OrderType]string{
	OrderTypeMarket:    "1",
	OrderTypeLimit:     "2",
	OrderTypeStop:      "3",
	OrderTypeStopLimit: "4",
}

func (t OrderType) IsValid() bool {
	_, ok := orderTypeCodes[t]
	return ok
}

func (t OrderType) String() string {
	if name, ok := orderTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("OrderType(%d)", int(t))
}

// Code is the FIX Typ value.
func (t OrderType) Code() string {
	return orderTypeCodes[t]
}

// HasLimitPrice reports whether orders of this type carry a limit price.
func (t OrderType) HasLimitPrice() bool {
	return t == OrderTypeLimit || t == OrderTypeStopLimit
}

func (t OrderType) HasStopPrice() bool {
	return t == OrderTypeStop || t == OrderTypeStopLimit
}

func ParseOrderType(s string) (OrderType, error) {
	if v, ok := lookup(s, orderTypeNames, orderTypeCodes); ok {
		return v, nil
	}

	return 0, fmt.Errorf("ParseOrderType: unknown order type: %s", s)
}

// lookup matches s against the human names and the wire codes of an enumeration.
func lookup[T comparable](s string, names, codes map[T]string) (T, bool) {
	s = strings.TrimSpace(s)
	for v, name := range names {
		if strings.EqualFold(name, s) {
			return v, true
		}
	}

	for v, code := range codes {
		if code == s {
			return v, true
		}
	}

	var zero T
	return zero, false
}
