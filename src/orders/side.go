package orders

import "fmt"

type Side int

const (
	SideBuy Side = iota + 1
	SideSell
	SideSellShort
)

var sideNames = map[Side]string{
	SideBuy:       "buy",
	SideSell:      "sell",
	SideSellShort: "sell_short",
}

var sideCodes = map[Side]string{
	SideBuy:       "1",
	SideSell:      "2",
	SideSellShort: "5",
}

func (s Side) IsValid() bool {
	_, ok := sideCodes[s]
	return ok
}

func (s Side) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Side(%d)", int(s))
}

func (s Side) Code() string {
	return sideCodes[s]
}

func ParseSide(s string) (Side, error) {
	if v, ok := lookup(s, sideNames, sideCodes); ok {
		return v, nil
	}

	return 0, fmt.Errorf("ParseSide: unknown side: %s", s)
}
