package orders

import "fmt"

type TimeInForce int

const (
	TimeInForceDay TimeInForce = iota + 1
	TimeInForceGoodTillCancelled
	TimeInForceMarketOnClose
)

var timeInForceNames = map[TimeInForce]string{
	TimeInForceDay:               "day",
	TimeInForceGoodTillCancelled: "gtc",
	TimeInForceMarketOnClose:     "moc",
}

var timeInForceCodes = map[TimeInForce]string{
	TimeInForceDay:               "0",
	TimeInForceGoodTillCancelled: "1",
	TimeInForceMarketOnClose:     "7",
}

func (t TimeInForce) IsValid() bool {
	_, ok := timeInForceCodes[t]
	return ok
}

func (t TimeInForce) String() string {
	if name, ok := timeInForceNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TimeInForce(%d)", int(t))
}

func (t TimeInForce) Code() string {
	return timeInForceCodes[t]
}

func ParseTimeInForce(s string) (TimeInForce, error) {
	if v, ok := lookup(s, timeInForceNames, timeInForceCodes); ok {
		return v, nil
	}

	return 0, fmt.Errorf("ParseTimeInForce: unknown time in force: %s", s)
}
