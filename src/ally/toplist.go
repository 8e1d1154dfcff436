package ally

import "fmt"

type ToplistType string

const (
	ToplistTopLosers         ToplistType = "toplosers"
	ToplistTopPercentLosers  ToplistType = "toppctlosers"
	ToplistTopVolume         ToplistType = "topvolume"
	ToplistTopActive         ToplistType = "topactive"
	ToplistTopGainers        ToplistType = "topgainers"
	ToplistTopPercentGainers ToplistType = "toppctgainers"
)

func (t ToplistType) Validate() error {
	switch t {
	case ToplistTopLosers, ToplistTopPercentLosers, ToplistTopVolume, ToplistTopActive, ToplistTopGainers, ToplistTopPercentGainers:
		return nil
	default:
		return fmt.Errorf("ToplistType: unknown list type: %s", string(t))
	}
}

// Exchange codes accepted by market/toplists.
type Exchange string

const (
	ExchangeAMEX           Exchange = "A"
	ExchangeNYSE           Exchange = "N"
	ExchangeNASDAQ         Exchange = "Q"
	ExchangeBulletinBoard  Exchange = "U"
	ExchangeNASDAQOTCOther Exchange = "V"
)

func (e Exchange) Validate() error {
	switch e {
	case ExchangeAMEX, ExchangeNYSE, ExchangeNASDAQ, ExchangeBulletinBoard, ExchangeNASDAQOTCOther:
		return nil
	default:
		return fmt.Errorf("Exchange: unknown exchange: %s", string(e))
	}
}
