package orders

import "fmt"

type PositionEffect int

const (
	PositionEffectOpen PositionEffect = iota + 1
	PositionEffectClose
)

var positionEffectNames = map[PositionEffect]string{
	PositionEffectOpen:  "open",
	PositionEffectClose: "close",
}

var positionEffectCodes = map[PositionEffect]string{
	PositionEffectOpen:  "O",
	PositionEffectClose: "C",
}

func (p PositionEffect) IsValid() bool {
	_, ok := positionEffectCodes[p]
	return ok
}

func (p PositionEffect) String() string {
	if name, ok := positionEffectNames[p]; ok {
		return name
	}

	return fmt.Sprintf("PositionEffect(%d)", int(p))
}

func (p PositionEffect) Code() string {
	return positionEffectCodes[p]
}

func ParsePositionEffect(s string) (PositionEffect, error) {
	if v, ok := lookup(s, positionEffectNames, positionEffectCodes); ok {
		return v, nil
	}

	return 0, fmt.Errorf("ParsePositionEffect: unknown position effect: %s", s)
}
