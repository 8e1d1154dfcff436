package orders

import "fmt"

type OptionClass int

const (
	OptionClassCall OptionClass = iota + 1
	OptionClassPut
)

var optionClassNames = map[OptionClass]string{
	OptionClassCall: "call",
	OptionClassPut:  "put",
}

// FIX CFI codes.
var optionClassCodes = map[OptionClass]string{
	OptionClassCall: "OC",
	OptionClassPut:  "OP",
}

func (c OptionClass) IsValid() bool {
	_, ok := optionClassCodes[c]
	return ok
}

func (c OptionClass) String() string {
	if name, ok := optionClassNames[c]; ok {
		return name
	}

	return fmt.Sprintf("OptionClass(%d)", int(c))
}

func (c OptionClass) Code() string {
	return optionClassCodes[c]
}

// OCCLetter is the put/call letter used in OCC option symbols.
func (c OptionClass) OCCLetter() string {
	switch c {
	case OptionClassCall:
		return "C"
	case OptionClassPut:
		return "P"
	default:
		return ""
	}
}

func ParseOptionClass(s string) (OptionClass, error) {
	if v, ok := lookup(s, optionClassNames, optionClassCodes); ok {
		return v, nil
	}

	return 0, fmt.Errorf("ParseOptionClass: unknown option class: %s", s)
}
