package orders

import "fmt"

type SecurityType int

const (
	SecurityTypeCommonStock SecurityType = iota + 1
	SecurityTypeOption
	SecurityTypeMultileg
)

var securityTypeNames = map[SecurityType]string{
	SecurityTypeCommonStock: "stock",
	SecurityTypeOption:      "option",
	SecurityTypeMultileg:    "multileg",
}

var securityTypeCodes = map[SecurityType]string{
	SecurityTypeCommonStock: "CS",
	SecurityTypeOption:      "OPT",
	SecurityTypeMultileg:    "MLEG",
}

func (t SecurityType) IsValid() bool {
	_, ok := securityTypeCodes[t]
	return ok
}

func (t SecurityType) String() string {
	if name, ok := securityTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("SecurityType(%d)", int(t))
}

// Code is the FIX SecTyp value.
func (t SecurityType) Code() string {
	return securityTypeCodes[t]
}

func ParseSecurityType(s string) (SecurityType, error) {
	if v, ok := lookup(s, securityTypeNames, securityTypeCodes); ok {
		return v, nil
	}

	return 0, fmt.Errorf("ParseSecurityType: unknown security type: %s", s)
}
