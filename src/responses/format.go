package responses

import (
	"fmt"
	"strings"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

func (f Format) Validate() error {
	switch f {
	case FormatJSON, FormatXML:
		return nil
	default:
		return fmt.Errorf("Format: unsupported response format: %s", string(f))
	}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if err := f.Validate(); err != nil {
		return "", err
	}

	return f, nil
}
