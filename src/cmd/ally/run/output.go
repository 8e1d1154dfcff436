package run

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jiaming2012/ally-invest/src/responses"
)

// PrintPayload writes a raw response: indented JSON, or the XML document as received.
func PrintPayload(w io.Writer, p *responses.Payload) error {
	switch p.Format {
	case responses.FormatXML:
		if _, err := fmt.Fprintln(w, p.XML.String()); err != nil {
			return fmt.Errorf("PrintPayload: %w", err)
		}
	default:
		data, err := json.MarshalIndent(p.JSON, "", "  ")
		if err != nil {
			return fmt.Errorf("PrintPayload: failed to marshal: %w", err)
		}

		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("PrintPayload: %w", err)
		}
	}

	return nil
}

// PrintJSON writes any mapped result as indented JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("PrintJSON: failed to marshal: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
