package responses

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jiaming2012/ally-invest/src/fixml"
)

const (
	envelopeKey     = "response"
	envelopeError   = "error"
	envelopeSuccess = "Success"
)

// Payload is a decoded API response: a JSON value or an XML tree, depending on Format.
type Payload struct {
	Format Format
	JSON   interface{}
	XML    *fixml.Node
}

// DecodePayload decodes a response body. JSON numbers keep their source text.
func DecodePayload(format Format, body []byte) (*Payload, error) {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()

		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("DecodePayload: failed to decode json: %w", err)
		}

		return &Payload{Format: format, JSON: v}, nil

	case FormatXML:
		n, err := fixml.Parse(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("DecodePayload: failed to decode xml: %w", err)
		}

		return &Payload{Format: format, XML: n}, nil

	default:
		return nil, fmt.Errorf("DecodePayload: unsupported format: %s", format)
	}
}

// envelope returns the contents of the top-level response wrapper.
func (p *Payload) envelope() (source, error) {
	if p == nil {
		return nil, fmt.Errorf("envelope: nil payload")
	}

	switch p.Format {
	case FormatJSON:
		top, ok := p.JSON.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("envelope: expected a json object, got %T", p.JSON)
		}

		body, ok := top[envelopeKey].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("envelope: missing %q object", envelopeKey)
		}

		return objectSource(body), nil

	case FormatXML:
		if p.XML == nil || p.XML.Tag != envelopeKey {
			return nil, fmt.Errorf("envelope: missing <%s> root", envelopeKey)
		}

		return nodeSource{p.XML}, nil

	default:
		return nil, fmt.Errorf("envelope: unsupported format: %s", p.Format)
	}
}

// CheckEnvelope verifies the wrapper is present and that it does not report an error.
func CheckEnvelope(p *Payload) error {
	env, err := p.envelope()
	if err != nil {
		return fmt.Errorf("CheckEnvelope: %w", err)
	}

	if msg, ok := env.value(envelopeError); ok && msg != "" && msg != envelopeSuccess {
		return &PayloadError{Message: msg}
	}

	return nil
}

// items checks the envelope, walks the container path and returns the repeated
// element at its end. A single object and a list of objects both come back as a
// slice; a missing container is an empty collection.
func items(p *Payload, path ...string) ([]source, error) {
	if err := CheckEnvelope(p); err != nil {
		return nil, err
	}

	env, _ := p.envelope()
	if len(path) == 0 {
		return []source{env}, nil
	}

	cur := env
	for _, key := range path[:len(path)-1] {
		next, ok := cur.group(key)
		if !ok {
			return nil, nil
		}
		cur = next
	}

	return cur.repeated(path[len(path)-1]), nil
}

// values is items for collections of bare scalars such as strike prices.
func values(p *Payload, path ...string) ([]string, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("values: empty path")
	}

	containers, err := items(p, path[:len(path)-1]...)
	if err != nil {
		return nil, err
	}

	if len(containers) == 0 {
		return nil, nil
	}

	return containers[0].scalars(path[len(path)-1]), nil
}
