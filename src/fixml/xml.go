package fixml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse reads one XML document into a Node tree. Namespace prefixes are dropped from
// tags and attributes, and namespace declarations are not kept as attributes.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var stack []*Node
	var root *Node

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("Parse: failed to read token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := NewNode(t.Name.Local)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}

			if len(stack) > 0 {
				stack[len(stack)-1].AddChild(n)
			} else if root == nil {
				root = n
			} else {
				return nil, fmt.Errorf("Parse: multiple root elements: %s", n.Tag)
			}

			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("Parse: unexpected end element %s", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("Parse: empty document")
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("Parse: unclosed element %s", stack[len(stack)-1].Tag)
	}

	return root, nil
}

func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

func (n *Node) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if text := strings.TrimSpace(n.Text); text != "" {
		if err := e.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}

	for _, c := range n.Children {
		if err := e.Encode(c); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

func (n *Node) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("Node.Encode: failed to encode %s: %w", n.Tag, err)
	}

	return enc.Flush()
}

func (n *Node) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (n *Node) String() string {
	b, err := n.Bytes()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", n.Tag, err)
	}

	return string(b)
}
