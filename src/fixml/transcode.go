package fixml

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Wire convention for markup carried inside JSON payloads.
const (
	AttrPrefix = "@"
	TextKey    = "#text"
)

// ToObject converts a node into its object form, {tag: value}.
//
// A childless node maps to its prefixed attributes, or to its trimmed text (nil when
// empty) if it has none. Otherwise the value is an object holding the prefixed
// attributes and the converted children; a tag seen once stays a singleton and a
// repeated tag becomes a list in document order. Non-empty text next to attributes or
// children is kept under TextKey.
func ToObject(n *Node) map[string]interface{} {
	return map[string]interface{}{n.Tag: objectValue(n)}
}

func objectValue(n *Node) interface{} {
	text := n.TrimmedText()

	if len(n.Children) == 0 && len(n.Attrs) == 0 {
		if text == "" {
			return nil
		}
		return text
	}

	obj := make(map[string]interface{}, len(n.Attrs)+len(n.Children))
	for _, a := range n.Attrs {
		obj[AttrPrefix+a.Name] = a.Value
	}

	counts := make(map[string]int, len(n.Children))
	for _, c := range n.Children {
		counts[c.Tag]++
	}

	for _, c := range n.Children {
		v := objectValue(c)
		if counts[c.Tag] == 1 {
			obj[c.Tag] = v
			continue
		}

		list, _ := obj[c.Tag].([]interface{})
		obj[c.Tag] = append(list, v)
	}

	if text != "" {
		obj[TextKey] = text
	}

	return obj
}

// FromObject rebuilds a node from its object form. Attribute and child-group order is
// not carried by objects, so both are emitted sorted by name; members of a repeated
// group keep their list order.
func FromObject(tag string, v interface{}) (*Node, error) {
	n := NewNode(tag)

	switch val := v.(type) {
	case nil:
		return n, nil

	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			switch {
			case k == TextKey:
				text, err := scalarText(val[k])
				if err != nil {
					return nil, fmt.Errorf("FromObject: %s: text: %w", tag, err)
				}
				n.Text = text

			case strings.HasPrefix(k, AttrPrefix):
				value, err := scalarText(val[k])
				if err != nil {
					return nil, fmt.Errorf("FromObject: %s: attribute %s: %w", tag, k, err)
				}
				n.Attrs = append(n.Attrs, Attr{Name: strings.TrimPrefix(k, AttrPrefix), Value: value})

			default:
				children, err := childNodes(k, val[k])
				if err != nil {
					return nil, fmt.Errorf("FromObject: %s: %w", tag, err)
				}
				n.Children = append(n.Children, children...)
			}
		}

		return n, nil

	default:
		text, err := scalarText(val)
		if err != nil {
			return nil, fmt.Errorf("FromObject: %s: %w", tag, err)
		}
		n.Text = text
		return n, nil
	}
}

// Unwrap converts a single-key object ({tag: value}) back into a node.
func Unwrap(obj map[string]interface{}) (*Node, error) {
	if len(obj) != 1 {
		return nil, fmt.Errorf("Unwrap: expected 1 root key, got %d", len(obj))
	}

	for tag, v := range obj {
		return FromObject(tag, v)
	}

	return nil, nil
}

func childNodes(tag string, v interface{}) ([]*Node, error) {
	list, ok := v.([]interface{})
	if !ok {
		c, err := FromObject(tag, v)
		if err != nil {
			return nil, err
		}
		return []*Node{c}, nil
	}

	out := make([]*Node, 0, len(list))
	for _, item := range list {
		c, err := FromObject(tag, item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

func scalarText(v interface{}) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return "", fmt.Errorf("unsupported scalar type %T", v)
	}
}
