package responses

import (
	"fmt"
	"strings"

	"github.com/jiaming2012/ally-invest/src/fixml"
)

// source is a read-only view over one decoded item, either a JSON object or an XML
// element, so that every entity is populated by the same schema in both formats.
type source interface {
	// value returns the scalar text stored under key.
	value(key string) (string, bool)
	// group returns the nested object stored under key.
	group(key string) (source, bool)
	// repeated returns the objects stored under key, whether the payload carries one
	// or many.
	repeated(key string) []source
	// scalars returns the scalar texts stored under key, whether one or many.
	scalars(key string) []string
}

type objectSource map[string]interface{}

func (s objectSource) value(key string) (string, bool) {
	v, ok := s[key]
	if !ok {
		return "", false
	}

	return scalarText(v)
}

func scalarText(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	case bool, float64:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}

func (s objectSource) group(key string) (source, bool) {
	obj, ok := s[key].(map[string]interface{})
	if !ok {
		return nil, false
	}

	return objectSource(obj), true
}

func (s objectSource) repeated(key string) []source {
	switch v := s[key].(type) {
	case map[string]interface{}:
		return []source{objectSource(v)}
	case []interface{}:
		out := make([]source, 0, len(v))
		for _, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				out = append(out, objectSource(obj))
			}
		}
		return out
	default:
		// absent, or an empty collection rendered as "" / "null"
		return nil
	}
}

func (s objectSource) scalars(key string) []string {
	list, ok := s[key].([]interface{})
	if !ok {
		if v, ok := scalarText(s[key]); ok {
			return []string{v}
		}
		return nil
	}

	out := make([]string, 0, len(list))
	for _, item := range list {
		if v, ok := scalarText(item); ok {
			out = append(out, v)
		}
	}

	return out
}

type nodeSource struct {
	node *fixml.Node
}

// value prefers a child element's text and falls back to an attribute of that name.
func (s nodeSource) value(key string) (string, bool) {
	if c := s.node.Child(key); c != nil {
		if len(c.Children) > 0 {
			return "", false
		}
		return c.TrimmedText(), true
	}

	return s.node.Attr(strings.TrimPrefix(key, fixml.AttrPrefix))
}

func (s nodeSource) group(key string) (source, bool) {
	c := s.node.Child(key)
	if c == nil {
		return nil, false
	}

	return nodeSource{c}, true
}

func (s nodeSource) repeated(key string) []source {
	children := s.node.ChildrenByTag(key)
	out := make([]source, 0, len(children))
	for _, c := range children {
		out = append(out, nodeSource{c})
	}

	return out
}

func (s nodeSource) scalars(key string) []string {
	children := s.node.ChildrenByTag(key)
	out := make([]string, 0, len(children))
	for _, c := range children {
		out = append(out, c.TrimmedText())
	}

	return out
}

// groupPath walks a dotted path of nested groups.
func groupPath(s source, path string) (source, bool) {
	if path == "" {
		return s, true
	}

	cur := s
	for _, key := range strings.Split(path, ".") {
		next, ok := cur.group(key)
		if !ok {
			return nil, false
		}
		cur = next
	}

	return cur, true
}
