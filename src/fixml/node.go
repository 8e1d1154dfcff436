package fixml

import (
	"strings"
)

const Namespace = "http://www.fixprotocol.org/FIXML-5-0-SP2"

const RootTag = "FIXML"

type Attr struct {
	Name  string
	Value string
}

// Node is one element of a markup document. Attribute and child order is kept as
// written so that emitted documents are deterministic.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// NewDocument wraps the given element in the FIXML root.
func NewDocument(body ...*Node) *Node {
	root := NewNode(RootTag)
	root.SetAttr("xmlns", Namespace)
	root.Children = append(root.Children, body...)
	return root
}

// SetAttr replaces the value of an existing attribute or appends a new one.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}

	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Child returns the first direct child with the given tag.
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}

	return nil
}

func (n *Node) ChildrenByTag(tag string) []*Node {
	if n == nil {
		return nil
	}

	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}

	return out
}

// Path walks direct children tag by tag and returns nil as soon as a step is missing.
func (n *Node) Path(tags ...string) *Node {
	cur := n
	for _, t := range tags {
		cur = cur.Child(t)
		if cur == nil {
			return nil
		}
	}

	return cur
}

// TrimmedText is the character content with surrounding whitespace removed.
func (n *Node) TrimmedText() string {
	if n == nil {
		return ""
	}

	return strings.TrimSpace(n.Text)
}
