package bgg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Node is a parsed XML element. The node returned by ParseDocument is a
// synthetic document node whose children are the top-level elements.
type Node struct {
	Name     string
	Attrs    []xml.Attr
	Children []*Node

	text strings.Builder
}

// ParseDocument reads an XML document into a tree of Nodes.
func ParseDocument(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)

	doc := &Node{}
	stack := []*Node{doc}

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &XMLError{Detail: "malformed document", Err: err}
		}

		parent := stack[len(stack)-1]

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{
				Name:  t.Name.Local,
				Attrs: t.Copy().Attr,
			}
			parent.Children = append(parent.Children, node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			parent.text.Write(t)
		}
	}

	if len(stack) != 1 {
		return nil, &XMLError{Detail: fmt.Sprintf("unclosed element <%s>", stack[len(stack)-1].Name)}
	}

	return doc, nil
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the character data directly inside the element.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text.String()
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every child element with the given name in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// ChildWithAttr returns the first child element with the given name whose
// attribute attr equals value.
func (n *Node) ChildWithAttr(name, attr, value string) *Node {
	for _, c := range n.ChildrenNamed(name) {
		if v, ok := c.Attr(attr); ok && v == value {
			return c
		}
	}
	return nil
}

// Path walks the tree one element name at a time. Every element matching the
// last name under the first match of each preceding name is returned.
func (n *Node) Path(names ...string) []*Node {
	if len(names) == 0 || n == nil {
		return nil
	}
	cur := n
	for _, name := range names[:len(names)-1] {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur.ChildrenNamed(names[len(names)-1])
}

// String renders the subtree as XML. It is used to attach the offending
// element to deserialization errors.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.Name == "" {
		for _, c := range n.Children {
			c.write(sb)
		}
		return
	}

	sb.WriteString("<")
	sb.WriteString(n.Name)
	for _, a := range n.Attrs {
		fmt.Fprintf(sb, " %s=%q", a.Name.Local, a.Value)
	}

	text := strings.TrimSpace(n.Text())
	if len(n.Children) == 0 && text == "" {
		sb.WriteString("/>")
		return
	}
	sb.WriteString(">")
	if text != "" {
		xml.EscapeText(sb, []byte(text))
	}
	for _, c := range n.Children {
		c.write(sb)
	}
	fmt.Fprintf(sb, "</%s>", n.Name)
}
