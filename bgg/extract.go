package bgg

import (
	"strconv"
	"strings"
)

// Typed accessors over Node attributes and child elements. Required accessors
// fail with a *FieldError when the value is absent or unparsable; optional
// accessors return nil under the same conditions.

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseString(s string) (string, error) {
	return s, nil
}

// parseBool follows the service's convention where "1" means true. Any value
// starting with 1-9, Y or T counts as true, so "true" and "yes" work too.
func parseBool(s string) (bool, error) {
	s = strings.TrimLeft(strings.TrimSpace(s), "+-0")
	if s == "" {
		return false, nil
	}
	switch c := s[0]; {
	case c >= '1' && c <= '9':
		return true, nil
	case c == 'y', c == 'Y', c == 't', c == 'T':
		return true, nil
	}
	return false, nil
}

func parseAttr[T any](n *Node, name string, conv func(string) (T, error)) (T, error) {
	var zero T
	if n == nil {
		return zero, &FieldError{Field: name, Missing: true}
	}

	raw, ok := n.Attr(name)
	if !ok {
		return zero, &FieldError{Field: name, Element: n.Name, Missing: true}
	}

	v, err := conv(raw)
	if err != nil {
		return zero, &FieldError{Field: name, Element: n.Name, Value: raw}
	}
	return v, nil
}

func optional[T any](v T, err error) *T {
	if err != nil {
		return nil
	}
	return &v
}

func attrString(n *Node, name string) (string, error) { return parseAttr(n, name, parseString) }
func attrInt(n *Node, name string) (int, error) { return parseAttr(n, name, parseInt) }
func attrFloat(n *Node, name string) (float64, error) { return parseAttr(n, name, parseFloat) }
func attrBool(n *Node, name string) (bool, error) { return parseAttr(n, name, parseBool) }

func optAttrString(n *Node, name string) *string { return optional(attrString(n, name)) }
func optAttrInt(n *Node, name string) *int { return optional(attrInt(n, name)) }
func optAttrFloat(n *Node, name string) *float64 { return optional(attrFloat(n, name)) }
func optAttrBool(n *Node, name string) *bool { return optional(attrBool(n, name)) }

// requireChild returns the named child or a *FieldError reporting it missing.
func requireChild(n *Node, name string) (*Node, error) {
	child := n.Child(name)
	if child == nil {
		element := ""
		if n != nil {
			element = n.Name
		}
		return nil, &FieldError{Field: name, Element: element, Missing: true}
	}
	return child, nil
}

// Many BGG elements carry their payload in a value attribute, e.g.
// <minplayers value="2"/>.

func childValueInt(n *Node, name string) (int, error) {
	child, err := requireChild(n, name)
	if err != nil {
		return 0, err
	}
	return attrInt(child, "value")
}

func childValueFloat(n *Node, name string) (float64, error) {
	child, err := requireChild(n, name)
	if err != nil {
		return 0, err
	}
	return attrFloat(child, "value")
}

func childValueString(n *Node, name string) (string, error) {
	child, err := requireChild(n, name)
	if err != nil {
		return "", err
	}
	return attrString(child, "value")
}

func optChildValueInt(n *Node, name string) *int { return optional(childValueInt(n, name)) }

func optChildValueFloat(n *Node, name string) *float64 {
	return optional(childValueFloat(n, name))
}

// Others carry it as character data, e.g. <yearpublished>2011</yearpublished>.

func childText(n *Node, name string) (string, error) {
	child, err := requireChild(n, name)
	if err != nil {
		return "", err
	}
	return child.Text(), nil
}

func childTextInt(n *Node, name string) (int, error) {
	text, err := childText(n, name)
	if err != nil {
		return 0, err
	}
	v, err := parseInt(text)
	if err != nil {
		return 0, &FieldError{Field: name, Element: n.Name, Value: text}
	}
	return v, nil
}

func optChildText(n *Node, name string) *string { return optional(childText(n, name)) }
func optChildTextInt(n *Node, name string) *int { return optional(childTextInt(n, name)) }

// optChildTrimmed returns the child's text with surrounding whitespace removed.
func optChildTrimmed(n *Node, name string) *string {
	text := optChildText(n, name)
	if text == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*text)
	return &trimmed
}
