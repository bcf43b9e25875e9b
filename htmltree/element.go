package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTag is thrown if an element is created with an empty tag or a tag
// containing whitespace or markup characters.
var ErrInvalidTag = errors.New("tag is empty or contains invalid characters")

// Attribute is a single name/value pair of an element. An empty value denotes
// a boolean attribute, which serializes as the bare attribute name.
type Attribute struct {
	Name  string
	Value string
}

// Element is the node type HTML content trees are built of. Text is the
// character data between the element's start tag and its first child, Tail
// the character data between the element's closing tag and the next sibling.
// An empty string means absent in both cases.
type Element struct {
	Tag      string      // element name, case preserved
	Attrs    []Attribute // attributes in insertion order
	Text     string
	Tail     string
	children []*Element
}

// New creates an element with the given tag.
func New(tag string) (*Element, error) {
	if !validTag(tag) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	return &Element{Tag: tag}, nil
}

func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	return !strings.ContainsAny(tag, "<>\"'=/& \t\n\r\f\v")
}

func (el *Element) String() string {
	return fmt.Sprintf("(<%s> #attrs=%d #ch=%d)", el.Tag, len(el.Attrs), len(el.children))
}

// NewChild creates an element with the given tag and appends it to el.
// It returns the newly created child.
func (el *Element) NewChild(tag string) (*Element, error) {
	ch, err := New(tag)
	if err != nil {
		return nil, err
	}
	el.AppendChild(ch)
	return ch, nil
}

// AppendChild appends a child element to el. The child becomes part of el's
// subtree and must not be attached to a second parent.
// It returns el to allow for chaining.
func (el *Element) AppendChild(ch *Element) *Element {
	if ch != nil {
		el.children = append(el.children, ch)
	}
	return el
}

// SetAttr sets the attribute name to value. If the attribute exists already,
// its value is replaced in place, preserving the attribute order; otherwise
// the attribute is appended. An empty value produces a boolean attribute.
// It returns el to allow for chaining.
func (el *Element) SetAttr(name, value string) *Element {
	for i, a := range el.Attrs {
		if a.Name == name {
			el.Attrs[i].Value = value
			return el
		}
	}
	el.Attrs = append(el.Attrs, Attribute{Name: name, Value: value})
	return el
}

// Attr returns the value of the attribute with the given name.
func (el *Element) Attr(name string) (string, bool) {
	for _, a := range el.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// DeleteAttr removes the attribute with the given name, if present.
// It returns el to allow for chaining.
func (el *Element) DeleteAttr(name string) *Element {
	for i, a := range el.Attrs {
		if a.Name == name {
			el.Attrs = append(el.Attrs[:i], el.Attrs[i+1:]...)
			break
		}
	}
	return el
}

// ChildCount returns the number of children of el.
func (el *Element) ChildCount() int {
	return len(el.children)
}

// Child returns the n'th child of el.
func (el *Element) Child(n int) (*Element, bool) {
	if n < 0 || n >= len(el.children) {
		return nil, false
	}
	return el.children[n], true
}

// Children returns a slice with all children of el. The slice is a copy, the
// children are not.
func (el *Element) Children() []*Element {
	if len(el.children) == 0 {
		return nil
	}
	children := make([]*Element, len(el.children))
	copy(children, el.children)
	return children
}

// Clone returns a deep copy of el's subtree, including its tail.
func (el *Element) Clone() *Element {
	if el == nil {
		return nil
	}
	cl := &Element{Tag: el.Tag, Text: el.Text, Tail: el.Tail}
	if len(el.Attrs) > 0 {
		cl.Attrs = make([]Attribute, len(el.Attrs))
		copy(cl.Attrs, el.Attrs)
	}
	if len(el.children) > 0 {
		cl.children = make([]*Element, len(el.children))
		for i, ch := range el.children {
			cl.children[i] = ch.Clone()
		}
	}
	return cl
}

// Equal reports whether two subtrees are structurally equal: same tags,
// attributes in the same order, same texts, tails and children.
func (el *Element) Equal(other *Element) bool {
	if el == nil || other == nil {
		return el == other
	}
	if el.Tag != other.Tag || el.Text != other.Text || el.Tail != other.Tail {
		return false
	}
	if len(el.Attrs) != len(other.Attrs) || len(el.children) != len(other.children) {
		return false
	}
	for i, a := range el.Attrs {
		if a != other.Attrs[i] {
			return false
		}
	}
	for i, ch := range el.children {
		if !ch.Equal(other.children[i]) {
			return false
		}
	}
	return true
}
