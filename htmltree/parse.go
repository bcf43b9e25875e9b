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

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrParse is thrown if markup cannot be parsed into a content tree.
var ErrParse = errors.New("cannot parse markup")

// ParseFragment parses an HTML fragment into a content tree. The fragment
// is parsed in the context of a div element, so plain phrasing content is
// allowed at the top level. The parsed content comes back wrapped in a
// neutral div, with leading character data as the div's text and the
// top-level elements as its children. Comments and doctypes are dropped.
//
// Parsing follows the HTML5 algorithm, which recovers from most malformed
// input; tag names and attribute names come back lowercased.
func ParseFragment(markup string) (*Element, error) {
	ctx := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	wrapper := &Element{Tag: "div"}
	for _, n := range nodes {
		convertNode(wrapper, n)
	}
	tracer().Debugf("parsed markup into %d top-level elements", len(wrapper.children))
	return wrapper, nil
}

// Parse parses an HTML fragment like ParseFragment, but if the fragment
// contains exactly one top-level element and no leading character data, that
// element is returned without the neutral div around it.
func Parse(markup string) (*Element, error) {
	wrapper, err := ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	if wrapper.Text == "" && len(wrapper.children) == 1 {
		return wrapper.children[0], nil
	}
	return wrapper, nil
}

// convertNode appends the parsed node to parent, mapping character data to
// the parent's text or the preceding sibling's tail.
func convertNode(parent *Element, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if len(parent.children) == 0 {
			parent.Text += n.Data
		} else {
			last := parent.children[len(parent.children)-1]
			last.Tail += n.Data
		}
	case html.ElementNode:
		el := &Element{Tag: n.Data}
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			el.Attrs = append(el.Attrs, Attribute{Name: name, Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			convertNode(el, c)
		}
		parent.children = append(parent.children, el)
	}
}
