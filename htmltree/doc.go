/*
Package htmltree provides a small mutable tree model for HTML content,
together with serialization back to markup.

The model is deliberately minimal. An element carries a tag, attributes in
insertion order, character data before its first child (the text) and after
its own closing tag (the tail), and a list of children. There are no parent
links, no namespaces and no styling; a parent exclusively owns its children.

Serialization understands the HTML5 conventions for void, inline, raw text
and preformatted elements. Two tree-to-tree rewrites are provided, both
working on copies and leaving the receiver untouched: Strip removes layout
whitespace, Indent re-indents block structure for readability.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package htmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rico.htmltree'.
func tracer() tracing.Trace {
	return tracing.Select("rico.htmltree")
}
