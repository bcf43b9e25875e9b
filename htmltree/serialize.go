package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"
)

// --- Tag classes -----------------------------------------------------------

// Void elements have no content model: they serialize as a lone start tag
// without closing tag.
var voidTags = tagSet("area", "base", "basefont", "br", "col", "embed",
	"frame", "hr", "img", "input", "isindex", "link", "meta", "param", "path",
	"source", "track", "wbr")

// Inline elements are phrasing content; whitespace around them is rendered.
var inlineTags = tagSet("a", "abbr", "b", "bdi", "bdo", "br", "cite", "code",
	"data", "dfn", "em", "i", "kbd", "mark", "q", "rp", "rt", "ruby", "s",
	"samp", "small", "span", "strong", "sub", "sup", "time", "u", "var", "wbr")

// Raw text elements embed their text without escaping.
var rawTextTags = tagSet("script", "style")

// Preformatted elements keep their whitespace as is.
var preTags = tagSet("pre")

func tagSet(tags ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func isIn(set map[string]struct{}, tag string) bool {
	_, ok := set[strings.ToLower(tag)]
	return ok
}

// IsVoid reports whether tag names a void element, i.e. one without content
// and closing tag. Matching is case-insensitive, as for all tag classes.
func IsVoid(tag string) bool { return isIn(voidTags, tag) }

// IsInline reports whether tag names an inline (phrasing) element.
func IsInline(tag string) bool { return isIn(inlineTags, tag) }

// IsRawText reports whether tag names a raw text element (script or style),
// whose text is serialized verbatim.
func IsRawText(tag string) bool { return isIn(rawTextTags, tag) }

// IsPreformatted reports whether tag names a preformatted element.
func IsPreformatted(tag string) bool { return isIn(preTags, tag) }

// --- Escaping --------------------------------------------------------------

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;",
		`"`, "&quot;")
)

// EscapeText escapes &, < and > for use as character data.
func EscapeText(s string) string { return textEscaper.Replace(s) }

// EscapeAttr escapes &, <, > and double quotes for use as a quoted attribute
// value.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }

// whitespace contains the characters treated as layout whitespace by Strip
// and Indent.
const whitespace = " \t\n\r\f\v"

func isBlank(s string) bool {
	return strings.Trim(s, whitespace) == ""
}

// --- Serialization ---------------------------------------------------------

// DefaultIndentSpace is the indentation unit used when SerializeOpts.Indent
// is set and no Space is given.
const DefaultIndentSpace = "  "

// SerializeOpts control how Element.Serialize renders a tree.
type SerializeOpts struct {
	Indent bool   // re-indent block structure, see Element.Indent
	Space  string // indentation unit, DefaultIndentSpace if empty
	Strip  bool   // remove layout whitespace, see Element.Strip
}

// Serialize renders the subtree as HTML markup, including el's tail. With
// opts.Strip set the tree is stripped of layout whitespace first, with
// opts.Indent it is re-indented; when both are set, stripping runs before
// indenting. Both rewrites work on copies and leave el untouched.
//
// Attribute values are double-quoted and escaped; an attribute with an empty
// value serializes as the bare name. Text and tails are escaped, except for
// the text of raw text elements, which is emitted verbatim. Void elements
// have no closing tag.
func (el *Element) Serialize(opts SerializeOpts) string {
	root := el
	if opts.Strip {
		root = root.Strip()
	}
	if opts.Indent {
		space := opts.Space
		if space == "" {
			space = DefaultIndentSpace
		}
		root = root.Indent(space)
	}
	var b strings.Builder
	writeElement(&b, root)
	return b.String()
}

func writeElement(b *strings.Builder, el *Element) {
	b.WriteByte('<')
	b.WriteString(el.Tag)
	for _, a := range el.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		if a.Value != "" {
			b.WriteString(`="`)
			b.WriteString(EscapeAttr(a.Value))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
	if el.Text != "" {
		if IsRawText(el.Tag) {
			b.WriteString(el.Text)
		} else {
			b.WriteString(EscapeText(el.Text))
		}
	}
	for _, ch := range el.children {
		writeElement(b, ch)
	}
	if !IsVoid(el.Tag) {
		b.WriteString("</")
		b.WriteString(el.Tag)
		b.WriteByte('>')
	}
	if el.Tail != "" {
		b.WriteString(EscapeText(el.Tail))
	}
}

// --- Whitespace rewrites ---------------------------------------------------

// preserveOnStrip spans the subtrees Strip keeps verbatim.
func preserveOnStrip(tag string) bool {
	return IsInline(tag) || IsPreformatted(tag) || IsRawText(tag)
}

// preserveOnIndent spans the subtrees Indent keeps verbatim.
func preserveOnIndent(tag string) bool {
	return IsInline(tag) || IsPreformatted(tag)
}

// Strip returns a copy of the subtree with layout whitespace removed. Inside
// block elements, text loses leading whitespace (trailing too if the element
// has no children), whitespace-only tails of block children are dropped,
// tails after void elements lose leading whitespace, and the last child's
// tail loses trailing whitespace. Subtrees rooted at inline, preformatted or
// raw text elements are kept verbatim, so that rendered spacing between
// phrasing content survives. Strip is idempotent.
func (el *Element) Strip() *Element {
	stripped := el.Clone()
	if !preserveOnStrip(el.Tag) {
		stripSubtree(stripped)
	}
	return stripped
}

func stripSubtree(el *Element) {
	el.Text = strings.TrimLeft(el.Text, whitespace)
	if len(el.children) == 0 {
		el.Text = strings.TrimRight(el.Text, whitespace)
		return
	}
	for i, ch := range el.children {
		if !preserveOnStrip(ch.Tag) {
			stripSubtree(ch)
		}
		switch {
		case !IsInline(ch.Tag) && isBlank(ch.Tail):
			ch.Tail = ""
		case IsVoid(ch.Tag):
			ch.Tail = strings.TrimLeft(ch.Tail, whitespace)
		}
		if i == len(el.children)-1 {
			ch.Tail = strings.TrimRight(ch.Tail, whitespace)
		}
	}
}

// Indent returns a copy of the subtree re-indented for readability, using
// space as the per-level indentation unit. Only whitespace-only (or absent)
// text and tails are rewritten, to a newline plus indentation; non-blank
// character data is never altered. Elements without children stay on one
// line, with whitespace-only text dropped. Subtrees rooted at inline or
// preformatted elements are kept verbatim. Indent is idempotent.
func (el *Element) Indent(space string) *Element {
	indented := el.Clone()
	indentSubtree(indented, space, 0)
	return indented
}

func indentSubtree(el *Element, space string, level int) {
	if preserveOnIndent(el.Tag) {
		return
	}
	if len(el.children) == 0 {
		if isBlank(el.Text) {
			el.Text = ""
		}
		return
	}
	if isBlank(el.Text) {
		el.Text = "\n" + strings.Repeat(space, level+1)
	}
	for i, ch := range el.children {
		indentSubtree(ch, space, level+1)
		if isBlank(ch.Tail) {
			if i == len(el.children)-1 {
				ch.Tail = "\n" + strings.Repeat(space, level)
			} else {
				ch.Tail = "\n" + strings.Repeat(space, level+1)
			}
		}
	}
}
