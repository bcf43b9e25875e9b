package rico

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"

	"github.com/e10v/rico/config"
	"github.com/e10v/rico/htmltree"
)

// Doc is a complete HTML document. The content container of the embedded
// Div sits in the body section; Append and the typed append methods work
// the same as on a Div and keep the document live between serializations.
type Doc struct {
	Div
	root *htmltree.Element
	head *htmltree.Element
	body *htmltree.Element
}

// NewDoc builds a document around initial content values, dispatched by
// the NewDiv rule. Options: Title, Class (content container class,
// "container" unless overridden, empty suppresses), Bootstrap ("css",
// "full" or "none", defaulting from the configuration), ExtraStyles and
// ExtraScripts. Head metadata defaults from the configuration keys
// meta_charset, meta_viewport, bootstrap_css and dataframe_style; an empty
// value drops the element.
func NewDoc(values ...any) (*Doc, error) {
	var (
		title        string
		class        = "container"
		bootstrap    = config.String(config.KeyBootstrap)
		extraStyles  []*Style
		extraScripts []*Script
		rest         []any
	)
	for _, v := range values {
		switch opt := v.(type) {
		case Title:
			title = string(opt)
		case Class:
			class = string(opt)
		case Bootstrap:
			bootstrap = string(opt)
		case ExtraStyles:
			extraStyles = append(extraStyles, opt...)
		case ExtraScripts:
			extraScripts = append(extraScripts, opt...)
		default:
			if isOption(v) {
				return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, v)
			}
			rest = append(rest, v)
		}
	}
	if bootstrap != "css" && bootstrap != "full" && bootstrap != "none" {
		return nil, fmt.Errorf("%w: bootstrap mode %q", config.ErrInvalidOption, bootstrap)
	}

	div, err := NewDiv(append(rest, Class(class))...)
	if err != nil {
		return nil, err
	}
	doc := &Doc{
		Div:  *div,
		root: &htmltree.Element{Tag: "html"},
		head: &htmltree.Element{Tag: "head"},
		body: &htmltree.Element{Tag: "body"},
	}
	doc.root.AppendChild(doc.head).AppendChild(doc.body)

	if charset := config.String(config.KeyMetaCharset); charset != "" {
		meta := &htmltree.Element{Tag: "meta"}
		doc.head.AppendChild(meta.SetAttr("charset", charset))
	}
	if viewport := config.String(config.KeyMetaViewport); viewport != "" {
		meta := &htmltree.Element{Tag: "meta"}
		doc.head.AppendChild(meta.SetAttr("name", "viewport").SetAttr("content", viewport))
	}
	if title != "" {
		doc.head.AppendChild(&htmltree.Element{Tag: "title", Text: title})
	}
	if bootstrap != "none" {
		if href := config.String(config.KeyBootstrapCSS); href != "" {
			style, err := NewStyle(Src(href))
			if err != nil {
				return nil, err
			}
			doc.head.AppendChild(style.Container())
		}
	}
	if text := config.String(config.KeyDataframeStyle); text != "" {
		style, err := NewStyle(text)
		if err != nil {
			return nil, err
		}
		doc.head.AppendChild(style.Container())
	}
	for _, style := range extraStyles {
		doc.head.AppendChild(style.Container())
	}

	// the bootstrap bundle goes first so content scripts can rely on it
	if bootstrap == "full" {
		if src := config.String(config.KeyBootstrapJS); src != "" {
			script, err := NewScript(Src(src))
			if err != nil {
				return nil, err
			}
			doc.body.AppendChild(script.Container())
		}
	}
	doc.body.AppendChild(doc.container)
	var footer []*Script
	for _, script := range extraScripts {
		if script.Footer {
			footer = append(footer, script)
			continue
		}
		doc.body.AppendChild(script.Container())
	}
	for _, script := range footer {
		doc.body.AppendChild(script.Container())
	}
	tracer().Debugf("assembled document, head has %d children, body has %d",
		doc.head.ChildCount(), doc.body.ChildCount())
	return doc, nil
}

// Root returns the document's html element.
func (d *Doc) Root() *htmltree.Element {
	return d.root
}

// Head returns the document's head section.
func (d *Doc) Head() *htmltree.Element {
	return d.head
}

// Body returns the document's body section.
func (d *Doc) Body() *htmltree.Element {
	return d.body
}

// Serialize renders the whole document, not just the content container.
func (d *Doc) Serialize(opts ...SerializeOption) string {
	return d.root.Serialize(serializeOpts(opts))
}

func (d *Doc) String() string {
	return d.Serialize()
}
