package rico

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/e10v/rico/config"
	"github.com/e10v/rico/htmltree"
)

// ErrUnsupportedOption is thrown if a constructor receives an option value
// it does not support.
var ErrUnsupportedOption = errors.New("option not supported here")

// ErrRendererNotConfigured is thrown if markdown content is requested
// without a markdown renderer in the configuration.
var ErrRendererNotConfigured = errors.New("no markdown renderer configured")

// ErrUnsupportedPlot is thrown if a value cannot be rendered as a plot.
var ErrUnsupportedPlot = errors.New("unsupported plot value")

// Content is the base of every content value. It owns exactly one container
// element; serialization reflects the tree state at call time, so content
// may keep changing between serializations.
type Content struct {
	container *htmltree.Element
}

// Container exposes the content's container element. Appends to it show up
// in later serializations.
func (c *Content) Container() *htmltree.Element {
	return c.container
}

// Serialize renders the content as HTML text. Options override the
// configuration defaults indent_html, indent_space and strip_html.
func (c *Content) Serialize(opts ...SerializeOption) string {
	return c.container.Serialize(serializeOpts(opts))
}

func (c *Content) String() string {
	return c.Serialize()
}

// newContainer builds a <div> container. An empty class means no class
// attribute.
func newContainer(class string) *htmltree.Element {
	div := &htmltree.Element{Tag: "div"}
	if class != "" {
		div.SetAttr("class", class)
	}
	return div
}

// textElement builds the element for plain text: a <p>, or a <pre> if the
// text spans lines. The styling classes are Bootstrap's.
func textElement(text string, mono, wrap bool) *htmltree.Element {
	tag := "p"
	if strings.Contains(text, "\n") {
		tag = "pre"
	}
	el := &htmltree.Element{Tag: tag, Text: text}
	var classes []string
	if mono {
		classes = append(classes, "font-monospace")
	}
	if wrap {
		classes = append(classes, "text-wrap")
	}
	if len(classes) > 0 {
		el.SetAttr("class", strings.Join(classes, " "))
	}
	return el
}

// imageElement builds an <img> with the data embedded as a base64 data URI.
func imageElement(data []byte, mimeSubtype string) *htmltree.Element {
	el := &htmltree.Element{Tag: "img"}
	el.SetAttr("src", "data:image/"+mimeSubtype+";base64,"+
		base64.StdEncoding.EncodeToString(data))
	return el
}

// NewTag builds content from a single named element:
//
//	<div class?><tag ...>...</tag></div>
//
// The first plain string argument becomes the element's text, the second
// its tail. Attrs set element attributes, Class goes on the container. Any
// other value is dispatched as content into the named element, following
// the NewObj rules.
func NewTag(tag string, args ...any) (*Content, error) {
	el, err := htmltree.New(tag)
	if err != nil {
		return nil, err
	}
	var (
		class  string
		texts  int
		values []any
	)
	for _, arg := range args {
		switch opt := arg.(type) {
		case string:
			switch texts {
			case 0:
				el.Text = opt
			case 1:
				el.Tail = opt
			default:
				return nil, fmt.Errorf("%w: third plain string", ErrUnsupportedOption)
			}
			texts++
		case Class:
			class = string(opt)
		case Attrs:
			for _, a := range opt {
				el.SetAttr(a.Name, a.Value)
			}
		default:
			if isOption(arg) {
				return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, arg)
			}
			values = append(values, arg)
		}
	}
	for _, v := range values {
		if err := dispatch(el, v); err != nil {
			return nil, err
		}
	}
	c := &Content{container: newContainer(class)}
	c.container.AppendChild(el)
	return c, nil
}

// NewText builds a text paragraph. Values other than strings go through
// fmt.Sprint. Mono and Wrap default from the configuration keys text_mono
// and text_wrap.
func NewText(v any, args ...any) (*Content, error) {
	var (
		mono  = config.Bool(config.KeyTextMono)
		wrap  = config.Bool(config.KeyTextWrap)
		class string
	)
	for _, arg := range args {
		switch opt := arg.(type) {
		case Mono:
			mono = bool(opt)
		case Wrap:
			wrap = bool(opt)
		case Class:
			class = string(opt)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, arg)
		}
	}
	text, ok := v.(string)
	if !ok {
		text = fmt.Sprint(v)
	}
	c := &Content{container: newContainer(class)}
	c.container.AppendChild(textElement(text, mono, wrap))
	return c, nil
}

// NewCode builds a code block: <div><pre><code>text</code></pre></div>.
func NewCode(text string, args ...any) (*Content, error) {
	var class string
	for _, arg := range args {
		switch opt := arg.(type) {
		case Class:
			class = string(opt)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, arg)
		}
	}
	pre := &htmltree.Element{Tag: "pre"}
	pre.AppendChild(&htmltree.Element{Tag: "code", Text: text})
	c := &Content{container: newContainer(class)}
	c.container.AppendChild(pre)
	return c, nil
}

// NewHTML builds content from raw markup. The markup is parsed and placed
// in the container as-is; leading character data becomes container text.
// StripDataframeBorders(true) first removes the border attribute from
// dataframe tables, the way notebook exports carry them.
func NewHTML(markup string, args ...any) (*Content, error) {
	var (
		class        string
		stripBorders bool
	)
	for _, arg := range args {
		switch opt := arg.(type) {
		case Class:
			class = string(opt)
		case StripDataframeBorders:
			stripBorders = bool(opt)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, arg)
		}
	}
	if stripBorders {
		stripped, err := stripDataframeBorders(markup)
		if err != nil {
			return nil, err
		}
		markup = stripped
	}
	c := &Content{container: newContainer(class)}
	if err := appendMarkup(c.container, markup); err != nil {
		return nil, err
	}
	return c, nil
}

// NewMarkdown renders markdown through the configured renderer and builds
// content from the resulting markup, like NewHTML. Without a configured
// renderer the constructor fails with ErrRendererNotConfigured; importing
// the rico/markdown package installs one.
func NewMarkdown(text string, args ...any) (*Content, error) {
	render := config.Markdown()
	if render == nil {
		return nil, ErrRendererNotConfigured
	}
	markup, err := render(text)
	if err != nil {
		return nil, err
	}
	return NewHTML(markup, args...)
}

// NewImage embeds an image as a base64 data URI:
//
//	<div><img src="data:image/<subtype>;base64,..."></div>
//
// The image data may be a string or a byte slice; the MIME subtype names
// the encoding, for example "png" or "svg+xml".
func NewImage(data any, mimeSubtype string, args ...any) (*Content, error) {
	var class string
	for _, arg := range args {
		switch opt := arg.(type) {
		case Class:
			class = string(opt)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, arg)
		}
	}
	var raw []byte
	switch d := data.(type) {
	case []byte:
		raw = d
	case string:
		raw = []byte(d)
	default:
		return nil, fmt.Errorf("image data must be a string or a byte slice, have %T", data)
	}
	c := &Content{container: newContainer(class)}
	c.container.AppendChild(imageElement(raw, mimeSubtype))
	return c, nil
}

// NewPlot renders a plot value to an image and embeds it like NewImage.
// The value has to implement PlotRenderer. The image format comes from the
// Format option or the configuration key image_format, "svg" becoming MIME
// subtype "svg+xml".
func NewPlot(v any, args ...any) (*Content, error) {
	var (
		format = config.String(config.KeyImageFormat)
		rest   []any
	)
	for _, arg := range args {
		switch opt := arg.(type) {
		case Format:
			format = string(opt)
		case Class:
			rest = append(rest, arg)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, arg)
		}
	}
	if format != "svg" && format != "png" {
		return nil, fmt.Errorf("%w: image format %q", config.ErrInvalidOption, format)
	}
	plot, ok := v.(PlotRenderer)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPlot, v)
	}
	data, err := plot.RenderPlot(format)
	if err != nil {
		return nil, err
	}
	return NewImage(data, imageSubtype(format), rest...)
}

// imageSubtype maps an image format to its MIME subtype.
func imageSubtype(format string) string {
	if format == "svg" {
		return "svg+xml"
	}
	return format
}

// stripDataframeBorders removes the border attribute from dataframe tables
// in markup: a selector pass over the parsed fragment, re-serialized.
func stripDataframeBorders(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("%w: %v", htmltree.ErrParse, err)
	}
	doc.Find("table.dataframe[border]").Each(func(_ int, table *goquery.Selection) {
		table.RemoveAttr("border")
	})
	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("%w: %v", htmltree.ErrParse, err)
	}
	return body, nil
}
