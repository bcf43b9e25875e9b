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

// ContentValue is satisfied by every content type of this package. Foreign
// types exposing a container element take part in content dispatch the
// same way.
type ContentValue interface {
	Container() *htmltree.Element
}

// Capability interfaces recognized by the built-in converters. A value
// offering one of these renders itself; the converter chain decides which
// capability wins (see NewObj).
type (
	// ScriptRenderer yields executable script text.
	ScriptRenderer interface {
		RenderScript() (string, error)
	}
	// HTMLRenderer yields an HTML fragment.
	HTMLRenderer interface {
		RenderHTML() (string, error)
	}
	// MarkdownRenderer yields markdown text, to be rendered through the
	// configured markdown renderer.
	MarkdownRenderer interface {
		RenderMarkdown() (string, error)
	}
	// SVGRenderer yields SVG markup.
	SVGRenderer interface {
		RenderSVG() (string, error)
	}
	// PNGRenderer yields PNG image data.
	PNGRenderer interface {
		RenderPNG() ([]byte, error)
	}
	// JPEGRenderer yields JPEG image data.
	JPEGRenderer interface {
		RenderJPEG() ([]byte, error)
	}
	// GIFRenderer yields GIF image data.
	GIFRenderer interface {
		RenderGIF() ([]byte, error)
	}
	// PlotRenderer renders a plot to image data in the given format,
	// "svg" or "png".
	PlotRenderer interface {
		RenderPlot(format string) ([]byte, error)
	}
)

// Converter turns a foreign value into an HTML fragment. The second result
// reports whether the converter recognized the value; a recognized value
// that fails to render aborts dispatch with the error.
type Converter func(v any) (markup string, ok bool, err error)

// The built-in chain mirrors rich-representation precedence: plots first,
// then script, markup, markdown and image capabilities.
var builtinConverters = []Converter{
	convertPlot,
	convertScript,
	convertHTML,
	convertMarkdown,
	convertSVG,
	convertPNG,
	convertJPEG,
	convertGIF,
}

var userConverters []Converter

// RegisterConverter puts c in front of the converter chain: converters
// registered later win over earlier ones, and all of them over the
// built-in chain. The chain is not synchronized; register converters
// during program setup.
func RegisterConverter(c Converter) {
	userConverters = append([]Converter{c}, userConverters...)
}

// NewObj builds a container from arbitrary values. Each value lands in the
// one shared container, in order:
//
//  1. Content values contribute their container as-is.
//  2. Values recognized by a converter contribute their rendered fragment,
//     flattened: the fragment's top-level elements become direct children.
//  3. Anything else becomes a text paragraph via fmt.Sprint.
//
// Class sets the container class.
func NewObj(values ...any) (*Div, error) {
	var (
		class string
		rest  []any
	)
	for _, v := range values {
		switch opt := v.(type) {
		case Class:
			class = string(opt)
		default:
			if isOption(v) {
				return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, v)
			}
			rest = append(rest, v)
		}
	}
	d := &Div{Content{container: newContainer(class)}}
	for _, v := range rest {
		if err := dispatch(d.container, v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// dispatch places one value into target following the NewObj rules.
func dispatch(target *htmltree.Element, v any) error {
	if content, ok := v.(ContentValue); ok {
		target.AppendChild(content.Container())
		return nil
	}
	for _, chain := range [][]Converter{userConverters, builtinConverters} {
		for _, convert := range chain {
			markup, ok, err := convert(v)
			if err != nil {
				return err
			}
			if ok {
				tracer().Debugf("converted %T into %d bytes of markup", v, len(markup))
				return appendMarkup(target, markup)
			}
		}
	}
	mono := config.Bool(config.KeyTextMono)
	wrap := config.Bool(config.KeyTextWrap)
	target.AppendChild(textElement(fmt.Sprint(v), mono, wrap))
	return nil
}

// appendMarkup parses markup and flattens the fragment into target: leading
// character data joins the text flow, top-level elements become children.
func appendMarkup(target *htmltree.Element, markup string) error {
	frag, err := htmltree.ParseFragment(markup)
	if err != nil {
		return err
	}
	if frag.Text != "" {
		if n := target.ChildCount(); n > 0 {
			last, _ := target.Child(n - 1)
			last.Tail += frag.Text
		} else {
			target.Text += frag.Text
		}
	}
	for _, child := range frag.Children() {
		target.AppendChild(child)
	}
	return nil
}

func convertPlot(v any) (string, bool, error) {
	plot, ok := v.(PlotRenderer)
	if !ok {
		return "", false, nil
	}
	format := config.String(config.KeyImageFormat)
	data, err := plot.RenderPlot(format)
	if err != nil {
		return "", false, err
	}
	markup := imageElement(data, imageSubtype(format)).Serialize(htmltree.SerializeOpts{})
	return markup, true, nil
}

func convertScript(v any) (string, bool, error) {
	renderer, ok := v.(ScriptRenderer)
	if !ok {
		return "", false, nil
	}
	text, err := renderer.RenderScript()
	if err != nil {
		return "", false, err
	}
	el := &htmltree.Element{Tag: "script", Text: text}
	return el.Serialize(htmltree.SerializeOpts{}), true, nil
}

func convertHTML(v any) (string, bool, error) {
	renderer, ok := v.(HTMLRenderer)
	if !ok {
		return "", false, nil
	}
	markup, err := renderer.RenderHTML()
	if err != nil {
		return "", false, err
	}
	// dataframe reprs carry border attributes; drop them like NewHTML does
	markup, err = stripDataframeBorders(markup)
	if err != nil {
		return "", false, err
	}
	return markup, true, nil
}

func convertMarkdown(v any) (string, bool, error) {
	renderer, ok := v.(MarkdownRenderer)
	if !ok {
		return "", false, nil
	}
	text, err := renderer.RenderMarkdown()
	if err != nil {
		return "", false, err
	}
	render := config.Markdown()
	if render == nil {
		return "", false, ErrRendererNotConfigured
	}
	markup, err := render(text)
	if err != nil {
		return "", false, err
	}
	return markup, true, nil
}

func convertSVG(v any) (string, bool, error) {
	renderer, ok := v.(SVGRenderer)
	if !ok {
		return "", false, nil
	}
	markup, err := renderer.RenderSVG()
	if err != nil {
		return "", false, err
	}
	el := imageElement([]byte(markup), "svg+xml")
	return el.Serialize(htmltree.SerializeOpts{}), true, nil
}

func convertPNG(v any) (string, bool, error) {
	renderer, ok := v.(PNGRenderer)
	if !ok {
		return "", false, nil
	}
	data, err := renderer.RenderPNG()
	if err != nil {
		return "", false, err
	}
	return imageElement(data, "png").Serialize(htmltree.SerializeOpts{}), true, nil
}

func convertJPEG(v any) (string, bool, error) {
	renderer, ok := v.(JPEGRenderer)
	if !ok {
		return "", false, nil
	}
	data, err := renderer.RenderJPEG()
	if err != nil {
		return "", false, err
	}
	return imageElement(data, "jpeg").Serialize(htmltree.SerializeOpts{}), true, nil
}

func convertGIF(v any) (string, bool, error) {
	renderer, ok := v.(GIFRenderer)
	if !ok {
		return "", false, nil
	}
	data, err := renderer.RenderGIF()
	if err != nil {
		return "", false, err
	}
	return imageElement(data, "gif").Serialize(htmltree.SerializeOpts{}), true, nil
}
