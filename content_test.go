package rico

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"

	"github.com/e10v/rico/config"
	"github.com/e10v/rico/htmltree"
)

const svgData = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="16" height="16" fill="currentColor" class="bi bi-dash"><path d="M4 8a.5.5 0 0 1 .5-.5h7a.5.5 0 0 1 0 1h-7A.5.5 0 0 1 4 8z"></path></svg>`

// printElem renders an element tree for failure logs.
func printElem(el *htmltree.Element) string {
	tree := tp.New()
	ppe(tree, el)
	return tree.String()
}

func ppe(tree tp.Tree, el *htmltree.Element) {
	branch := tree.AddBranch(el.String())
	for _, ch := range el.Children() {
		ppe(branch, ch)
	}
}

func TestNewTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	content, err := NewTag("p",
		Attrs{{Name: "class", Value: "col"}, {Name: "id", Value: "42"}},
		"Hello", "world", Class("row"))
	if err != nil {
		t.Fatalf("expected tag content to build, got %v", err)
	}
	div := content.Container()
	if div.Tag != "div" {
		t.Fatalf("expected a div container, got <%s>", div.Tag)
	}
	if class, _ := div.Attr("class"); class != "row" {
		t.Errorf("expected container class %q, is %q", "row", class)
	}
	if div.ChildCount() != 1 {
		t.Logf("tree =\n%s", printElem(div))
		t.Fatalf("expected 1 child, have %d", div.ChildCount())
	}
	p, _ := div.Child(0)
	if p.Tag != "p" || p.Text != "Hello" || p.Tail != "world" {
		t.Errorf("unexpected element %v with text=%q tail=%q", p, p.Text, p.Tail)
	}
	want := []htmltree.Attribute{{Name: "class", Value: "col"}, {Name: "id", Value: "42"}}
	if len(p.Attrs) != 2 || p.Attrs[0] != want[0] || p.Attrs[1] != want[1] {
		t.Errorf("expected attributes %v, have %v", want, p.Attrs)
	}
	serialized := `<div class="row"><p class="col" id="42">Hello</p>world</div>`
	if got := content.String(); got != serialized {
		t.Errorf("expected %q, got %q", serialized, got)
	}
}

func TestNewTagRejects(t *testing.T) {
	if _, err := NewTag(""); !errors.Is(err, htmltree.ErrInvalidTag) {
		t.Errorf("expected ErrInvalidTag for an empty tag, got %v", err)
	}
	if _, err := NewTag("p", Mono(true)); !errors.Is(err, ErrUnsupportedOption) {
		t.Errorf("expected ErrUnsupportedOption for Mono, got %v", err)
	}
	if _, err := NewTag("p", "text", "tail", "surplus"); !errors.Is(err, ErrUnsupportedOption) {
		t.Errorf("expected ErrUnsupportedOption for a third string, got %v", err)
	}
}

func TestNewTagNestedContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	content, err := NewTag("section", Must(NewText("Hello world")))
	if err != nil {
		t.Fatalf("expected tag content to build, got %v", err)
	}
	section, _ := content.Container().Child(0)
	if section.Tag != "section" || section.ChildCount() != 1 {
		t.Logf("tree =\n%s", printElem(content.Container()))
		t.Fatalf("expected the nested content inside <section>, got %v", section)
	}
	inner, _ := section.Child(0)
	if inner.Tag != "div" {
		t.Errorf("expected the nested content container, got <%s>", inner.Tag)
	}
}

func TestNewTextSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	content, err := NewText("Hello world", Class("row"))
	if err != nil {
		t.Fatalf("expected text content to build, got %v", err)
	}
	div := content.Container()
	if class, _ := div.Attr("class"); class != "row" {
		t.Errorf("expected container class %q, is %q", "row", class)
	}
	p, _ := div.Child(0)
	if p.Tag != "p" || p.Text != "Hello world" || len(p.Attrs) != 0 {
		t.Logf("tree =\n%s", printElem(div))
		t.Errorf("expected a bare <p>Hello world</p>, got %v with %v", p, p.Attrs)
	}
}

func TestNewTextPreMono(t *testing.T) {
	content, err := NewText("Hello\nworld", Mono(true))
	if err != nil {
		t.Fatalf("expected text content to build, got %v", err)
	}
	pre, _ := content.Container().Child(0)
	if pre.Tag != "pre" {
		t.Fatalf("expected multi-line text in a <pre>, got <%s>", pre.Tag)
	}
	if class, _ := pre.Attr("class"); class != "font-monospace" {
		t.Errorf("expected class %q, is %q", "font-monospace", class)
	}
	if pre.Text != "Hello\nworld" {
		t.Errorf("expected the text to stay verbatim, got %q", pre.Text)
	}
}

func TestNewTextSprint(t *testing.T) {
	content, err := NewText(42, Mono(true), Wrap(true))
	if err != nil {
		t.Fatalf("expected text content to build, got %v", err)
	}
	p, _ := content.Container().Child(0)
	if p.Tag != "p" || p.Text != "42" {
		t.Errorf("expected <p>42</p>, got %v with text %q", p, p.Text)
	}
	if class, _ := p.Attr("class"); class != "font-monospace text-wrap" {
		t.Errorf("expected both styling classes, is %q", class)
	}
}

func TestNewTextConfigDefaults(t *testing.T) {
	t.Cleanup(config.Reset)
	//
	var content *Content
	err := config.Context(config.Options{config.KeyTextMono: true}, func() error {
		c, err := NewText("Hello world")
		content = c
		return err
	})
	if err != nil {
		t.Fatalf("expected text content to build, got %v", err)
	}
	p, _ := content.Container().Child(0)
	if class, _ := p.Attr("class"); class != "font-monospace" {
		t.Errorf("expected the class to default from the configuration, is %q", class)
	}
}

func TestNewCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	content, err := NewCode("Hello world", Class("row"))
	if err != nil {
		t.Fatalf("expected code content to build, got %v", err)
	}
	div := content.Container()
	if class, _ := div.Attr("class"); class != "row" {
		t.Errorf("expected container class %q, is %q", "row", class)
	}
	pre, _ := div.Child(0)
	if pre.Tag != "pre" || len(pre.Attrs) != 0 || pre.Text != "" || pre.ChildCount() != 1 {
		t.Logf("tree =\n%s", printElem(div))
		t.Fatalf("expected a bare <pre> with one child, got %v", pre)
	}
	code, _ := pre.Child(0)
	if code.Tag != "code" || code.Text != "Hello world" {
		t.Errorf("expected <code>Hello world</code>, got %v with text %q", code, code.Text)
	}
}

func TestNewHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	content, err := NewHTML("<p>Hello world</p>", Class("row"))
	if err != nil {
		t.Fatalf("expected markup content to build, got %v", err)
	}
	div := content.Container()
	if class, _ := div.Attr("class"); class != "row" {
		t.Errorf("expected container class %q, is %q", "row", class)
	}
	p, _ := div.Child(0)
	if p.Tag != "p" || p.Text != "Hello world" {
		t.Errorf("expected the parsed <p> as child, got %v", p)
	}
}

func TestNewHTMLLeadingText(t *testing.T) {
	content, err := NewHTML("Hello <b>world</b>")
	if err != nil {
		t.Fatalf("expected markup content to build, got %v", err)
	}
	div := content.Container()
	if div.Text != "Hello " {
		t.Errorf("expected the leading text on the container, got %q", div.Text)
	}
	b, _ := div.Child(0)
	if b.Tag != "b" || b.Text != "world" {
		t.Errorf("expected a <b>world</b> child, got %v", b)
	}
}

const dataframeMarkup = `<table class="dataframe" border="1">` +
	`<thead><tr><th>a</th></tr></thead>` +
	`<tbody><tr><td>1</td></tr></tbody></table>`

func TestNewHTMLStripDataframeBorders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	content, err := NewHTML(dataframeMarkup, StripDataframeBorders(true))
	if err != nil {
		t.Fatalf("expected markup content to build, got %v", err)
	}
	table, ok := content.Container().Child(0)
	if !ok || table.Tag != "table" {
		t.Logf("tree =\n%s", printElem(content.Container()))
		t.Fatalf("expected a table child, got %v", table)
	}
	if _, ok := table.Attr("border"); ok {
		t.Error("expected the border attribute to be stripped")
	}
	if class, _ := table.Attr("class"); class != "dataframe" {
		t.Errorf("expected the class to survive, is %q", class)
	}

	kept, err := NewHTML(dataframeMarkup)
	if err != nil {
		t.Fatalf("expected markup content to build, got %v", err)
	}
	table, _ = kept.Container().Child(0)
	if border, ok := table.Attr("border"); !ok || border != "1" {
		t.Error("expected the border attribute to survive without the option")
	}
}

func TestNewMarkdown(t *testing.T) {
	t.Cleanup(config.Reset)
	//
	err := config.Set(config.Options{
		config.KeyMarkdownRenderer: func(text string) (string, error) {
			heading := strings.TrimSpace(strings.TrimPrefix(text, "#"))
			return "<h1>" + heading + "</h1>", nil
		},
	})
	if err != nil {
		t.Fatalf("expected the renderer to install, got %v", err)
	}
	content, err := NewMarkdown("# Header", Class("row"))
	if err != nil {
		t.Fatalf("expected markdown content to build, got %v", err)
	}
	div := content.Container()
	if class, _ := div.Attr("class"); class != "row" {
		t.Errorf("expected container class %q, is %q", "row", class)
	}
	h1, _ := div.Child(0)
	if h1.Tag != "h1" || h1.Text != "Header" {
		t.Errorf("expected the rendered <h1>Header</h1>, got %v", h1)
	}
}

func TestNewMarkdownWithoutRenderer(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Reset()
	//
	if _, err := NewMarkdown("# Header"); !errors.Is(err, ErrRendererNotConfigured) {
		t.Errorf("expected ErrRendererNotConfigured, got %v", err)
	}
}

func TestNewImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	wantSrc := "data:image/png;base64," +
		base64.StdEncoding.EncodeToString([]byte(svgData))
	for _, data := range []any{svgData, []byte(svgData)} {
		content, err := NewImage(data, "png")
		if err != nil {
			t.Fatalf("expected image content to build, got %v", err)
		}
		img, _ := content.Container().Child(0)
		if img.Tag != "img" || img.ChildCount() != 0 {
			t.Fatalf("expected a bare <img>, got %v", img)
		}
		if src, _ := img.Attr("src"); src != wantSrc {
			t.Errorf("expected the data URI %q, got %q", wantSrc, src)
		}
	}
}

func TestNewImageBadData(t *testing.T) {
	if _, err := NewImage(42, "png"); err == nil {
		t.Error("expected an error for non-image data")
	}
}

func TestNewPlot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	content, err := NewPlot(fakeChart{}, Class("row"))
	if err != nil {
		t.Fatalf("expected plot content to build, got %v", err)
	}
	div := content.Container()
	if class, _ := div.Attr("class"); class != "row" {
		t.Errorf("expected container class %q, is %q", "row", class)
	}
	img, _ := div.Child(0)
	src, _ := img.Attr("src")
	if img.Tag != "img" || !strings.HasPrefix(src, "data:image/svg+xml;base64,") {
		t.Errorf("expected an svg data URI by default, got %v src=%q", img, src)
	}

	content, err = NewPlot(fakeChart{}, Format("png"))
	if err != nil {
		t.Fatalf("expected plot content to build, got %v", err)
	}
	img, _ = content.Container().Child(0)
	if src, _ := img.Attr("src"); !strings.HasPrefix(src, "data:image/png;base64,") {
		t.Errorf("expected a png data URI, got %q", src)
	}
}

func TestNewPlotRejects(t *testing.T) {
	if _, err := NewPlot("not a plot"); !errors.Is(err, ErrUnsupportedPlot) {
		t.Errorf("expected ErrUnsupportedPlot, got %v", err)
	}
	if _, err := NewPlot(fakeChart{}, Format("gif")); !errors.Is(err, config.ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption for a foreign format, got %v", err)
	}
}

func TestSerializeOptions(t *testing.T) {
	t.Cleanup(config.Reset)
	//
	content := Must(NewTag("p", "Hello world"))
	if got := content.Serialize(); got != "<div><p>Hello world</p></div>" {
		t.Errorf("expected compact output by default, got %q", got)
	}
	want := "<div>\n    <p>Hello world</p>\n</div>"
	if got := content.Serialize(Indent(true), Space("    ")); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	var got string
	err := config.Context(config.Options{config.KeyIndentHTML: true}, func() error {
		got = content.String()
		return nil
	})
	if err != nil {
		t.Fatalf("expected the context to apply, got %v", err)
	}
	if got != "<div>\n  <p>Hello world</p>\n</div>" {
		t.Errorf("expected the configuration default to indent, got %q", got)
	}
	if content.String() != "<div><p>Hello world</p></div>" {
		t.Error("expected compact output after the context ends")
	}
}

func TestContentStaysLive(t *testing.T) {
	content := Must(NewTag("ul"))
	before := content.String()
	ul, _ := content.Container().Child(0)
	li, err := ul.NewChild("li")
	if err != nil {
		t.Fatalf("expected the list item to build, got %v", err)
	}
	li.Text = "first"
	after := content.String()
	if after == before || !strings.Contains(after, "<li>first</li>") {
		t.Errorf("expected later appends to show up, got %q", after)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Must to panic on error")
		}
	}()
	Must(NewTag(""))
}
