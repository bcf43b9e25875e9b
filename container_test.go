package rico

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/e10v/rico/config"
)

func TestNewDiv(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	div, err := NewDiv(
		"Hello world",
		Must(NewTag("h1", "Header", Class("col"))),
		Class("row"),
	)
	if err != nil {
		t.Fatalf("expected the division to build, got %v", err)
	}
	root := div.Container()
	if class, _ := root.Attr("class"); class != "row" {
		t.Errorf("expected container class %q, is %q", "row", class)
	}
	if root.ChildCount() != 2 {
		t.Logf("tree =\n%s", printElem(root))
		t.Fatalf("expected one child per value, have %d", root.ChildCount())
	}
	first, _ := root.Child(0)
	if first.Tag != "div" || len(first.Attrs) != 0 || first.ChildCount() != 1 {
		t.Fatalf("expected the text wrapped on its own, got %v", first)
	}
	p, _ := first.Child(0)
	if p.Tag != "p" || p.Text != "Hello world" || len(p.Attrs) != 0 {
		t.Errorf("expected a bare <p>Hello world</p>, got %v", p)
	}
	second, _ := root.Child(1)
	if class, _ := second.Attr("class"); second.Tag != "div" || class != "col" {
		t.Fatalf("expected the tag content container, got %v", second)
	}
	h1, _ := second.Child(0)
	if h1.Tag != "h1" || h1.Text != "Header" {
		t.Errorf("expected <h1>Header</h1>, got %v", h1)
	}
}

func TestNewDivRejectsForeignOption(t *testing.T) {
	if _, err := NewDiv(Title("nope")); !errors.Is(err, ErrUnsupportedOption) {
		t.Errorf("expected ErrUnsupportedOption, got %v", err)
	}
}

func TestDivAppendGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rico")
	defer teardown()
	//
	grouped := Must(NewDiv())
	if err := grouped.Append("Hello", "world"); err != nil {
		t.Fatalf("expected the values to append, got %v", err)
	}
	if grouped.Container().ChildCount() != 1 {
		t.Logf("tree =\n%s", printElem(grouped.Container()))
		t.Fatalf("expected one shared container per call, have %d",
			grouped.Container().ChildCount())
	}
	shared, _ := grouped.Container().Child(0)
	if shared.ChildCount() != 2 {
		t.Errorf("expected both values in the shared container, have %d",
			shared.ChildCount())
	}

	separate := Must(NewDiv())
	if err := separate.Append("Hello"); err != nil {
		t.Fatalf("expected the value to append, got %v", err)
	}
	if err := separate.Append("world"); err != nil {
		t.Fatalf("expected the value to append, got %v", err)
	}
	if separate.Container().ChildCount() != 2 {
		t.Errorf("expected one container per call, have %d",
			separate.Container().ChildCount())
	}
	if grouped.String() == separate.String() {
		t.Error("expected grouped and separate appends to serialize differently")
	}
}

func TestDivAppend(t *testing.T) {
	div := Must(NewDiv())
	if err := div.Append("Hello world", fakeChart{}); err != nil {
		t.Fatalf("expected the values to append, got %v", err)
	}
	content := Must(NewObj("Hello world", fakeChart{}))
	if got, want := div.String(), "<div>"+content.String()+"</div>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDivAppendTag(t *testing.T) {
	div := Must(NewDiv())
	if err := div.AppendTag("h1", "Hello world"); err != nil {
		t.Fatalf("expected the tag to append, got %v", err)
	}
	content := Must(NewTag("h1", "Hello world"))
	if got, want := div.String(), "<div>"+content.String()+"</div>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDivAppendText(t *testing.T) {
	div := Must(NewDiv())
	if err := div.AppendText("Hello world", Mono(true)); err != nil {
		t.Fatalf("expected the text to append, got %v", err)
	}
	content := Must(NewText("Hello world", Mono(true)))
	if got, want := div.String(), "<div>"+content.String()+"</div>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDivAppendCode(t *testing.T) {
	div := Must(NewDiv())
	if err := div.AppendCode("Hello world"); err != nil {
		t.Fatalf("expected the code to append, got %v", err)
	}
	content := Must(NewCode("Hello world"))
	if got, want := div.String(), "<div>"+content.String()+"</div>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDivAppendHTML(t *testing.T) {
	div := Must(NewDiv())
	if err := div.AppendHTML("<p>Hello world</p>"); err != nil {
		t.Fatalf("expected the markup to append, got %v", err)
	}
	content := Must(NewHTML("<p>Hello world</p>"))
	if got, want := div.String(), "<div>"+content.String()+"</div>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDivAppendMarkdown(t *testing.T) {
	t.Cleanup(config.Reset)
	err := config.Set(config.Options{
		config.KeyMarkdownRenderer: func(text string) (string, error) {
			heading := strings.TrimSpace(strings.TrimPrefix(text, "#"))
			return "<h1>" + heading + "</h1>", nil
		},
	})
	if err != nil {
		t.Fatalf("expected the renderer to install, got %v", err)
	}
	//
	div := Must(NewDiv())
	if err := div.AppendMarkdown("# Header"); err != nil {
		t.Fatalf("expected the markdown to append, got %v", err)
	}
	content := Must(NewMarkdown("# Header"))
	if got, want := div.String(), "<div>"+content.String()+"</div>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDivAppendImage(t *testing.T) {
	div := Must(NewDiv())
	if err := div.AppendImage(svgData, "svg+xml"); err != nil {
		t.Fatalf("expected the image to append, got %v", err)
	}
	content := Must(NewImage(svgData, "svg+xml"))
	if got, want := div.String(), "<div>"+content.String()+"</div>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDivAppendPlot(t *testing.T) {
	div := Must(NewDiv())
	if err := div.AppendPlot(fakeChart{}); err != nil {
		t.Fatalf("expected the plot to append, got %v", err)
	}
	content := Must(NewPlot(fakeChart{}))
	if got, want := div.String(), "<div>"+content.String()+"</div>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
