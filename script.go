package rico

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/e10v/rico/config"
	"github.com/e10v/rico/htmltree"
)

// ErrConflictingArguments is thrown if a script or style gets both inline
// text and a source reference, or neither.
var ErrConflictingArguments = errors.New("exactly one of text and src expected")

// ErrResourceFetch is thrown if an external resource cannot be fetched for
// inline embedding.
var ErrResourceFetch = errors.New("cannot fetch resource")

// Script is a script element: inline text or a source reference. Footer
// marks an inline script for the end of the document body.
type Script struct {
	Content
	Footer bool
}

// NewScript builds a script from either inline text (a plain string
// argument) or a Src reference, never both. Inline fetches the referenced
// resource and embeds it as text, defaulting from the configuration key
// inline_scripts. Defer sets the defer attribute on a referenced script;
// on an inline one it sets Footer instead.
func NewScript(args ...any) (*Script, error) {
	var (
		text, src         string
		haveText, haveSrc bool
		inline            = config.Bool(config.KeyInlineScripts)
		deferred          bool
		attrs             []htmltree.Attribute
	)
	for _, arg := range args {
		switch opt := arg.(type) {
		case string:
			if haveText {
				return nil, fmt.Errorf("%w: more than one script text", ErrConflictingArguments)
			}
			text, haveText = opt, true
		case Src:
			src, haveSrc = string(opt), true
		case Inline:
			inline = bool(opt)
		case Defer:
			deferred = bool(opt)
		case Attrs:
			attrs = append(attrs, opt...)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, arg)
		}
	}
	if haveText == haveSrc {
		return nil, ErrConflictingArguments
	}
	if haveSrc && inline {
		fetched, err := fetchResource(src)
		if err != nil {
			return nil, err
		}
		text = fetched
		haveSrc = false
	}
	el := &htmltree.Element{Tag: "script"}
	script := &Script{Content: Content{container: el}}
	if haveSrc {
		if deferred {
			el.SetAttr("defer", "")
		}
		el.SetAttr("src", src)
	} else {
		el.Text = text
		script.Footer = deferred
	}
	for _, a := range attrs {
		el.SetAttr(a.Name, a.Value)
	}
	return script, nil
}

// Style is a stylesheet element: inline text yields a style element, a Src
// reference a link element.
type Style struct {
	Content
}

// NewStyle builds a stylesheet from either inline text (a plain string
// argument) or a Src reference, never both. Inline fetches the referenced
// resource and embeds it as text, defaulting from the configuration key
// inline_styles. A link gets rel="stylesheet" unless the given attributes
// carry a rel of their own.
func NewStyle(args ...any) (*Style, error) {
	var (
		text, src         string
		haveText, haveSrc bool
		inline            = config.Bool(config.KeyInlineStyles)
		attrs             []htmltree.Attribute
	)
	for _, arg := range args {
		switch opt := arg.(type) {
		case string:
			if haveText {
				return nil, fmt.Errorf("%w: more than one stylesheet text", ErrConflictingArguments)
			}
			text, haveText = opt, true
		case Src:
			src, haveSrc = string(opt), true
		case Inline:
			inline = bool(opt)
		case Attrs:
			attrs = append(attrs, opt...)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedOption, arg)
		}
	}
	if haveText == haveSrc {
		return nil, ErrConflictingArguments
	}
	if haveSrc && inline {
		fetched, err := fetchResource(src)
		if err != nil {
			return nil, err
		}
		text = fetched
		haveSrc = false
	}
	var el *htmltree.Element
	if haveSrc {
		el = &htmltree.Element{Tag: "link"}
		el.SetAttr("href", src)
		for _, a := range attrs {
			el.SetAttr(a.Name, a.Value)
		}
		if _, ok := el.Attr("rel"); !ok {
			el.SetAttr("rel", "stylesheet")
		}
	} else {
		el = &htmltree.Element{Tag: "style", Text: text}
		for _, a := range attrs {
			el.SetAttr(a.Name, a.Value)
		}
	}
	return &Style{Content{container: el}}, nil
}

// fetchResource loads the contents of an http(s) URL or a local file.
func fetchResource(location string) (string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		resp, err := http.Get(location)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrResourceFetch, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%w: %s answered %s", ErrResourceFetch, location, resp.Status)
		}
		reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrResourceFetch, err)
		}
		data, err := io.ReadAll(reader)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrResourceFetch, err)
		}
		tracer().Debugf("fetched %d bytes from %s", len(data), location)
		return string(data), nil
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResourceFetch, err)
	}
	return string(data), nil
}
