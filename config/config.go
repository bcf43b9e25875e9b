/*
Package config holds the process-wide configuration of the rico document
builders: serialization defaults, text styling defaults, asset locations and
the markdown renderer.

The configuration is a flat table of named options. Set validates and applies
a batch of options atomically, Context applies a batch for the duration of a
callback and restores the previous state afterwards. The table is not
synchronized; programs changing the configuration from several goroutines
have to serialize those changes themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package config

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rico.config'.
func tracer() tracing.Trace {
	return tracing.Select("rico.config")
}

// ErrKeyNotFound is thrown if an option key is not part of the configuration
// table.
var ErrKeyNotFound = errors.New("configuration key not found")

// ErrInvalidOption is thrown if an option value has the wrong type or lies
// outside the option's domain.
var ErrInvalidOption = errors.New("invalid configuration option")

// MarkdownRenderer converts markdown text to HTML markup.
type MarkdownRenderer func(text string) (string, error)

// Options is a batch of configuration values, keyed by option name.
type Options map[string]any

// Configuration keys.
const (
	KeyIndentHTML       = "indent_html"       // bool: indent serialized documents
	KeyIndentSpace      = "indent_space"      // string: indentation unit
	KeyStripHTML        = "strip_html"        // bool: strip layout whitespace
	KeyTextMono         = "text_mono"         // bool: monospace font for text content
	KeyTextWrap         = "text_wrap"         // bool: allow text content to wrap
	KeyImageFormat      = "image_format"      // string: "svg" or "png"
	KeyInlineStyles     = "inline_styles"     // bool: embed external stylesheets
	KeyInlineScripts    = "inline_scripts"    // bool: embed external scripts
	KeyMetaCharset      = "meta_charset"      // string: document charset, "" drops the meta tag
	KeyMetaViewport     = "meta_viewport"     // string: viewport definition, "" drops the meta tag
	KeyBootstrap        = "bootstrap"         // string: "css", "full" or "none"
	KeyBootstrapCSS     = "bootstrap_css"     // string: Bootstrap stylesheet location
	KeyBootstrapJS      = "bootstrap_js"      // string: Bootstrap script location
	KeyDataframeStyle   = "dataframe_style"   // string: stylesheet for dataframe tables, "" drops it
	KeyMarkdownRenderer = "markdown_renderer" // MarkdownRenderer or nil
)

// BootstrapCSS is the default location of the Bootstrap stylesheet.
const BootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.0-alpha3/dist/css/bootstrap.min.css"

// BootstrapJS is the default location of the Bootstrap script bundle.
const BootstrapJS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.0-alpha3/dist/js/bootstrap.bundle.min.js"

// DataframeStyle is the default stylesheet for tables rendered from
// dataframes, in the visual tradition of notebook output.
const DataframeStyle = `.dataframe table {
    border: none;
    border-collapse: collapse;
    border-spacing: 0;
    font-size: 12px;
    table-layout: fixed;
}

.dataframe thead {
    border-bottom: 1px solid black;
    vertical-align: bottom;
}

.dataframe tr,
.dataframe th,
.dataframe td {
    text-align: right;
    vertical-align: middle;
    padding: 0.5em;
    line-height: normal;
    white-space: normal;
    max-width: none;
    border: none;
}

.dataframe th {
    font-weight: bold;
}

.dataframe tbody tr:nth-child(odd) {
    background: #f5f5f5;
}`

func defaults() Options {
	return Options{
		KeyIndentHTML:       false,
		KeyIndentSpace:      "  ",
		KeyStripHTML:        false,
		KeyTextMono:         false,
		KeyTextWrap:         false,
		KeyImageFormat:      "svg",
		KeyInlineStyles:     false,
		KeyInlineScripts:    false,
		KeyMetaCharset:      "utf-8",
		KeyMetaViewport:     "width=device-width, initial-scale=1",
		KeyBootstrap:        "css",
		KeyBootstrapCSS:     BootstrapCSS,
		KeyBootstrapJS:      BootstrapJS,
		KeyDataframeStyle:   DataframeStyle,
		KeyMarkdownRenderer: nil,
	}
}

var current = defaults()

// Get returns the value of a single option.
func Get(key string) (any, error) {
	if value, ok := current[key]; ok {
		return value, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// All returns a copy of the complete configuration table.
func All() Options {
	opts := make(Options, len(current))
	for key, value := range current {
		opts[key] = value
	}
	return opts
}

// Set validates opts and applies them to the configuration table. Validation
// is all-or-nothing: if any option is rejected, the table stays unchanged.
func Set(opts Options) error {
	for key, value := range opts {
		if err := validate(key, value); err != nil {
			return err
		}
	}
	for key, value := range opts {
		if fn, ok := value.(func(text string) (string, error)); ok {
			value = MarkdownRenderer(fn)
		}
		current[key] = value
	}
	tracer().Debugf("configuration changed, %d options set", len(opts))
	return nil
}

// Context applies opts, runs fn and restores the previous configuration
// afterwards, also when fn panics. If opts fail validation, fn does not run.
// Context returns the error of fn.
func Context(opts Options, fn func() error) error {
	saved := All()
	if err := Set(opts); err != nil {
		return err
	}
	defer func() {
		current = saved
	}()
	return fn()
}

// Reset restores the default configuration.
func Reset() {
	current = defaults()
}

// Bool returns the value of a boolean option, or false if key does not name
// one.
func Bool(key string) bool {
	value, _ := current[key].(bool)
	return value
}

// String returns the value of a string option, or "" if key does not name
// one.
func String(key string) string {
	value, _ := current[key].(string)
	return value
}

// Markdown returns the configured markdown renderer, or nil if none is set.
// Importing the rico/markdown package installs a default renderer.
func Markdown() MarkdownRenderer {
	renderer, _ := current[KeyMarkdownRenderer].(MarkdownRenderer)
	return renderer
}

func validate(key string, value any) error {
	switch key {
	case KeyIndentHTML, KeyStripHTML, KeyTextMono, KeyTextWrap,
		KeyInlineStyles, KeyInlineScripts:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%w: %s expects a bool, got %T", ErrInvalidOption, key, value)
		}
	case KeyIndentSpace, KeyMetaCharset, KeyMetaViewport,
		KeyBootstrapCSS, KeyBootstrapJS, KeyDataframeStyle:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidOption, key, value)
		}
	case KeyImageFormat:
		if s, ok := value.(string); !ok || (s != "svg" && s != "png") {
			return fmt.Errorf("%w: %s expects one of svg, png; got %v", ErrInvalidOption, key, value)
		}
	case KeyBootstrap:
		if s, ok := value.(string); !ok || (s != "css" && s != "full" && s != "none") {
			return fmt.Errorf("%w: %s expects one of css, full, none; got %v", ErrInvalidOption, key, value)
		}
	case KeyMarkdownRenderer:
		switch value.(type) {
		case nil, MarkdownRenderer, func(text string) (string, error):
		default:
			return fmt.Errorf("%w: %s expects a MarkdownRenderer, got %T", ErrInvalidOption, key, value)
		}
	default:
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return nil
}
