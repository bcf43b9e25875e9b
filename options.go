package rico

import (
	"github.com/e10v/rico/config"
	"github.com/e10v/rico/htmltree"
)

// --- Serialization options -------------------------------------------------

// SerializeOption overrides one serialization default from the
// configuration for a single Serialize call.
type SerializeOption interface {
	applySerialize(opts *htmltree.SerializeOpts)
}

// Indent toggles re-indentation of the serialized markup.
type Indent bool

// Space sets the indentation unit.
type Space string

// Strip toggles removal of layout whitespace before serialization.
type Strip bool

func (o Indent) applySerialize(opts *htmltree.SerializeOpts) { opts.Indent = bool(o) }
func (o Space) applySerialize(opts *htmltree.SerializeOpts)  { opts.Space = string(o) }
func (o Strip) applySerialize(opts *htmltree.SerializeOpts)  { opts.Strip = bool(o) }

// serializeOpts resolves the effective serialization options: configuration
// defaults first, then the given overrides in order.
func serializeOpts(opts []SerializeOption) htmltree.SerializeOpts {
	resolved := htmltree.SerializeOpts{
		Indent: config.Bool(config.KeyIndentHTML),
		Space:  config.String(config.KeyIndentSpace),
		Strip:  config.Bool(config.KeyStripHTML),
	}
	for _, o := range opts {
		o.applySerialize(&resolved)
	}
	return resolved
}

// --- Constructor options ---------------------------------------------------

// Constructor options are typed values mixed into a constructor's argument
// list and recognized by type. Constructors reject options they do not
// support with ErrUnsupportedOption.
type (
	// Class sets the class attribute of the content's container.
	Class string
	// Mono renders text content in a monospace font.
	Mono bool
	// Wrap lets text content wrap.
	Wrap bool
	// Src references an external script or stylesheet.
	Src string
	// Inline embeds an external resource instead of referencing it.
	Inline bool
	// Defer marks a script as deferred: the defer attribute on a
	// referenced script, the document footer slot for an inline one.
	Defer bool
	// Format selects the image format of a rendered plot.
	Format string
	// Title sets the document title.
	Title string
	// Bootstrap selects the Bootstrap assets of a document: "css",
	// "full" or "none".
	Bootstrap string
	// StripDataframeBorders removes border attributes from dataframe
	// tables in raw markup.
	StripDataframeBorders bool
	// ExtraStyles adds stylesheets to a document head.
	ExtraStyles []*Style
	// ExtraScripts adds scripts to a document body.
	ExtraScripts []*Script
	// Attrs sets additional element attributes, in the given order.
	Attrs []htmltree.Attribute
)

// isOption reports whether v is one of the typed option values. Options
// never travel through content dispatch.
func isOption(v any) bool {
	switch v.(type) {
	case Class, Mono, Wrap, Src, Inline, Defer, Format, Title, Bootstrap,
		StripDataframeBorders, ExtraStyles, ExtraScripts, Attrs,
		Indent, Space, Strip:
		return true
	}
	return false
}
