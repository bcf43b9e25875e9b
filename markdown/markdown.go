/*
Package markdown renders markdown text to HTML markup using goldmark.
GitHub Flavored Markdown extensions are enabled and raw HTML embedded in the
markdown is passed through unchanged.

Importing the package installs Render as the process-wide markdown renderer:

	import _ "github.com/e10v/rico/markdown"

A different renderer may be configured at any time through the config
package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package markdown

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/e10v/rico/config"
)

// tracer traces with key 'rico.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("rico.markdown")
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

func init() {
	if config.Markdown() == nil {
		_ = config.Set(config.Options{config.KeyMarkdownRenderer: Render})
	}
}

// Render converts markdown text to HTML markup.
func Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("cannot render markdown: %w", err)
	}
	tracer().Debugf("rendered %d bytes of markdown", buf.Len())
	return buf.String(), nil
}
