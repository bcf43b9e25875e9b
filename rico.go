/*
Package rico assembles HTML documents from Go values: text, code, raw
markup, markdown, images, plots and anything else carrying a renderable
representation.

Content values wrap their payload in container elements which compose into
larger structures, ending in a complete document with head and body
sections. Serialization walks the assembled tree and produces compact,
indented or whitespace-stripped HTML text. Package htmltree holds the
element primitive and the serializer, package config the process-wide
defaults consulted along the way.

A short session:

	doc := rico.Must(rico.NewDoc(rico.Title("Report")))
	_ = doc.AppendText("All measurements within bounds.")
	_ = doc.AppendCode("x := 42")
	fmt.Println(doc)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rico

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rico'.
func tracer() tracing.Trace {
	return tracing.Select("rico")
}

// Must unwraps a constructor result and panics on error. It keeps fixtures
// and short scripts free of error plumbing:
//
//	div := rico.Must(rico.NewDiv(rico.Class("row")))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
