package rico

import (
	"fmt"
)

// Div is a composable group of content values in one <div> container.
type Div struct {
	Content
}

// NewDiv builds a grouping container. Content values contribute their
// containers directly; any other value gets an individual wrapper, so
// NewDiv(a, b) yields one child per argument. Class sets the container
// class.
func NewDiv(values ...any) (*Div, error) {
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
		if content, ok := v.(ContentValue); ok {
			d.container.AppendChild(content.Container())
			continue
		}
		obj, err := NewObj(v)
		if err != nil {
			return nil, err
		}
		d.container.AppendChild(obj.Container())
	}
	return d, nil
}

// Append places all values of one call into a single fresh child container,
// dispatched like NewObj. Sequential calls create independent sibling
// containers; the difference shows in the serialized layout.
func (d *Div) Append(values ...any) error {
	obj, err := NewObj(values...)
	if err != nil {
		return err
	}
	d.container.AppendChild(obj.Container())
	return nil
}

// AppendTag appends tag content, as NewTag builds it.
func (d *Div) AppendTag(tag string, args ...any) error {
	content, err := NewTag(tag, args...)
	if err != nil {
		return err
	}
	d.container.AppendChild(content.Container())
	return nil
}

// AppendText appends text content, as NewText builds it.
func (d *Div) AppendText(v any, args ...any) error {
	content, err := NewText(v, args...)
	if err != nil {
		return err
	}
	d.container.AppendChild(content.Container())
	return nil
}

// AppendCode appends a code block, as NewCode builds it.
func (d *Div) AppendCode(text string, args ...any) error {
	content, err := NewCode(text, args...)
	if err != nil {
		return err
	}
	d.container.AppendChild(content.Container())
	return nil
}

// AppendHTML appends raw markup, as NewHTML builds it.
func (d *Div) AppendHTML(markup string, args ...any) error {
	content, err := NewHTML(markup, args...)
	if err != nil {
		return err
	}
	d.container.AppendChild(content.Container())
	return nil
}

// AppendMarkdown appends rendered markdown, as NewMarkdown builds it.
func (d *Div) AppendMarkdown(text string, args ...any) error {
	content, err := NewMarkdown(text, args...)
	if err != nil {
		return err
	}
	d.container.AppendChild(content.Container())
	return nil
}

// AppendImage appends an embedded image, as NewImage builds it.
func (d *Div) AppendImage(data any, mimeSubtype string, args ...any) error {
	content, err := NewImage(data, mimeSubtype, args...)
	if err != nil {
		return err
	}
	d.container.AppendChild(content.Container())
	return nil
}

// AppendPlot appends a rendered plot, as NewPlot builds it.
func (d *Div) AppendPlot(v any, args ...any) error {
	content, err := NewPlot(v, args...)
	if err != nil {
		return err
	}
	d.container.AppendChild(content.Container())
	return nil
}
