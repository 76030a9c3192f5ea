package wns

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Image is one entry of a tile or toast image list. Slice order defines the
// image ids.
type Image struct {
	Src string
	Alt string
}

// Attr is a single markup attribute. Attributes are written in slice order.
type Attr struct {
	Name  string
	Value string
}

// element is a minimal markup tree node. Attribute values and text are held
// unescaped and escaped once, at write time.
type element struct {
	name     string
	attrs    []Attr
	children []*element
	text     string
	hasText  bool
}

func newElement(name string, attrs ...Attr) *element {
	return &element{name: name, attrs: attrs}
}

func (e *element) setAttr(name, value string) {
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

func (e *element) setText(text string) {
	e.text = text
	e.hasText = true
}

func (e *element) add(child *element) {
	e.children = append(e.children, child)
}

func (e *element) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.name)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(Escape(a.Value))
		b.WriteByte('"')
	}

	if len(e.children) == 0 && !e.hasText {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	if e.hasText {
		b.WriteString(Escape(e.text))
	}
	for _, c := range e.children {
		c.writeTo(b)
	}
	b.WriteString("</")
	b.WriteString(e.name)
	b.WriteByte('>')
}

func (e *element) String() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

// AssembleVisual builds the <visual><binding> document shared by tile and
// toast notifications:
//
//	<ROOT [attrs]><visual><binding template="T"><image id="N" src="S"[ alt="A"]/>...<text id="N">T</text>...</binding></visual></ROOT>
//
// Image and text ids are numbered independently, each starting at 1. Ids are
// not checked against the template's slot count.
func AssembleVisual(rootTag string, rootAttrs []Attr, template string, images []Image, texts []string) string {
	root := newElement(rootTag, rootAttrs...)
	binding := newElement("binding", Attr{Name: "template", Value: template})

	for i, img := range images {
		image := newElement("image",
			Attr{Name: "id", Value: strconv.Itoa(i + 1)},
			Attr{Name: "src", Value: img.Src},
		)
		if img.Alt != "" {
			image.setAttr("alt", img.Alt)
		}
		binding.add(image)
	}

	for i, t := range texts {
		text := newElement("text", Attr{Name: "id", Value: strconv.Itoa(i + 1)})
		text.setText(t)
		binding.add(text)
	}

	visual := newElement("visual")
	visual.add(binding)
	root.add(visual)

	return root.String()
}

// Escape returns s with the markup-significant characters & < > " ' replaced
// by entity or character references, and tab, newline and carriage return
// written as character references so attribute normalization keeps them.
// Characters that XML cannot represent become U+FFFD.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	// strings.Builder writes never fail.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
