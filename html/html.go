package html

import (
	"bytes"
	"fmt"
	"slices"
	"sort"
	"strings"

	gmutil "github.com/yuin/goldmark/util"
)

var voidElements = []string{
	"area",
	"base",
	"br",
	"col",
	"embed",
	"hr",
	"img",
	"input",
	"link",
	"meta",
	"param", //Deprecated
	"source",
	"track",
	"wbr",
}

type HTMLElement struct {
	Tag        string
	Content    string
	Attributes map[string]string
	Children   []*HTMLElement
	indent     bool
}

func NewHTMLElement(tag string, attr ...map[string]string) *HTMLElement {
	attributes := make(map[string]string)
	for _, attributeList := range attr {
		for key, value := range attributeList {
			if prev, ok := attributes[key]; ok {
				attributes[key] = prev + " " + value
			} else {
				attributes[key] = value
			}
		}
	}
	return &HTMLElement{
		Tag:        tag,
		Attributes: attributes,
		Children:   make([]*HTMLElement, 0),
		indent:     true,
	}
}

func (e *HTMLElement) NoIndent() {
	e.indent = false
}

func (e *HTMLElement) Append(elem *HTMLElement) {
	if elem == nil {
		return
	}
	e.Children = append(e.Children, elem)
}

// Convienience function to quickly make a class attribute
func Class(cls string) map[string]string {
	return map[string]string{"class": cls}
}

func ID(id string) map[string]string {
	return map[string]string{"id": id}
}

// Convienience function to quickly make an href attribute
func Href(url string) map[string]string {
	return map[string]string{"href": url}
}

// Attr makes a single attribute of any name.
func Attr(name, value string) map[string]string {
	return map[string]string{name: value}
}

func (e *HTMLElement) AppendNew(tag string, attr ...map[string]string) *HTMLElement {
	elem := NewHTMLElement(tag, attr...)
	e.Children = append(e.Children, elem)
	return elem
}

// AppendText appends a text node. The content is written verbatim, callers escape it
// when it did not come from a trusted renderer.
func (e *HTMLElement) AppendText(text string) *HTMLElement {
	elem := &HTMLElement{
		Content: text,
		indent:  true,
	}
	e.Children = append(e.Children, elem)
	return elem
}

// Escape escapes s for use in text nodes and attribute values.
func Escape(s string) string {
	return string(gmutil.EscapeHTML([]byte(s)))
}

func writeAttributes(out *bytes.Buffer, elem *HTMLElement) {
	keys := make([]string, 0, len(elem.Attributes))
	for key := range elem.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := elem.Attributes[key]
		out.WriteByte(' ')
		out.WriteString(key)
		if value != "" {
			out.WriteString(`="`)
			out.WriteString(Escape(value))
			out.WriteByte('"')
		}
	}
}

func isShort(elem *HTMLElement) (bool, int) {
	if elem == nil {
		return false, 0
	}
	if len(elem.Children) > 1 {
		return false, 0
	}
	if len(elem.Children) == 0 {
		if elem.Tag == "" {
			return true, len(elem.Content)
		}
		return true, 0
	}
	if elem.Children[0].Tag != "" {
		return false, 0
	}
	return true, len(elem.Children[0].Content)
}

func openTag(elem *HTMLElement, depth int) []byte {
	var out bytes.Buffer
	out.WriteString(strings.Repeat("    ", depth))
	out.WriteByte('<')
	out.WriteString(elem.Tag)
	writeAttributes(&out, elem)
	if slices.Contains(voidElements, elem.Tag) {
		out.WriteString(">\n")
	} else if short, textlen := isShort(elem); short && textlen < 32 {
		out.WriteByte('>')
	} else {
		out.WriteString(">\n")
	}
	return out.Bytes()
}

func closeTag(elem *HTMLElement, depth int) []byte {
	var out bytes.Buffer
	if short, textlen := isShort(elem); !(short && textlen < 32) {
		out.WriteString(strings.Repeat("    ", depth))
	}
	out.WriteString("</")
	out.WriteString(elem.Tag)
	out.WriteString(">\n")
	return out.Bytes()
}

// RenderHTML writes root as an indented document fragment.
func RenderHTML(root *HTMLElement, text *bytes.Buffer, opts ...int) {
	if root == nil {
		return
	}
	var depth int
	var siblings int
	if len(opts) > 0 {
		depth = opts[0]
	}
	if len(opts) > 1 {
		siblings = opts[1]
	}
	if root.Tag == "" {
		lines := strings.Split(root.Content, "\n")
		for _, line := range lines {
			if short, textlen := isShort(root); !short || textlen >= 32 || len(lines) > 1 || siblings > 1 {
				if root.indent {
					text.WriteString(strings.Repeat("    ", depth))
				}
				text.WriteString(line)
				text.WriteByte('\n')
			} else {
				text.WriteString(strings.TrimSpace(line))
			}
		}
		return
	}
	text.Write(openTag(root, depth))
	for _, elem := range root.Children {
		RenderHTML(elem, text, depth+1, len(root.Children))
	}
	// void elements should not have a closing tag!
	if !slices.Contains(voidElements, root.Tag) {
		text.Write(closeTag(root, depth))
	}
}

// RenderInline writes root without any whitespace between tags.
func RenderInline(root *HTMLElement) string {
	var out bytes.Buffer
	renderInline(root, &out)
	return out.String()
}

func renderInline(elem *HTMLElement, out *bytes.Buffer) {
	if elem == nil {
		return
	}
	if elem.Tag == "" {
		out.WriteString(elem.Content)
		return
	}
	out.WriteByte('<')
	out.WriteString(elem.Tag)
	writeAttributes(out, elem)
	out.WriteByte('>')
	if slices.Contains(voidElements, elem.Tag) {
		return
	}
	for _, child := range elem.Children {
		renderInline(child, out)
	}
	fmt.Fprintf(out, "</%s>", elem.Tag)
}
