package html

import (
	"bytes"
)

// HeadData holds what goes into the <head> of a standalone document.
type HeadData struct {
	Title       string
	Stylesheets []string
	Styles      []string
	Meta        []string
}

func BuildHead(headData HeadData) *HTMLElement {
	head := NewHTMLElement("head")
	head.AppendNew("meta", Attr("charset", "utf-8"))
	title := head.AppendNew("title")
	title.AppendText(Escape(headData.Title))
	for _, href := range headData.Stylesheets {
		head.AppendNew("link", Attr("rel", "stylesheet"), Href(href))
	}
	for _, style := range headData.Styles {
		tag := head.AppendNew("style")
		tag.AppendText(style)
	}
	for _, meta := range headData.Meta {
		head.AppendText(meta)
	}
	return head
}

// BuildDocument wraps body into a complete HTML document.
func BuildDocument(body *HTMLElement, headData HeadData) (bytes.Buffer, error) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n")
	document := NewHTMLElement("html")
	document.Append(BuildHead(headData))
	document.Append(body)
	RenderHTML(document, &buf)
	return buf, nil
}
