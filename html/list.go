package html

import (
	"fmt"
	"strings"
)

// ListItem is one entry of a list built by BuildList. Level starts at 1; deeper levels nest
// inside the previous item.
type ListItem struct {
	ID    string
	Level int
}

// BuildList renders items as nested unordered lists. The outermost list carries class and
// every item body is produced by render.
func BuildList(items []ListItem, class string, render func(ListItem) string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	level := 0
	for _, item := range items {
		lvl := max(item.Level, 1)
		if lvl > level {
			for l := level; l < lvl; l++ {
				switch {
				case l == 0:
					fmt.Fprintf(&b, "<ul class=\"%s\">\n", Escape(class))
				case l > level:
					b.WriteString("<li class=\"clear\">\n<ul>\n")
				default:
					b.WriteString("\n<ul>\n")
				}
			}
		} else {
			b.WriteString("</li>\n")
			for ; level > lvl; level-- {
				b.WriteString("</ul>\n</li>\n")
			}
		}
		level = lvl
		fmt.Fprintf(&b, "<li class=\"level%d\"><div class=\"li\">", lvl)
		b.WriteString(render(item))
		b.WriteString("</div>")
	}
	b.WriteString("</li>\n")
	for ; level > 1; level-- {
		b.WriteString("</ul>\n</li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String()
}
