package medialist

import (
	"math"
	"regexp"

	"github.com/dustin/go-humanize"

	"wyweb.site/medialist/html"
	"wyweb.site/medialist/util"
)

var extClassReplacer = regexp.MustCompile(`(?i)[^_\-a-z0-9]+`)

// Renderer turns media ids into the HTML list.
type Renderer struct {
	linker     MediaLinker
	cfg        Config
	log        Logger
	formatSize func(uint64) string
}

func NewRenderer(linker MediaLinker, cfg Config, logger Logger) *Renderer {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Renderer{
		linker:     linker,
		cfg:        cfg.withDefaults(),
		log:        logger,
		formatSize: FileSize,
	}
}

// Render returns the list markup for ids, or "" when there is nothing to list.
func (r *Renderer) Render(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	items := make([]html.ListItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, html.ListItem{ID: id, Level: 1})
	}
	return html.BuildList(items, "medialist", func(item html.ListItem) string {
		return r.Item(item.ID)
	})
}

// Item renders the link and size line for a single media id.
func (r *Renderer) Item(id string) string {
	name := util.NoNS(id)
	ext, _ := r.linker.MimeType(id)
	attrs := []map[string]string{
		html.Href(r.linker.MediaURL(id)),
		html.Class("media mediafile mf_" + ExtClass(ext)),
		html.Attr("title", name),
	}
	if r.cfg.MediaTarget != "" {
		attrs = append(attrs, html.Attr("target", r.cfg.MediaTarget))
	}
	link := html.NewHTMLElement("a", attrs...)
	link.AppendText(html.Escape(name))
	return html.RenderInline(link) + "&nbsp;(" + r.size(id) + ")\n"
}

func (r *Renderer) size(id string) string {
	size, err := r.linker.MediaSize(id)
	if err != nil || size < 0 {
		r.log.Debug("medialist: media size unknown", "id", id, "error", err)
		size = 0
	}
	return r.formatSize(uint64(size))
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FileSize formats size with one decimal and 1024 based units, "12.3 KB" or "512 B".
// Trailing zeros are dropped, so 2048 bytes read "2 KB".
func FileSize(size uint64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return humanize.FtoaWithDigits(math.Round(value*10)/10, 1) + " " + sizeUnits[unit]
}

// ExtClass makes a CSS class token of a file extension.
func ExtClass(ext string) string {
	return extClassReplacer.ReplaceAllString(ext, "_")
}
