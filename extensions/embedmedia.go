package extensions

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"wyweb.site/medialist/html"
)

// MediaTyper reports the extension and mime type of a media reference.
type MediaTyper interface {
	MimeType(id string) (ext string, mime string)
}

type mediaType int

const (
	mediaAudio mediaType = iota
	mediaVideo
)

type mediaInfo struct {
	mime        string
	destination []byte
	title       string
}

type media struct {
	ast.BaseBlock
	info   mediaInfo
	medium mediaType
}

var KindMedia = ast.NewNodeKind("Media")

func (n *media) Kind() ast.NodeKind {
	return KindMedia
}

func (n *media) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Destination": string(n.info.destination),
		"Mime":        n.info.mime,
	}, nil)
}

func NewMedia(i mediaInfo, t mediaType) *media {
	return &media{
		info:   i,
		medium: t,
	}
}

type mediaTransformer struct {
	typer MediaTyper
}

// Transform turns images pointing at audio or video files into players.
func (r mediaTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	images := make([]*ast.Image, 0)
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if img, ok := n.(*ast.Image); entering && ok {
			images = append(images, img)
		}
		return ast.WalkContinue, nil
	})
	for _, img := range images {
		_, mime := r.typer.MimeType(string(img.Destination))
		var flavor mediaType
		switch {
		case strings.HasPrefix(mime, "video/"):
			flavor = mediaVideo
		case strings.HasPrefix(mime, "audio/"):
			flavor = mediaAudio
		default:
			continue
		}
		embed := NewMedia(mediaInfo{
			mime:        mime,
			destination: img.Destination,
			title:       string(img.Text(reader.Source())),
		}, flavor)
		parent := img.Parent()
		parent.ReplaceChild(parent, img, embed)
		// If the media is the only child of a paragraph, replace the paragraph with the media.
		if parent.Kind() == ast.KindParagraph && parent.ChildCount() == 1 && parent.Parent() != nil {
			parent.Parent().ReplaceChild(parent.Parent(), parent, embed)
		}
	}
}

type MediaHTMLRenderer struct{}

func NewMediaHTMLRenderer() renderer.NodeRenderer {
	return &MediaHTMLRenderer{}
}

func (r *MediaHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMedia, r.renderMedia)
}

func (r *MediaHTMLRenderer) renderMedia(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n, ok := node.(*media)
	if !ok || !entering {
		return ast.WalkContinue, nil
	}
	var player *html.HTMLElement
	switch n.medium {
	case mediaVideo:
		player = html.NewHTMLElement("video", html.Class("media"), html.Attr("controls", ""))
	case mediaAudio:
		player = html.NewHTMLElement("audio", html.Class("media"), html.Attr("controls", ""))
	}
	src := string(n.info.destination)
	player.AppendNew("source", html.Attr("src", src), html.Attr("type", n.info.mime))
	name := n.info.title
	if name == "" {
		name = src[strings.LastIndexAny(src, "/:")+1:]
	}
	player.AppendNew("a", html.Href(src)).AppendText(html.Escape(name))
	_, _ = w.WriteString(html.RenderInline(player))
	if n.Parent() != nil && n.Parent().Kind() == ast.KindDocument {
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

type mediaEmbed struct {
	typer MediaTyper
}

func (e *mediaEmbed) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(mediaTransformer{e.typer}, priorityMediaTransformer),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(NewMediaHTMLRenderer(), priorityMediaHTMLRenderer),
		),
	)
}

// EmbedMedia renders images that point at audio or video files as players.
func EmbedMedia(typer MediaTyper) goldmark.Extender {
	return &mediaEmbed{typer}
}
