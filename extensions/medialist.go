package extensions

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"wyweb.site/medialist/medialist"
)

var (
	_mediaListOpen  = []byte("{{medialist>")
	_mediaListClose = []byte("}}")
)

var (
	pageIDKey        = parser.NewContextKey()
	cacheDisabledKey = parser.NewContextKey()
)

// NewPageContext returns a parser context for rendering page id. Pass it to Convert or Parse
// with parser.WithContext so @PAGE@, @NAMESPACE@ and @ALL@ refer to that page.
func NewPageContext(id string) parser.Context {
	pc := parser.NewContext()
	pc.Set(pageIDKey, id)
	return pc
}

// PageID returns the page a parser context was created for.
func PageID(pc parser.Context) string {
	if pc == nil {
		return ""
	}
	id, _ := pc.Get(pageIDKey).(string)
	return id
}

// CacheDisabled reports whether the parsed document contains a media list and its rendered
// output must therefore not be cached.
func CacheDisabled(pc parser.Context) bool {
	if pc == nil {
		return false
	}
	disabled, _ := pc.Get(cacheDisabledKey).(bool)
	return disabled
}

type MediaListNode struct {
	ast.BaseInline
	Arg     string
	Request medialist.Request
}

var KindMediaList = ast.NewNodeKind("MediaList")

func (n *MediaListNode) Kind() ast.NodeKind {
	return KindMediaList
}

// Dump implements Node.Dump.
func (n *MediaListNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Arg":  n.Arg,
		"Mode": n.Request.Mode.String(),
		"ID":   n.Request.ID,
	}, nil)
}

type mediaListParser struct {
	list *medialist.MediaList
}

func (p *mediaListParser) Trigger() []byte {
	return []byte{'{'}
}

func (p *mediaListParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, _mediaListOpen) {
		return nil
	}
	rest := line[len(_mediaListOpen):]
	if len(rest) == 0 {
		return nil
	}
	// the argument is at least one character long, so "}}}" closes after the first brace
	stop := bytes.Index(rest[1:], _mediaListClose)
	if stop < 0 {
		return nil
	}
	stop++
	arg := string(rest[:stop])
	req := p.list.Resolve(arg, PageID(pc))
	if req.Valid() {
		pc.Set(cacheDisabledKey, true)
	}
	block.Advance(len(_mediaListOpen) + stop + len(_mediaListClose))
	return &MediaListNode{Arg: arg, Request: req}
}

type mediaListTransformer struct{}

// Transform moves media lists out of their paragraphs. Inline content before and after a
// list stays in paragraphs of its own, paragraphs left blank are dropped.
func (t mediaListTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	paragraphs := make([]ast.Node, 0)
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != KindMediaList {
			return ast.WalkContinue, nil
		}
		para := n.Parent()
		if para == nil || para.Kind() != ast.KindParagraph || para.Parent() == nil {
			return ast.WalkContinue, nil
		}
		if len(paragraphs) == 0 || paragraphs[len(paragraphs)-1] != para {
			paragraphs = append(paragraphs, para)
		}
		return ast.WalkContinue, nil
	})
	source := reader.Source()
	for _, para := range paragraphs {
		splitParagraph(para, source)
	}
}

func splitParagraph(para ast.Node, source []byte) {
	outer := para.Parent()
	current := ast.NewParagraph()
	flush := func() {
		if !isBlank(current, source) {
			if last, ok := current.LastChild().(*ast.Text); ok {
				last.Segment = last.Segment.TrimRightSpace(source)
				last.SetSoftLineBreak(false)
				last.SetHardLineBreak(false)
			}
			outer.InsertBefore(outer, para, current)
		}
		current = ast.NewParagraph()
	}
	for c := para.FirstChild(); c != nil; {
		next := c.NextSibling()
		if c.Kind() == KindMediaList {
			flush()
			outer.InsertBefore(outer, para, c)
			c = next
			continue
		}
		if isBlank(current, source) {
			if txt, ok := c.(*ast.Text); ok {
				txt.Segment = txt.Segment.TrimLeftSpace(source)
				if txt.Segment.Len() == 0 {
					c = next
					continue
				}
			}
		}
		current.AppendChild(current, c)
		c = next
	}
	flush()
	outer.RemoveChild(outer, para)
}

// isBlank reports whether n holds nothing but whitespace text.
func isBlank(n ast.Node, source []byte) bool {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		txt, ok := c.(*ast.Text)
		if !ok {
			return false
		}
		seg := txt.Segment.TrimLeftSpace(source)
		if seg.Len() > 0 {
			return false
		}
	}
	return true
}

// MediaListHTMLRenderer writes the media list of every MediaListNode.
type MediaListHTMLRenderer struct {
	list *medialist.MediaList
}

func NewMediaListHTMLRenderer(list *medialist.MediaList) renderer.NodeRenderer {
	return &MediaListHTMLRenderer{list: list}
}

// RegisterFuncs registers the renderer with the Goldmark renderer.
func (r *MediaListHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMediaList, r.renderMediaList)
}

func (r *MediaListHTMLRenderer) renderMediaList(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n, ok := node.(*MediaListNode)
	if !ok || !entering {
		return ast.WalkContinue, nil
	}
	if n.Request.Valid() {
		_, _ = w.WriteString(r.list.Render(n.Request))
	}
	return ast.WalkSkipChildren, nil
}

type mediaListExtension struct {
	list *medialist.MediaList
}

func (e *mediaListExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(
			util.Prioritized(&mediaListParser{e.list}, priorityMediaListParser),
		),
		parser.WithASTTransformers(
			util.Prioritized(mediaListTransformer{}, priorityMediaListTransformer),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(NewMediaListHTMLRenderer(e.list), priorityMediaListHTMLRenderer),
		),
	)
}

// MediaList recognises {{medialist>ARG}} tokens and renders them through list.
func MediaList(list *medialist.MediaList) goldmark.Extender {
	return &mediaListExtension{list}
}
