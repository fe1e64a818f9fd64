///////////////////////////////////////////////////////////////////////////////////////////////////
//                                                                                               //
//                                                                                               //
//         oooooo   oooooo     oooo           oooooo   oooooo     oooo         .o8               //
//          `888.    `888.     .8'             `888.    `888.     .8'         "888               //
//           `888.   .8888.   .8' oooo    ooo   `888.   .8888.   .8' .ooooo.   888oooo.          //
//            `888  .8'`888. .8'   `88.  .8'     `888  .8'`888. .8' d88' `88b  d88' `88b         //
//             `888.8'  `888.8'     `88..8'       `888.8'  `888.8'  888ooo888  888   888         //
//              `888'    `888'       `888'         `888'    `888'   888    .o  888   888         //
//               `8'      `8'         .8'           `8'      `8'    `Y8bod8P'  `Y8bod8P'         //
//                                .o..P'                                                         //
//                                `Y8P'                                                          //
//                                                                                               //
//                                                                                               //
//                              Copyright (C) 2024  Wyatt Sheffield                              //
//                                                                                               //
//                 This program is free software: you can redistribute it and/or                 //
//                 modify it under the terms of the GNU General Public License as                //
//                 published by the Free Software Foundation, either version 3 of                //
//                      the License, or (at your option) any later version.                      //
//                                                                                               //
//                This program is distributed in the hope that it will be useful,                //
//                 but WITHOUT ANY WARRANTY; without even the implied warranty of                //
//                 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the                 //
//                          GNU General Public License for more details.                         //
//                                                                                               //
//                   You should have received a copy of the GNU General Public                   //
//                         License along with this program.  If not, see                         //
//                                <https://www.gnu.org/licenses/>.                               //
//                                                                                               //
//                                                                                               //
///////////////////////////////////////////////////////////////////////////////////////////////////

package wiki

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	gmText "github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"

	wwExt "wyweb.site/medialist/extensions"
	"wyweb.site/medialist/html"
	"wyweb.site/medialist/medialist"
	"wyweb.site/medialist/util"
)

type cachedRender struct {
	modTime time.Time
	html    string
}

// Wiki is a filesystem backed wiki: markdown pages below Config.PageDir and media files
// below Config.MediaDir. It provides every host service a MediaList needs.
type Wiki struct {
	cfg               Config
	acl               *ACL
	log               medialist.Logger
	logRoot           *glog.BaseLogger
	list              *medialist.MediaList
	md                goldmark.Markdown
	instructionParser parser.Parser
	instructions      instructionCache
	renders           struct {
		sync.Mutex
		entries map[string]cachedRender
	}
}

var _ medialist.Host = (*Wiki)(nil)
var _ wwExt.MediaLinker = (*Wiki)(nil)
var _ wwExt.MediaTyper = (*Wiki)(nil)

// Open loads the configuration at path and builds a Wiki logging through go-logger.
func Open(path string) (*Wiki, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, nil)
}

// New builds a Wiki from cfg. A nil logger is replaced by a go-logger logger configured by
// cfg.Log.
func New(cfg Config, logger medialist.Logger) (*Wiki, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	acl, err := NewACL(cfg.ACL, cfg.DefaultACL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	w := &Wiki{
		cfg: cfg,
		acl: acl,
		log: logger,
	}
	if w.log == nil {
		root, err := NewLogger(cfg.Log)
		if err != nil {
			return nil, err
		}
		w.logRoot = root
		w.log = root.GetLogger(loggerRoot)
	}
	w.instructions.entries = make(map[string]cachedInstructions)
	w.renders.entries = make(map[string]cachedRender)
	w.list = medialist.New(w, cfg.mediaListConfig(), medialist.WithLogger(w.childLogger(loggerMediaList)))
	w.instructionParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	w.md = goldmark.New(
		goldmark.WithExtensions(
			wwExt.MediaList(w.list),
			wwExt.LinkRewrite(w),
			wwExt.EmbedMedia(w),
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle(cfg.Highlight.Style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			gmhtml.WithUnsafe(),
		),
	)
	return w, nil
}

func (w *Wiki) childLogger(name string) medialist.Logger {
	if w.logRoot != nil {
		return w.logRoot.GetLogger(name)
	}
	return w.log
}

func (w *Wiki) Config() Config {
	return w.cfg
}

func (w *Wiki) AuthLevel(id string) medialist.AuthLevel {
	return w.acl.Check(id)
}

// Render converts page id to HTML. Rendered pages are cached until the page file changes,
// except pages holding a media list which always reflect the current media directory.
func (w *Wiki) Render(id string) (string, error) {
	id = util.CleanID(id)
	log := w.childLogger(loggerRender)
	defer util.Timer("render "+id, log.Debug)()
	if w.AuthLevel(id) < medialist.AuthRead {
		return "", fmt.Errorf("%w: %s", ErrAccessDenied, id)
	}
	fn, stat, err := w.statPage(id)
	if err != nil {
		return "", err
	}
	w.renders.Lock()
	entry, ok := w.renders.entries[id]
	w.renders.Unlock()
	if ok && entry.modTime.Equal(stat.ModTime()) {
		return entry.html, nil
	}
	src, err := os.ReadFile(fn)
	if err != nil {
		return "", err
	}
	pc := wwExt.NewPageContext(id)
	doc := w.md.Parser().Parse(gmText.NewReader(src), parser.WithContext(pc))
	var buf bytes.Buffer
	if w.cfg.TOC {
		buf.WriteString(renderTOC(doc, src))
	}
	if err := w.md.Renderer().Render(&buf, src, doc); err != nil {
		return "", fmt.Errorf("render %s: %w", id, err)
	}
	out := buf.String()
	if wwExt.CacheDisabled(pc) {
		log.Debug("page not cached", "id", id)
		w.Invalidate(id)
		return out, nil
	}
	w.renders.Lock()
	w.renders.entries[id] = cachedRender{modTime: stat.ModTime(), html: out}
	w.renders.Unlock()
	return out, nil
}

// Cached reports whether a rendered copy of page id is held.
func (w *Wiki) Cached(id string) bool {
	w.renders.Lock()
	defer w.renders.Unlock()
	_, ok := w.renders.entries[util.CleanID(id)]
	return ok
}

func (w *Wiki) Invalidate(id string) {
	w.renders.Lock()
	defer w.renders.Unlock()
	delete(w.renders.entries, util.CleanID(id))
}

// RenderMediaList renders the list a {{medialist>arg}} token on page id would produce.
func (w *Wiki) RenderMediaList(arg, id string) string {
	return w.list.Render(w.list.Resolve(arg, util.CleanID(id)))
}

// StyleSheet writes the CSS for highlighted code blocks.
func (w *Wiki) StyleSheet(out io.Writer) error {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	return formatter.WriteCSS(out, styles.Get(w.cfg.Highlight.Style))
}

func renderTOC(doc ast.Node, src []byte) string {
	tree, err := toc.Inspect(doc, src, toc.MinDepth(1), toc.MaxDepth(5), toc.Compact(true))
	if err != nil || len(tree.Items) == 0 {
		return ""
	}
	titles := make(map[string]string)
	items := make([]html.ListItem, 0)
	var walk func(entries []*toc.Item, level int)
	walk = func(entries []*toc.Item, level int) {
		for _, item := range entries {
			if len(item.ID) > 0 {
				titles[string(item.ID)] = string(item.Title)
				items = append(items, html.ListItem{ID: string(item.ID), Level: level})
			}
			walk(item.Items, level+1)
		}
	}
	walk(tree.Items, 1)
	if len(items) == 0 {
		return ""
	}
	nav := html.NewHTMLElement("nav", html.Class("nav-toc"))
	nav.AppendText(html.BuildList(items, "toc", func(item html.ListItem) string {
		link := html.NewHTMLElement("a", html.Href("#"+item.ID))
		link.AppendText(html.Escape(titles[item.ID]))
		return html.RenderInline(link)
	}))
	return html.RenderInline(nav) + "\n"
}
