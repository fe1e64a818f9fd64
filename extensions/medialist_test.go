package extensions

import (
	"bytes"
	"errors"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"

	"wyweb.site/medialist/medialist"
	"wyweb.site/medialist/util"
)

type stubHost struct {
	pages map[string][]medialist.Instruction
	dirs  map[string][]medialist.MediaItem
}

func (h *stubHost) CleanID(id string) string { return util.CleanID(id) }

func (h *stubHost) PageExists(id string) bool {
	_, ok := h.pages[id]
	return ok
}

func (h *stubHost) AuthLevel(string) medialist.AuthLevel { return medialist.AuthRead }

func (h *stubHost) Instructions(id string) ([]medialist.Instruction, error) {
	ins, ok := h.pages[id]
	if !ok {
		return nil, errors.New("missing")
	}
	return ins, nil
}

func (h *stubHost) IsDir(p string) bool {
	_, ok := h.dirs[strings.TrimPrefix(p, "media/")]
	return ok
}

func (h *stubHost) Search(root, dir string, depth int) ([]medialist.MediaItem, error) {
	return h.dirs[dir], nil
}

func (h *stubHost) MediaURL(id string) string { return "/_media/" + util.IDToPath(id) }

func (h *stubHost) MimeType(id string) (string, string) {
	return strings.TrimPrefix(path.Ext(id), "."), ""
}

func (h *stubHost) MediaSize(string) (int64, error) { return 1024, nil }

func newStubHost() *stubHost {
	return &stubHost{
		pages: map[string][]medialist.Instruction{
			"foo:bar": {
				{Type: medialist.InstructionInternalMedia, Args: []string{"foo:bar:pic.png"}},
			},
		},
		dirs: map[string][]medialist.MediaItem{
			"foo/bar": {{ID: "foo:bar:doc.pdf"}},
		},
	}
}

func convert(t *testing.T, src, page string) (string, parser.Context) {
	t.Helper()
	list := medialist.New(newStubHost(), medialist.Config{MediaDir: "media"})
	md := goldmark.New(goldmark.WithExtensions(MediaList(list)))
	pc := NewPageContext(page)
	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(src), &buf, parser.WithContext(pc)))
	return buf.String(), pc
}

func TestMediaListBlock(t *testing.T) {
	out, pc := convert(t, "# Files\n\n{{medialist>@ALL@}}\n", "foo:bar")

	assert.Contains(t, out, `<ul class="medialist">`)
	assert.Contains(t, out, "mf_png")
	assert.Contains(t, out, "mf_pdf")
	assert.NotContains(t, out, "<p>")
	assert.NotContains(t, out, "{{medialist")
	assert.True(t, CacheDisabled(pc))
	assert.Less(t, strings.Index(out, "pic.png"), strings.Index(out, "doc.pdf"))
}

func TestMediaListNamedPage(t *testing.T) {
	out, pc := convert(t, "{{medialist>foo:bar}}\n", "start")

	assert.Contains(t, out, "pic.png")
	assert.NotContains(t, out, "doc.pdf")
	assert.True(t, CacheDisabled(pc))
}

func TestMediaListUnrecognized(t *testing.T) {
	out, pc := convert(t, "{{medialist>no:such:page}}\n", "foo:bar")

	assert.Equal(t, "", out)
	assert.False(t, CacheDisabled(pc))
}

func TestMediaListInline(t *testing.T) {
	out, _ := convert(t, "See {{medialist>@NAMESPACE@}} here\n", "foo:bar")

	assert.True(t, strings.HasPrefix(out, "<p>See</p>\n<ul class=\"medialist\">"), out)
	assert.Contains(t, out, "doc.pdf")
	assert.NotContains(t, out, "pic.png")
	assert.True(t, strings.HasSuffix(out, "</ul>\n<p>here</p>\n"), out)
}

func TestMediaListAfterTextLine(t *testing.T) {
	out, _ := convert(t, "Files:\n{{medialist>@PAGE@}}\n", "foo:bar")

	assert.True(t, strings.HasPrefix(out, "<p>Files:</p>\n<ul class=\"medialist\">"), out)
	assert.True(t, strings.HasSuffix(out, "</ul>\n"), out)
	assert.Equal(t, 1, strings.Count(out, "<p>"))
}

func TestMediaListConsecutiveTokens(t *testing.T) {
	out, _ := convert(t, "{{medialist>@PAGE@}}\n{{medialist>@NAMESPACE@}}\nAfter\n", "foo:bar")

	assert.Equal(t, 2, strings.Count(out, `<ul class="medialist">`))
	assert.Less(t, strings.Index(out, "pic.png"), strings.Index(out, "doc.pdf"))
	assert.True(t, strings.HasPrefix(out, `<ul class="medialist">`), out)
	assert.True(t, strings.HasSuffix(out, "</ul>\n<p>After</p>\n"), out)
	assert.Equal(t, 1, strings.Count(out, "<p>"))
}

func TestMediaListUnrecognizedSplitsParagraph(t *testing.T) {
	out, _ := convert(t, "Before\n{{medialist>no:such:page}}\nAfter\n", "foo:bar")

	assert.Equal(t, "<p>Before</p>\n<p>After</p>\n", out)
}

func TestMediaListNotATokenStaysText(t *testing.T) {
	for _, src := range []string{
		"{{medialist>@ALL@\n",
		"{{medialist>}}\n",
		"{{other>@ALL@}}\n",
	} {
		out, pc := convert(t, src, "foo:bar")
		assert.Contains(t, out, "<p>{{", src)
		assert.NotContains(t, out, "<ul", src)
		assert.False(t, CacheDisabled(pc), src)
	}
}

func TestMediaListInCodeSpanIgnored(t *testing.T) {
	out, pc := convert(t, "`{{medialist>@ALL@}}`\n", "foo:bar")

	assert.Contains(t, out, "<code>{{medialist&gt;@ALL@}}</code>")
	assert.False(t, CacheDisabled(pc))
}

func TestPageContextHelpers(t *testing.T) {
	assert.Equal(t, "", PageID(nil))
	assert.False(t, CacheDisabled(nil))
	assert.Equal(t, "wiki:start", PageID(NewPageContext("wiki:start")))
}
