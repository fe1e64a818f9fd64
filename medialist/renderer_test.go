package medialist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererItem(t *testing.T) {
	host := newFakeHost()
	host.sizes["foo:bar:pic.png"] = 12595
	r := NewRenderer(host, Config{MediaTarget: "_blank"}, nil)

	got := r.Item("foo:bar:pic.png")
	assert.Equal(t,
		`<a class="media mediafile mf_png" href="/_media/foo/bar/pic.png" target="_blank" title="pic.png">pic.png</a>&nbsp;(12.3 KB)`+"\n",
		got)
}

func TestRendererItemWithoutTarget(t *testing.T) {
	host := newFakeHost()
	host.sizes["doc.pdf"] = 512
	r := NewRenderer(host, Config{}, nil)

	got := r.Item("doc.pdf")
	assert.NotContains(t, got, "target")
	assert.Contains(t, got, `class="media mediafile mf_pdf"`)
	assert.Contains(t, got, "&nbsp;(512 B)")
}

func TestRendererItemUnknownSize(t *testing.T) {
	r := NewRenderer(newFakeHost(), Config{}, nil)
	assert.Contains(t, r.Item("foo:gone.zip"), "&nbsp;(0 B)")
}

func TestRendererRender(t *testing.T) {
	host := newFakeHost()
	r := NewRenderer(host, Config{}, nil)

	assert.Equal(t, "", r.Render(nil))

	out := r.Render([]string{"foo:bar:pic.png", "foo:bar:doc.pdf"})
	assert.True(t, strings.HasPrefix(out, `<ul class="medialist">`))
	assert.True(t, strings.HasSuffix(out, "</ul>\n"))
	assert.Equal(t, 2, strings.Count(out, `<li class="level1">`))
	assert.Less(t, strings.Index(out, "mf_png"), strings.Index(out, "mf_pdf"))
}

func TestFileSize(t *testing.T) {
	tests := []struct {
		size uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{2048, "2 KB"},
		{12595, "12.3 KB"},
		{3565158, "3.4 MB"},
		{5 << 30, "5 GB"},
		{3 << 40, "3072 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileSize(tt.size), "size %d", tt.size)
	}
}

func TestExtClass(t *testing.T) {
	assert.Equal(t, "png", ExtClass("png"))
	assert.Equal(t, "tar_gz", ExtClass("tar.gz"))
	assert.Equal(t, "JPG", ExtClass("JPG"))
	assert.Equal(t, "a_b-c", ExtClass("a+ +b-c"))
	assert.Equal(t, "", ExtClass(""))
}
