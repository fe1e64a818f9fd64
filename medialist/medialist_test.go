package medialist

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.messages = append(l.messages, msg) }

func TestMediaListRenderAll(t *testing.T) {
	host := exampleHost()
	host.sizes["foo:bar:pic.png"] = 2048
	host.sizes["foo:bar:doc.pdf"] = 4096
	ml := New(host, Config{MediaDir: host.mediaDir})

	req := ml.Resolve("@ALL@", "foo:bar")
	require.Equal(t, Request{Mode: ModeAll, ID: "foo:bar"}, req)

	out := ml.Render(req)
	assert.Contains(t, out, `<ul class="medialist">`)
	assert.Contains(t, out, `class="media mediafile mf_png"`)
	assert.Contains(t, out, `class="media mediafile mf_pdf"`)
	assert.Contains(t, out, "&nbsp;(2 KB)")
	assert.Less(t, strings.Index(out, "pic.png"), strings.Index(out, "doc.pdf"))
}

func TestMediaListUnrecognizedProducesNothing(t *testing.T) {
	host := exampleHost()
	logger := &recordingLogger{}
	ml := New(host, Config{MediaDir: host.mediaDir}, WithLogger(logger))

	req := ml.Resolve("not:a:page", "foo:bar")
	assert.False(t, req.Valid())
	assert.Equal(t, "", ml.Render(req))
	assert.Nil(t, ml.Collect(req))
	assert.Contains(t, logger.messages, "medialist: unrecognized argument")
	assert.Zero(t, host.instructions)
}

func TestMediaListEmptyResultHasNoWrapper(t *testing.T) {
	host := newFakeHost()
	host.pages["empty"] = nil
	ml := New(host, Config{MediaDir: host.mediaDir})

	assert.Equal(t, "", ml.Render(ml.Resolve("@ALL@", "empty")))
}

func TestMediaListSizeFormatter(t *testing.T) {
	host := exampleHost()
	host.sizes["foo:bar:pic.png"] = 12
	ml := New(host, Config{MediaDir: host.mediaDir}, WithSizeFormatter(func(n uint64) string {
		return fmt.Sprintf("%d bytes", n)
	}))

	assert.Contains(t, ml.Render(Request{Mode: ModePage, ID: "foo:bar"}), "&nbsp;(12 bytes)")
}

func TestModuleInfo(t *testing.T) {
	info := ModuleInfo()
	assert.Equal(t, "Medialist", info.Name)
	assert.Equal(t, "Michael Klier", info.Author)
	assert.Equal(t, "chi@chimeric.de", info.Email)
	assert.Equal(t, "http://dokuwiki.org/plugin:medialist", info.URL)
	assert.NotEmpty(t, info.Date)
	assert.NotContains(t, info.Date, "\n")
}
