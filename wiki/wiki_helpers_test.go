package wiki

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const barPage = `# Bar

![pic](foo:bar:pic.png)

Read the [manual](foo/bar/doc.pdf), the [other page](foo:other) or [the web](https://example.com).

{{medialist>@ALL@}}
`

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newTestWiki lays out a small wiki below a temporary directory.
func newTestWiki(t *testing.T, mutate ...func(*Config)) *Wiki {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pages", "foo", "bar.md"), barPage)
	writeFile(t, filepath.Join(dir, "pages", "foo", "other.md"), "# Other\n\nNo media here.\n")
	writeFile(t, filepath.Join(dir, "pages", "start.md"), "# Start\n\n{{medialist>foo:bar}}\n")
	writeFile(t, filepath.Join(dir, "media", "foo", "bar", "pic.png"), "png")
	writeFile(t, filepath.Join(dir, "media", "foo", "bar", "doc.pdf"), "pdf document")
	writeFile(t, filepath.Join(dir, "media", "foo", "bar", "archive.zip"), "zip")
	writeFile(t, filepath.Join(dir, "media", "foo", "bar", ".hidden"), "x")
	writeFile(t, filepath.Join(dir, "media", "foo", "bar", "sub", "deep.png"), "deep")

	cfg := Config{DataDir: dir}
	cfg.Target.Media = "_blank"
	for _, m := range mutate {
		m(&cfg)
	}
	w, err := New(cfg, nopLogger{})
	require.NoError(t, err)
	return w
}
