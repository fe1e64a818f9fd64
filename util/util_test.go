package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcatUnique(t *testing.T) {
	got := ConcatUnique(
		[]string{"a:pic.png", "a:doc.pdf", "a:pic.png"},
		[]string{"a:doc.pdf", "a:zip.zip", "a:zip.zip"},
	)
	assert.Equal(t, []string{"a:pic.png", "a:doc.pdf", "a:zip.zip"}, got)
}

func TestConcatUniqueEmpty(t *testing.T) {
	assert.Empty(t, ConcatUnique[string](nil, nil))
	assert.Equal(t, []int{1, 2}, ConcatUnique(nil, []int{1, 2, 1}))
}

func TestCleanID(t *testing.T) {
	cases := map[string]string{
		"foo:bar":            "foo:bar",
		"  Foo:Bar  ":        "foo:bar",
		"foo/bar/pic.png":    "foo:bar:pic.png",
		"foo;bar":            "foo:bar",
		"Some Page":          "some_page",
		"::foo::bar::":       "foo:bar",
		"foo_:_bar":          "foo:bar",
		"wiki:a   b":         "wiki:a_b",
		"wiki:what?":         "wiki:what",
		"":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanID(in), "CleanID(%q)", in)
	}
	assert.Equal(t, "wiki:über:datei.jpg", CleanID("wiki:Über:Datei.JPG"))
}

func TestNamespaceHelpers(t *testing.T) {
	assert.Equal(t, "pic.png", NoNS("foo:bar:pic.png"))
	assert.Equal(t, "pic.png", NoNS("http://example.com/img/pic.png"))
	assert.Equal(t, "start", NoNS("start"))
	assert.Equal(t, "foo/bar/pic.png", IDToPath("foo:bar:pic.png"))
	assert.Equal(t, "foo:bar:pic.png", PathToID("/foo/bar/pic.png"))
	assert.Equal(t, "foo:pic.png", PathToID("foo/./bar/../pic.png"))
}

func TestTimer(t *testing.T) {
	var got []any
	var name string
	stop := Timer("render", func(msg string, args ...any) {
		name = msg
		got = args
	})
	stop()
	assert.Equal(t, "render", name)
	if assert.Len(t, got, 4) {
		assert.Equal(t, "source", got[0])
		assert.Contains(t, got[1], "util_test.go:")
		assert.Equal(t, "elapsed", got[2])
	}
}
