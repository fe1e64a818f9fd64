package wiki

import (
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"wyweb.site/medialist/medialist"
	"wyweb.site/medialist/util"
)

const (
	InstructionHeader       = "header"
	InstructionInternalLink = "internallink"
	InstructionExternalLink = "externallink"
)

var externalURL = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

type cachedInstructions struct {
	modTime time.Time
	size    int64
	ins     []medialist.Instruction
}

type instructionCache struct {
	sync.Mutex
	entries map[string]cachedInstructions
}

// Instructions returns the parsed structure of page id. Results are cached per page file
// until the file changes.
func (w *Wiki) Instructions(id string) ([]medialist.Instruction, error) {
	fn, stat, err := w.statPage(id)
	if err != nil {
		return nil, err
	}
	w.instructions.Lock()
	defer w.instructions.Unlock()
	if entry, ok := w.instructions.entries[fn]; ok && entry.modTime.Equal(stat.ModTime()) && entry.size == stat.Size() {
		return entry.ins, nil
	}
	src, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	ins := w.parseInstructions(src)
	w.instructions.entries[fn] = cachedInstructions{modTime: stat.ModTime(), size: stat.Size(), ins: ins}
	return ins, nil
}

func (w *Wiki) parseInstructions(src []byte) []medialist.Instruction {
	doc := w.instructionParser.Parse(text.NewReader(src))
	ins := make([]medialist.Instruction, 0)
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Heading:
			ins = append(ins, medialist.Instruction{Type: InstructionHeader, Args: []string{string(t.Text(src))}})
		case *ast.Image:
			dest := string(t.Destination)
			if isExternal(dest) {
				ins = append(ins, medialist.Instruction{Type: medialist.InstructionExternalMedia, Args: []string{dest}})
			} else if id, ok := w.MediaID(dest, true); ok {
				ins = append(ins, medialist.Instruction{Type: medialist.InstructionInternalMedia, Args: []string{id}})
			}
		case *ast.Link:
			dest := string(t.Destination)
			switch id, ok := w.MediaID(dest, false); {
			case ok:
				ins = append(ins, medialist.Instruction{Type: medialist.InstructionInternalMedia, Args: []string{id}})
			case isExternal(dest):
				ins = append(ins, medialist.Instruction{Type: InstructionExternalLink, Args: []string{dest}})
			case dest != "" && !strings.HasPrefix(dest, "#"):
				ins = append(ins, medialist.Instruction{Type: InstructionInternalLink, Args: []string{util.CleanID(util.PathToID(dest))}})
			}
		}
		return ast.WalkContinue, nil
	})
	return ins
}

func isExternal(dest string) bool {
	return externalURL.MatchString(dest) || strings.HasPrefix(dest, "mailto:")
}

// MediaID reports the media id a link or image destination refers to. Images always refer
// to media unless they are external. Links only do when they point at a file of a known
// media type.
func (w *Wiki) MediaID(dest string, embedded bool) (string, bool) {
	if dest == "" || strings.HasPrefix(dest, "#") || isExternal(dest) {
		return "", false
	}
	if idx := strings.IndexAny(dest, "?#"); idx >= 0 {
		dest = dest[:idx]
	}
	id := util.CleanID(util.PathToID(dest))
	if id == "" {
		return "", false
	}
	if embedded {
		return id, true
	}
	if _, mt := mimeType(id); mt == "" || strings.HasSuffix(id, pageExt) {
		return "", false
	}
	return id, true
}
