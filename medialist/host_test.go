package medialist

import (
	"errors"
	"path"
	"path/filepath"
	"strings"

	"wyweb.site/medialist/util"
)

type fakeHost struct {
	pages        map[string][]Instruction
	dirs         map[string][]MediaItem
	acl          map[string]AuthLevel
	sizes        map[string]int64
	mediaDir     string
	searchCalls  []string
	instructions int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		pages:    map[string][]Instruction{},
		dirs:     map[string][]MediaItem{},
		acl:      map[string]AuthLevel{},
		sizes:    map[string]int64{},
		mediaDir: "/srv/wiki/media",
	}
}

func (h *fakeHost) CleanID(id string) string { return util.CleanID(id) }

func (h *fakeHost) PageExists(id string) bool {
	_, ok := h.pages[id]
	return ok
}

func (h *fakeHost) AuthLevel(id string) AuthLevel {
	if level, ok := h.acl[util.PathToID(id)]; ok {
		return level
	}
	return AuthRead
}

func (h *fakeHost) Instructions(id string) ([]Instruction, error) {
	h.instructions++
	ins, ok := h.pages[util.CleanID(id)]
	if !ok {
		return nil, errors.New("no such page")
	}
	return ins, nil
}

func (h *fakeHost) IsDir(p string) bool {
	rel, err := filepath.Rel(h.mediaDir, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	_, ok := h.dirs[filepath.ToSlash(rel)]
	return ok
}

func (h *fakeHost) Search(root, dir string, depth int) ([]MediaItem, error) {
	h.searchCalls = append(h.searchCalls, path.Join(root, dir))
	return h.dirs[dir], nil
}

func (h *fakeHost) MediaURL(id string) string {
	return "/_media/" + util.IDToPath(id)
}

func (h *fakeHost) MimeType(id string) (string, string) {
	ext := strings.TrimPrefix(path.Ext(id), ".")
	return ext, "application/" + ext
}

func (h *fakeHost) MediaSize(id string) (int64, error) {
	size, ok := h.sizes[id]
	if !ok {
		return 0, errors.New("missing")
	}
	return size, nil
}

func media(id string) Instruction {
	return Instruction{Type: InstructionInternalMedia, Args: []string{id}}
}

func externalMedia(url string) Instruction {
	return Instruction{Type: InstructionExternalMedia, Args: []string{url}}
}
