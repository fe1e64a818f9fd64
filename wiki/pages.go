package wiki

import (
	"fmt"
	"os"
	"path/filepath"

	"wyweb.site/medialist/util"
)

const pageExt = ".md"

func (w *Wiki) CleanID(id string) string {
	return util.CleanID(id)
}

// PageFN returns the file a page id is stored in.
func (w *Wiki) PageFN(id string) string {
	return filepath.Join(w.cfg.PageDir, filepath.FromSlash(util.IDToPath(util.CleanID(id)))+pageExt)
}

func (w *Wiki) PageExists(id string) bool {
	if util.CleanID(id) == "" {
		return false
	}
	stat, err := os.Stat(w.PageFN(id))
	return err == nil && stat.Mode().IsRegular()
}

func (w *Wiki) statPage(id string) (string, os.FileInfo, error) {
	fn := w.PageFN(id)
	stat, err := os.Stat(fn)
	if err != nil || !stat.Mode().IsRegular() {
		return fn, nil, fmt.Errorf("%w: %s", ErrPageNotFound, id)
	}
	return fn, stat, nil
}
