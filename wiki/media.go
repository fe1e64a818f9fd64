package wiki

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"wyweb.site/medialist/medialist"
	"wyweb.site/medialist/util"
)

// MediaFN returns the file a media id is stored in.
func (w *Wiki) MediaFN(id string) string {
	return filepath.Join(w.cfg.MediaDir, filepath.FromSlash(util.IDToPath(util.CleanID(id))))
}

func (w *Wiki) IsDir(p string) bool {
	stat, err := os.Stat(p)
	return err == nil && stat.IsDir()
}

// Search lists the media files below root/dir. Files directly inside dir are at depth 1.
// Hidden files and directories are skipped; results come in lexical order.
func (w *Wiki) Search(root, dir string, depth int) ([]medialist.MediaItem, error) {
	dir = strings.Trim(path.Clean("/"+filepath.ToSlash(dir)), "/")
	base := filepath.Join(root, filepath.FromSlash(dir))
	items := make([]medialist.MediaItem, 0)
	err := fs.WalkDir(os.DirFS(base), ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			if rel == "." {
				return err
			}
			return nil
		}
		if rel == "." {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		level := strings.Count(rel, "/") + 1
		if d.IsDir() {
			if depth > 0 && level >= depth {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		items = append(items, medialist.MediaItem{ID: util.PathToID(path.Join(dir, rel))})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MediaURL returns the URL media id is served from. External URLs are returned unchanged.
func (w *Wiki) MediaURL(id string) string {
	if isExternal(id) {
		return id
	}
	segments := strings.Split(util.IDToPath(util.CleanID(id)), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.TrimRight(w.cfg.MediaURL, "/") + "/" + strings.Join(segments, "/")
}

func (w *Wiki) MediaSize(id string) (int64, error) {
	if isExternal(id) {
		return 0, errors.New("size of external media is unknown")
	}
	stat, err := os.Stat(w.MediaFN(id))
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}
