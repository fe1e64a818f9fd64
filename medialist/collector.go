package medialist

import (
	"path/filepath"

	"wyweb.site/medialist/util"
)

// CollectorHost is what a Collector needs from the host.
type CollectorHost interface {
	Authorizer
	InstructionSource
	MediaSearcher
}

// Collector gathers media ids for a Request.
type Collector struct {
	host CollectorHost
	cfg  Config
	log  Logger
}

func NewCollector(host CollectorHost, cfg Config, logger Logger) *Collector {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Collector{host: host, cfg: cfg.withDefaults(), log: logger}
}

// Collect returns the media linked from the requested page followed by the media stored in
// its namespace directory, each id at most once. Missing permissions or directories leave the
// corresponding part empty.
func (c *Collector) Collect(req Request) []string {
	var linked, stored []string
	if req.Mode.includesPage() {
		linked = c.LinkedMedia(req.ID)
	}
	if req.Mode.includesNamespace() {
		stored = c.NamespaceMedia(req.ID)
	}
	return util.ConcatUnique(linked, stored)
}

// LinkedMedia returns the ids of every internal or external media reference of page id in
// document order.
func (c *Collector) LinkedMedia(id string) []string {
	if c.host.AuthLevel(id) < AuthRead {
		c.log.Debug("medialist: page not readable", "id", id)
		return nil
	}
	ins, err := c.host.Instructions(id)
	if err != nil {
		c.log.Debug("medialist: no instructions", "id", id, "error", err)
		return nil
	}
	media := make([]string, 0)
	for _, node := range ins {
		switch node.Type {
		case InstructionInternalMedia, InstructionExternalMedia:
			if len(node.Args) > 0 {
				media = append(media, node.Args[0])
			}
		}
	}
	return media
}

// NamespaceMedia returns the ids of the media files stored in the media directory that
// corresponds to id.
func (c *Collector) NamespaceMedia(id string) []string {
	dir := util.IDToPath(id)
	if !c.host.IsDir(filepath.Join(c.cfg.MediaDir, filepath.FromSlash(dir))) {
		c.log.Debug("medialist: no media directory", "id", id, "dir", dir)
		return nil
	}
	if c.host.AuthLevel(dir) < AuthRead {
		c.log.Debug("medialist: namespace not readable", "dir", dir)
		return nil
	}
	items, err := c.host.Search(c.cfg.MediaDir, dir, c.cfg.SearchDepth)
	if err != nil {
		c.log.Warn("medialist: media search failed", "dir", dir, "error", err)
		return nil
	}
	media := make([]string, 0, len(items))
	for _, item := range items {
		media = append(media, item.ID)
	}
	return media
}
