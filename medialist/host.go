package medialist

// AuthLevel is a permission tier. Higher values include every lower one.
type AuthLevel int

const (
	AuthNone   AuthLevel = 0
	AuthRead   AuthLevel = 1
	AuthEdit   AuthLevel = 2
	AuthCreate AuthLevel = 4
	AuthUpload AuthLevel = 8
	AuthDelete AuthLevel = 16
	AuthAdmin  AuthLevel = 255
)

// Instruction types that reference media.
const (
	InstructionInternalMedia = "internalmedia"
	InstructionExternalMedia = "externalmedia"
)

// Instruction is one node of a host's cached parse of a page. Media instructions carry the
// referenced id as their first argument.
type Instruction struct {
	Type string
	Args []string
}

// MediaItem is one search result of the media tree.
type MediaItem struct {
	ID string
}

type PageResolver interface {
	CleanID(id string) string
	PageExists(id string) bool
}

// Authorizer answers the caller's permission for a page id or a slash separated namespace
// path.
type Authorizer interface {
	AuthLevel(id string) AuthLevel
}

type InstructionSource interface {
	Instructions(id string) ([]Instruction, error)
}

// MediaSearcher walks the media tree. Search looks at most depth levels below root/dir.
type MediaSearcher interface {
	IsDir(path string) bool
	Search(root, dir string, depth int) ([]MediaItem, error)
}

// MediaLinker supplies what the renderer needs to know about a single media file.
type MediaLinker interface {
	MediaURL(id string) string
	MimeType(id string) (ext, mime string)
	MediaSize(id string) (int64, error)
}

// Host bundles every collaborator a MediaList depends on.
type Host interface {
	PageResolver
	Authorizer
	InstructionSource
	MediaSearcher
	MediaLinker
}

// Logger is the subset of a structured logger the package writes to. Arguments are
// alternating keys and values.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Config carries the host wide settings the collector and renderer read.
type Config struct {
	// MediaDir is the root of the media tree on disk.
	MediaDir string
	// MediaTarget is the link target for media links, e.g. "_blank". Empty omits it.
	MediaTarget string
	// SearchDepth limits the namespace search, 1 lists only the namespace itself.
	SearchDepth int
}

func (c Config) withDefaults() Config {
	if c.SearchDepth <= 0 {
		c.SearchDepth = 1
	}
	return c
}
