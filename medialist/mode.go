package medialist

const (
	SentinelPage      = "@PAGE@"
	SentinelNamespace = "@NAMESPACE@"
	SentinelAll       = "@ALL@"
)

// Mode selects which media sources a list is built from.
type Mode int

const (
	ModeUnrecognized Mode = iota
	ModePage
	ModeNamespace
	ModeAll
)

func (m Mode) String() string {
	switch m {
	case ModePage:
		return "page"
	case ModeNamespace:
		return "ns"
	case ModeAll:
		return "all"
	default:
		return ""
	}
}

func (m Mode) includesPage() bool {
	return m == ModePage || m == ModeAll
}

func (m Mode) includesNamespace() bool {
	return m == ModeNamespace || m == ModeAll
}

// Request is a resolved markup argument.
type Request struct {
	Mode Mode
	ID   string
}

// Valid reports whether the request produces any output at all.
func (r Request) Valid() bool {
	return r.Mode != ModeUnrecognized
}

// Resolve maps the argument of a {{medialist>...}} token to a Request. currentID is the page
// being rendered. Anything that is neither a sentinel nor an existing page resolves to
// ModeUnrecognized.
func Resolve(arg, currentID string, pages PageResolver) Request {
	switch arg {
	case SentinelPage:
		return Request{Mode: ModePage, ID: currentID}
	case SentinelNamespace:
		return Request{Mode: ModeNamespace, ID: currentID}
	case SentinelAll:
		return Request{Mode: ModeAll, ID: currentID}
	}
	if pages != nil && arg != "" && pages.PageExists(pages.CleanID(arg)) {
		return Request{Mode: ModePage, ID: arg}
	}
	return Request{}
}
