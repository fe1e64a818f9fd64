package medialist

// MediaList resolves, collects and renders media lists against one host.
type MediaList struct {
	host      Host
	collector *Collector
	renderer  *Renderer
	log       Logger
}

type Option func(*MediaList)

func WithLogger(logger Logger) Option {
	return func(m *MediaList) {
		if logger != nil {
			m.log = logger
		}
	}
}

// WithSizeFormatter replaces the human readable size formatting.
func WithSizeFormatter(format func(uint64) string) Option {
	return func(m *MediaList) {
		if format != nil {
			m.renderer.formatSize = format
		}
	}
}

func New(host Host, cfg Config, opts ...Option) *MediaList {
	m := &MediaList{
		host:     host,
		log:      noopLogger{},
		renderer: NewRenderer(host, cfg, nil),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.renderer.log = m.log
	m.collector = NewCollector(host, cfg, m.log)
	return m
}

func (m *MediaList) Resolve(arg, currentID string) Request {
	req := Resolve(arg, currentID, m.host)
	if !req.Valid() {
		m.log.Debug("medialist: unrecognized argument", "arg", arg, "page", currentID)
	}
	return req
}

func (m *MediaList) Collect(req Request) []string {
	if !req.Valid() {
		return nil
	}
	return m.collector.Collect(req)
}

// Render produces the HTML fragment for req. It is empty for unrecognized requests and when
// no media was found.
func (m *MediaList) Render(req Request) string {
	return m.renderer.Render(m.Collect(req))
}
