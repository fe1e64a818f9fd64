package wiki

import (
	"fmt"

	glog "github.com/goliatone/go-logger/glog"
)

const (
	loggerRoot      = "wiki"
	loggerMediaList = "wiki.medialist"
	loggerRender    = "wiki.render"
)

// NewLogger builds the root go-logger logger described by cfg. Components take named
// children of it.
func NewLogger(cfg LogConfig) (*glog.BaseLogger, error) {
	options := []glog.Option{}
	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}
	switch normalizeName(cfg.Format) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("%w: unsupported log format %q", ErrInvalidConfig, cfg.Format)
	}
	return glog.NewLogger(options...), nil
}

func normalizeLevel(level string) string {
	switch normalizeName(level) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	default:
		return ""
	}
}
