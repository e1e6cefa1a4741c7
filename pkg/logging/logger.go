package logging

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// New builds the root logger. Format is one of "console" (default), "json"
// or "pretty".
func New(level, format string) (*glog.BaseLogger, error) {
	options := []glog.Option{}

	if lvl := normalizeLevel(level); lvl != "" {
		options = append(options, glog.WithLevel(lvl))
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", format)
	}

	return glog.NewLogger(options...), nil
}

// Named returns a child logger, or the root when name is blank.
func Named(root *glog.BaseLogger, name string) glog.Logger {
	name = strings.TrimSpace(name)
	if name == "" {
		return root
	}
	return root.GetLogger(name)
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
	default:
		return ""
	}
}

// Default is the logger used when a component is built without one; it only
// reports errors.
func Default() *glog.BaseLogger {
	return glog.NewLogger(glog.WithLevel(glog.Error), glog.WithLoggerTypeConsole())
}
