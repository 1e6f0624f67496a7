package config

import "log/slog"

type configOpts struct {
	simple             bool
	allowEmptySections bool
	separator          string
	path               string
	logger             *slog.Logger
}

type Option func(*configOpts)

// Simple reads bare lines instead of key/value entries.
func Simple(v bool) Option {
	return func(o *configOpts) { o.simple = v }
}

// AllowEmptySections stops sections without content from being reported.
func AllowEmptySections(v bool) Option {
	return func(o *configOpts) { o.allowEmptySections = v }
}

// DefaultSeparator sets the separator written on save. An empty separator
// means ":".
func DefaultSeparator(sep string) Option {
	return func(o *configOpts) { o.separator = sep }
}

// WithPath sets where SaveFile writes by default.
func WithPath(p string) Option {
	return func(o *configOpts) { o.path = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *configOpts) { o.logger = l }
}
