package parse

import "log/slog"

type parseOpts struct {
	name               string
	simple             bool
	allowEmptySections bool
	separator          string
	logger             *slog.Logger
}

type ParseOption func(*parseOpts)

// ParseName names the document in diagnostics.
func ParseName(name string) ParseOption {
	return func(o *parseOpts) { o.name = name }
}

// ParseSimple reads bare lines instead of key/value entries.
func ParseSimple(v bool) ParseOption {
	return func(o *parseOpts) { o.simple = v }
}

func ParseAllowEmptySections(v bool) ParseOption {
	return func(o *parseOpts) { o.allowEmptySections = v }
}

// ParseSeparator sets the default separator, ":" unless given.
func ParseSeparator(sep string) ParseOption {
	return func(o *parseOpts) { o.separator = sep }
}

func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}
