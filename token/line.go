package token

import "strings"

// Line is one source line as seen by the Reader.
type Line struct {
	// Num is the 1-based line number.
	Num int
	// Raw is the line without its line ending.
	Raw string

	// Indent is the leading whitespace, verbatim.
	Indent string
	// Depth is Indent measured in indentation units, or -1 when BadIndent.
	Depth     int
	BadIndent bool

	// Text is the line between Indent and Comment as written.
	Text string
	// Body is Text with "##" escapes resolved.
	Body string
	// Comment is everything after Text, see SplitComment.
	Comment string

	// Sep is the separator found first in Body, "" if none. SepIndex is its
	// byte offset in Body.
	Sep      string
	SepIndex int

	// Void is set for blank lines, comment-only lines and lines inside a
	// block comment. Void lines carry no depth.
	Void bool
}

// IsHeader reports whether the line opens a section: its body ends with
// ':' and no separator occurs before that colon.
func (l *Line) IsHeader() bool {
	if l.Void || !strings.HasSuffix(l.Body, ":") {
		return false
	}
	return l.SepIndex == -1 || l.SepIndex == len(l.Body)-1
}

// HeaderKey returns the section name of a header line.
func (l *Line) HeaderKey() string {
	return strings.TrimSpace(strings.TrimSuffix(l.Body, ":"))
}

// Split divides the body at Sep into a trimmed key and value.
func (l *Line) Split() (key, value string, ok bool) {
	if l.Sep == "" {
		return "", "", false
	}
	key = strings.TrimSpace(l.Body[:l.SepIndex])
	value = strings.TrimSpace(l.Body[l.SepIndex+len(l.Sep):])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}
