package token

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type readerOpts struct {
	seps   []string
	indent string
}

type ReaderOption func(*readerOpts)

// ReaderSeparator sets the default separator. When it is ':' or '=' both of
// those are recognised; any other separator is recognised alone.
func ReaderSeparator(sep string) ReaderOption {
	return func(o *readerOpts) {
		switch sep {
		case ":", "=":
			o.seps = []string{":", "="}
		default:
			o.seps = []string{sep}
		}
	}
}

// ReaderIndent fixes the indentation unit up front instead of taking it
// from the first indented line.
func ReaderIndent(unit string) ReaderOption {
	return func(o *readerOpts) { o.indent = unit }
}

// Reader produces the lines of a UTF-8 document. A leading byte order mark
// is dropped; a UTF-16 byte order mark switches decoding to UTF-16.
type Reader struct {
	br   *bufio.Reader
	opts readerOpts

	num     int
	inBlock bool
	unit    string
	newline string
	final   bool
	empty   bool
	done    bool
}

func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	o := readerOpts{seps: []string{":", "="}}
	for _, f := range opts {
		f(&o)
	}
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return &Reader{
		br:    bufio.NewReader(transform.NewReader(r, dec)),
		opts:  o,
		unit:  o.indent,
		final: true,
	}
}

// Next returns the next line, or io.EOF when the input is exhausted.
func (r *Reader) Next() (*Line, error) {
	if r.done {
		return nil, io.EOF
	}
	s, err := r.br.ReadString('\n')
	switch {
	case err == nil:
		s = s[:len(s)-1]
		nl := "\n"
		if strings.HasSuffix(s, "\r") {
			s = s[:len(s)-1]
			nl = "\r\n"
		}
		if r.newline == "" {
			r.newline = nl
		}
		r.final = true
	case errors.Is(err, io.EOF):
		r.done = true
		if s == "" {
			r.empty = r.num == 0
			return nil, io.EOF
		}
		r.final = false
	default:
		return nil, fmt.Errorf("%w: line %d: %w", ErrRead, r.num+1, err)
	}
	r.num++
	return r.line(s), nil
}

func (r *Reader) line(s string) *Line {
	l := &Line{Num: r.num, Raw: s, SepIndex: -1}
	if IsBlockComment(s) {
		r.inBlock = !r.inBlock
		r.voidLine(l, s)
		return l
	}
	if r.inBlock || isCommentLine(s) || strings.TrimSpace(s) == "" {
		r.voidLine(l, s)
		return l
	}
	indent, rest := splitIndent(s)
	l.Indent = indent
	l.Text, l.Comment = SplitComment(rest)
	l.Body = UnescapeHashes(l.Text)
	l.Depth, l.BadIndent = r.depth(indent)
	for _, sep := range r.opts.seps {
		i := strings.Index(l.Body, sep)
		if i == -1 {
			continue
		}
		if l.SepIndex == -1 || i < l.SepIndex {
			l.Sep = sep
			l.SepIndex = i
		}
	}
	return l
}

func (r *Reader) voidLine(l *Line, s string) {
	l.Void = true
	indent, rest := splitIndent(s)
	text := strings.TrimRight(rest, " \t")
	l.Indent = indent
	l.Text = text
	l.Body = text
	l.Comment = rest[len(text):]
}

func (r *Reader) depth(indent string) (int, bool) {
	if indent == "" {
		return 0, false
	}
	if r.unit == "" {
		if !uniform(indent) {
			return -1, true
		}
		r.unit = indent
		return 1, false
	}
	if len(indent)%len(r.unit) != 0 {
		return -1, true
	}
	n := len(indent) / len(r.unit)
	if strings.Repeat(r.unit, n) != indent {
		return -1, true
	}
	return n, false
}

func uniform(s string) bool {
	return strings.Trim(s, " ") == "" || strings.Trim(s, "\t") == ""
}

// Indent returns the indentation unit, "" until an indented line was read.
func (r *Reader) Indent() string {
	return r.unit
}

// IndentName returns "tab" or "space" for the indentation unit.
func (r *Reader) IndentName() string {
	if strings.HasPrefix(r.unit, " ") {
		return "space"
	}
	return "tab"
}

// Newline returns the line ending of the first line, "\n" by default.
func (r *Reader) Newline() string {
	if r.newline == "" {
		return "\n"
	}
	return r.newline
}

// FinalNewline reports whether the last line read was terminated.
func (r *Reader) FinalNewline() bool {
	return r.final
}

// Empty reports whether the input held no bytes at all. It is only
// meaningful once Next returned io.EOF.
func (r *Reader) Empty() bool {
	return r.empty
}
