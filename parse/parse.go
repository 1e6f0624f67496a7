package parse

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/signadot/sectcfg/debug"
	"github.com/signadot/sectcfg/ir"
	"github.com/signadot/sectcfg/token"
)

const emptySectionMsg = "Empty configuration section! You might want to indent one or more of the " +
	"subsequent lines to make them belong to this section or remove the colon at the end of the " +
	"line if you don't want this line to start a section."

// Parse reads a document and returns its root section. The returned error
// is non-nil only when r fails; malformed lines are recorded in the root's
// Doc instead.
func Parse(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{separator: ":"}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.logger == nil {
		pOpts.logger = slog.Default()
	}
	doc := ir.NewDoc(pOpts.name)
	doc.Simple = pOpts.simple
	doc.AllowEmptySections = pOpts.allowEmptySections
	doc.DefaultSeparator = pOpts.separator
	doc.Separator = pOpts.separator

	root := ir.NewRoot(doc)
	b := &builder{
		doc:   doc,
		stack: []*ir.Node{root},
		log:   pOpts.logger.With("file", doc.Name),
	}
	rd := token.NewReader(r, token.ReaderSeparator(pOpts.separator))
	for {
		l, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if unit := rd.Indent(); unit != "" && unit != doc.Indent {
			doc.SetIndentation(unit)
		}
		b.line(l)
	}
	b.closeTo(0)
	doc.Newline = rd.Newline()
	doc.FinalNewline = rd.FinalNewline()
	if rd.Empty() {
		msg := fmt.Sprintf("'%s' is empty", doc.Name)
		doc.Report(0, ir.DiagEmptyDocument, msg)
		b.log.Warn(msg)
	}
	return root, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse(strings.NewReader(s), opts...)
}

// builder folds lines into sections. stack[d] is the section receiving
// lines at depth d.
type builder struct {
	doc   *ir.Doc
	stack []*ir.Node
	log   *slog.Logger
}

func (b *builder) top() *ir.Node {
	return b.stack[len(b.stack)-1]
}

func (b *builder) line(l *token.Line) {
	if debug.Parse() {
		debug.Logf("parse %d depth=%d void=%v %q\n", l.Num, l.Depth, l.Void, l.Raw)
	}
	if l.Void {
		b.top().Add(ir.NewVoid(b.doc, l.Text, l.Comment, l.Num).WithIndent(l.Indent))
		return
	}
	if l.BadIndent || l.Depth > len(b.stack)-1 {
		b.invalid(l, ir.DiagIndent, b.indentMsg(l))
		return
	}
	b.closeTo(l.Depth)
	top := b.top()
	switch {
	case l.IsHeader() || (b.doc.Simple && strings.HasSuffix(l.Body, ":")):
		sec := ir.NewSection(b.doc, l.HeaderKey(), l.Comment, l.Num).WithRaw(l.Text, ":")
		top.Add(sec)
		b.stack = append(b.stack, sec)
	case b.doc.Simple:
		top.Add(ir.NewSimple(b.doc, l.Body, l.Comment, l.Num).WithRaw(l.Text, ""))
	default:
		key, value, ok := l.Split()
		if !ok {
			b.invalid(l, ir.DiagSyntax, fmt.Sprintf(
				"'%s' is not a section (like 'name:'), nor an entry (like 'name%s value')",
				l.Body, b.doc.DefaultSeparator))
			return
		}
		b.doc.Separator = l.Sep
		top.Add(ir.NewEntry(b.doc, key, value, l.Comment, l.Num).WithRaw(l.Text, l.Sep))
	}
}

func (b *builder) invalid(l *token.Line, kind ir.DiagKind, msg string) {
	b.top().Add(ir.NewInvalid(b.doc, l.Text, l.Comment, l.Num).WithIndent(l.Indent))
	b.doc.Report(l.Num, kind, msg)
	b.log.Error(msg, "line", l.Num)
}

func (b *builder) indentMsg(l *token.Line) string {
	n := (len(b.stack) - 1) * len(b.doc.Indent)
	plural := "s"
	if n == 1 {
		plural = ""
	}
	found := strings.NewReplacer("\t", "->", " ", "_").Replace(l.Indent)
	return fmt.Sprintf("indentation error: expected %d %s%s, but found '%s'", n, b.doc.IndentName, plural, found)
}

// closeTo closes open sections until lines at depth are accepted.
func (b *builder) closeTo(depth int) {
	for len(b.stack)-1 > depth {
		sec := b.top()
		b.stack = b.stack[:len(b.stack)-1]
		b.closeSection(sec)
	}
}

func (b *builder) closeSection(sec *ir.Node) {
	if b.doc.AllowEmptySections || !sec.IsLogicallyEmpty() {
		return
	}
	b.doc.EmptySections++
	b.doc.Report(sec.Line, ir.DiagEmptySection, emptySectionMsg)
	b.log.Error(emptySectionMsg, "line", sec.Line, "section", sec.Key)
}
