package encode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/sectcfg/ir"
	"github.com/signadot/sectcfg/token"
)

type EncState struct {
	depth   int
	lines   int
	newline string
	doc     *ir.Doc

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes node and its descendants to w. A root section contributes
// only its children.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	es.doc = node.Doc
	if es.doc == nil {
		es.doc = ir.NewDoc("")
	}
	if es.newline == "" {
		es.newline = es.doc.Newline
	}
	bw := bufio.NewWriter(w)
	var err error
	if node.Parent == nil && node.Kind == ir.SectionKind && node.Key == "" {
		err = encodeChildren(node, bw, es, es.depth)
	} else {
		err = encodeNode(node, bw, es, es.depth)
	}
	if err != nil {
		return err
	}
	if es.lines > 0 && es.doc.FinalNewline {
		if _, err := bw.WriteString(es.newline); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func encodeChildren(node *ir.Node, w *bufio.Writer, es *EncState, depth int) error {
	for _, c := range node.Values {
		if err := encodeNode(c, w, es, depth); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(node *ir.Node, w *bufio.Writer, es *EncState, depth int) error {
	ln, err := es.render(node, depth)
	if err != nil {
		return err
	}
	if es.lines > 0 {
		if _, err := w.WriteString(es.newline); err != nil {
			return err
		}
	}
	es.lines++
	if _, err := w.WriteString(ln); err != nil {
		return err
	}
	if node.Kind.IsLeaf() {
		return nil
	}
	return encodeChildren(node, w, es, depth+1)
}

func (es *EncState) render(node *ir.Node, depth int) (string, error) {
	indent := strings.Repeat(es.doc.Indent, max(depth, 0))
	comment := es.color(node.Kind, CommentColor, node.Comment)
	switch node.Kind {
	case ir.SectionKind:
		if raw, ok := node.Raw(":"); ok && es.Color == nil {
			return indent + raw + node.Comment, nil
		}
		return indent + es.color(node.Kind, KeyColor, token.EscapeHashes(node.Key)) +
			es.color(node.Kind, SepColor, ":") + comment, nil
	case ir.EntryKind:
		if raw, ok := node.Raw(es.doc.Separator); ok && es.Color == nil {
			return indent + raw + node.Comment, nil
		}
		return indent + es.color(node.Kind, KeyColor, token.EscapeHashes(node.Key)) +
			es.color(node.Kind, SepColor, es.doc.SaveSeparator()) +
			es.color(node.Kind, ValueColor, token.EscapeHashes(node.Value)) + comment, nil
	case ir.SimpleKind:
		if raw, ok := node.Raw(""); ok && es.Color == nil {
			return indent + raw + node.Comment, nil
		}
		return indent + es.color(node.Kind, KeyColor, token.EscapeHashes(node.Key)) + comment, nil
	case ir.VoidKind, ir.InvalidKind:
		if raw, ok := node.RawIndent(); ok {
			indent = raw
		} else if node.Key == "" {
			indent = ""
		}
		return indent + es.color(node.Kind, ValueColor, node.Key) + es.color(node.Kind, CommentColor, node.Comment), nil
	}
	return "", fmt.Errorf("cannot encode node of kind %s", node.Kind)
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil || s == "" {
		return s
	}
	return es.Color(k, a, s)
}
