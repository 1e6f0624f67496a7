package ir

import (
	"strings"
)

type Node struct {
	Kind Kind

	// Key is the trimmed key of a section, entry or simple line. For void
	// and invalid nodes it is the trimmed line text.
	Key   string
	Value string
	// Comment holds everything after the key or value on the line: the
	// padding before a '#' comment and the comment itself, or trailing
	// whitespace.
	Comment string
	Line    int

	Parent *Node
	Values []*Node
	Doc    *Doc

	indent    string
	rawIndent bool

	raw      string
	rawSep   string
	rawKey   string
	rawValue string
}

func NewRoot(doc *Doc) *Node {
	return &Node{Kind: SectionKind, Doc: doc}
}

func NewSection(doc *Doc, key, comment string, line int) *Node {
	return &Node{
		Kind:    SectionKind,
		Key:     key,
		Comment: comment,
		Line:    line,
		Doc:     doc,
	}
}

func NewEntry(doc *Doc, key, value, comment string, line int) *Node {
	return &Node{
		Kind:    EntryKind,
		Key:     key,
		Value:   value,
		Comment: comment,
		Line:    line,
		Doc:     doc,
	}
}

// NewVoid returns a blank or comment-only line.
func NewVoid(doc *Doc, text, comment string, line int) *Node {
	return &Node{
		Kind:    VoidKind,
		Key:     strings.TrimSpace(text),
		Comment: comment,
		Line:    line,
		Doc:     doc,
	}
}

// NewInvalid returns a line that failed to parse and counts it against doc.
func NewInvalid(doc *Doc, text, comment string, line int) *Node {
	if doc != nil {
		doc.Errors++
	}
	return &Node{
		Kind:    InvalidKind,
		Key:     strings.TrimSpace(text),
		Comment: comment,
		Line:    line,
		Doc:     doc,
	}
}

func NewSimple(doc *Doc, text, comment string, line int) *Node {
	return &Node{
		Kind:    SimpleKind,
		Key:     text,
		Comment: comment,
		Line:    line,
		Doc:     doc,
	}
}

// WithIndent records the leading whitespace a void or invalid line was
// read with so that it is written back verbatim.
func (n *Node) WithIndent(indent string) *Node {
	n.indent = indent
	n.rawIndent = true
	return n
}

// RawIndent returns the verbatim indentation recorded by WithIndent.
func (n *Node) RawIndent() (string, bool) {
	return n.indent, n.rawIndent
}

// WithRaw records the entry body exactly as read along with the separator
// it was split on.
func (n *Node) WithRaw(body, sep string) *Node {
	n.raw = body
	n.rawSep = sep
	n.rawKey = n.Key
	n.rawValue = n.Value
	return n
}

// Raw returns the body an entry was read with if neither its key nor its
// value changed since and it was split on sep.
func (n *Node) Raw(sep string) (string, bool) {
	if n.raw == "" || n.rawSep != sep {
		return "", false
	}
	if n.Key != n.rawKey || n.Value != n.rawValue {
		return "", false
	}
	return n.raw, true
}

// SetValue replaces an entry's value in place and returns the previous one.
func (n *Node) SetValue(v string) string {
	old := n.Value
	n.Value = v
	return old
}

// Ident is the segment naming this node in a path. Void and invalid lines
// are named by their text.
func (n *Node) Ident() string {
	return n.Key
}

// Index returns the full index of n in its parent, or -1 for a root.
func (n *Node) Index() int {
	if n.Parent == nil {
		return -1
	}
	return n.Parent.IndexOf(n)
}

// Depth returns the nesting level of n: children of the root are at 0
// and the root itself is at -1.
func (n *Node) Depth() int {
	d := -1
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
