package ir

import "fmt"

// Doc is the formatting and diagnostic state shared by every node of one
// parsed document. Nodes refer back to it through Node.Doc.
type Doc struct {
	Name string

	// Simple documents hold bare lines instead of key/value entries.
	Simple             bool
	AllowEmptySections bool

	// Indent is one level of indentation, e.g. a tab or four spaces.
	Indent string
	// IndentName is "tab" or "space".
	IndentName string

	DefaultSeparator string
	// Separator is the separator most recently in use. It is only
	// meaningful while loading; saving resets it to DefaultSeparator.
	Separator string

	Newline      string
	FinalNewline bool

	// Errors counts the invalid nodes created for this document.
	Errors int
	// EmptySections counts sections that closed without content while
	// AllowEmptySections was false.
	EmptySections int
	Diagnostics   []Diagnostic
}

func NewDoc(name string) *Doc {
	return &Doc{
		Name:             name,
		Indent:           "\t",
		IndentName:       "tab",
		DefaultSeparator: ":",
		Separator:        ":",
		Newline:          "\n",
		FinalNewline:     true,
	}
}

func (d *Doc) SetIndentation(indent string) {
	if indent == "" {
		panic("ir: empty indentation")
	}
	d.Indent = indent
	if indent[0] == ' ' {
		d.IndentName = "space"
	} else {
		d.IndentName = "tab"
	}
}

// SaveSeparator returns the separator with the padding used when writing
// entries, e.g. ": " or " = ".
func (d *Doc) SaveSeparator() string {
	switch d.Separator {
	case ":":
		return ": "
	case "=":
		return " = "
	}
	return " " + d.Separator + " "
}

// Report records a diagnostic without touching the counters.
func (d *Doc) Report(line int, kind DiagKind, msg string) Diagnostic {
	diag := Diagnostic{Name: d.Name, Line: line, Kind: kind, Msg: msg}
	d.Diagnostics = append(d.Diagnostics, diag)
	return diag
}

// ResetErrors zeroes the counters and drops recorded diagnostics. Counters
// only grow during a parse pass; this is the only way to lower them.
func (d *Doc) ResetErrors() {
	d.Errors = 0
	d.EmptySections = 0
	d.Diagnostics = nil
}

type DiagKind int

const (
	DiagIndent DiagKind = iota
	DiagSyntax
	DiagEmptySection
	DiagEmptyDocument
)

func (k DiagKind) String() string {
	switch k {
	case DiagIndent:
		return "indentation"
	case DiagSyntax:
		return "syntax"
	case DiagEmptySection:
		return "empty-section"
	case DiagEmptyDocument:
		return "empty-document"
	}
	return "<unknown diagnostic>"
}

type Diagnostic struct {
	Name string
	Line int
	Kind DiagKind
	Msg  string
}

func (d Diagnostic) String() string {
	if d.Line <= 0 {
		return fmt.Sprintf("%s: %s", d.Name, d.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", d.Name, d.Line, d.Msg)
}
