package token

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readAll(t *testing.T, in string, opts ...ReaderOption) (*Reader, []*Line) {
	t.Helper()
	r := NewReader(strings.NewReader(in), opts...)
	var res []*Line
	for {
		l, err := r.Next()
		if errors.Is(err, io.EOF) {
			return r, res
		}
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, l)
	}
}

func TestSplitComment(t *testing.T) {
	tests := []struct {
		in, text, comment string
	}{
		{"a: b", "a: b", ""},
		{"a: b # c", "a: b", " # c"},
		{"a: b\t# c", "a: b", "\t# c"},
		{"a: ## b", "a: ## b", ""},
		{"a: ### b", "a: ##", "# b"},
		{"a: b   ", "a: b", "   "},
		{"#", "", "#"},
	}
	for _, tt := range tests {
		text, comment := SplitComment(tt.in)
		if text != tt.text || comment != tt.comment {
			t.Errorf("SplitComment(%q) = %q, %q; want %q, %q", tt.in, text, comment, tt.text, tt.comment)
		}
		if text+comment != tt.in {
			t.Errorf("SplitComment(%q) loses bytes", tt.in)
		}
	}
}

func TestEscapeHashes(t *testing.T) {
	if got := UnescapeHashes("a ## b"); got != "a # b" {
		t.Errorf("unescape: %q", got)
	}
	if got := EscapeHashes("a # b"); got != "a ## b" {
		t.Errorf("escape: %q", got)
	}
}

type lineSummary struct {
	Num       int
	Depth     int
	Bad       bool
	Void      bool
	Body, Sep string
	Comment   string
}

func summarize(ls []*Line) []lineSummary {
	res := make([]lineSummary, len(ls))
	for i, l := range ls {
		res[i] = lineSummary{
			Num:     l.Num,
			Depth:   l.Depth,
			Bad:     l.BadIndent,
			Void:    l.Void,
			Body:    l.Body,
			Sep:     l.Sep,
			Comment: l.Comment,
		}
	}
	return res
}

func TestReaderLines(t *testing.T) {
	in := "a: 1 # one\n\nb:\n\tc = 2\n\t# note\n\t\td: x##y\n  e: 3\n"
	r, ls := readAll(t, in)
	want := []lineSummary{
		{Num: 1, Body: "a: 1", Sep: ":", Comment: " # one"},
		{Num: 2, Void: true},
		{Num: 3, Body: "b:", Sep: ":"},
		{Num: 4, Depth: 1, Body: "c = 2", Sep: "="},
		{Num: 5, Void: true, Body: "# note"},
		{Num: 6, Depth: 2, Body: "d: x#y", Sep: ":"},
		{Num: 7, Depth: -1, Bad: true, Body: "e: 3", Sep: ":"},
	}
	if diff := cmp.Diff(want, summarize(ls)); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if r.Indent() != "\t" || r.IndentName() != "tab" {
		t.Errorf("indent: %q %q", r.Indent(), r.IndentName())
	}
	if !r.FinalNewline() || r.Newline() != "\n" || r.Empty() {
		t.Errorf("line endings: final=%v nl=%q empty=%v", r.FinalNewline(), r.Newline(), r.Empty())
	}
}

func TestReaderEscapedHashKey(t *testing.T) {
	_, ls := readAll(t, "##tag: v\n\t## note\n#####\n### x\n")
	want := []lineSummary{
		{Num: 1, Body: "#tag: v", Sep: ":"},
		{Num: 2, Depth: 1, Body: "# note"},
		{Num: 3, Void: true, Body: "#####"},
		{Num: 4, Void: true, Body: "### x"},
	}
	if diff := cmp.Diff(want, summarize(ls)); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func TestReaderSpaceUnit(t *testing.T) {
	_, ls := readAll(t, "a:\n  b:\n    c: 1\n   d: 2\n \te: 3")
	got := []int{}
	for _, l := range ls {
		got = append(got, l.Depth)
	}
	if diff := cmp.Diff([]int{0, 1, 2, -1, -1}, got); diff != "" {
		t.Errorf("depths (-want +got):\n%s", diff)
	}
}

func TestReaderMixedFirstIndent(t *testing.T) {
	r, ls := readAll(t, "a:\n \tb: 1\n\tc: 2\n")
	if !ls[1].BadIndent {
		t.Errorf("mixed first indent must be bad")
	}
	if ls[2].BadIndent || ls[2].Depth != 1 || r.Indent() != "\t" {
		t.Errorf("unit must come from the first uniform indent: %+v %q", ls[2], r.Indent())
	}
}

func TestReaderBlockComment(t *testing.T) {
	_, ls := readAll(t, "a: 1\n###\nnot: parsed\n  odd indent\n###\nb: 2\n")
	voids := []bool{}
	for _, l := range ls {
		voids = append(voids, l.Void)
	}
	if diff := cmp.Diff([]bool{false, true, true, true, true, false}, voids); diff != "" {
		t.Errorf("void flags (-want +got):\n%s", diff)
	}
}

func TestReaderCRLFAndFinalNewline(t *testing.T) {
	r, ls := readAll(t, "a: 1\r\nb: 2")
	if len(ls) != 2 || ls[0].Raw != "a: 1" || ls[1].Raw != "b: 2" {
		t.Fatalf("lines: %+v", summarize(ls))
	}
	if r.Newline() != "\r\n" || r.FinalNewline() {
		t.Errorf("nl=%q final=%v", r.Newline(), r.FinalNewline())
	}
}

func TestReaderEmptyAndBOM(t *testing.T) {
	r, ls := readAll(t, "")
	if len(ls) != 0 || !r.Empty() {
		t.Errorf("empty input: %d lines, empty=%v", len(ls), r.Empty())
	}
	r, ls = readAll(t, "\uFEFFa: 1\n")
	if len(ls) != 1 || ls[0].Body != "a: 1" || r.Empty() {
		t.Errorf("bom input: %+v", summarize(ls))
	}
}

func TestReaderSeparators(t *testing.T) {
	_, ls := readAll(t, "url = http://x\ntime: 10:00\nk -> v\n")
	if ls[0].Sep != "=" || ls[1].Sep != ":" || ls[1].SepIndex != 4 || ls[2].Sep != "" {
		t.Errorf("default separators: %+v", summarize(ls))
	}
	_, ls = readAll(t, "k -> v: w\n", ReaderSeparator("->"))
	if ls[0].Sep != "->" {
		t.Errorf("custom separator: %+v", summarize(ls))
	}
	key, val, ok := ls[0].Split()
	if !ok || key != "k" || val != "v: w" {
		t.Errorf("split: %q %q %v", key, val, ok)
	}
}

func TestLineHeader(t *testing.T) {
	tests := []struct {
		in     string
		header bool
	}{
		{"a:", true},
		{"a :", true},
		{"a: b:", false},
		{"a=b:", false},
		{"a", false},
	}
	for _, tt := range tests {
		_, ls := readAll(t, tt.in)
		if got := ls[0].IsHeader(); got != tt.header {
			t.Errorf("%q: header=%v want %v", tt.in, got, tt.header)
		}
	}
	_, ls := readAll(t, "a:", ReaderSeparator("->"))
	if !ls[0].IsHeader() || ls[0].HeaderKey() != "a" {
		t.Errorf("header without separator: %+v", ls[0])
	}
}

func TestReaderPresetIndent(t *testing.T) {
	_, ls := readAll(t, "  key: value\n", ReaderIndent("\t"))
	if !ls[0].BadIndent {
		t.Errorf("two spaces against a tab unit must be bad")
	}
}
