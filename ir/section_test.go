package ir

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func keys(n *Node) []string {
	res := []string{}
	for _, c := range n.Values {
		res = append(res, c.Kind.String()+":"+c.Key)
	}
	return res
}

func sample() (*Doc, *Node) {
	doc := NewDoc("test")
	root := NewRoot(doc)
	root.Add(NewEntry(doc, "a", "1", "", 1))
	root.Add(NewVoid(doc, "", "", 2))
	sec := NewSection(doc, "b", "", 3)
	root.Add(sec)
	sec.Add(NewEntry(doc, "c", "2", "", 4))
	root.Add(NewEntry(doc, "a", "3", "", 5))
	return doc, root
}

func TestGetLastDeclarationWins(t *testing.T) {
	_, root := sample()
	a := root.Get("a")
	if a == nil || a.Value != "3" {
		t.Fatalf("expected shadowing entry with value 3, got %+v", a)
	}
	if got := root.IndexOf(a); got != 3 {
		t.Errorf("full index of shadowing entry: got %d want 3", got)
	}
	if root.Get("") != nil {
		t.Errorf("void lines must not take part in lookup")
	}
}

func TestChildrenSkipsVoid(t *testing.T) {
	_, root := sample()
	got := []string{}
	for c := range root.Children() {
		got = append(got, c.Key)
	}
	if diff := cmp.Diff([]string{"a", "b", "a"}, got); diff != "" {
		t.Errorf("logical children (-want +got):\n%s", diff)
	}
	n := 0
	for range root.All() {
		n++
	}
	if n != 4 {
		t.Errorf("full children: got %d want 4", n)
	}
}

func TestInsertSetRemove(t *testing.T) {
	doc, root := sample()
	if err := root.Insert(1, NewEntry(doc, "x", "9", "", 0)); err != nil {
		t.Fatal(err)
	}
	want := []string{"Entry:a", "Entry:x", "Void:", "Section:b", "Entry:a"}
	if diff := cmp.Diff(want, keys(root)); diff != "" {
		t.Fatalf("after insert (-want +got):\n%s", diff)
	}
	old, err := root.Set(2, NewEntry(doc, "y", "8", "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if old.Kind != VoidKind || old.Parent != nil || old.Doc != nil {
		t.Errorf("replaced node must be detached, got %+v", old)
	}
	b := root.Get("b")
	if !root.Remove(b) {
		t.Fatal("remove b")
	}
	if b.Parent != nil || b.Values[0].Doc != nil {
		t.Errorf("removed subtree keeps back-references")
	}
	want = []string{"Entry:a", "Entry:x", "Entry:y", "Entry:a"}
	if diff := cmp.Diff(want, keys(root)); diff != "" {
		t.Errorf("after set/remove (-want +got):\n%s", diff)
	}
}

func TestAdoptErrors(t *testing.T) {
	doc, root := sample()
	a := root.Values[0]
	if err := root.Add(a); !errors.Is(err, ErrHasParent) {
		t.Errorf("re-adding an attached node: got %v", err)
	}
	if err := a.Add(NewVoid(doc, "", "", 0)); !errors.Is(err, ErrNotSection) {
		t.Errorf("adding to an entry: got %v", err)
	}
	if err := root.Insert(99, NewVoid(doc, "", "", 0)); !errors.Is(err, ErrIndex) {
		t.Errorf("insert out of range: got %v", err)
	}
	b := root.Get("b")
	root.Remove(b)
	if err := b.Values[0].Parent.Add(b); !errors.Is(err, ErrHasParent) {
		t.Errorf("cycle: got %v", err)
	}
}

func TestAdoptMovesDoc(t *testing.T) {
	_, root := sample()
	other := NewDoc("other")
	sec := NewSection(other, "s", "", 0)
	sec.Add(NewEntry(other, "k", "v", "", 0))
	if err := root.Add(sec); err != nil {
		t.Fatal(err)
	}
	if sec.Doc != root.Doc || sec.Values[0].Doc != root.Doc {
		t.Errorf("adopted subtree must belong to the new document")
	}
}

func TestLookupAndPath(t *testing.T) {
	_, root := sample()
	c := root.Lookup("b", "c")
	if c == nil || c.Value != "2" {
		t.Fatalf("lookup b.c: %+v", c)
	}
	if got := c.DotPath("."); got != "b.c" {
		t.Errorf("dot path: %q", got)
	}
	if c.Depth() != 1 || root.Depth() != -1 {
		t.Errorf("depths: %d %d", c.Depth(), root.Depth())
	}
	if root.Lookup("a", "x") != nil {
		t.Errorf("lookup through an entry must fail")
	}
	if root.Lookup() != root {
		t.Errorf("empty lookup must yield the receiver")
	}
}

func TestCloneTo(t *testing.T) {
	doc, root := sample()
	comment := NewVoid(doc, "# note", "", 6).WithIndent("\t")
	root.Get("b").Add(comment)
	other := NewDoc("other")
	cp := root.Get("b").CloneTo(other)
	if cp.Parent != nil || cp.Doc != other {
		t.Fatalf("clone must be detached and owned by the target")
	}
	if _, ok := cp.Values[1].RawIndent(); ok {
		t.Errorf("comment cloned to another document keeps its indentation")
	}
	if _, ok := comment.RawIndent(); !ok {
		t.Errorf("source comment lost its indentation")
	}
	same := root.Get("b").Clone()
	if _, ok := same.Values[1].RawIndent(); !ok {
		t.Errorf("clone within a document must keep indentation")
	}
}

func TestWalkOrder(t *testing.T) {
	_, root := sample()
	got := []string{}
	for n := range root.Walk() {
		got = append(got, n.Key)
	}
	if !slices.Equal(got, []string{"a", "", "b", "c", "a"}) {
		t.Errorf("walk order: %q", got)
	}
}

func TestVisitPrePost(t *testing.T) {
	_, root := sample()
	got := []string{}
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			got = append(got, "/"+n.Key)
			return false, nil
		}
		got = append(got, n.Key)
		return !n.Kind.IsLeaf(), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"", "a", "/a", "", "/", "b", "c", "/c", "/b", "a", "/a", "/"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visit (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	n := 0
	err = root.Visit(func(_ *Node, isPost bool) (bool, error) {
		if n++; n == 3 {
			return false, stop
		}
		return true, nil
	})
	if !errors.Is(err, stop) || n != 3 {
		t.Errorf("visit must stop on error: %v after %d calls", err, n)
	}
}

func TestIsLeaf(t *testing.T) {
	for _, k := range Kinds() {
		if k.IsLeaf() == (k == SectionKind) {
			t.Errorf("%s: IsLeaf = %v", k, k.IsLeaf())
		}
	}
}

func TestResetErrors(t *testing.T) {
	doc := NewDoc("reset")
	root := NewRoot(doc)
	root.Add(NewInvalid(doc, "junk", "", 1))
	doc.EmptySections++
	doc.Report(1, DiagSyntax, "bad")
	if doc.Errors != 1 || len(doc.Diagnostics) != 1 {
		t.Fatalf("errors=%d diagnostics=%d", doc.Errors, len(doc.Diagnostics))
	}
	doc.ResetErrors()
	if doc.Errors != 0 || doc.EmptySections != 0 || len(doc.Diagnostics) != 0 {
		t.Errorf("after reset: errors=%d empty=%d diagnostics=%d", doc.Errors, doc.EmptySections, len(doc.Diagnostics))
	}
	if root.Len() != 1 {
		t.Errorf("reset must not touch the tree")
	}
}

func TestRaw(t *testing.T) {
	doc := NewDoc("raw")
	e := NewEntry(doc, "k", "v", "", 1).WithRaw("k:v", ":")
	if raw, ok := e.Raw(":"); !ok || raw != "k:v" {
		t.Errorf("raw: %q %v", raw, ok)
	}
	if _, ok := e.Raw("="); ok {
		t.Errorf("raw must not apply for another separator")
	}
	e.SetValue("w")
	if _, ok := e.Raw(":"); ok {
		t.Errorf("raw must not survive an edit")
	}
}

func TestSaveSeparator(t *testing.T) {
	doc := NewDoc("sep")
	for sep, want := range map[string]string{":": ": ", "=": " = ", "->": " -> "} {
		doc.Separator = sep
		if got := doc.SaveSeparator(); got != want {
			t.Errorf("%q: got %q want %q", sep, got, want)
		}
	}
}
