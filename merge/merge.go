package merge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/sectcfg/debug"
	"github.com/signadot/sectcfg/ir"
)

var ErrMergeParent = errors.New("merge parent")

// Delta is a node of the newer document with no counterpart in the older
// one.
type Delta struct {
	Node *ir.Node
	// Parent is the path of the section holding Node in the newer document.
	Parent []string
	// Index is the full index of Node in that section.
	Index int
}

func (d *Delta) String() string {
	return fmt.Sprintf("%s %q at %s[%d]", d.Node.Kind, d.Node.Ident(), strings.Join(d.Parent, "."), d.Index)
}

// Missing returns the nodes of newer whose path does not occur in older, in
// pre-order. Every child takes part, comments and blank lines included,
// except invalid lines. A path occurring several times in newer yields a
// single delta for its first occurrence.
func Missing(older, newer *ir.Node) []Delta {
	have := map[string]bool{}
	for n := range older.Walk() {
		if n.Kind == ir.InvalidKind {
			continue
		}
		have[pathKey(n.Path())] = true
	}
	var res []Delta
	for n := range newer.Walk() {
		if n.Kind == ir.InvalidKind {
			continue
		}
		k := pathKey(n.Path())
		if have[k] {
			continue
		}
		have[k] = true
		res = append(res, Delta{
			Node:   n,
			Parent: n.Parent.Path(),
			Index:  n.Index(),
		})
	}
	return res
}

func pathKey(p []string) string {
	return strings.Join(p, "\x00")
}

// UpdateKeys adds the nodes of newer missing from older to older, in place,
// and reports whether anything was added. Values already present in older
// are never touched.
//
// A missing node lands at its index in the newer document. If older already
// has a child at that index, the child is replaced and dropped; beyond the
// end of the section the node is appended. Missing ancestor sections are
// created empty at the end of their parent.
//
// If some delta cannot be placed, for example because older holds an entry
// where newer holds a section, UpdateKeys returns an error wrapping
// ErrMergeParent and older is left as it was.
func UpdateKeys(older, newer *ir.Node) (bool, error) {
	deltas := Missing(older, newer)
	if len(deltas) == 0 {
		return false, nil
	}
	if err := splice(older.Clone(), deltas, false); err != nil {
		return false, err
	}
	if err := splice(older, deltas, debug.Merge()); err != nil {
		return false, err
	}
	return true, nil
}

func splice(older *ir.Node, deltas []Delta, trace bool) error {
	for i := range deltas {
		d := &deltas[i]
		parent, err := resolveParent(older, d.Parent)
		if err != nil {
			return err
		}
		var cp *ir.Node
		if d.Node.Kind == ir.SectionKind {
			cp = d.Node.Shell()
			cp.Doc = older.Doc
		} else {
			cp = d.Node.CloneTo(older.Doc)
		}
		if d.Index >= parent.Len() {
			if trace {
				debug.Logf("merge append %s\n", d)
			}
			if err := parent.Add(cp); err != nil {
				return err
			}
			continue
		}
		old, err := parent.Set(d.Index, cp)
		if err != nil {
			return err
		}
		if trace {
			debug.Logf("merge replace %s, dropping %s:\n%s\n", d, old.Kind, debug.Node{Node: old})
		}
	}
	return nil
}

func resolveParent(root *ir.Node, path []string) (*ir.Node, error) {
	cur := root
	for i, seg := range path {
		next := cur.Get(seg)
		if next == nil {
			next = ir.NewSection(root.Doc, seg, "", 0)
			if err := cur.Add(next); err != nil {
				return nil, err
			}
		}
		if next.Kind != ir.SectionKind {
			return nil, fmt.Errorf("%w: %s is a %s, not a section",
				ErrMergeParent, strings.Join(path[:i+1], "."), next.Kind)
		}
		cur = next
	}
	return cur, nil
}
