package ir

import "strings"

// SplitPath splits a dotted path into its segments.
func SplitPath(path string) []string {
	return strings.Split(path, ".")
}

// Path returns the identity segments leading from the root to n.
func (n *Node) Path() []string {
	if n.Parent == nil {
		return nil
	}
	return append(n.Parent.Path(), n.Ident())
}

// DotPath joins Path with sep.
func (n *Node) DotPath(sep string) string {
	return strings.Join(n.Path(), sep)
}

// Lookup descends from n through sections by logical key. It returns nil
// as soon as a segment is missing or a non-section is met before the path
// is exhausted. An empty path yields n.
func (n *Node) Lookup(path ...string) *Node {
	res := n
	for _, seg := range path {
		if res.Kind != SectionKind {
			return nil
		}
		res = res.Get(seg)
		if res == nil {
			return nil
		}
	}
	return res
}
