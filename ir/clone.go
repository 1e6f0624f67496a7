package ir

// Clone returns a deep copy of n detached from any parent. The copy shares
// n's Doc.
func (n *Node) Clone() *Node {
	return n.CloneTo(n.Doc)
}

// CloneTo returns a deep, detached copy of n owned by doc. When doc is not
// n's document, comment lines lose their recorded indentation so that they
// are indented like their new surroundings.
func (n *Node) CloneTo(doc *Doc) *Node {
	res := n.Shell()
	res.Doc = doc
	if doc != n.Doc && n.Kind == VoidKind && n.Key != "" {
		res.indent = ""
		res.rawIndent = false
	}
	if len(n.Values) != 0 {
		res.Values = make([]*Node, len(n.Values))
		for i, c := range n.Values {
			cc := c.CloneTo(doc)
			cc.Parent = res
			res.Values[i] = cc
		}
	}
	return res
}

// Shell returns a copy of n without parent or children.
func (n *Node) Shell() *Node {
	res := *n
	res.Parent = nil
	res.Values = nil
	return &res
}
