package ir

import "iter"

// Visit calls f on n before and after its children. Children are visited
// only when the pre-order call returns true.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Values {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Walk yields every descendant of n in pre-order, n excluded.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	for _, c := range n.Values {
		if !yield(c) {
			return false
		}
		if !c.walk(yield) {
			return false
		}
	}
	return true
}
