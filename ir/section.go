package ir

import (
	"fmt"
	"iter"
)

func (n *Node) Len() int {
	return len(n.Values)
}

// IsEmpty reports whether the section has no children at all.
func (n *Node) IsEmpty() bool {
	return len(n.Values) == 0
}

// IsLogicallyEmpty reports whether the section has no children other than
// void and invalid lines.
func (n *Node) IsLogicallyEmpty() bool {
	for _, c := range n.Values {
		if !c.Kind.IsVoid() {
			return false
		}
	}
	return true
}

// Get returns the child with the given key among entries, sections and
// simple lines. When a key is declared more than once the last
// declaration wins.
func (n *Node) Get(key string) *Node {
	for i := len(n.Values) - 1; i >= 0; i-- {
		c := n.Values[i]
		if c.Kind.IsVoid() {
			continue
		}
		if c.Key == key {
			return c
		}
	}
	return nil
}

// All iterates every child with its full index.
func (n *Node) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, c := range n.Values {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Children iterates the logical children, skipping void and invalid lines.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.Values {
			if c.Kind.IsVoid() {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

func (n *Node) IndexOf(c *Node) int {
	for i, v := range n.Values {
		if v == c {
			return i
		}
	}
	return -1
}

func (n *Node) Add(c *Node) error {
	return n.Insert(len(n.Values), c)
}

// Insert places c at full index i, shifting later children.
func (n *Node) Insert(i int, c *Node) error {
	if err := n.checkAdopt(c); err != nil {
		return err
	}
	if i < 0 || i > len(n.Values) {
		return fmt.Errorf("%w: insert at %d (len %d)", ErrIndex, i, len(n.Values))
	}
	n.Values = append(n.Values, nil)
	copy(n.Values[i+1:], n.Values[i:])
	n.Values[i] = c
	n.adopt(c)
	return nil
}

// Set replaces the child at full index i with c and returns the detached
// previous occupant.
func (n *Node) Set(i int, c *Node) (*Node, error) {
	if err := n.checkAdopt(c); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: set at %d (len %d)", ErrIndex, i, len(n.Values))
	}
	old := n.Values[i]
	n.Values[i] = c
	n.adopt(c)
	old.detach()
	return old, nil
}

func (n *Node) RemoveAt(i int) (*Node, error) {
	if n.Kind != SectionKind {
		return nil, ErrNotSection
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: remove at %d (len %d)", ErrIndex, i, len(n.Values))
	}
	old := n.Values[i]
	n.Values = append(n.Values[:i], n.Values[i+1:]...)
	old.detach()
	return old, nil
}

// Remove detaches c from n and reports whether it was a child.
func (n *Node) Remove(c *Node) bool {
	i := n.IndexOf(c)
	if i == -1 {
		return false
	}
	_, err := n.RemoveAt(i)
	return err == nil
}

func (n *Node) checkAdopt(c *Node) error {
	if n.Kind != SectionKind {
		return fmt.Errorf("%w: %s %q", ErrNotSection, n.Kind, n.Key)
	}
	if c.Parent != nil {
		return fmt.Errorf("%w: %s %q", ErrHasParent, c.Kind, c.Key)
	}
	for p := n; p != nil; p = p.Parent {
		if p == c {
			return fmt.Errorf("%w: %q would contain itself", ErrHasParent, c.Key)
		}
	}
	return nil
}

func (n *Node) adopt(c *Node) {
	c.Parent = n
	if c.Doc != n.Doc {
		c.setDoc(n.Doc)
	}
}

func (n *Node) detach() {
	n.Parent = nil
	n.setDoc(nil)
}

func (n *Node) setDoc(doc *Doc) {
	n.Doc = doc
	for _, c := range n.Values {
		c.setDoc(doc)
	}
}
