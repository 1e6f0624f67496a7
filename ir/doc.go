// Package ir provides the node tree for sectcfg documents.
//
// # Overview
//
// A parsed document is a tree of *Node values rooted at a parentless
// section. Every line of the source is represented by exactly one node, so
// the tree can be written back without losing blank lines, comments or
// lines that failed to parse.
//
// Node is a tagged union: the Kind field says which of the other fields are
// meaningful, and consumers switch on it.
//
// # Node Kinds
//
//   - SectionKind: a header line ("name:") owning an ordered list of children in Values
//   - EntryKind: a key/value line ("name: value")
//   - VoidKind: a blank line, a comment-only line, or a line inside a ### block comment
//   - InvalidKind: a line that could not be parsed; kept verbatim and counted in Doc.Errors
//   - SimpleKind: a bare line in a simple document, which has no key/value split
//
// # Indexing
//
// A section's children can be addressed two ways:
//
//   - full index: the position in Values, counting every kind of child
//   - logical key: Get(key) over entries, sections and simple lines, where
//     the last declaration of a duplicated key wins
//
// Lookups never reorder children. Children move only through Add, Insert,
// Set, RemoveAt and Remove, which maintain Parent and Doc back-references;
// a removed node keeps no reference into its old tree.
//
// # Paths
//
// Path returns the identity segments from the root to a node and Lookup
// descends a section along such segments:
//
//	n := root.Lookup("database", "host")
//	p := n.DotPath(".") // "database.host"
//
// # Documents
//
// Doc carries the per-document state needed to write nodes back out: the
// indentation unit, the separator, line endings, and the error counters
// and diagnostics collected while parsing.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Concurrent reads are safe as
// long as no goroutine mutates the tree.
//
// # Related Packages
//
//   - github.com/signadot/sectcfg/parse - builds trees from text
//   - github.com/signadot/sectcfg/encode - writes trees back to text
//   - github.com/signadot/sectcfg/merge - adopts new nodes from a newer tree
package ir
