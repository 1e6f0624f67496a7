// Package token reads sectcfg documents line by line.
//
// [Reader] decodes a byte stream as UTF-8 and yields one [Line] per source
// line, annotated with its nesting depth, its body, its trailing comment and
// the separator it uses. The indentation unit is fixed by the first indented
// line and every later line is measured against it.
//
// [SplitComment] and [EscapeHashes] implement the comment syntax: '#' starts
// a comment, "##" stands for a literal '#', and a line consisting of "###"
// opens or closes a block comment.
package token
