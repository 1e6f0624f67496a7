// Package parse builds sectcfg node trees from text.
//
// # Usage
//
//	root, err := parse.Parse(r, parse.ParseName("settings.cfg"))
//	if err != nil {
//	    return err // only read errors are returned
//	}
//	fmt.Println(root.Doc.Errors, "errors")
//
// Parsing never stops at a malformed line. Lines that cannot be placed in
// the tree become invalid nodes, are counted in Doc.Errors and are reported
// as diagnostics, so a complete tree is always returned and writing it back
// keeps every line.
//
// # Related Packages
//
//   - github.com/signadot/sectcfg/token - line reader
//   - github.com/signadot/sectcfg/ir - node tree
//   - github.com/signadot/sectcfg/encode - writes trees back to text
package parse
