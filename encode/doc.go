// Package encode writes sectcfg node trees back to text.
//
// # Usage
//
//	if err := encode.Encode(root, w); err != nil {
//	    return err
//	}
//
//	// colored output for terminals
//	err := encode.Encode(root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Lines that were read and not edited since are written back as they were
// read, as long as they used the document's save separator. Everything else
// is written in canonical form: the document's indentation unit repeated
// per depth and Doc.SaveSeparator between key and value.
//
// # Related Packages
//
//   - github.com/signadot/sectcfg/ir - node tree
//   - github.com/signadot/sectcfg/parse - builds trees from text
package encode
