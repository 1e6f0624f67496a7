// Package format names the output formats a flattened document can be
// written in.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	err = format.WriteMap(os.Stdout, cfg.ToMap("."), f)
//
// # Related Packages
//
//   - github.com/signadot/sectcfg/config - ToMap flattens a document
package format
