package format

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// WriteMap writes a flattened document. Text output is one path=value line
// per entry, sorted by path.
func WriteMap(w io.Writer, m map[string]string, f Format) error {
	var (
		d   []byte
		err error
	)
	switch {
	case f.IsText():
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if _, err := fmt.Fprintf(w, "%s=%s\n", k, m[k]); err != nil {
				return err
			}
		}
		return nil
	case f.IsJSON():
		d, err = json.MarshalIndent(m, "", "  ")
		d = append(d, '\n')
	case f.IsYAML():
		if len(m) == 0 {
			d = []byte("{}\n")
			break
		}
		d, err = yaml.Marshal(m)
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
