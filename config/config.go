package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/sectcfg/debug"
	"github.com/signadot/sectcfg/encode"
	"github.com/signadot/sectcfg/ir"
	"github.com/signadot/sectcfg/merge"
	"github.com/signadot/sectcfg/option"
	"github.com/signadot/sectcfg/parse"
	"github.com/signadot/sectcfg/validate"
)

var ErrNoPath = errors.New("no path to save to")

// Config is a parsed document. It is not safe for concurrent use while
// any goroutine mutates it.
type Config struct {
	root *ir.Node
	path string
	log  *slog.Logger
}

// New parses r as the document name.
func New(r io.Reader, name string, opts ...Option) (*Config, error) {
	o := &configOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.separator == "" {
		o.separator = ":"
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	root, err := parse.Parse(r,
		parse.ParseName(name),
		parse.ParseSimple(o.simple),
		parse.ParseAllowEmptySections(o.allowEmptySections),
		parse.ParseSeparator(o.separator),
		parse.ParseLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return &Config{root: root, path: o.path, log: o.logger}, nil
}

func FromString(s, name string, opts ...Option) (*Config, error) {
	return New(strings.NewReader(s), name, opts...)
}

// Open parses the file at path, naming the document after its base name.
// The path becomes the default target of SaveFile unless WithPath is given.
func Open(path string, opts ...Option) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return New(f, filepath.Base(path), append([]Option{WithPath(path)}, opts...)...)
}

func (c *Config) Root() *ir.Node          { return c.root }
func (c *Config) Doc() *ir.Doc            { return c.root.Doc }
func (c *Config) FileName() string        { return c.root.Doc.Name }
func (c *Config) Path() string            { return c.path }
func (c *Config) Errors() int             { return c.root.Doc.Errors }
func (c *Config) EmptySections() int      { return c.root.Doc.EmptySections }
func (c *Config) Indentation() string     { return c.root.Doc.Indent }
func (c *Config) IndentationName() string { return c.root.Doc.IndentName }
func (c *Config) Separator() string       { return c.root.Doc.Separator }
func (c *Config) SaveSeparator() string   { return c.root.Doc.SaveSeparator() }

func (c *Config) Diagnostics() []ir.Diagnostic {
	return c.root.Doc.Diagnostics
}

// IsEmpty reports whether the document has no lines at all.
func (c *Config) IsEmpty() bool {
	return c.root.IsEmpty()
}

// GetNode returns the node at a dotted path, or nil.
func (c *Config) GetNode(path string) *ir.Node {
	return c.root.Lookup(ir.SplitPath(path)...)
}

// GetNodePath returns the node at path, or nil. No segments yields the
// root.
func (c *Config) GetNodePath(path ...string) *ir.Node {
	return c.root.Lookup(path...)
}

// Get returns the value of the entry at path. It fails when the path does
// not end exactly on an entry.
func (c *Config) Get(path ...string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	n := c.root.Lookup(path...)
	if n == nil || n.Kind != ir.EntryKind {
		return "", false
	}
	return n.Value, true
}

func (c *Config) GetByPath(path string) (string, bool) {
	return c.Get(ir.SplitPath(path)...)
}

// Set replaces the value of the entry at the dotted path. It reports false
// when no entry is there.
func (c *Config) Set(path, value string) bool {
	n := c.GetNode(path)
	if n == nil || n.Kind != ir.EntryKind {
		return false
	}
	n.SetValue(value)
	return true
}

// Save writes the document to w using the default separator.
func (c *Config) Save(w io.Writer, opts ...encode.EncodeOption) error {
	doc := c.root.Doc
	doc.Separator = doc.DefaultSeparator
	if debug.Save() {
		debug.Logf("save %s sep=%q indent=%q\n", doc.Name, doc.Separator, doc.Indent)
	}
	return encode.Encode(c.root, w, opts...)
}

// SaveFile saves to path, or to the path the config was opened from when
// path is "". The file is replaced atomically.
func (c *Config) SaveFile(path string) error {
	if path == "" {
		path = c.path
	}
	if path == "" {
		return fmt.Errorf("%w: %s", ErrNoPath, c.FileName())
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := c.Save(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("error saving %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ToMap flattens the document into entry values keyed by their paths
// joined with sep.
func (c *Config) ToMap(sep string) map[string]string {
	res := map[string]string{}
	var path []string
	_ = c.root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if n == c.root {
			return true, nil
		}
		switch n.Kind {
		case ir.SectionKind:
			if isPost {
				path = path[:len(path)-1]
				return false, nil
			}
			path = append(path, n.Key)
			return true, nil
		case ir.EntryKind:
			if !isPost {
				res[joinPath(path, n.Key, sep)] = n.Value
			}
		}
		return false, nil
	})
	return res
}

func joinPath(prefix []string, key, sep string) string {
	if len(prefix) == 0 {
		return key
	}
	return strings.Join(prefix, sep) + sep + key
}

// CompareValues reports whether c and other differ: some key is present in
// one and absent in the other, or an entry value or node kind differs.
// Dotted paths in excluded are not compared, nor is anything below them.
func (c *Config) CompareValues(other *Config, excluded ...string) bool {
	skip := map[string]bool{}
	for _, p := range excluded {
		skip[p] = true
	}
	return differs(c.root, other.root, "", skip) || differs(other.root, c.root, "", skip)
}

// differs looks for the keys of a missing from or changed in b.
func differs(a, b *ir.Node, prefix string, skip map[string]bool) bool {
	for n := range a.Children() {
		p := prefix + n.Key
		if skip[p] {
			continue
		}
		m := b.Get(n.Key)
		if m == nil || m.Kind != n.Kind {
			return true
		}
		switch n.Kind {
		case ir.EntryKind:
			if n.Value != m.Value {
				return true
			}
		case ir.SectionKind:
			if differs(n, m, p+".", skip) {
				return true
			}
		}
	}
	return false
}

// UpdateKeys adds the nodes of newer that c lacks, see merge.UpdateKeys.
func (c *Config) UpdateKeys(newer *Config) (bool, error) {
	changed, err := merge.UpdateKeys(c.root, newer.root)
	if err != nil {
		return false, fmt.Errorf("error updating %s from %s: %w", c.FileName(), newer.FileName(), err)
	}
	if changed {
		c.log.Debug("updated keys", "file", c.FileName(), "from", newer.FileName())
	}
	return changed, nil
}

func (c *Config) Validate(v validate.Validator) bool {
	return v.Validate(c.root)
}

// Load assigns the options of reg from this document.
func (c *Config) Load(reg *option.Registry) error {
	return reg.Load(c)
}

// Compare orders configs by file name.
func (c *Config) Compare(other *Config) int {
	return strings.Compare(c.FileName(), other.FileName())
}
