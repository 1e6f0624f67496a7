package ir

import "fmt"

// Kind tags the variant held by a Node.
type Kind int

const (
	SectionKind Kind = iota
	EntryKind
	VoidKind
	InvalidKind
	SimpleKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		SectionKind: "Section",
		EntryKind:   "Entry",
		VoidKind:    "Void",
		InvalidKind: "Invalid",
		SimpleKind:  "Simple",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Section": SectionKind,
		"Entry":   EntryKind,
		"Void":    VoidKind,
		"Invalid": InvalidKind,
		"Simple":  SimpleKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		SectionKind,
		EntryKind,
		VoidKind,
		InvalidKind,
		SimpleKind,
	}
}

// IsVoid reports whether nodes of this kind are structurally inert: they
// take part in the full child sequence but never in key lookup.
func (k Kind) IsVoid() bool {
	return k == VoidKind || k == InvalidKind
}

// IsLeaf reports whether nodes of this kind never hold children.
func (k Kind) IsLeaf() bool {
	return k != SectionKind
}
