package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/sectcfg/encode"
	"github.com/signadot/sectcfg/ir"
)

// Node renders a subtree for tracing.
type Node struct{ *ir.Node }

func (n Node) String() string {
	return render(n.Node)
}

func render(n *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %s %q", n.Kind, n.Key)
	}
	return strings.TrimRight(buf.String(), "\r\n")
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, map[string]string:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = render(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
