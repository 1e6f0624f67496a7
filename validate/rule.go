package validate

import (
	"fmt"
	"os"

	"github.com/signadot/sectcfg/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Rule is a boolean expression over an entry. Expressions see
//
//	key         the entry key
//	value       the entry value
//	getpath(p)  the value of the entry at dotted path p, "" if none
//	whereami()  the dotted path of the entry
//	getenv(v)   the environment variable v
type Rule struct {
	src string
	prg *vm.Program
}

func NewRule(src string) (*Rule, error) {
	prg, err := expr.Compile(src, expr.Env(ruleEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling rule %q: %w", src, err)
	}
	return &Rule{src: src, prg: prg}, nil
}

func MustRule(src string) *Rule {
	r, err := NewRule(src)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rule) String() string {
	return r.src
}

// Eval runs the rule against node.
func (r *Rule) Eval(node *ir.Node) (bool, error) {
	res, err := vm.Run(r.prg, ruleEnv(node))
	if err != nil {
		return false, fmt.Errorf("error evaluating rule %q: %w", r.src, err)
	}
	b, _ := res.(bool)
	return b, nil
}

func ruleEnv(node *ir.Node) map[string]any {
	env := map[string]any{
		"key":   "",
		"value": "",
		"getpath": func(p string) string {
			if node == nil {
				return ""
			}
			n := node.Root().Lookup(ir.SplitPath(p)...)
			if n == nil || n.Kind != ir.EntryKind {
				return ""
			}
			return n.Value
		},
		"whereami": func() string {
			if node == nil {
				return ""
			}
			return node.DotPath(".")
		},
		"getenv": os.Getenv,
	}
	if node != nil {
		env["key"] = node.Key
		env["value"] = node.Value
	}
	return env
}
