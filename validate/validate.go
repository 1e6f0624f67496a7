package validate

import (
	"fmt"
	"log/slog"

	"github.com/signadot/sectcfg/ir"
)

// Validator checks a node, reporting problems through its logger.
type Validator interface {
	Validate(node *ir.Node) bool
}

type Option func(*opts)

type opts struct {
	logger *slog.Logger
}

func WithLogger(l *slog.Logger) Option {
	return func(o *opts) { o.logger = l }
}

func buildOpts(options []Option) *opts {
	o := &opts{}
	for _, f := range options {
		f(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

type check struct {
	key      string
	optional bool
	sub      Validator
}

// SectionValidator checks the children of a section against a list of
// expected keys.
type SectionValidator struct {
	checks         []check
	allowUndefined bool
	log            *slog.Logger
}

func NewSectionValidator(options ...Option) *SectionValidator {
	return &SectionValidator{log: buildOpts(options).logger}
}

// Entry expects an entry named key.
func (v *SectionValidator) Entry(key string, optional bool) *SectionValidator {
	v.checks = append(v.checks, check{key: key, optional: optional, sub: &EntryValidator{log: v.log}})
	return v
}

// EntryRule expects an entry named key satisfying the rule expression, see
// Rule.
func (v *SectionValidator) EntryRule(key, expression string, optional bool) error {
	r, err := NewRule(expression)
	if err != nil {
		return err
	}
	v.checks = append(v.checks, check{key: key, optional: optional, sub: &EntryValidator{Rule: r, log: v.log}})
	return nil
}

// Section expects a node named key validated by sub. A nil sub only
// requires a section.
func (v *SectionValidator) Section(key string, sub Validator, optional bool) *SectionValidator {
	v.checks = append(v.checks, check{key: key, optional: optional, sub: sectionCheck{sub: sub, log: v.log}})
	return v
}

// AllowUndefined accepts keys no check mentions.
func (v *SectionValidator) AllowUndefined(b bool) *SectionValidator {
	v.allowUndefined = b
	return v
}

func (v *SectionValidator) Validate(node *ir.Node) bool {
	if node.Kind != ir.SectionKind {
		report(v.log, node, notSectionMsg(node))
		return false
	}
	ok := true
	known := map[string]bool{}
	for _, c := range v.checks {
		known[c.key] = true
		n := node.Get(c.key)
		if n == nil {
			if !c.optional {
				report(v.log, node, fmt.Sprintf("Required entry '%s' is missing in %s", c.key, where(node)))
				ok = false
			}
			continue
		}
		if !c.sub.Validate(n) {
			ok = false
		}
	}
	if v.allowUndefined {
		return ok
	}
	for n := range node.Children() {
		if known[n.Key] {
			continue
		}
		report(v.log, n, fmt.Sprintf("Unexpected entry '%s'. Check whether it's spelled correctly or remove it.", n.Key))
		ok = false
	}
	return ok
}

// EntryValidator accepts entries, and only those satisfying Rule when it is
// set.
type EntryValidator struct {
	Rule *Rule
	log  *slog.Logger
}

func NewEntryValidator(r *Rule, options ...Option) *EntryValidator {
	return &EntryValidator{Rule: r, log: buildOpts(options).logger}
}

func (v *EntryValidator) Validate(node *ir.Node) bool {
	log := v.log
	if log == nil {
		log = slog.Default()
	}
	if node.Kind != ir.EntryKind {
		report(log, node, fmt.Sprintf("'%s' is not an entry (like 'name : value')", node.Key))
		return false
	}
	if v.Rule == nil {
		return true
	}
	ok, err := v.Rule.Eval(node)
	if err != nil {
		report(log, node, err.Error())
		return false
	}
	if !ok {
		report(log, node, fmt.Sprintf("'%s' has an invalid value '%s' (expected %s)", node.Key, node.Value, v.Rule))
	}
	return ok
}

type sectionCheck struct {
	sub Validator
	log *slog.Logger
}

func (s sectionCheck) Validate(node *ir.Node) bool {
	if node.Kind != ir.SectionKind {
		report(s.log, node, notSectionMsg(node))
		return false
	}
	if s.sub == nil {
		return true
	}
	return s.sub.Validate(node)
}

func notSectionMsg(node *ir.Node) string {
	return fmt.Sprintf("'%s' is not a section (like 'name:', followed by one or more indented lines)", node.Key)
}

func where(node *ir.Node) string {
	name := ""
	if node.Doc != nil {
		name = node.Doc.Name
	}
	if node.Parent == nil {
		return name
	}
	return fmt.Sprintf("'%s' (%s, starting at line %d)", node.Key, name, node.Line)
}

func report(log *slog.Logger, node *ir.Node, msg string) {
	name := ""
	if node.Doc != nil {
		name = node.Doc.Name
	}
	log.Error(msg, "file", name, "line", node.Line)
}
