package option

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicate = errors.New("duplicate option")
	ErrParse     = errors.New("option value")
)

// Binding is what a Registry loads: an option that can be assigned from
// the raw text of an entry.
type Binding interface {
	Key() string
	IsOptional() bool
	// Set assigns the option from raw. When raw cannot be parsed the
	// option takes its default and an error wrapping ErrParse is returned.
	Set(raw string) error
	// Reset returns the option to its default, as when its entry is
	// absent.
	Reset()
}

// Option is a typed value bound to the entry at Key.
type Option[T any] struct {
	key      string
	def      T
	parse    Parser[T]
	optional bool
	onChange func(T)

	value  T
	raw    string
	loaded bool
	err    error
}

func New[T any](key string, def T, parse Parser[T]) *Option[T] {
	return &Option[T]{
		key:   key,
		def:   def,
		parse: parse,
		value: def,
	}
}

// Optional marks the option as not required in the document.
func (o *Option[T]) Optional(v bool) *Option[T] {
	o.optional = v
	return o
}

// OnChange registers f to be called with the new value each time the
// option is reassigned.
func (o *Option[T]) OnChange(f func(T)) *Option[T] {
	o.onChange = f
	return o
}

func (o *Option[T]) Key() string      { return o.key }
func (o *Option[T]) IsOptional() bool { return o.optional }
func (o *Option[T]) Value() T         { return o.value }
func (o *Option[T]) Default() T       { return o.def }

// Raw returns the text the option was last assigned from.
func (o *Option[T]) Raw() (string, bool) {
	return o.raw, o.loaded
}

func (o *Option[T]) Set(raw string) error {
	if o.loaded && raw == o.raw {
		return o.err
	}
	o.raw, o.loaded = raw, true
	v, err := o.parse(raw)
	if err != nil {
		o.err = fmt.Errorf("%w: '%s' for '%s': %w", ErrParse, raw, o.key, err)
		o.assign(o.def)
		return o.err
	}
	o.err = nil
	o.assign(v)
	return nil
}

func (o *Option[T]) Reset() {
	if !o.loaded {
		return
	}
	o.raw, o.loaded, o.err = "", false, nil
	o.assign(o.def)
}

func (o *Option[T]) assign(v T) {
	o.value = v
	if o.onChange != nil {
		o.onChange(v)
	}
}
