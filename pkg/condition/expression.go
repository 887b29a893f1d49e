package condition

import (
	"fmt"

	"github.com/goliatone/go-pectin/pkg/condition/expr"
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Observed is an untyped view of an observable value, used by expression
// conditions to read and watch arbitrary fields.
type Observed interface {
	AnyValue() any
	Watch(fn func()) event.Registration
}

// Resolver maps expression identifiers onto observed values.
type Resolver func(name string) (Observed, bool)

// Observe adapts a typed model into an Observed.
func Observe[T any](model value.Model[T]) Observed {
	return observed[T]{model: model}
}

type observed[T any] struct {
	model value.Model[T]
}

func (o observed[T]) AnyValue() any { return o.model.Value() }

func (o observed[T]) Watch(fn func()) event.Registration {
	return o.model.OnChange(func(value.Change[T]) { fn() })
}

// Expression compiles rule and returns a condition that re-evaluates whenever
// a referenced value changes. Every identifier must resolve; evaluation
// errors read as false.
func Expression(rule string, resolve Resolver) (*Computed, error) {
	program, err := expr.Compile(rule)
	if err != nil {
		return nil, err
	}
	sources := make(map[string]Observed, len(program.Identifiers()))
	for _, name := range program.Identifiers() {
		var (
			source Observed
			ok     bool
		)
		if resolve != nil {
			source, ok = resolve(name)
		}
		if !ok || source == nil {
			return nil, fmt.Errorf("%w %q in %q", ErrUnknownIdentifier, name, program.String())
		}
		sources[name] = source
	}

	lookup := func(name string) (any, bool) {
		source, ok := sources[name]
		if !ok {
			return nil, false
		}
		return source.AnyValue(), true
	}
	c := newComputed(func() bool {
		ok, err := program.Eval(lookup)
		return err == nil && ok
	})
	for _, name := range program.Identifiers() {
		c.regs.Add(sources[name].Watch(c.Recompute))
	}
	return c, nil
}
