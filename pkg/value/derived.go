package value

import "github.com/goliatone/go-pectin/pkg/event"

type constant[T any] struct {
	value T
}

// Constant returns a model that never changes.
func Constant[T any](v T) Model[T] {
	return constant[T]{value: v}
}

func (c constant[T]) Value() T { return c.value }

func (c constant[T]) OnChange(func(Change[T])) event.Registration {
	return event.Once(nil)
}

type readOnly[T any] struct {
	source Model[T]
}

// ReadOnly hides any setter the source model exposes.
func ReadOnly[T any](source Model[T]) Model[T] {
	return readOnly[T]{source: source}
}

func (r readOnly[T]) Value() T { return r.source.Value() }

func (r readOnly[T]) OnChange(handler func(Change[T])) event.Registration {
	return r.source.OnChange(handler)
}

// Derived is a read-only model computed from another model. It recomputes on
// every source change and notifies only when the computed value changes.
type Derived[S, T any] struct {
	holder *Holder[T]
	source event.Registration
}

// Map derives a model from source using fn.
func Map[S, T any](source Model[S], fn func(S) T, options ...Option[T]) *Derived[S, T] {
	d := &Derived[S, T]{holder: NewHolder(fn(source.Value()), options...)}
	d.source = source.OnChange(func(c Change[S]) {
		d.holder.SetValue(fn(c.New))
	})
	return d
}

// Value returns the last computed value.
func (d *Derived[S, T]) Value() T { return d.holder.Value() }

// OnChange subscribes to computed value changes.
func (d *Derived[S, T]) OnChange(handler func(Change[T])) event.Registration {
	return d.holder.OnChange(handler)
}

// Dispose detaches the derived model from its source.
func (d *Derived[S, T]) Dispose() {
	d.source.Remove()
}
