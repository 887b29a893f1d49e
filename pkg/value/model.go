package value

import (
	"reflect"

	"github.com/goliatone/go-pectin/pkg/event"
)

// Change describes a value transition. Handlers usually only need New.
type Change[T any] struct {
	Old T
	New T
}

// Model is a read-only observable holder of a single value.
type Model[T any] interface {
	Value() T
	OnChange(handler func(Change[T])) event.Registration
}

// Mutable is a Model that accepts writes. SetValue on a model whose Mutable
// reports false is a no-op.
type Mutable[T any] interface {
	Model[T]
	SetValue(v T)
	Mutable() bool
}

// EqualFunc decides whether two values are the same for notification
// purposes.
type EqualFunc[T any] func(a, b T) bool

// DeepEqual is the default equality used by holders.
func DeepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Option configures a Holder.
type Option[T any] func(*Holder[T])

// WithEquals overrides the equality check used to suppress redundant
// notifications.
func WithEquals[T any](fn EqualFunc[T]) Option[T] {
	return func(h *Holder[T]) {
		if fn != nil {
			h.equals = fn
		}
	}
}

// Holder is the default Mutable implementation.
type Holder[T any] struct {
	value    T
	equals   EqualFunc[T]
	handlers event.Registry[Change[T]]
}

// NewHolder returns a holder seeded with initial.
func NewHolder[T any](initial T, options ...Option[T]) *Holder[T] {
	h := &Holder[T]{value: initial, equals: DeepEqual[T]}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Value returns the current value.
func (h *Holder[T]) Value() T {
	return h.value
}

// SetValue stores v and notifies handlers when it differs from the current
// value.
func (h *Holder[T]) SetValue(v T) {
	old := h.value
	if h.equal(old, v) {
		return
	}
	h.value = v
	h.handlers.Fire(Change[T]{Old: old, New: v})
}

// Mutable always reports true for holders.
func (h *Holder[T]) Mutable() bool { return true }

// Refresh notifies handlers with the current value even though it did not
// change.
func (h *Holder[T]) Refresh() {
	h.handlers.Fire(Change[T]{Old: h.value, New: h.value})
}

// OnChange subscribes handler to value changes.
func (h *Holder[T]) OnChange(handler func(Change[T])) event.Registration {
	return h.handlers.Add(handler)
}

func (h *Holder[T]) equal(a, b T) bool {
	if h.equals == nil {
		return DeepEqual(a, b)
	}
	return h.equals(a, b)
}

var _ Mutable[int] = (*Holder[int])(nil)
