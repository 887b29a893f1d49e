package list

import (
	"fmt"

	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Kind identifies the structural change carried by a Change.
type Kind int

const (
	// Inserted reports Values inserted starting at Index.
	Inserted Kind = iota
	// Removed reports Values removed starting at Index.
	Removed
	// Replaced reports the element at Index replaced; Previous holds the old value.
	Replaced
	// Cleared reports every element removed; Previous holds the old contents.
	Cleared
	// Reset reports the whole contents swapped; Previous holds the old contents.
	Reset
)

func (k Kind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Replaced:
		return "replaced"
	case Cleared:
		return "cleared"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes one structural mutation.
type Change[T any] struct {
	Kind     Kind
	Index    int
	Values   []T
	Previous []T
}

// Model is an observable ordered collection.
type Model[T any] interface {
	Len() int
	At(index int) T
	Values() []T
	OnListChange(handler func(Change[T])) event.Registration
}

// Mutable is a Model that accepts structural mutations.
type Mutable[T any] interface {
	Model[T]
	Add(values ...T)
	Insert(index int, values ...T)
	RemoveAt(index int) T
	Remove(v T) bool
	Set(index int, v T)
	SetValues(values []T)
	Clear()
}

// Option configures a Holder.
type Option[T any] func(*Holder[T])

// WithEquals sets the equality used by Remove and SetValues.
func WithEquals[T any](fn value.EqualFunc[T]) Option[T] {
	return func(h *Holder[T]) {
		if fn != nil {
			h.equals = fn
		}
	}
}

// Holder is the default Mutable implementation. Every mutation that changes
// the contents fires exactly one Change.
type Holder[T any] struct {
	values   []T
	equals   value.EqualFunc[T]
	handlers event.Registry[Change[T]]
}

// New returns a holder seeded with a copy of values.
func New[T any](values []T, options ...Option[T]) *Holder[T] {
	h := &Holder[T]{values: clone(values), equals: value.DeepEqual[T]}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Len returns the element count.
func (h *Holder[T]) Len() int { return len(h.values) }

// At returns the element at index and panics when out of range, like a slice.
func (h *Holder[T]) At(index int) T { return h.values[index] }

// Values returns a copy of the current contents.
func (h *Holder[T]) Values() []T { return clone(h.values) }

// OnListChange subscribes handler to structural changes.
func (h *Holder[T]) OnListChange(handler func(Change[T])) event.Registration {
	return h.handlers.Add(handler)
}

// Add appends values.
func (h *Holder[T]) Add(values ...T) {
	h.Insert(len(h.values), values...)
}

// Insert inserts values at index.
func (h *Holder[T]) Insert(index int, values ...T) {
	if len(values) == 0 {
		return
	}
	if index < 0 || index > len(h.values) {
		panic(fmt.Sprintf("list: insert index %d out of range [0,%d]", index, len(h.values)))
	}
	next := make([]T, 0, len(h.values)+len(values))
	next = append(next, h.values[:index]...)
	next = append(next, values...)
	next = append(next, h.values[index:]...)
	h.values = next
	h.handlers.Fire(Change[T]{Kind: Inserted, Index: index, Values: clone(values)})
}

// RemoveAt removes and returns the element at index.
func (h *Holder[T]) RemoveAt(index int) T {
	removed := h.values[index]
	h.values = append(h.values[:index:index], h.values[index+1:]...)
	h.handlers.Fire(Change[T]{Kind: Removed, Index: index, Values: []T{removed}})
	return removed
}

// Remove deletes the first element equal to v.
func (h *Holder[T]) Remove(v T) bool {
	for idx, candidate := range h.values {
		if h.equals(candidate, v) {
			h.RemoveAt(idx)
			return true
		}
	}
	return false
}

// Set replaces the element at index. Equal values fire nothing.
func (h *Holder[T]) Set(index int, v T) {
	old := h.values[index]
	if h.equals(old, v) {
		return
	}
	h.values[index] = v
	h.handlers.Fire(Change[T]{Kind: Replaced, Index: index, Values: []T{v}, Previous: []T{old}})
}

// SetValues swaps the whole contents.
func (h *Holder[T]) SetValues(values []T) {
	if h.sameAs(values) {
		return
	}
	previous := h.values
	h.values = clone(values)
	h.handlers.Fire(Change[T]{Kind: Reset, Values: clone(values), Previous: previous})
}

// Clear removes every element.
func (h *Holder[T]) Clear() {
	if len(h.values) == 0 {
		return
	}
	previous := h.values
	h.values = nil
	h.handlers.Fire(Change[T]{Kind: Cleared, Previous: previous})
}

func (h *Holder[T]) sameAs(values []T) bool {
	if len(values) != len(h.values) {
		return false
	}
	for idx := range values {
		if !h.equals(values[idx], h.values[idx]) {
			return false
		}
	}
	return true
}

func clone[T any](values []T) []T {
	if len(values) == 0 {
		return nil
	}
	return append([]T(nil), values...)
}

var _ Mutable[string] = (*Holder[string])(nil)
