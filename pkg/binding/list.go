package binding

import "github.com/goliatone/go-pectin/pkg/list"

// ListBinding keeps a list display in sync with a list model.
type ListBinding[T any] struct {
	*Base
	model list.Model[T]
	apply func([]T)
}

// NewListBinding subscribes to model and pushes its contents through apply
// after every structural change the binding did not cause.
func NewListBinding[T any](model list.Model[T], apply func([]T)) *ListBinding[T] {
	b := &ListBinding[T]{Base: NewBase("list"), model: model, apply: apply}
	b.Track(model.OnListChange(func(list.Change[T]) {
		if b.Suppressed() {
			return
		}
		b.UpdateTarget()
	}))
	return b
}

// Model returns the bound list.
func (b *ListBinding[T]) Model() list.Model[T] { return b.model }

// UpdateTarget pushes the list contents to the display.
func (b *ListBinding[T]) UpdateTarget() {
	if b.apply != nil {
		b.apply(b.model.Values())
	}
}

// UpdateModel runs fn against the mutable list without echoing the result
// back to the display.
func (b *ListBinding[T]) UpdateModel(fn func(list.Mutable[T])) error {
	mutable, ok := b.model.(list.Mutable[T])
	if !ok {
		return ErrReadOnly
	}
	b.Guard().Run(func() {
		fn(mutable)
	})
	return nil
}

// Listen wires edits from target into the model.
func (b *ListBinding[T]) Listen(target ListTarget[T]) {
	b.Track(target.OnValuesChange(func(values []T) {
		err := b.UpdateModel(func(m list.Mutable[T]) { m.SetValues(values) })
		if err != nil {
			b.UpdateTarget()
		}
	}))
}

var _ Binding = (*ListBinding[string])(nil)
