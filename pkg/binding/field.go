package binding

import "github.com/goliatone/go-pectin/pkg/value"

// FieldBinding keeps a display in sync with a value model. Model changes are
// pushed through apply unless the binding itself caused them.
type FieldBinding[T any] struct {
	*Base
	model value.Model[T]
	apply func(T)
}

// NewFieldBinding subscribes to model and pushes changes through apply. The
// binding does not push the initial value; Binder.Register does.
func NewFieldBinding[T any](model value.Model[T], apply func(T)) *FieldBinding[T] {
	b := &FieldBinding[T]{Base: NewBase("value"), model: model, apply: apply}
	b.Track(model.OnChange(func(value.Change[T]) {
		if b.Suppressed() {
			return
		}
		b.UpdateTarget()
	}))
	return b
}

// Model returns the bound model.
func (b *FieldBinding[T]) Model() value.Model[T] { return b.model }

// UpdateTarget pushes the model value to the display.
func (b *FieldBinding[T]) UpdateTarget() {
	if b.apply != nil {
		b.apply(b.model.Value())
	}
}

// UpdateModel writes v to the model without echoing it back to the display.
// Read-only models return ErrReadOnly.
func (b *FieldBinding[T]) UpdateModel(v T) error {
	mutable, ok := b.model.(value.Mutable[T])
	if !ok || !mutable.Mutable() {
		return ErrReadOnly
	}
	b.Guard().Run(func() {
		mutable.SetValue(v)
	})
	return nil
}

// Listen wires user edits from target into the model. A rejected edit is
// overwritten with the model value.
func (b *FieldBinding[T]) Listen(target ValueTarget[T]) {
	b.Track(target.OnValueChange(func(v T) {
		if err := b.UpdateModel(v); err != nil {
			b.UpdateTarget()
		}
	}))
}

var _ Binding = (*FieldBinding[string])(nil)
