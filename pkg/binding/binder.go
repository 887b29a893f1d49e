package binding

import "github.com/google/uuid"

// Binder owns a group of bindings and disposes them together.
type Binder struct {
	id       string
	bindings []Binding
	disposed bool
}

// NewBinder returns an empty binder.
func NewBinder() *Binder {
	return &Binder{id: uuid.NewString()}
}

// ID identifies the binder in signals.
func (b *Binder) ID() string { return b.id }

// Register takes ownership of binding and pushes the current model state to
// its target. Bindings registered after Dispose are disposed immediately.
func (b *Binder) Register(binding Binding) {
	if b.Adopt(binding) {
		binding.UpdateTarget()
	}
}

// Adopt takes ownership of a binding that already pushed its state, such as
// the validation bindings. It reports false when the binding was disposed
// instead.
func (b *Binder) Adopt(binding Binding) bool {
	if binding == nil {
		return false
	}
	if b.disposed {
		binding.Dispose()
		return false
	}
	b.bindings = append(b.bindings, binding)
	emitRegistered(b, binding)
	return true
}

// Bindings returns the owned bindings in registration order.
func (b *Binder) Bindings() []Binding {
	return append([]Binding(nil), b.bindings...)
}

// UpdateTargets re-pushes every model onto its target.
func (b *Binder) UpdateTargets() {
	for _, binding := range b.bindings {
		binding.UpdateTarget()
	}
}

// Disposed reports whether Dispose has run.
func (b *Binder) Disposed() bool { return b.disposed }

// Dispose disposes every owned binding. Calling it twice is a no-op.
func (b *Binder) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	bindings := b.bindings
	b.bindings = nil
	for _, binding := range bindings {
		binding.Dispose()
	}
	emitBinderDisposed(b, len(bindings))
}
