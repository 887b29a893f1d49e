package condition

import (
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Condition is an observable boolean.
type Condition = value.Model[bool]

// Delegating is a condition that can be bound to an underlying condition
// exactly once. Until bound it reports true so rules gated by it stay active.
type Delegating struct {
	name     string
	delegate Condition
	handlers event.Registry[value.Change[bool]]
	regs     event.Registrations
}

// NewDelegating returns an unbound condition. The optional name only shows up
// in error messages.
func NewDelegating(name ...string) *Delegating {
	d := &Delegating{}
	if len(name) > 0 {
		d.name = name[0]
	}
	return d
}

// SetDelegate binds the condition to delegate and immediately notifies
// handlers with the delegate's current value. Every later delegate change is
// forwarded as is.
func (d *Delegating) SetDelegate(delegate Condition) error {
	if delegate == nil {
		return ErrNilDelegate
	}
	if d.delegate != nil {
		return &AlreadyBoundError{Name: d.name}
	}
	old := d.Value()
	d.delegate = delegate
	d.regs.Add(delegate.OnChange(func(c value.Change[bool]) {
		d.handlers.Fire(c)
	}))
	d.handlers.Fire(value.Change[bool]{Old: old, New: delegate.Value()})
	return nil
}

// Bound reports whether a delegate has been set.
func (d *Delegating) Bound() bool {
	return d.delegate != nil
}

// Value returns true while unbound, otherwise the delegate's value.
func (d *Delegating) Value() bool {
	if d.delegate == nil {
		return true
	}
	return d.delegate.Value()
}

// OnChange subscribes handler to condition changes.
func (d *Delegating) OnChange(handler func(value.Change[bool])) event.Registration {
	return d.handlers.Add(handler)
}

// Dispose stops forwarding delegate changes. The condition keeps reporting
// the delegate's value.
func (d *Delegating) Dispose() {
	d.regs.RemoveAll()
}

var _ Condition = (*Delegating)(nil)
