package widget

import (
	"github.com/goliatone/go-pectin/pkg/binding"
	"github.com/goliatone/go-pectin/pkg/event"
)

// TextBox is an editable single value widget. SetValue is the programmatic
// side used by bindings; Type simulates a user edit.
type TextBox[T any] struct {
	Chrome
	value    T
	handlers event.Registry[T]
}

// NewTextBox returns an enabled, visible box holding initial.
func NewTextBox[T any](initial T) *TextBox[T] {
	return &TextBox[T]{value: initial}
}

// Value returns the displayed value.
func (w *TextBox[T]) Value() T { return w.value }

// SetValue updates the display without notifying edit handlers.
func (w *TextBox[T]) SetValue(v T) { w.value = v }

// Type replaces the value as the user would and notifies edit handlers.
// Disabled or hidden boxes ignore it and return false.
func (w *TextBox[T]) Type(v T) bool {
	if !w.interactive() {
		return false
	}
	w.value = v
	w.handlers.Fire(v)
	return true
}

// OnValueChange subscribes handler to user edits.
func (w *TextBox[T]) OnValueChange(handler func(T)) event.Registration {
	return w.handlers.Add(handler)
}

// Toggle is a boolean check box.
type Toggle struct {
	TextBox[bool]
}

// NewToggle returns a toggle in the given state.
func NewToggle(checked bool) *Toggle {
	return &Toggle{TextBox: TextBox[bool]{value: checked}}
}

// Checked reports the toggle state.
func (t *Toggle) Checked() bool { return t.value }

// Click flips the state as the user would.
func (t *Toggle) Click() bool { return t.Type(!t.value) }

var (
	_ binding.ValueTarget[string] = (*TextBox[string])(nil)
	_ binding.ValueTarget[bool]   = (*Toggle)(nil)
	_ binding.Enableable          = (*Toggle)(nil)
	_ binding.Visible             = (*TextBox[int])(nil)
)
