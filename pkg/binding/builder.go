package binding

import (
	"fmt"

	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/value"
)

// ValueBuilder finishes a BindValueOf call.
type ValueBuilder[T any] struct {
	binder *Binder
	model  value.Model[T]
}

// BindValueOf starts binding model.
//
//	binding.BindValueOf(b, name).To(nameBox)
func BindValueOf[T any](b *Binder, model value.Model[T]) *ValueBuilder[T] {
	return &ValueBuilder[T]{binder: b, model: model}
}

// To binds the model to an editable widget in both directions.
func (vb *ValueBuilder[T]) To(target ValueTarget[T]) *FieldBinding[T] {
	binding := NewFieldBinding(vb.model, target.SetValue)
	binding.Listen(target)
	vb.binder.Register(binding)
	return binding
}

// ToDisplay binds the model to a read-only display.
func (vb *ValueBuilder[T]) ToDisplay(target ValueDisplay[T]) *FieldBinding[T] {
	binding := NewFieldBinding(vb.model, target.SetValue)
	vb.binder.Register(binding)
	return binding
}

// ToLabel renders the model as text. Without a format the value is printed
// with fmt.Sprint.
func (vb *ValueBuilder[T]) ToLabel(target TextDisplay, format ...func(T) string) *FieldBinding[T] {
	render := func(v T) string { return fmt.Sprint(v) }
	if len(format) > 0 && format[0] != nil {
		render = format[0]
	}
	binding := NewFieldBinding(vb.model, func(v T) { target.SetText(render(v)) })
	vb.binder.Register(binding)
	return binding
}

// ListBuilder finishes a BindListOf call.
type ListBuilder[T any] struct {
	binder *Binder
	model  list.Model[T]
}

// BindListOf starts binding a list model.
func BindListOf[T any](b *Binder, model list.Model[T]) *ListBuilder[T] {
	return &ListBuilder[T]{binder: b, model: model}
}

// To binds the list to an editable list widget in both directions.
func (lb *ListBuilder[T]) To(target ListTarget[T]) *ListBinding[T] {
	binding := NewListBinding(lb.model, target.SetValues)
	binding.Listen(target)
	lb.binder.Register(binding)
	return binding
}

// ToDisplay binds the list to a read-only display.
func (lb *ListBuilder[T]) ToDisplay(target ListDisplay[T]) *ListBinding[T] {
	binding := NewListBinding(lb.model, target.SetValues)
	lb.binder.Register(binding)
	return binding
}

// ConditionBuilder finishes Enable, Disable, Show and Hide.
type ConditionBuilder struct {
	binder *Binder
	kind   string
	apply  func(bool)
}

// When binds the widget property to cond.
func (cb *ConditionBuilder) When(cond condition.Condition) *ConditionBinding {
	binding := NewConditionBinding(cb.kind, cond, cb.apply)
	cb.binder.Register(binding)
	return binding
}

// Enable enables target while the condition is true.
func (b *Binder) Enable(target Enableable) *ConditionBuilder {
	return &ConditionBuilder{binder: b, kind: "enable", apply: target.SetEnabled}
}

// Disable disables target while the condition is true.
func (b *Binder) Disable(target Enableable) *ConditionBuilder {
	return &ConditionBuilder{binder: b, kind: "disable", apply: func(v bool) { target.SetEnabled(!v) }}
}

// Show shows target while the condition is true.
func (b *Binder) Show(target Visible) *ConditionBuilder {
	return &ConditionBuilder{binder: b, kind: "show", apply: target.SetVisible}
}

// Hide hides target while the condition is true.
func (b *Binder) Hide(target Visible) *ConditionBuilder {
	return &ConditionBuilder{binder: b, kind: "hide", apply: func(v bool) { target.SetVisible(!v) }}
}
