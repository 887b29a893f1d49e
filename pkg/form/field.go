package form

import (
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/value"
)

// FieldModel is a named value model. It forwards to a source model, which
// may be a plain holder or a bean property.
type FieldModel[T any] struct {
	name   string
	source value.Mutable[T]
}

// NewField declares a field backed by a fresh holder.
func NewField[T any](f *Form, name string, initial T, options ...value.Option[T]) *FieldModel[T] {
	return BindField[T](f, name, value.NewHolder(initial, options...))
}

// BindField declares a field backed by source.
func BindField[T any](f *Form, name string, source value.Mutable[T]) *FieldModel[T] {
	field := &FieldModel[T]{name: name, source: source}
	f.add(field)
	return field
}

// Name returns the field name.
func (m *FieldModel[T]) Name() string { return m.name }

// Source returns the backing model.
func (m *FieldModel[T]) Source() value.Mutable[T] { return m.source }

// Value returns the current value.
func (m *FieldModel[T]) Value() T { return m.source.Value() }

// SetValue writes v. Writes to an immutable field are ignored.
func (m *FieldModel[T]) SetValue(v T) {
	if !m.source.Mutable() {
		return
	}
	m.source.SetValue(v)
}

// Mutable reports whether the field currently accepts writes.
func (m *FieldModel[T]) Mutable() bool { return m.source.Mutable() }

// MutableState observes Mutable. Sources that cannot change mutability, such
// as plain holders, report a constant.
func (m *FieldModel[T]) MutableState() value.Model[bool] {
	return mutableState(m.source, m.source.Mutable())
}

type mutabilityReporter interface {
	MutableState() value.Model[bool]
}

func mutableState(source any, current bool) value.Model[bool] {
	if r, ok := source.(mutabilityReporter); ok {
		return r.MutableState()
	}
	return value.Constant(current)
}

// OnChange subscribes handler to value changes.
func (m *FieldModel[T]) OnChange(handler func(value.Change[T])) event.Registration {
	return m.source.OnChange(handler)
}

// AnyValue implements Field.
func (m *FieldModel[T]) AnyValue() any { return m.Value() }

// Watch implements Field.
func (m *FieldModel[T]) Watch(fn func()) event.Registration {
	return m.OnChange(func(value.Change[T]) { fn() })
}

// ApplyRule implements Field.
func (m *FieldModel[T]) ApplyRule(manager *validation.Manager, rule validation.Validator[any], cond condition.Condition) error {
	return applyRule[T](manager, m, rule, cond)
}

func applyRule[T any](manager *validation.Manager, model value.Model[T], rule validation.Validator[any], cond condition.Condition) error {
	gate := validation.ValidateField(manager, model).Using(validation.Erase[T](rule))
	if cond == nil {
		return nil
	}
	return gate.When(cond)
}

var (
	_ value.Mutable[string] = (*FieldModel[string])(nil)
	_ Field                 = (*FieldModel[string])(nil)
)
