package form

import (
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/value"
)

// ListFieldModel is a named list model forwarding to a source list.
type ListFieldModel[T any] struct {
	name   string
	source list.Mutable[T]
}

// NewListField declares a list field backed by a fresh holder.
func NewListField[T any](f *Form, name string, initial []T, options ...list.Option[T]) *ListFieldModel[T] {
	return BindListField[T](f, name, list.New(initial, options...))
}

// BindListField declares a list field backed by source.
func BindListField[T any](f *Form, name string, source list.Mutable[T]) *ListFieldModel[T] {
	field := &ListFieldModel[T]{name: name, source: source}
	f.add(field)
	return field
}

// Name returns the field name.
func (m *ListFieldModel[T]) Name() string { return m.name }

// Source returns the backing list.
func (m *ListFieldModel[T]) Source() list.Mutable[T] { return m.source }

// Mutable reports whether the list currently accepts writes. Sources
// without a notion of mutability always do.
func (m *ListFieldModel[T]) Mutable() bool {
	if r, ok := m.source.(interface{ Mutable() bool }); ok {
		return r.Mutable()
	}
	return true
}

// MutableState observes Mutable.
func (m *ListFieldModel[T]) MutableState() value.Model[bool] {
	return mutableState(m.source, m.Mutable())
}

func (m *ListFieldModel[T]) Len() int { return m.source.Len() }

func (m *ListFieldModel[T]) At(index int) T { return m.source.At(index) }

func (m *ListFieldModel[T]) Values() []T { return m.source.Values() }

func (m *ListFieldModel[T]) Add(values ...T) { m.source.Add(values...) }

func (m *ListFieldModel[T]) Insert(index int, v ...T) { m.source.Insert(index, v...) }

func (m *ListFieldModel[T]) RemoveAt(index int) T { return m.source.RemoveAt(index) }

func (m *ListFieldModel[T]) Remove(v T) bool { return m.source.Remove(v) }

func (m *ListFieldModel[T]) Set(index int, v T) { m.source.Set(index, v) }

func (m *ListFieldModel[T]) SetValues(values []T) { m.source.SetValues(values) }

func (m *ListFieldModel[T]) Clear() { m.source.Clear() }

// OnListChange subscribes handler to structural changes.
func (m *ListFieldModel[T]) OnListChange(handler func(list.Change[T])) event.Registration {
	return m.source.OnListChange(handler)
}

// AnyValue implements Field.
func (m *ListFieldModel[T]) AnyValue() any { return m.Values() }

// Watch implements Field.
func (m *ListFieldModel[T]) Watch(fn func()) event.Registration {
	return m.OnListChange(func(list.Change[T]) { fn() })
}

// ApplyRule attaches a rule that sees the whole list.
func (m *ListFieldModel[T]) ApplyRule(manager *validation.Manager, rule validation.Validator[any], cond condition.Condition) error {
	gate := validation.ValidateList[T](manager, m).UsingList(validation.Erase[[]T](rule))
	if cond == nil {
		return nil
	}
	return gate.When(cond)
}

// ApplyElementRule attaches a rule that runs against every element.
func (m *ListFieldModel[T]) ApplyElementRule(manager *validation.Manager, rule validation.Validator[any], cond condition.Condition) error {
	gate := validation.ValidateList[T](manager, m).Using(validation.Erase[T](rule))
	if cond == nil {
		return nil
	}
	return gate.When(cond)
}

var (
	_ list.Mutable[string] = (*ListFieldModel[string])(nil)
	_ Field                = (*ListFieldModel[string])(nil)
	_ ElementRuleApplier   = (*ListFieldModel[string])(nil)
)
