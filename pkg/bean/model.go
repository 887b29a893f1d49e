package bean

import (
	"reflect"

	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/value"
)

// PropertyModel is the value model of one bean property.
type PropertyModel[T any] struct {
	node *node
}

// ValueModel returns the model for the dotted property path, such as
// "address.city". Asking twice for the same path returns the same model.
func ValueModel[T any, B any](p *Provider[B], path string) (*PropertyModel[T], error) {
	n, err := typedNode[T](p, path)
	if err != nil {
		return nil, err
	}
	if cached, ok := p.models[path].(*PropertyModel[T]); ok {
		return cached, nil
	}
	m := &PropertyModel[T]{node: n}
	p.models[path] = m
	return m, nil
}

// MustValueModel is ValueModel that panics on error.
func MustValueModel[T any, B any](p *Provider[B], path string) *PropertyModel[T] {
	m, err := ValueModel[T](p, path)
	if err != nil {
		panic(err)
	}
	return m
}

func typedNode[T any, B any](p *Provider[B], path string) (*node, error) {
	n, err := p.node(path)
	if err != nil {
		return nil, err
	}
	want := reflect.TypeFor[T]()
	if n.prop.typ != want {
		return nil, &IncorrectPropertyTypeError{Path: path, Want: n.prop.typ, Got: want}
	}
	return n, nil
}

// Path returns the property path.
func (m *PropertyModel[T]) Path() string { return m.node.path }

// Value returns the buffered value.
func (m *PropertyModel[T]) Value() T { return as[T](m.node.current) }

// SetValue buffers v, or writes it through in auto-commit mode. Writes are
// ignored while the path does not resolve.
func (m *PropertyModel[T]) SetValue(v T) {
	m.node.set(v)
}

// Mutable reports whether every parent along the path is set.
func (m *PropertyModel[T]) Mutable() bool { return m.node.mutable.Value() }

// MutableState observes Mutable.
func (m *PropertyModel[T]) MutableState() value.Model[bool] {
	return value.ReadOnly[bool](m.node.mutable)
}

// Dirty reports whether the model differs from its checkpoint.
func (m *PropertyModel[T]) Dirty() bool {
	return !reflect.DeepEqual(m.node.current, m.node.checkpoint)
}

// OnChange subscribes handler to value changes, including changes caused by
// a parent being replaced.
func (m *PropertyModel[T]) OnChange(handler func(value.Change[T])) event.Registration {
	return m.node.handlers.Add(func(c value.Change[any]) {
		handler(value.Change[T]{Old: as[T](c.Old), New: as[T](c.New)})
	})
}

func as[T any](v any) T {
	typed, _ := v.(T)
	return typed
}

// ListPropertyModel is the list model of a slice property. Edits go through
// an internal list and are buffered like any other property.
type ListPropertyModel[T any] struct {
	node    *node
	items   *list.Holder[T]
	syncing bool
	reg     event.Registration
}

// ListModel returns the list model for a []T property.
func ListModel[T any, B any](p *Provider[B], path string) (*ListPropertyModel[T], error) {
	n, err := typedNode[[]T](p, path)
	if err != nil {
		return nil, err
	}
	if cached, ok := p.models[path].(*ListPropertyModel[T]); ok {
		return cached, nil
	}
	m := &ListPropertyModel[T]{node: n, items: list.New(as[[]T](n.current))}
	m.items.OnListChange(func(list.Change[T]) {
		if m.syncing {
			return
		}
		m.node.set(m.items.Values())
	})
	m.reg = n.handlers.Add(func(c value.Change[any]) {
		m.syncing = true
		defer func() { m.syncing = false }()
		m.items.SetValues(as[[]T](c.New))
	})
	p.models[path] = m
	return m, nil
}

// Path returns the property path.
func (m *ListPropertyModel[T]) Path() string { return m.node.path }

// Mutable reports whether every parent along the path is set.
func (m *ListPropertyModel[T]) Mutable() bool { return m.node.mutable.Value() }

// MutableState observes Mutable.
func (m *ListPropertyModel[T]) MutableState() value.Model[bool] {
	return value.ReadOnly[bool](m.node.mutable)
}

func (m *ListPropertyModel[T]) Len() int { return m.items.Len() }

func (m *ListPropertyModel[T]) At(index int) T { return m.items.At(index) }

func (m *ListPropertyModel[T]) Values() []T { return m.items.Values() }

// OnListChange subscribes handler to structural changes.
func (m *ListPropertyModel[T]) OnListChange(handler func(list.Change[T])) event.Registration {
	return m.items.OnListChange(handler)
}

// Add appends values when the property is writable.
func (m *ListPropertyModel[T]) Add(values ...T) {
	if m.Mutable() {
		m.items.Add(values...)
	}
}

// Insert inserts values when the property is writable.
func (m *ListPropertyModel[T]) Insert(index int, values ...T) {
	if m.Mutable() {
		m.items.Insert(index, values...)
	}
}

// RemoveAt removes the element at index. On a read-only property it only
// returns the element.
func (m *ListPropertyModel[T]) RemoveAt(index int) T {
	if !m.Mutable() {
		return m.items.At(index)
	}
	return m.items.RemoveAt(index)
}

// Remove deletes the first element equal to v.
func (m *ListPropertyModel[T]) Remove(v T) bool {
	return m.Mutable() && m.items.Remove(v)
}

// Set replaces the element at index.
func (m *ListPropertyModel[T]) Set(index int, v T) {
	if m.Mutable() {
		m.items.Set(index, v)
	}
}

// SetValues replaces the contents.
func (m *ListPropertyModel[T]) SetValues(values []T) {
	if m.Mutable() {
		m.items.SetValues(values)
	}
}

// Clear removes every element.
func (m *ListPropertyModel[T]) Clear() {
	if m.Mutable() {
		m.items.Clear()
	}
}

var (
	_ value.Mutable[string] = (*PropertyModel[string])(nil)
	_ list.Mutable[string]  = (*ListPropertyModel[string])(nil)
)
