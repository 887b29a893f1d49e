package validation

import (
	"fmt"

	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Manager owns the validators of one form, keyed by field identity. Asking
// twice for the validator of the same field returns the same instance.
//
// Field models are used as map keys, so they must be comparable (pointer
// implementations are).
type Manager struct {
	entries map[any]Reporter
	order   []Reporter
	valid   *value.Holder[bool]
	dirty   *value.Holder[bool]
	regs    event.Registrations
}

// NewManager returns an empty manager. It reports valid and clean until a
// validator says otherwise.
func NewManager() *Manager {
	return &Manager{
		entries: make(map[any]Reporter),
		valid:   value.NewHolder(true),
		dirty:   value.NewHolder(false),
	}
}

// FieldValidatorOf returns the validator for field, creating it on first use.
// Options only apply on creation.
func FieldValidatorOf[T any](m *Manager, field value.Model[T], options ...Option) *FieldValidator[T] {
	if existing, ok := m.entries[field]; ok {
		return mustBe[*FieldValidator[T]](field, existing)
	}
	v := NewFieldValidator(field, options...)
	m.track(field, v)
	m.regs.Add(field.OnChange(func(value.Change[T]) { m.dirty.SetValue(true) }))
	return v
}

// ListValidatorOf returns the validator for a list field, creating it on first
// use.
func ListValidatorOf[T any](m *Manager, field list.Model[T], options ...Option) *ListFieldValidator[T] {
	if existing, ok := m.entries[field]; ok {
		return mustBe[*ListFieldValidator[T]](field, existing)
	}
	v := NewListFieldValidator(field, options...)
	m.track(field, v)
	m.regs.Add(field.OnListChange(func(list.Change[T]) { m.dirty.SetValue(true) }))
	return v
}

func mustBe[V Reporter](field any, existing Reporter) V {
	typed, ok := existing.(V)
	if !ok {
		panic(fmt.Sprintf("validation: field %T is already validated by %T", field, existing))
	}
	return typed
}

func (m *Manager) track(field any, v Reporter) {
	m.entries[field] = v
	m.order = append(m.order, v)
	m.regs.Add(v.OnValidate(func(Event) { m.refresh() }))
}

func (m *Manager) refresh() {
	valid := true
	for _, v := range m.order {
		if !v.Result().Valid() {
			valid = false
			break
		}
	}
	m.valid.SetValue(valid)
}

// Lookup returns the validator registered for field.
func (m *Manager) Lookup(field any) (Reporter, bool) {
	v, ok := m.entries[field]
	return v, ok
}

// Validators returns the registered validators in creation order.
func (m *Manager) Validators() []Reporter {
	return append([]Reporter(nil), m.order...)
}

// Validate runs every validator, resets the dirty flag and reports whether
// the whole form is valid.
func (m *Manager) Validate() bool {
	for _, v := range m.order {
		v.Validate()
	}
	m.dirty.SetValue(false)
	m.refresh()
	return m.valid.Value()
}

// Clear resets every validator and the dirty flag.
func (m *Manager) Clear() {
	for _, v := range m.order {
		v.Clear()
	}
	m.dirty.SetValue(false)
	m.refresh()
}

// Valid is true while every registered validator reports valid.
func (m *Manager) Valid() value.Model[bool] { return value.ReadOnly[bool](m.valid) }

// Dirty is true once a registered field changed since the last Validate or
// Clear.
func (m *Manager) Dirty() value.Model[bool] { return value.ReadOnly[bool](m.dirty) }

// Dispose detaches the manager and all of its validators.
func (m *Manager) Dispose() {
	m.regs.RemoveAll()
	for _, v := range m.order {
		v.Dispose()
	}
	m.order = nil
	m.entries = make(map[any]Reporter)
}
