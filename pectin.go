// Package pectin binds observable value and list models to widgets and
// validates them. The root package re-exports the common entry points; the
// building blocks live under pkg/.
package pectin

import (
	"github.com/goliatone/go-pectin/pkg/bean"
	"github.com/goliatone/go-pectin/pkg/binding"
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/form"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/validation/ruleset"
	"github.com/goliatone/go-pectin/pkg/validationbind"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Condition is an observable boolean.
type Condition = condition.Condition

// Result is an ordered set of validation messages.
type Result = validation.Result

// Message is a single validation message.
type Message = validation.Message

// Severity ranks validation messages.
type Severity = validation.Severity

// Severities re-exported from the validation package.
const (
	Info    = validation.Info
	Warning = validation.Warning
	Error   = validation.Error
)

// Manager aliases validation.Manager, the per-form validator registry.
type Manager = validation.Manager

// Binder aliases validationbind.Binder, which registers value, list,
// condition and validation bindings and disposes them together.
type Binder = validationbind.Binder

// Form aliases form.Form.
type Form = form.Form

// NewValue returns a value model holding initial.
func NewValue[T any](initial T, options ...value.Option[T]) *value.Holder[T] {
	return value.NewHolder(initial, options...)
}

// NewList returns a list model holding values.
func NewList[T any](values ...T) *list.Holder[T] {
	return list.New(values)
}

// NewForm returns an empty form.
func NewForm(name string) *form.Form {
	return form.New(name)
}

// NewBinder returns a binder over a fresh validation manager.
func NewBinder(options ...validationbind.Option) (*Binder, error) {
	return validationbind.NewBinder(validation.NewManager(), options...)
}

// NewProvider returns a bean provider for B.
func NewProvider[B any](options ...bean.Option) *bean.Provider[B] {
	return bean.NewProvider[B](options...)
}

// Validate starts a validation rule for field on the binder's manager.
func Validate[T any](b *Binder, field value.Model[T]) *validation.FieldBuilder[T] {
	return validation.ValidateField(b.Manager(), field)
}

// ValidateList starts a validation rule for a list on the binder's manager.
func ValidateList[T any](b *Binder, field list.Model[T]) *validation.ListBuilder[T] {
	return validation.ValidateList(b.Manager(), field)
}

// BindValue starts a value binding.
func BindValue[T any](b *Binder, model value.Model[T]) *binding.ValueBuilder[T] {
	return binding.BindValueOf(b.Binder, model)
}

// BindList starts a list binding.
func BindList[T any](b *Binder, model list.Model[T]) *binding.ListBuilder[T] {
	return binding.BindListOf(b.Binder, model)
}

// BindValidation starts a validation display binding for field.
func BindValidation[T any](b *Binder, field value.Model[T]) *validationbind.DisplayBuilder {
	return validationbind.BindValidationOf(b, field)
}

// BindListValidation starts an indexed validation display binding for a list.
func BindListValidation[T any](b *Binder, field list.Model[T]) *validationbind.IndexedBuilder {
	return validationbind.BindListValidationOf(b, field)
}

// ApplyRules parses a YAML rule set and attaches it to the fields of f.
func ApplyRules(b *Binder, f *form.Form, raw []byte) error {
	return ruleset.Apply(raw, b.Manager(), f)
}
