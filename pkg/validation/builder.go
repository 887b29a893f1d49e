package validation

import (
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/value"
)

// FieldBuilder attaches rules to the managed validator of a field.
type FieldBuilder[T any] struct {
	validator *FieldValidator[T]
}

// ValidateField starts a rule declaration for field.
//
//	err := validation.ValidateField(m, age).Using(rules.Range(18, 120)).When(adult)
func ValidateField[T any](m *Manager, field value.Model[T], options ...Option) *FieldBuilder[T] {
	return &FieldBuilder[T]{validator: FieldValidatorOf(m, field, options...)}
}

// Validator returns the underlying validator.
func (b *FieldBuilder[T]) Validator() *FieldValidator[T] { return b.validator }

// Using adds the validators, all gated by one shared condition that stays
// enabled until When or Unless binds it.
func (b *FieldBuilder[T]) Using(v Validator[T], more ...Validator[T]) *ConditionBuilder {
	cond := condition.NewDelegating(b.validator.Name())
	for _, each := range append([]Validator[T]{v}, more...) {
		b.validator.AddValidator(each, cond)
	}
	return &ConditionBuilder{cond: cond}
}

// ListBuilder attaches rules to the managed validator of a list field.
type ListBuilder[T any] struct {
	validator *ListFieldValidator[T]
}

// ValidateList starts a rule declaration for a list field.
func ValidateList[T any](m *Manager, field list.Model[T], options ...Option) *ListBuilder[T] {
	return &ListBuilder[T]{validator: ListValidatorOf(m, field, options...)}
}

// Validator returns the underlying validator.
func (b *ListBuilder[T]) Validator() *ListFieldValidator[T] { return b.validator }

// Using adds element validators.
func (b *ListBuilder[T]) Using(v Validator[T], more ...Validator[T]) *ConditionBuilder {
	cond := condition.NewDelegating(b.validator.Name())
	for _, each := range append([]Validator[T]{v}, more...) {
		b.validator.AddValidator(each, cond)
	}
	return &ConditionBuilder{cond: cond}
}

// UsingList adds validators that see the whole list.
func (b *ListBuilder[T]) UsingList(v Validator[[]T], more ...Validator[[]T]) *ConditionBuilder {
	cond := condition.NewDelegating(b.validator.Name())
	for _, each := range append([]Validator[[]T]{v}, more...) {
		b.validator.AddListValidator(each, cond)
	}
	return &ConditionBuilder{cond: cond}
}

// ConditionBuilder finishes a Using call by gating its validators.
type ConditionBuilder struct {
	cond *condition.Delegating
}

// When enables the validators only while cond is true. It fails with
// condition.ErrAlreadyBound when the validators are already gated.
func (c *ConditionBuilder) When(cond condition.Condition) error {
	return c.cond.SetDelegate(cond)
}

// Unless enables the validators only while cond is false.
func (c *ConditionBuilder) Unless(cond condition.Condition) error {
	if cond == nil {
		return condition.ErrNilDelegate
	}
	return c.cond.SetDelegate(condition.Not(cond))
}

// Condition exposes the shared gate.
func (c *ConditionBuilder) Condition() *condition.Delegating { return c.cond }
