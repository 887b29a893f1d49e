package validation

import (
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Event is delivered after every validation run and every Clear. Indexed is
// only set by list validators.
type Event struct {
	Result  Result
	Indexed *IndexedResult
}

// Reporter is the untyped view of a field or list validator shared by the
// manager and the display bindings.
type Reporter interface {
	Name() string
	Result() Result
	Validate() bool
	Clear()
	OnValidate(handler func(Event)) event.Registration
	Dispose()
}

// Option configures a validator.
type Option func(*settings)

type settings struct {
	name string
}

// WithName labels the validator in signals. Models exposing Name() string are
// labelled automatically.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

func newSettings(field any, options []Option) settings {
	var s settings
	if named, ok := field.(interface{ Name() string }); ok {
		s.name = named.Name()
	}
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

type rule[T any] struct {
	validator Validator[T]
	cond      condition.Condition
}

func (r rule[T]) enabled() bool {
	return r.cond == nil || r.cond.Value()
}

// FieldValidator runs an ordered set of rules against a single value model.
// Each rule may be gated by a condition; the result is the union of the
// messages produced by the enabled rules.
//
// The validator re-runs whenever the field or any rule condition changes,
// so a rule enabled by its condition reports at once.
type FieldValidator[T any] struct {
	name     string
	field    value.Model[T]
	rules    []rule[T]
	result   Result
	handlers event.Registry[Event]
	regs     event.Registrations
}

// NewFieldValidator attaches a validator to field. Most callers go through a
// Manager so each field has a single validator.
func NewFieldValidator[T any](field value.Model[T], options ...Option) *FieldValidator[T] {
	cfg := newSettings(field, options)
	v := &FieldValidator[T]{name: cfg.name, field: field}
	v.regs.Add(field.OnChange(func(value.Change[T]) {
		v.Validate()
	}))
	return v
}

// AddValidator appends a rule. A nil cond keeps the rule always enabled.
func (v *FieldValidator[T]) AddValidator(validator Validator[T], cond condition.Condition) {
	if validator == nil {
		return
	}
	v.rules = append(v.rules, rule[T]{validator: validator, cond: cond})
	if cond != nil {
		v.regs.Add(cond.OnChange(func(value.Change[bool]) {
			v.Validate()
		}))
	}
}

// Name returns the validator label.
func (v *FieldValidator[T]) Name() string { return v.name }

// Field returns the validated model.
func (v *FieldValidator[T]) Field() value.Model[T] { return v.field }

// Validate runs every enabled rule and reports whether the field is valid.
func (v *FieldValidator[T]) Validate() bool {
	var c Collector
	current := v.field.Value()
	for _, r := range v.rules {
		if r.enabled() {
			r.validator.Validate(current, &c)
		}
	}
	v.result = c.Result()
	emitValidated(v.name, v.result)
	v.handlers.Fire(Event{Result: v.result})
	return v.result.Valid()
}

// Result returns the last computed result.
func (v *FieldValidator[T]) Result() Result { return v.result }

// Clear drops the current result and notifies handlers with an empty one.
func (v *FieldValidator[T]) Clear() {
	v.result = Result{}
	emitCleared(v.name)
	v.handlers.Fire(Event{})
}

// OnValidate subscribes handler to validation events.
func (v *FieldValidator[T]) OnValidate(handler func(Event)) event.Registration {
	return v.handlers.Add(handler)
}

// Dispose detaches the validator from its field and conditions.
func (v *FieldValidator[T]) Dispose() {
	v.regs.RemoveAll()
}

var _ Reporter = (*FieldValidator[string])(nil)
