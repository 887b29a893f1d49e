package validation

import (
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/value"
)

// ListFieldValidator validates a list model. Element rules run against every
// element and produce per-index results; list rules run against the whole
// contents. Every index is re-validated after each structural change and
// each rule condition change, so no result outlives the element it was
// computed for.
type ListFieldValidator[T any] struct {
	name         string
	field        list.Model[T]
	elementRules []rule[T]
	listRules    []rule[[]T]
	indexed      IndexedResult
	handlers     event.Registry[Event]
	regs         event.Registrations
}

// NewListFieldValidator attaches a validator to field.
func NewListFieldValidator[T any](field list.Model[T], options ...Option) *ListFieldValidator[T] {
	cfg := newSettings(field, options)
	v := &ListFieldValidator[T]{name: cfg.name, field: field}
	v.regs.Add(field.OnListChange(func(list.Change[T]) {
		v.Validate()
	}))
	return v
}

// AddValidator appends an element rule.
func (v *ListFieldValidator[T]) AddValidator(validator Validator[T], cond condition.Condition) {
	if validator == nil {
		return
	}
	v.elementRules = append(v.elementRules, rule[T]{validator: validator, cond: cond})
	v.watch(cond)
}

// AddListValidator appends a rule that sees the whole list.
func (v *ListFieldValidator[T]) AddListValidator(validator Validator[[]T], cond condition.Condition) {
	if validator == nil {
		return
	}
	v.listRules = append(v.listRules, rule[[]T]{validator: validator, cond: cond})
	v.watch(cond)
}

func (v *ListFieldValidator[T]) watch(cond condition.Condition) {
	if cond == nil {
		return
	}
	v.regs.Add(cond.OnChange(func(value.Change[bool]) {
		v.Validate()
	}))
}

// Name returns the validator label.
func (v *ListFieldValidator[T]) Name() string { return v.name }

// Field returns the validated list.
func (v *ListFieldValidator[T]) Field() list.Model[T] { return v.field }

// Validate runs every enabled rule against the current contents.
func (v *ListFieldValidator[T]) Validate() bool {
	values := v.field.Values()

	var whole Collector
	for _, r := range v.listRules {
		if r.enabled() {
			r.validator.Validate(values, &whole)
		}
	}

	perIndex := make(map[int]Result)
	for idx, item := range values {
		var c Collector
		for _, r := range v.elementRules {
			if r.enabled() {
				r.validator.Validate(item, &c)
			}
		}
		if res := c.Result(); !res.Empty() {
			perIndex[idx] = res
		}
	}

	v.indexed = NewIndexedResult(len(values), whole.Result(), perIndex)
	emitValidated(v.name, v.indexed.Result())
	indexed := v.indexed
	v.handlers.Fire(Event{Result: indexed.Result(), Indexed: &indexed})
	return indexed.Valid()
}

// Result returns the overall result of the last run.
func (v *ListFieldValidator[T]) Result() Result { return v.indexed.Result() }

// IndexedResult returns the per-index result of the last run.
func (v *ListFieldValidator[T]) IndexedResult() IndexedResult { return v.indexed }

// Clear drops every result.
func (v *ListFieldValidator[T]) Clear() {
	v.indexed = IndexedResult{length: v.field.Len()}
	emitCleared(v.name)
	indexed := v.indexed
	v.handlers.Fire(Event{Indexed: &indexed})
}

// OnValidate subscribes handler to validation events.
func (v *ListFieldValidator[T]) OnValidate(handler func(Event)) event.Registration {
	return v.handlers.Add(handler)
}

// Dispose detaches the validator from its list and conditions.
func (v *ListFieldValidator[T]) Dispose() {
	v.regs.RemoveAll()
}

var _ Reporter = (*ListFieldValidator[string])(nil)
