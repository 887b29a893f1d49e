package condition

import (
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Computed is a condition recomputed whenever one of its sources changes.
// Handlers only see flips.
type Computed struct {
	eval   func() bool
	holder *value.Holder[bool]
	regs   event.Registrations
}

func newComputed(eval func() bool) *Computed {
	return &Computed{eval: eval, holder: value.NewHolder(eval())}
}

func watch[T any](c *Computed, source value.Model[T]) {
	c.regs.Add(source.OnChange(func(value.Change[T]) { c.Recompute() }))
}

// Value returns the last computed value.
func (c *Computed) Value() bool { return c.holder.Value() }

// OnChange subscribes handler to flips.
func (c *Computed) OnChange(handler func(value.Change[bool])) event.Registration {
	return c.holder.OnChange(handler)
}

// Recompute re-evaluates the condition.
func (c *Computed) Recompute() {
	c.holder.SetValue(c.eval())
}

// Dispose detaches the condition from its sources.
func (c *Computed) Dispose() {
	c.regs.RemoveAll()
}

// True is a condition that is always true.
func True() Condition { return value.Constant(true) }

// False is a condition that is always false.
func False() Condition { return value.Constant(false) }

// Func derives a condition from model using predicate.
func Func[T any](model value.Model[T], predicate func(T) bool) *Computed {
	c := newComputed(func() bool { return predicate(model.Value()) })
	watch(c, model)
	return c
}

// Is is true while model equals want.
func Is[T comparable](model value.Model[T], want T) *Computed {
	return Func(model, func(v T) bool { return v == want })
}

// IsNot is true while model differs from want.
func IsNot[T comparable](model value.Model[T], want T) *Computed {
	return Func(model, func(v T) bool { return v != want })
}

// Optional adapts a nullable boolean: an absent value reads as false.
func Optional(model value.Model[*bool]) *Computed {
	return Func(model, func(v *bool) bool { return v != nil && *v })
}

// Not inverts cond.
func Not(cond Condition) *Computed {
	return Func(cond, func(v bool) bool { return !v })
}

// And is true while every condition is true. An empty And is true.
func And(conds ...Condition) *Computed {
	c := newComputed(func() bool {
		for _, cond := range conds {
			if !cond.Value() {
				return false
			}
		}
		return true
	})
	for _, cond := range conds {
		watch(c, cond)
	}
	return c
}

// Or is true while at least one condition is true. An empty Or is false.
func Or(conds ...Condition) *Computed {
	c := newComputed(func() bool {
		for _, cond := range conds {
			if cond.Value() {
				return true
			}
		}
		return false
	})
	for _, cond := range conds {
		watch(c, cond)
	}
	return c
}

var _ Condition = (*Computed)(nil)
