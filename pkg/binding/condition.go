package binding

import (
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/value"
)

// ConditionBinding pushes a condition onto a boolean property of a widget,
// such as enabled or visible.
type ConditionBinding struct {
	*Base
	cond  condition.Condition
	apply func(bool)
}

// NewConditionBinding subscribes apply to cond.
func NewConditionBinding(kind string, cond condition.Condition, apply func(bool)) *ConditionBinding {
	b := &ConditionBinding{Base: NewBase(kind), cond: cond, apply: apply}
	b.Track(cond.OnChange(func(value.Change[bool]) {
		b.UpdateTarget()
	}))
	return b
}

// UpdateTarget applies the current condition value.
func (b *ConditionBinding) UpdateTarget() {
	if b.apply != nil {
		b.apply(b.cond.Value())
	}
}

var _ Binding = (*ConditionBinding)(nil)
