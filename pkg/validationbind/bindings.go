package validationbind

import (
	"github.com/goliatone/go-pectin/pkg/binding"
	"github.com/goliatone/go-pectin/pkg/validation"
)

// DisplayBinding pushes every validation result of a validator onto a
// display.
type DisplayBinding struct {
	*binding.Base
	validator validation.Reporter
	display   Display
}

// NewDisplayBinding subscribes display to validator and pushes the current
// result.
func NewDisplayBinding(validator validation.Reporter, display Display) *DisplayBinding {
	b := &DisplayBinding{Base: binding.NewBase("validation-display"), validator: validator, display: display}
	b.Track(validator.OnValidate(func(validation.Event) { b.UpdateTarget() }))
	b.UpdateTarget()
	return b
}

// UpdateTarget pushes the validator's current result.
func (b *DisplayBinding) UpdateTarget() {
	b.display.SetValidationResult(b.validator.Result())
}

// Indexed is a validator that keeps per-row results.
type Indexed interface {
	validation.Reporter
	IndexedResult() validation.IndexedResult
}

// IndexedDisplayBinding pushes per-row results onto an indexed display. Rows
// that disappeared or became valid since the last push are cleared.
type IndexedDisplayBinding struct {
	*binding.Base
	validator Indexed
	display   IndexedDisplay
	shown     map[int]struct{}
}

// NewIndexedDisplayBinding subscribes display to validator and pushes the
// current rows.
func NewIndexedDisplayBinding(validator Indexed, display IndexedDisplay) *IndexedDisplayBinding {
	b := &IndexedDisplayBinding{
		Base:      binding.NewBase("validation-indexed-display"),
		validator: validator,
		display:   display,
		shown:     make(map[int]struct{}),
	}
	b.Track(validator.OnValidate(func(validation.Event) { b.UpdateTarget() }))
	b.UpdateTarget()
	return b
}

// UpdateTarget pushes the overall result and every row result.
func (b *IndexedDisplayBinding) UpdateTarget() {
	indexed := b.validator.IndexedResult()
	b.display.SetValidationResult(indexed.Result())

	next := make(map[int]struct{})
	for _, idx := range indexed.Indexes() {
		next[idx] = struct{}{}
		b.display.SetRowResult(idx, indexed.At(idx))
	}
	for _, idx := range sortedRows(b.shown) {
		if _, still := next[idx]; !still {
			b.display.ClearRow(idx)
		}
	}
	b.shown = next
}

// StyleBinding adds the style matching the highest severity of the current
// result and removes the previously applied one.
type StyleBinding struct {
	*binding.Base
	validator validation.Reporter
	target    StyleTarget
	styles    Styles
	applied   string
}

// NewStyleBinding subscribes target to validator and applies the current
// style.
func NewStyleBinding(validator validation.Reporter, target StyleTarget, styles Styles) *StyleBinding {
	b := &StyleBinding{
		Base:      binding.NewBase("validation-style"),
		validator: validator,
		target:    target,
		styles:    styles,
	}
	b.Track(validator.OnValidate(func(validation.Event) { b.UpdateTarget() }))
	b.UpdateTarget()
	return b
}

// UpdateTarget applies the style for the current result.
func (b *StyleBinding) UpdateTarget() {
	want := ""
	if severity, ok := b.validator.Result().MaxSeverity(); ok {
		want = b.styles.For(severity)
	}
	if want == b.applied {
		return
	}
	if b.applied != "" {
		b.target.RemoveStyle(b.applied)
	}
	if want != "" {
		b.target.AddStyle(want)
	}
	b.applied = want
}

// Applied returns the style currently applied, if any.
func (b *StyleBinding) Applied() string { return b.applied }

var (
	_ binding.Binding = (*DisplayBinding)(nil)
	_ binding.Binding = (*IndexedDisplayBinding)(nil)
	_ binding.Binding = (*StyleBinding)(nil)
)
