package validationbind

import (
	"sort"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pectin/pkg/binding"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Binder creates validation bindings for the fields of one validation
// manager. Bindings on the same field share that field's validator.
type Binder struct {
	*binding.Binder
	manager *validation.Manager
	styles  Styles
	err     error
}

// Option configures a Binder.
type Option func(*Binder)

// WithStyles overrides the default styles.
func WithStyles(styles Styles) Option {
	return func(b *Binder) {
		b.styles = styles
	}
}

// WithThemeSelector resolves styles from the named theme and variant. Tokens
// the theme does not define keep the styles set so far. Selection errors are
// returned by NewBinder.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(b *Binder) {
		if selector == nil {
			return
		}
		selection, err := selector.Select(name, variant)
		if err != nil {
			b.err = err
			return
		}
		b.styles = overlaySelection(b.styles, selection)
	}
}

// NewBinder returns a binder over manager.
func NewBinder(manager *validation.Manager, options ...Option) (*Binder, error) {
	if manager == nil {
		manager = validation.NewManager()
	}
	b := &Binder{
		Binder:  binding.NewBinder(),
		manager: manager,
		styles:  DefaultStyles(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	if b.err != nil {
		return nil, b.err
	}
	return b, nil
}

// Manager returns the validation manager.
func (b *Binder) Manager() *validation.Manager { return b.manager }

// Styles returns the styles used by ToStyle.
func (b *Binder) Styles() Styles { return b.styles }

// DisplayBuilder finishes a BindValidationOf call.
type DisplayBuilder struct {
	binder    *Binder
	validator validation.Reporter
}

// BindValidationOf starts binding the validator of field.
//
//	validationbind.BindValidationOf(vb, name).To(nameErrors)
func BindValidationOf[T any](b *Binder, field value.Model[T]) *DisplayBuilder {
	return &DisplayBuilder{binder: b, validator: validation.FieldValidatorOf(b.manager, field)}
}

// To shows results on display.
func (db *DisplayBuilder) To(display Display) *DisplayBinding {
	bound := NewDisplayBinding(db.validator, display)
	db.binder.Adopt(bound)
	return bound
}

// ToStyle styles target according to the result severity.
func (db *DisplayBuilder) ToStyle(target StyleTarget) *StyleBinding {
	bound := NewStyleBinding(db.validator, target, db.binder.styles)
	db.binder.Adopt(bound)
	return bound
}

// IndexedBuilder finishes a BindListValidationOf call.
type IndexedBuilder struct {
	binder    *Binder
	validator Indexed
}

// BindListValidationOf starts binding the validator of a list field.
func BindListValidationOf[T any](b *Binder, field list.Model[T]) *IndexedBuilder {
	return &IndexedBuilder{binder: b, validator: validation.ListValidatorOf(b.manager, field)}
}

// To shows per-row results on display.
func (ib *IndexedBuilder) To(display IndexedDisplay) *IndexedDisplayBinding {
	bound := NewIndexedDisplayBinding(ib.validator, display)
	ib.binder.Adopt(bound)
	return bound
}

// ToDisplay shows only the overall result.
func (ib *IndexedBuilder) ToDisplay(display Display) *DisplayBinding {
	bound := NewDisplayBinding(ib.validator, display)
	ib.binder.Adopt(bound)
	return bound
}

// ToStyle styles target according to the overall result.
func (ib *IndexedBuilder) ToStyle(target StyleTarget) *StyleBinding {
	bound := NewStyleBinding(ib.validator, target, ib.binder.styles)
	ib.binder.Adopt(bound)
	return bound
}

func sortedRows(rows map[int]struct{}) []int {
	out := make([]int, 0, len(rows))
	for idx := range rows {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
