package form

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-pectin/pkg/binding"
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/format"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/value"
)

// ExceptionPolicy decides what happens to the value when text fails to parse.
type ExceptionPolicy int

const (
	// KeepValue leaves the last good value in place.
	KeepValue ExceptionPolicy = iota
	// ClearValue resets the value to its zero value.
	ClearValue
)

// FormatOption configures formatted fields.
type FormatOption func(*formatSettings)

type formatSettings struct {
	policy ExceptionPolicy
}

// WithPolicy sets the exception policy. The default is KeepValue.
func WithPolicy(policy ExceptionPolicy) FormatOption {
	return func(s *formatSettings) {
		s.policy = policy
	}
}

func newFormatSettings(options []FormatOption) formatSettings {
	var s formatSettings
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// FormattedField is a typed field edited through text. Text() is bound to a
// text widget; good text updates the value, bad text records a parse error.
type FormattedField[T any] struct {
	*FieldModel[T]
	format   format.Format[T]
	policy   ExceptionPolicy
	text     *value.Holder[string]
	textView *textModel[T]
	parseErr *value.Holder[error]
	guard    binding.Guard
	regs     event.Registrations
}

// NewFormattedField declares a formatted field backed by source.
func NewFormattedField[T any](f *Form, name string, source value.Mutable[T], fm format.Format[T], options ...FormatOption) *FormattedField[T] {
	cfg := newFormatSettings(options)
	field := &FormattedField[T]{
		FieldModel: &FieldModel[T]{name: name, source: source},
		format:     fm,
		policy:     cfg.policy,
		text:       value.NewHolder(fm.Format(source.Value())),
		parseErr:   value.NewHolder[error](nil),
	}
	field.textView = &textModel[T]{owner: field}
	field.regs.Add(source.OnChange(func(c value.Change[T]) {
		if field.guard.Active() {
			return
		}
		field.parseErr.SetValue(nil)
		field.text.SetValue(field.format.Format(c.New))
	}))
	f.add(field)
	return field
}

// Text is the text view of the field.
func (m *FormattedField[T]) Text() value.Mutable[string] { return m.textView }

// ParseError holds the last parse failure, nil after good text.
func (m *FormattedField[T]) ParseError() value.Model[error] { return value.ReadOnly[error](m.parseErr) }

// Policy returns the exception policy.
func (m *FormattedField[T]) Policy() ExceptionPolicy { return m.policy }

// ApplyRule implements Field, keyed on the formatted field itself.
func (m *FormattedField[T]) ApplyRule(manager *validation.Manager, rule validation.Validator[any], cond condition.Condition) error {
	return applyRule[T](manager, m, rule, cond)
}

// TextValidator reports text that does not parse. Attach it to Text() so it
// re-runs on every keystroke.
func (m *FormattedField[T]) TextValidator() validation.Validator[string] {
	return validation.Func[string](func(text string, c *validation.Collector) {
		if _, err := m.format.Parse(text); err != nil {
			var parseErr *format.ParseError
			if errors.As(err, &parseErr) {
				c.Errorf("Must be a valid %s", parseErr.Kind)
				return
			}
			c.Error(err.Error())
		}
	})
}

// Dispose stops syncing the text with the value.
func (m *FormattedField[T]) Dispose() {
	m.regs.RemoveAll()
}

func (m *FormattedField[T]) setText(text string) {
	if !m.Mutable() {
		return
	}
	m.text.SetValue(text)
	v, err := m.format.Parse(text)
	if err != nil {
		m.parseErr.SetValue(err)
		if m.policy == ClearValue {
			var zero T
			m.guard.Run(func() { m.FieldModel.SetValue(zero) })
		}
		return
	}
	m.parseErr.SetValue(nil)
	m.guard.Run(func() { m.FieldModel.SetValue(v) })
}

type textModel[T any] struct {
	owner *FormattedField[T]
}

func (t *textModel[T]) Value() string { return t.owner.text.Value() }

func (t *textModel[T]) SetValue(s string) { t.owner.setText(s) }

func (t *textModel[T]) Mutable() bool { return t.owner.Mutable() }

func (t *textModel[T]) OnChange(handler func(value.Change[string])) event.Registration {
	return t.owner.text.OnChange(handler)
}

// FormattedListField is a list field whose elements are edited as text.
type FormattedListField[T any] struct {
	*ListFieldModel[T]
	format format.Format[T]
	policy ExceptionPolicy
}

// NewFormattedListField declares a formatted list field backed by a fresh
// list.
func NewFormattedListField[T any](f *Form, name string, initial []T, fm format.Format[T], options ...FormatOption) *FormattedListField[T] {
	cfg := newFormatSettings(options)
	return &FormattedListField[T]{
		ListFieldModel: NewListField(f, name, initial),
		format:         fm,
		policy:         cfg.policy,
	}
}

// Texts formats every element.
func (m *FormattedListField[T]) Texts() []string {
	values := m.Values()
	out := make([]string, len(values))
	for idx, v := range values {
		out[idx] = m.format.Format(v)
	}
	return out
}

// SetTexts parses texts and replaces the list. On failure KeepValue leaves the
// list untouched while ClearValue stores only the entries that parsed; both
// return the joined parse errors.
func (m *FormattedListField[T]) SetTexts(texts []string) error {
	values := make([]T, 0, len(texts))
	var errs []error
	for idx, text := range texts {
		v, err := m.format.Parse(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", m.Name(), idx, err))
			continue
		}
		values = append(values, v)
	}
	if len(errs) > 0 && m.policy == KeepValue {
		return errors.Join(errs...)
	}
	m.SetValues(values)
	return errors.Join(errs...)
}

var (
	_ Field                 = (*FormattedField[int])(nil)
	_ value.Mutable[string] = (*textModel[int])(nil)
)
