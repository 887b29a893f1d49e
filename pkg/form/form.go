package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/validation"
)

// Field is the untyped view of a form field.
type Field interface {
	Name() string
	// AnyValue returns the current value; list fields return a slice copy.
	AnyValue() any
	// Watch runs fn after every change of the field.
	Watch(fn func()) event.Registration
	// ApplyRule attaches an untyped rule to the field's validator in m. A nil
	// cond keeps the rule always enabled.
	ApplyRule(m *validation.Manager, rule validation.Validator[any], cond condition.Condition) error
}

// ElementRuleApplier is implemented by list fields, whose rules can also run
// against each element.
type ElementRuleApplier interface {
	ApplyElementRule(m *validation.Manager, rule validation.Validator[any], cond condition.Condition) error
}

// Form is a named set of fields kept in declaration order.
type Form struct {
	name   string
	fields []Field
	byName map[string]Field
	conds  []*condition.Computed
}

// New returns an empty form.
func New(name string) *Form {
	return &Form{name: name, byName: make(map[string]Field)}
}

// Name returns the form name.
func (f *Form) Name() string { return f.name }

// Field returns the field registered under name.
func (f *Form) Field(name string) (Field, bool) {
	field, ok := f.byName[name]
	return field, ok
}

// Fields returns the fields in declaration order.
func (f *Form) Fields() []Field {
	return append([]Field(nil), f.fields...)
}

// Names returns the field names in declaration order.
func (f *Form) Names() []string {
	names := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		names = append(names, field.Name())
	}
	return names
}

// When compiles an expression over the form's fields, such as
// `plan == "pro" && !trial`. Identifiers must name fields of this form.
func (f *Form) When(rule string) (*condition.Computed, error) {
	cond, err := condition.Expression(rule, func(name string) (condition.Observed, bool) {
		field, ok := f.byName[name]
		if !ok {
			return nil, false
		}
		return field, true
	})
	if err != nil {
		return nil, fmt.Errorf("form %s: %w", f.name, err)
	}
	f.conds = append(f.conds, cond)
	return cond, nil
}

// MustWhen is When that panics on error.
func (f *Form) MustWhen(rule string) *condition.Computed {
	cond, err := f.When(rule)
	if err != nil {
		panic(err)
	}
	return cond
}

// Dispose detaches the conditions created by When.
func (f *Form) Dispose() {
	for _, cond := range f.conds {
		cond.Dispose()
	}
	f.conds = nil
}

func (f *Form) add(field Field) {
	name := strings.TrimSpace(field.Name())
	if name == "" {
		panic("form: field name is required")
	}
	if _, exists := f.byName[name]; exists {
		panic(fmt.Sprintf("form: duplicate field %q in %q", name, f.name))
	}
	f.byName[name] = field
	f.fields = append(f.fields, field)
}
