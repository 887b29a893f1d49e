package term

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-pectin/pkg/binding"
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/form"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/validationbind"
	"github.com/goliatone/go-pectin/pkg/value"
	"github.com/goliatone/go-pectin/pkg/widget"
)

// Option configures a Session.
type Option func(*Session)

// WithDriver overrides the prompt driver used by the session.
func WithDriver(driver Driver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithRegistry overrides the registry that picks a widget per field.
func WithRegistry(registry *widget.Registry) Option {
	return func(s *Session) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithStyles applies a custom palette.
func WithStyles(styles Styles) Option {
	return func(s *Session) {
		s.styles = styles
	}
}

// WithTitle sets the prompt text for a field. Fields default to their name.
func WithTitle(field, title string) Option {
	return func(s *Session) {
		s.titles[field] = title
	}
}

// Session edits a form in the terminal. Every field gets a headless widget
// bound to its model, so edits flow through the same bindings and
// validators a graphical front end would use.
type Session struct {
	form     *form.Form
	binder   *validationbind.Binder
	driver   Driver
	registry *widget.Registry
	styles   Styles
	titles   map[string]string
	items    []*item
}

type item struct {
	name     string
	kind     string
	chrome   *widget.Chrome
	feedback []*widget.Label
	ask      func(ctx context.Context, d Driver, q Question) error
	show     func() string
}

type textual interface {
	Text() value.Mutable[string]
}

type mutabilityReporter interface {
	MutableState() value.Model[bool]
}

// editable follows the first observable mutability among the field and its
// model. Anything else is judged once.
func editable(field form.Field, model any) condition.Condition {
	for _, candidate := range []any{field, model} {
		if r, ok := candidate.(mutabilityReporter); ok {
			return r.MutableState()
		}
	}
	if m, ok := model.(interface{ Mutable() bool }); ok && !m.Mutable() {
		return condition.False()
	}
	return condition.True()
}

// NewSession builds widgets for every field of f and registers their
// bindings with binder. Validation rules should be attached before the
// session is created so their results can be displayed.
func NewSession(f *form.Form, binder *validationbind.Binder, options ...Option) (*Session, error) {
	if f == nil || binder == nil {
		return nil, fmt.Errorf("term: form and binder are required")
	}
	s := &Session{
		form:     f,
		binder:   binder,
		registry: widget.NewRegistry(),
		styles:   DefaultStyles(),
		titles:   make(map[string]string),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil, nil)
	}
	for _, field := range f.Fields() {
		kind, ok := s.registry.Resolve(field)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedField, field.Name())
		}
		it, err := s.attach(field, kind)
		if err != nil {
			return nil, err
		}
		s.items = append(s.items, it)
	}
	return s, nil
}

func (s *Session) attach(field form.Field, kind string) (*item, error) {
	switch kind {
	case widget.KindFormatted:
		if model, ok := field.(textual); ok {
			it := s.attachText(field, kind, model.Text())
			s.attachFeedback(it, model.Text())
			return it, nil
		}
	case widget.KindText:
		if model, ok := field.(value.Mutable[string]); ok {
			return s.attachText(field, kind, model), nil
		}
	case widget.KindToggle:
		if model, ok := field.(value.Mutable[bool]); ok {
			return s.attachToggle(field, kind, model), nil
		}
	case widget.KindList:
		if model, ok := field.(list.Mutable[string]); ok {
			return s.attachList(field, kind, model), nil
		}
	}
	return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedField, field.Name(), kind)
}

func (s *Session) attachText(field form.Field, kind string, model value.Mutable[string]) *item {
	box := widget.NewTextBox(model.Value())
	binding.BindValueOf[string](s.binder.Binder, model).To(box)
	s.binder.Enable(box).When(editable(field, model))
	it := &item{
		name:   field.Name(),
		kind:   kind,
		chrome: &box.Chrome,
		ask: func(ctx context.Context, d Driver, q Question) error {
			text, err := d.Text(ctx, q, box.Value())
			if err != nil {
				return err
			}
			box.Type(text)
			return nil
		},
		show: box.Value,
	}
	s.attachFeedback(it, field)
	return it
}

func (s *Session) attachToggle(field form.Field, kind string, model value.Mutable[bool]) *item {
	toggle := widget.NewToggle(model.Value())
	binding.BindValueOf[bool](s.binder.Binder, model).To(toggle)
	s.binder.Enable(toggle).When(editable(field, model))
	it := &item{
		name:   field.Name(),
		kind:   kind,
		chrome: &toggle.Chrome,
		ask: func(ctx context.Context, d Driver, q Question) error {
			answer, err := d.Toggle(ctx, q, toggle.Checked())
			if err != nil {
				return err
			}
			if answer != toggle.Checked() {
				toggle.Click()
			}
			return nil
		},
		show: func() string {
			if toggle.Checked() {
				return "yes"
			}
			return "no"
		},
	}
	s.attachFeedback(it, field)
	return it
}

func (s *Session) attachList(field form.Field, kind string, model list.Mutable[string]) *item {
	box := widget.NewListBox(model.Values()...)
	binding.BindListOf[string](s.binder.Binder, model).To(box)
	s.binder.Enable(box).When(editable(field, model))
	if rep, ok := s.binder.Manager().Lookup(field); ok {
		if indexed, ok := rep.(validationbind.Indexed); ok {
			s.binder.Adopt(validationbind.NewIndexedDisplayBinding(indexed, box))
		}
	}
	it := &item{
		name:   field.Name(),
		kind:   kind,
		chrome: &box.Chrome,
		ask: func(ctx context.Context, d Driver, q Question) error {
			current := box.Values()
			var kept []string
			if len(current) > 0 {
				var err error
				if kept, err = d.Keep(ctx, q, current); err != nil {
					return err
				}
			}
			q.Message += " (add, comma separated)"
			extra, err := d.Text(ctx, q, "")
			if err != nil {
				return err
			}
			kept = append(kept, splitList(extra)...)
			if !slices.Equal(kept, current) {
				box.Edit(kept)
			}
			return nil
		},
		show: func() string { return strings.Join(box.Values(), ", ") },
	}
	s.attachFeedback(it, field)
	return it
}

// attachFeedback binds a label and the widget styles to the validator
// registered for key, if any.
func (s *Session) attachFeedback(it *item, key any) {
	rep, ok := s.binder.Manager().Lookup(key)
	if !ok {
		return
	}
	label := widget.NewLabel("")
	s.binder.Adopt(validationbind.NewDisplayBinding(rep, label))
	s.binder.Adopt(validationbind.NewStyleBinding(rep, it.chrome, s.binder.Styles()))
	it.feedback = append(it.feedback, label)
}

// help joins the plain feedback texts shown for the item.
func (it *item) help() string {
	var texts []string
	for _, label := range it.feedback {
		if text := label.Text(); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Kinds maps field names to the widget kind chosen for them.
func (s *Session) Kinds() map[string]string {
	out := make(map[string]string, len(s.items))
	for _, it := range s.items {
		out[it.name] = it.kind
	}
	return out
}

// Run prompts once for every visible field, printing validation feedback
// after each answer. Disabled fields are shown but not edited. It validates
// the whole form at the end and reports the outcome.
func (s *Session) Run(ctx context.Context) (bool, error) {
	if err := s.driver.Print(ctx, s.styles.Title.Render(s.form.Name())); err != nil {
		return false, err
	}
	for _, it := range s.items {
		if !it.chrome.Visible() {
			continue
		}
		message := s.title(it.name)
		if !it.chrome.Enabled() {
			if err := s.driver.Print(ctx, s.styles.Muted.Render(message+": "+it.show()+" (locked)")); err != nil {
				return false, err
			}
			continue
		}
		q := Question{Field: it.name, Message: message, Help: it.help()}
		if err := it.ask(ctx, s.driver, q); err != nil {
			return false, err
		}
		if feedback := s.feedback(it); feedback != "" {
			if err := s.driver.Print(ctx, feedback); err != nil {
				return false, err
			}
		}
	}
	return s.binder.Manager().Validate(), nil
}

// Summary renders every visible field with its value and feedback.
func (s *Session) Summary() string {
	lines := []string{s.styles.Title.Render(s.form.Name())}
	for _, it := range s.items {
		if !it.chrome.Visible() {
			continue
		}
		lines = append(lines, s.styles.Field.Render(s.title(it.name)+": ")+it.show())
		if feedback := s.feedback(it); feedback != "" {
			lines = append(lines, feedback)
		}
	}
	return strings.Join(lines, "\n")
}

func (s *Session) feedback(it *item) string {
	var parts []string
	for _, label := range it.feedback {
		if text := s.styles.Feedback(label.ValidationResult(), label.Text()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

func (s *Session) title(name string) string {
	if title, ok := s.titles[name]; ok && title != "" {
		return title
	}
	return name
}
