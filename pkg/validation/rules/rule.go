package rules

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-pectin/pkg/validation"
)

// Rule is a single-check validator with a templated message.
//
// Messages are pongo2 templates rendered with `value` (the checked value) and
// `param` (the rule parameter, e.g. the minimum length).
type Rule[T any] struct {
	check    func(T) bool
	param    any
	severity validation.Severity
	message  string
	tpl      *pongo2.Template
}

func newRule[T any](message string, param any, check func(T) bool) *Rule[T] {
	r := &Rule[T]{check: check, param: param, severity: validation.Error}
	return r.WithMessage(message)
}

// New builds a rule from a predicate. The message is shown when check
// returns false.
func New[T any](message string, check func(T) bool) *Rule[T] {
	return newRule(message, nil, check)
}

// WithMessage replaces the message template. A template that fails to parse
// is shown verbatim.
func (r *Rule[T]) WithMessage(message string) *Rule[T] {
	r.message = message
	r.tpl = nil
	if strings.Contains(message, "{{") || strings.Contains(message, "{%") {
		if tpl, err := pongo2.FromString("{% autoescape off %}" + message + "{% endautoescape %}"); err == nil {
			r.tpl = tpl
		}
	}
	return r
}

// Warn reports failures as warnings instead of errors.
func (r *Rule[T]) Warn() *Rule[T] {
	return r.As(validation.Warning)
}

// As sets the severity reported on failure.
func (r *Rule[T]) As(severity validation.Severity) *Rule[T] {
	r.severity = severity
	return r
}

// Validate implements validation.Validator.
func (r *Rule[T]) Validate(v T, c *validation.Collector) {
	if r.check(v) {
		return
	}
	c.Add(validation.Message{Severity: r.severity, Text: r.render(v)})
}

func (r *Rule[T]) render(v T) string {
	if r.tpl == nil {
		return r.message
	}
	out, err := r.tpl.Execute(pongo2.Context{"value": v, "param": r.param})
	if err != nil {
		return r.message
	}
	return out
}

var _ validation.Validator[string] = (*Rule[string])(nil)
