package widget

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-pectin/pkg/binding"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/validationbind"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}

// sanitizeText strips markup from text. Entities are decoded again so plain
// text such as "a < b" survives unchanged.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(labelSanitizer().Sanitize(trimmed)))
}

// Label is a read-only text widget. Text set on it, including validation
// messages, is stripped of markup.
type Label struct {
	Chrome
	text string
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{text: sanitizeText(text)}
}

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed text.
func (l *Label) SetText(text string) { l.text = sanitizeText(text) }

// SetValidationResult shows the result's messages, one per line.
func (l *Label) SetValidationResult(result validation.Result) {
	l.Chrome.SetValidationResult(result)
	l.SetText(strings.Join(result.Texts(), "\n"))
}

// ValueLabel shows a formatted value.
type ValueLabel[T any] struct {
	Label
	value  T
	format func(T) string
}

// NewValueLabel returns a label formatting values with format, or fmt's %v
// when format is nil.
func NewValueLabel[T any](format func(T) string) *ValueLabel[T] {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	return &ValueLabel[T]{format: format}
}

// Value returns the last value shown.
func (l *ValueLabel[T]) Value() T { return l.value }

// SetValue formats v into the label.
func (l *ValueLabel[T]) SetValue(v T) {
	l.value = v
	l.SetText(l.format(v))
}

var (
	_ binding.TextDisplay        = (*Label)(nil)
	_ binding.ValueDisplay[int]  = (*ValueLabel[int])(nil)
	_ validationbind.Display     = (*Label)(nil)
	_ validationbind.StyleTarget = (*Label)(nil)
)
