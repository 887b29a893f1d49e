package widget

import (
	"sort"

	"github.com/goliatone/go-pectin/pkg/validation"
)

// StyleSet is a set of style names. The zero value is empty and ready to use.
type StyleSet struct {
	names map[string]struct{}
}

// AddStyle adds name; blank names are ignored.
func (s *StyleSet) AddStyle(name string) {
	if name == "" {
		return
	}
	if s.names == nil {
		s.names = make(map[string]struct{})
	}
	s.names[name] = struct{}{}
}

// RemoveStyle removes name if present.
func (s *StyleSet) RemoveStyle(name string) {
	delete(s.names, name)
}

// HasStyle reports whether name is applied.
func (s *StyleSet) HasStyle(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Styles returns the applied names sorted.
func (s *StyleSet) Styles() []string {
	if len(s.names) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Chrome is the state every widget shares: enabled and visible flags, styles
// and the last validation result shown. Widgets start enabled and visible.
type Chrome struct {
	StyleSet
	disabled bool
	hidden   bool
	result   validation.Result
}

// SetEnabled enables or disables user input.
func (c *Chrome) SetEnabled(enabled bool) { c.disabled = !enabled }

// Enabled reports whether user input is accepted.
func (c *Chrome) Enabled() bool { return !c.disabled }

// SetVisible shows or hides the widget.
func (c *Chrome) SetVisible(visible bool) { c.hidden = !visible }

// Visible reports whether the widget is shown.
func (c *Chrome) Visible() bool { return !c.hidden }

// SetValidationResult stores the result to display.
func (c *Chrome) SetValidationResult(result validation.Result) { c.result = result }

// ValidationResult returns the last result shown.
func (c *Chrome) ValidationResult() validation.Result { return c.result }

// interactive reports whether user edits should be accepted.
func (c *Chrome) interactive() bool { return !c.disabled && !c.hidden }
