package validationbind

import (
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pectin/pkg/validation"
)

// Theme tokens read by StylesFromSelection.
const (
	TokenError   = "validation.error"
	TokenWarning = "validation.warning"
	TokenInfo    = "validation.info"
)

// Styles names the style applied for each severity. An empty name applies
// nothing.
type Styles struct {
	Error   string
	Warning string
	Info    string
}

// For returns the style for severity.
func (s Styles) For(severity validation.Severity) string {
	switch severity {
	case validation.Error:
		return s.Error
	case validation.Warning:
		return s.Warning
	default:
		return s.Info
	}
}

var (
	defaultsMu sync.RWMutex
	defaults   = Styles{
		Error:   "validation-error",
		Warning: "validation-warning",
		Info:    "validation-info",
	}
)

// DefaultStyles returns the process-wide styles used by binders configured
// without WithStyles.
func DefaultStyles() Styles {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// SetDefaultStyles replaces the process-wide default styles.
func SetDefaultStyles(styles Styles) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = styles
}

// StylesFromSelection reads the validation tokens of a theme selection.
// Variant tokens override manifest tokens; missing tokens keep the default
// styles.
func StylesFromSelection(selection *theme.Selection) Styles {
	return overlaySelection(DefaultStyles(), selection)
}

func overlaySelection(styles Styles, selection *theme.Selection) Styles {
	if selection == nil || selection.Manifest == nil {
		return styles
	}
	tokens := map[string]string{}
	for k, v := range selection.Manifest.Tokens {
		tokens[k] = v
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for k, v := range variant.Tokens {
			tokens[k] = v
		}
	}
	if v := strings.TrimSpace(tokens[TokenError]); v != "" {
		styles.Error = v
	}
	if v := strings.TrimSpace(tokens[TokenWarning]); v != "" {
		styles.Warning = v
	}
	if v := strings.TrimSpace(tokens[TokenInfo]); v != "" {
		styles.Info = v
	}
	return styles
}
