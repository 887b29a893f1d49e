package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-pectin/pkg/validation"
)

var (
	colorRed      = lipgloss.Color("#f38ba8")
	colorPeach    = lipgloss.Color("#fab387")
	colorBlue     = lipgloss.Color("#89b4fa")
	colorText     = lipgloss.Color("#cdd6f4")
	colorOverlay1 = lipgloss.Color("#7f849c")
)

// Styles colours the terminal output of a session.
type Styles struct {
	Title   lipgloss.Style
	Field   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
		Field:   lipgloss.NewStyle().Foreground(colorText),
		Muted:   lipgloss.NewStyle().Foreground(colorOverlay1),
		Error:   lipgloss.NewStyle().Foreground(colorRed),
		Warning: lipgloss.NewStyle().Foreground(colorPeach),
		Info:    lipgloss.NewStyle().Foreground(colorBlue),
	}
}

// For returns the style for severity.
func (s Styles) For(severity validation.Severity) lipgloss.Style {
	switch severity {
	case validation.Error:
		return s.Error
	case validation.Warning:
		return s.Warning
	default:
		return s.Info
	}
}

// Feedback renders text, one prefixed line per message, in the style of the
// highest severity in result. It returns "" for empty results.
func (s Styles) Feedback(result validation.Result, text string) string {
	severity, ok := result.MaxSeverity()
	if !ok || strings.TrimSpace(text) == "" {
		return ""
	}
	style := s.For(severity)
	lines := strings.Split(text, "\n")
	for idx, line := range lines {
		lines[idx] = style.Render(prefix(severity) + line)
	}
	return strings.Join(lines, "\n")
}

func prefix(severity validation.Severity) string {
	switch severity {
	case validation.Error:
		return "✗ "
	case validation.Warning:
		return "! "
	default:
		return "i "
	}
}
