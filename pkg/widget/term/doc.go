// Package term drives headless widgets from terminal prompts.
//
// A Session builds a widget per form field, binds it to the field model and
// its validator, then asks for each value through a Driver. The default
// driver uses survey prompts; feedback is rendered with lipgloss.
package term
