// Package rules provides ready-made validators: presence, length, pattern and
// range checks with pongo2 message templates, plus go-playground/validator
// tags for everything else.
package rules
