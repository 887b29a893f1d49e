// Package validationbind pushes validation results onto displays and style
// targets. A Binder resolves validators through a validation.Manager so every
// binding on a field observes the same validator.
package validationbind
