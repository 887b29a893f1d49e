package bean

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnknownProperty is wrapped by UnknownPropertyError.
	ErrUnknownProperty = errors.New("bean: unknown property")
	// ErrIncorrectPropertyType is wrapped by IncorrectPropertyTypeError.
	ErrIncorrectPropertyType = errors.New("bean: incorrect property type")
)

// UnknownPropertyError reports a path segment that names no property.
type UnknownPropertyError struct {
	Bean       string
	Path       string
	Suggestion string
}

func (e *UnknownPropertyError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("bean: unknown property %q on %s", e.Path, e.Bean)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Unwrap returns ErrUnknownProperty.
func (e *UnknownPropertyError) Unwrap() error { return ErrUnknownProperty }

// IncorrectPropertyTypeError reports a model requested with a type that does
// not match the property's declared type.
type IncorrectPropertyTypeError struct {
	Path string
	Want reflect.Type
	Got  reflect.Type
}

func (e *IncorrectPropertyTypeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("bean: property %q is %s, requested as %s", e.Path, e.Want, e.Got)
}

// Unwrap returns ErrIncorrectPropertyType.
func (e *IncorrectPropertyTypeError) Unwrap() error { return ErrIncorrectPropertyType }
