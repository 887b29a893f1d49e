package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrParse is wrapped by every ParseError.
var ErrParse = errors.New("format: cannot parse")

// ParseError reports text that a format could not turn into a value.
type ParseError struct {
	Text string
	Kind string
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("format: %q is not a valid %s", e.Text, e.Kind)
}

// Unwrap exposes ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// Format converts values to text and back.
type Format[T any] interface {
	Format(v T) string
	Parse(text string) (T, error)
}

type funcs[T any] struct {
	format func(T) string
	parse  func(string) (T, error)
}

func (f funcs[T]) Format(v T) string { return f.format(v) }

func (f funcs[T]) Parse(text string) (T, error) { return f.parse(text) }

// New builds a Format from a pair of functions.
func New[T any](format func(T) string, parse func(string) (T, error)) Format[T] {
	return funcs[T]{format: format, parse: parse}
}

func parseErr(text, kind string, err error) error {
	return &ParseError{Text: text, Kind: kind, Err: err}
}

// String is the identity format.
func String() Format[string] {
	return New(
		func(v string) string { return v },
		func(text string) (string, error) { return text, nil },
	)
}

// Int formats integers in base 10. Surrounding spaces are ignored.
func Int() Format[int] {
	return New(strconv.Itoa, func(text string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return 0, parseErr(text, "integer", err)
		}
		return v, nil
	})
}

// Float formats floats with the given precision; a negative precision uses
// the shortest exact representation.
func Float(precision int) Format[float64] {
	return New(
		func(v float64) string { return strconv.FormatFloat(v, 'f', precision, 64) },
		func(text string) (float64, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil {
				return 0, parseErr(text, "number", err)
			}
			return v, nil
		},
	)
}

// Bool accepts the spellings understood by strconv.ParseBool plus yes/no.
func Bool() Format[bool] {
	return New(strconv.FormatBool, func(text string) (bool, error) {
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off":
			return false, nil
		}
		v, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return false, parseErr(text, "boolean", err)
		}
		return v, nil
	})
}

// Time formats times with layout. The zero time formats as an empty string
// and empty text parses to the zero time.
func Time(layout string) Format[time.Time] {
	return New(
		func(v time.Time) string {
			if v.IsZero() {
				return ""
			}
			return v.Format(layout)
		},
		func(text string) (time.Time, error) {
			trimmed := strings.TrimSpace(text)
			if trimmed == "" {
				return time.Time{}, nil
			}
			v, err := time.Parse(layout, trimmed)
			if err != nil {
				return time.Time{}, parseErr(text, "date", err)
			}
			return v, nil
		},
	)
}
