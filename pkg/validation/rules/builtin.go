package rules

import (
	"cmp"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Required rejects the zero value.
func Required[T comparable]() *Rule[T] {
	var zero T
	return newRule("This field is required", nil, func(v T) bool { return v != zero })
}

// NotBlank rejects strings that are empty after trimming.
func NotBlank() *Rule[string] {
	return newRule("This field is required", nil, func(v string) bool {
		return strings.TrimSpace(v) != ""
	})
}

// MinLength rejects non-empty strings shorter than n runes. Pair it with
// NotBlank when the field is mandatory.
func MinLength(n int) *Rule[string] {
	return newRule("Must be at least {{ param }} characters", n, func(v string) bool {
		return v == "" || utf8.RuneCountInString(v) >= n
	})
}

// MaxLength rejects strings longer than n runes.
func MaxLength(n int) *Rule[string] {
	return newRule("Must be at most {{ param }} characters", n, func(v string) bool {
		return utf8.RuneCountInString(v) <= n
	})
}

// Pattern rejects non-empty strings that do not match expr. It panics on an
// invalid expression, like regexp.MustCompile.
func Pattern(expr string) *Rule[string] {
	re := regexp.MustCompile(expr)
	return newRule("Invalid format", expr, func(v string) bool {
		return v == "" || re.MatchString(v)
	})
}

// Range rejects values outside [min, max].
func Range[T cmp.Ordered](min, max T) *Rule[T] {
	bounds := map[string]T{"min": min, "max": max}
	return newRule("Must be between {{ param.min }} and {{ param.max }}", bounds, func(v T) bool {
		return v >= min && v <= max
	})
}

// OneOf rejects values not listed in allowed.
func OneOf[T comparable](allowed ...T) *Rule[T] {
	return newRule("Must be one of {{ param|join:\", \" }}", allowed, func(v T) bool {
		for _, candidate := range allowed {
			if v == candidate {
				return true
			}
		}
		return false
	})
}
