package bean

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// property describes one resolved path segment.
type property struct {
	name  string
	index []int
	typ   reflect.Type
}

// structOf unwraps pointers down to a struct type.
func structOf(t reflect.Type) (reflect.Type, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

// lookupProperty resolves name on the struct type owner. Names are the bean
// tag, the lower camel field name or the Go field name.
func lookupProperty(owner reflect.Type, name string) (property, []string, bool) {
	var names []string
	for i := 0; i < owner.NumField(); i++ {
		field := owner.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := strings.Split(field.Tag.Get("bean"), ",")[0]
		if tag == "-" {
			continue
		}
		canonical := tag
		if canonical == "" {
			canonical = lowerCamel(field.Name)
		}
		names = append(names, canonical)
		if name == canonical || (tag == "" && name == field.Name) {
			return property{name: canonical, index: field.Index, typ: field.Type}, nil, true
		}
	}
	return property{}, names, false
}

func suggest(name string, candidates []string) string {
	best, bestDist := "", 0
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(candidate))
		if best == "" || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	if best == "" || bestDist > 3 || bestDist >= len(name) {
		return ""
	}
	return best
}

// lowerCamel turns "NestedBean" into "nestedBean" and "URLPath" into
// "urlPath".
func lowerCamel(name string) string {
	runes := []rune(name)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	switch {
	case upper == 0:
		return name
	case upper == len(runes):
		return strings.ToLower(name)
	case upper > 1:
		upper--
	}
	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
