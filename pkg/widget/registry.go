package widget

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-pectin/pkg/form"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Built-in widget kinds exposed by the registry.
const (
	KindFormatted = "formatted"
	KindToggle    = "toggle"
	KindList      = "list"
	KindText      = "text"
)

// Matcher decides whether a widget kind should present the supplied field.
type Matcher func(field form.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects a widget kind for form fields using registered matchers.
// Higher priority wins; ties fall back to registration order. An empty
// registry never resolves a kind.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher with the provided kind name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget kind for field.
func (r *Registry) Resolve(field form.Field) (string, bool) {
	if r == nil || field == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Plan maps every field name of f to its widget kind. Fields no matcher
// accepts are left out.
func (r *Registry) Plan(f *form.Form) map[string]string {
	out := make(map[string]string)
	if f == nil {
		return out
	}
	for _, field := range f.Fields() {
		if kind, ok := r.Resolve(field); ok {
			out[field.Name()] = kind
		}
	}
	return out
}

type textual interface {
	Text() value.Mutable[string]
}

func (r *Registry) registerBuiltins() {
	r.Register(KindFormatted, 90, func(field form.Field) bool {
		_, ok := field.(textual)
		return ok
	})

	r.Register(KindToggle, 80, func(field form.Field) bool {
		_, ok := field.(value.Mutable[bool])
		return ok
	})

	r.Register(KindList, 70, func(field form.Field) bool {
		v := field.AnyValue()
		if v == nil {
			return false
		}
		return reflect.TypeOf(v).Kind() == reflect.Slice
	})

	r.Register(KindText, 10, func(field form.Field) bool {
		_, ok := field.(value.Mutable[string])
		return ok
	})
}
