package ruleset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/form"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/validation/rules"
)

var (
	// ErrUnknownRule is returned for rule names the rule set does not know.
	ErrUnknownRule = errors.New("ruleset: unknown rule")
	// ErrUnknownField is returned when a document names a field the form lacks.
	ErrUnknownField = errors.New("ruleset: unknown field")
	// ErrInvalidParam is returned when a rule parameter has the wrong shape.
	ErrInvalidParam = errors.New("ruleset: invalid parameter")
)

// Document declares validation rules per field name.
//
//	fields:
//	  email:
//	    - rule: required
//	    - tag: email
//	      severity: warning
//	  seats:
//	    - rule: range
//	      param: [1, 50]
//	      when: plan == "team"
type Document struct {
	Fields map[string][]Rule `yaml:"fields"`
}

// Rule is a single declared rule. Either Rule or Tag is set.
type Rule struct {
	Rule     string `yaml:"rule,omitempty"`
	Tag      string `yaml:"tag,omitempty"`
	Param    any    `yaml:"param,omitempty"`
	Message  string `yaml:"message,omitempty"`
	Severity string `yaml:"severity,omitempty"`
	When     string `yaml:"when,omitempty"`
	Unless   string `yaml:"unless,omitempty"`
	Each     bool   `yaml:"each,omitempty"`
}

// Load reads a document from path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("ruleset: decode: %w", err)
	}
	return &doc, nil
}

// Parse reads a document from raw YAML.
func Parse(raw []byte) (*Document, error) {
	return Decode(strings.NewReader(string(raw)))
}

// Apply attaches every rule of doc to the matching field of f through m.
// Fields are processed in form order, so validators register in the same
// order as the fields.
func (doc *Document) Apply(m *validation.Manager, f *form.Form) error {
	if doc == nil {
		return nil
	}
	for name := range doc.Fields {
		if _, ok := f.Field(name); !ok {
			return fmt.Errorf("%w %q", ErrUnknownField, name)
		}
	}
	for _, field := range f.Fields() {
		for idx, rule := range doc.Fields[field.Name()] {
			if err := apply(m, f, field, rule); err != nil {
				return fmt.Errorf("ruleset: %s[%d]: %w", field.Name(), idx, err)
			}
		}
	}
	return nil
}

// Apply is a shortcut for Parse followed by Document.Apply.
func Apply(raw []byte, m *validation.Manager, f *form.Form) error {
	doc, err := Parse(raw)
	if err != nil {
		return err
	}
	return doc.Apply(m, f)
}

func apply(m *validation.Manager, f *form.Form, field form.Field, rule Rule) error {
	v, err := rule.Validator()
	if err != nil {
		return err
	}
	cond, err := rule.condition(f)
	if err != nil {
		return err
	}
	if rule.Each {
		elements, ok := field.(form.ElementRuleApplier)
		if !ok {
			return fmt.Errorf("%w: each needs a list field", ErrInvalidParam)
		}
		return elements.ApplyElementRule(m, v, cond)
	}
	return field.ApplyRule(m, v, cond)
}

func (r Rule) condition(f *form.Form) (condition.Condition, error) {
	switch {
	case r.When != "" && r.Unless != "":
		return nil, fmt.Errorf("%w: when and unless are exclusive", ErrInvalidParam)
	case r.When != "":
		return f.When(r.When)
	case r.Unless != "":
		cond, err := f.When(r.Unless)
		if err != nil {
			return nil, err
		}
		return condition.Not(cond), nil
	default:
		return nil, nil
	}
}

// Validator builds the untyped validator described by r.
func (r Rule) Validator() (validation.Validator[any], error) {
	severity := validation.Error
	if r.Severity != "" {
		severity = validation.ParseSeverity(r.Severity)
	}

	if r.Rule == "" {
		if strings.TrimSpace(r.Tag) == "" {
			return nil, fmt.Errorf("%w: rule or tag is required", ErrUnknownRule)
		}
		return override(rules.Tag(r.Tag), r.Message, severity), nil
	}

	switch strings.ToLower(strings.TrimSpace(r.Rule)) {
	case "required":
		rule := rules.New[any]("This field is required", func(v any) bool { return !isZero(v) })
		return adapt(rule, r, severity, identity), nil
	case "notblank":
		return adapt(rules.NotBlank(), r, severity, asString), nil
	case "minlength", "maxlength":
		n, err := intParam(r.Param)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(r.Rule, "minlength") {
			return adapt(rules.MinLength(n), r, severity, asString), nil
		}
		return adapt(rules.MaxLength(n), r, severity, asString), nil
	case "pattern":
		expr, ok := r.Param.(string)
		if !ok {
			return nil, fmt.Errorf("%w: pattern needs a string", ErrInvalidParam)
		}
		if _, err := regexp.Compile(expr); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
		}
		return adapt(rules.Pattern(expr), r, severity, asString), nil
	case "range":
		bounds, err := floatPair(r.Param)
		if err != nil {
			return nil, err
		}
		rule := rules.Range(bounds[0], bounds[1]).WithMessage(fmt.Sprintf("Must be between %s and %s",
			strconv.FormatFloat(bounds[0], 'f', -1, 64), strconv.FormatFloat(bounds[1], 'f', -1, 64)))
		return adapt(rule, r, severity, asFloat), nil
	case "oneof":
		allowed, err := stringList(r.Param)
		if err != nil {
			return nil, err
		}
		return adapt(rules.OneOf(allowed...), r, severity, asString), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownRule, r.Rule)
	}
}

func adapt[T any](rule *rules.Rule[T], def Rule, severity validation.Severity, conv func(any) (T, bool)) validation.Validator[any] {
	if def.Message != "" {
		rule.WithMessage(def.Message)
	}
	rule.As(severity)
	return validation.Func[any](func(v any, c *validation.Collector) {
		typed, ok := conv(v)
		if !ok {
			c.Add(validation.Message{Severity: severity, Text: fmt.Sprintf("Unsupported value %T", v)})
			return
		}
		rule.Validate(typed, c)
	})
}

func override(v validation.Validator[any], message string, severity validation.Severity) validation.Validator[any] {
	return validation.Func[any](func(value any, c *validation.Collector) {
		var inner validation.Collector
		v.Validate(value, &inner)
		for _, msg := range inner.Result().Messages() {
			if message != "" {
				msg.Text = message
			}
			msg.Severity = severity
			c.Add(msg)
		}
	})
}

func identity(v any) (any, bool) { return v, true }

func asString(v any) (string, bool) {
	switch typed := v.(type) {
	case nil:
		return "", true
	case string:
		return typed, true
	case fmt.Stringer:
		return typed.String(), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", true
		}
		return asString(rv.Elem().Interface())
	}
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}

func intParam(param any) (int, error) {
	switch typed := param.(type) {
	case int:
		return typed, nil
	case float64:
		return int(typed), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(typed))
		if err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: expected an integer, got %v", ErrInvalidParam, param)
}

func floatPair(param any) ([2]float64, error) {
	items, ok := param.([]any)
	if !ok || len(items) != 2 {
		return [2]float64{}, fmt.Errorf("%w: expected [min, max], got %v", ErrInvalidParam, param)
	}
	var out [2]float64
	for idx, item := range items {
		f, ok := asFloat(item)
		if !ok {
			return [2]float64{}, fmt.Errorf("%w: %v is not a number", ErrInvalidParam, item)
		}
		out[idx] = f
	}
	return out, nil
}

func stringList(param any) ([]string, error) {
	items, ok := param.([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("%w: expected a list, got %v", ErrInvalidParam, param)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprint(item))
	}
	return out, nil
}
