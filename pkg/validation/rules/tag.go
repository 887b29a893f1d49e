package rules

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-pectin/pkg/validation"
)

var (
	tagValidator     *validator.Validate
	tagValidatorOnce sync.Once
)

func tags() *validator.Validate {
	tagValidatorOnce.Do(func() {
		tagValidator = validator.New()
	})
	return tagValidator
}

// Tag validates a value against a go-playground/validator tag such as
// "required,email" or "gte=18". Each failing constraint yields one message;
// messages overrides the default text per constraint name.
func Tag(tag string, messages ...map[string]string) validation.Validator[any] {
	overrides := map[string]string{}
	for _, m := range messages {
		for k, v := range m {
			overrides[k] = v
		}
	}
	return validation.Func[any](func(v any, c *validation.Collector) {
		err := tags().Var(v, tag)
		if err == nil {
			return
		}
		var failures validator.ValidationErrors
		if !errors.As(err, &failures) {
			c.Error(err.Error())
			return
		}
		for _, failure := range failures {
			if text, ok := overrides[failure.Tag()]; ok {
				c.Error(text)
				continue
			}
			c.Error(describe(failure.Tag(), failure.Param()))
		}
	})
}

// TagOf is Tag for typed fields.
func TagOf[T any](tag string, messages ...map[string]string) validation.Validator[T] {
	return validation.Erase[T](Tag(tag, messages...))
}

func describe(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url", "uri":
		return "Must be a valid URL"
	case "min", "gte":
		return fmt.Sprintf("Must be at least %s", param)
	case "max", "lte":
		return fmt.Sprintf("Must be at most %s", param)
	case "gt":
		return fmt.Sprintf("Must be greater than %s", param)
	case "lt":
		return fmt.Sprintf("Must be less than %s", param)
	case "len":
		return fmt.Sprintf("Must have length %s", param)
	case "oneof":
		return fmt.Sprintf("Must be one of %s", strings.Join(strings.Fields(param), ", "))
	default:
		if param != "" {
			return fmt.Sprintf("Failed %s=%s", tag, param)
		}
		return fmt.Sprintf("Failed %s", tag)
	}
}
