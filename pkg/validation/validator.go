package validation

import "fmt"

// Validator inspects a value and records messages on the collector. A
// validator that records nothing accepts the value.
type Validator[T any] interface {
	Validate(value T, c *Collector)
}

// Func adapts a function into a Validator.
type Func[T any] func(value T, c *Collector)

// Validate calls fn.
func (fn Func[T]) Validate(value T, c *Collector) {
	if fn != nil {
		fn(value, c)
	}
}

// Erase lets an untyped validator run against a typed field.
func Erase[T any](v Validator[any]) Validator[T] {
	return Func[T](func(value T, c *Collector) {
		v.Validate(value, c)
	})
}

// Collector accumulates the messages produced by validators during one run.
type Collector struct {
	messages []Message
}

// Add records msg.
func (c *Collector) Add(msg Message) {
	c.messages = append(c.messages, msg)
}

// Error records an error message.
func (c *Collector) Error(text string) {
	c.Add(Message{Severity: Error, Text: text})
}

// Errorf records a formatted error message.
func (c *Collector) Errorf(format string, args ...any) {
	c.Error(fmt.Sprintf(format, args...))
}

// Warning records a warning message.
func (c *Collector) Warning(text string) {
	c.Add(Message{Severity: Warning, Text: text})
}

// Info records an informational message.
func (c *Collector) Info(text string) {
	c.Add(Message{Severity: Info, Text: text})
}

// Result returns the normalised messages recorded so far.
func (c *Collector) Result() Result {
	return NewResult(c.messages...)
}
