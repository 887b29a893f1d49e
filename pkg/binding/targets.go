package binding

import "github.com/goliatone/go-pectin/pkg/event"

// ValueDisplay receives values pushed from a model.
type ValueDisplay[T any] interface {
	SetValue(v T)
}

// ValueTarget is an editable widget. SetValue must not notify the widget's
// own handlers; OnValueChange reports user edits only.
type ValueTarget[T any] interface {
	ValueDisplay[T]
	OnValueChange(handler func(T)) event.Registration
}

// TextDisplay receives formatted text, typically a label.
type TextDisplay interface {
	SetText(text string)
}

// ListDisplay receives list contents pushed from a model.
type ListDisplay[T any] interface {
	SetValues(values []T)
}

// ListTarget is an editable list widget.
type ListTarget[T any] interface {
	ListDisplay[T]
	OnValuesChange(handler func([]T)) event.Registration
}

// Enableable can be enabled or disabled.
type Enableable interface {
	SetEnabled(enabled bool)
}

// Visible can be shown or hidden.
type Visible interface {
	SetVisible(visible bool)
}
