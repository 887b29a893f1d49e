package binding

import "errors"

// ErrReadOnly is returned when a binding tries to write an immutable model.
var ErrReadOnly = errors.New("binding: model is read-only")
