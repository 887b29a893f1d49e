package validationbind

import "github.com/goliatone/go-pectin/pkg/validation"

// Display shows a validation result.
type Display interface {
	SetValidationResult(result validation.Result)
}

// IndexedDisplay shows an overall result plus one result per row.
type IndexedDisplay interface {
	Display
	SetRowResult(index int, result validation.Result)
	ClearRow(index int)
}

// StyleTarget can have named styles added and removed.
type StyleTarget interface {
	AddStyle(name string)
	RemoveStyle(name string)
}
