package validation

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Validation signals.
var (
	// FieldValidated is emitted after a field or list validator runs.
	FieldValidated = capitan.NewSignal(
		"pectin.validation.field.validated",
		"Field validation completed",
	)

	// ValidationCleared is emitted when a validator result is reset.
	ValidationCleared = capitan.NewSignal(
		"pectin.validation.field.cleared",
		"Field validation result cleared",
	)
)

// Field keys for validation events.
var (
	// KeyField is the validated field name, empty for anonymous models.
	KeyField = capitan.NewStringKey("field")

	// KeyOutcome is "valid" or "invalid".
	KeyOutcome = capitan.NewStringKey("outcome")

	// KeySeverity is the highest message severity, empty when there are none.
	KeySeverity = capitan.NewStringKey("severity")

	// KeyMessages is the number of messages in the result.
	KeyMessages = capitan.NewIntKey("messages")
)

func emitValidated(name string, result Result) {
	outcome := "valid"
	if !result.Valid() {
		outcome = "invalid"
	}
	severity := ""
	if max, ok := result.MaxSeverity(); ok {
		severity = max.String()
	}
	capitan.Emit(context.Background(), FieldValidated,
		KeyField.Field(name),
		KeyOutcome.Field(outcome),
		KeySeverity.Field(severity),
		KeyMessages.Field(len(result.messages)),
	)
}

func emitCleared(name string) {
	capitan.Emit(context.Background(), ValidationCleared, KeyField.Field(name))
}
