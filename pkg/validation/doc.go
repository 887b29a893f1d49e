// Package validation runs rules against value and list models and publishes
// the outcome as Result values.
//
// Validation failures are data, not errors: a FieldValidator aggregates the
// messages of its enabled rules and notifies subscribers after every run. A
// Manager keeps one validator per field and exposes form wide Valid and Dirty
// models.
package validation
