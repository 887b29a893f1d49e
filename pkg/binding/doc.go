// Package binding links value and list models to display targets.
//
// A binding pushes model changes onto its target and, for editable targets,
// writes user edits back into the model inside a Guard so the edit is not
// echoed back to the widget that produced it. A Binder owns bindings and
// disposes them as a group.
package binding
