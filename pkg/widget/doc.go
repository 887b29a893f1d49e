// Package widget provides headless widgets that satisfy the binding and
// validation display targets. They hold state only, which makes them the
// natural stand-ins for a real toolkit in tests and terminal front ends.
//
// Programmatic setters (SetValue, SetValues) never notify edit handlers; the
// user-facing methods (Type, Click, Edit, Append, RemoveAt) do, and are
// ignored while the widget is disabled or hidden.
package widget
