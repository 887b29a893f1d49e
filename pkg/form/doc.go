// Package form groups named field models into a form.
//
// Fields wrap any value.Mutable or list.Mutable source, so the same form can
// be backed by plain holders or by bean properties. Forms compile expression
// conditions over their fields and expose untyped rule hooks used by
// declarative rule sets.
package form
