// Package expr compiles the small boolean expression language used for
// declarative conditions (`subscribe == true && email != ""`). Programs are
// compiled once and evaluated against a Lookup every time a referenced value
// changes.
package expr
