// Package bean exposes the exported fields of a struct as value and list
// models addressed by dotted property paths.
//
// Property names are taken from the `bean` struct tag or derived from the
// field name in lower camel case. A model is mutable only while every parent
// along its path is non-nil; replacing a parent refreshes the models below it
// with exactly one change each.
package bean
