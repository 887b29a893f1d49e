// Package condition provides observable booleans used to gate validation
// rules and widget state. Delegating conditions start unbound (reporting true)
// and can be bound to a real condition exactly once; Computed conditions
// combine other models and only notify when their result flips.
package condition
