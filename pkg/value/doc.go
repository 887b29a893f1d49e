// Package value defines the observable single-value models at the base of the
// binding graph. A Holder notifies its handlers exactly once per value-changing
// SetValue call, synchronously and in registration order.
package value
