package testsupport

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Recorder collects the events delivered to a handler in order.
type Recorder[T any] struct {
	events []T
}

// Record appends event. Pass it directly as a handler.
func (r *Recorder[T]) Record(event T) {
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *Recorder[T]) Events() []T {
	return append([]T(nil), r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder[T]) Len() int { return len(r.events) }

// Last returns the most recent event, or the zero value when none arrived.
func (r *Recorder[T]) Last() T {
	if len(r.events) == 0 {
		var zero T
		return zero
	}
	return r.events[len(r.events)-1]
}

// Reset forgets every recorded event.
func (r *Recorder[T]) Reset() { r.events = nil }

// RecordChanges subscribes a recorder to model changes.
func RecordChanges[T any](model value.Model[T]) (*Recorder[value.Change[T]], event.Registration) {
	rec := &Recorder[value.Change[T]]{}
	return rec, model.OnChange(rec.Record)
}

// RecordListChanges subscribes a recorder to structural list changes.
func RecordListChanges[T any](model list.Model[T]) (*Recorder[list.Change[T]], event.Registration) {
	rec := &Recorder[list.Change[T]]{}
	return rec, model.OnListChange(rec.Record)
}

// NewValues maps changes to their new values.
func NewValues[T any](changes []value.Change[T]) []T {
	out := make([]T, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.New)
	}
	return out
}

// AssertEqual fails the test with a (-want +got) diff when the values differ.
func AssertEqual(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
