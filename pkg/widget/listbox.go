package widget

import (
	"slices"

	"github.com/goliatone/go-pectin/pkg/binding"
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/validationbind"
)

// Rows holds one validation marker per list row.
type Rows struct {
	results map[int]validation.Result
}

// SetRowResult marks row index with result.
func (r *Rows) SetRowResult(index int, result validation.Result) {
	if r.results == nil {
		r.results = make(map[int]validation.Result)
	}
	r.results[index] = result
}

// ClearRow removes the marker on row index.
func (r *Rows) ClearRow(index int) {
	delete(r.results, index)
}

// RowResult returns the marker on row index.
func (r *Rows) RowResult(index int) (validation.Result, bool) {
	result, ok := r.results[index]
	return result, ok
}

// Marked lists the rows carrying a marker, ascending.
func (r *Rows) Marked() []int {
	if len(r.results) == 0 {
		return nil
	}
	out := make([]int, 0, len(r.results))
	for idx := range r.results {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out
}

// ListBox is an editable list widget with per-row validation markers.
type ListBox[T any] struct {
	Chrome
	Rows
	values   []T
	handlers event.Registry[[]T]
}

// NewListBox returns a list box showing values.
func NewListBox[T any](values ...T) *ListBox[T] {
	return &ListBox[T]{values: slices.Clone(values)}
}

// Values returns a copy of the displayed values.
func (w *ListBox[T]) Values() []T { return slices.Clone(w.values) }

// SetValues updates the display without notifying edit handlers.
func (w *ListBox[T]) SetValues(values []T) { w.values = slices.Clone(values) }

// Edit replaces the contents as the user would.
func (w *ListBox[T]) Edit(values []T) bool {
	if !w.interactive() {
		return false
	}
	w.values = slices.Clone(values)
	w.handlers.Fire(slices.Clone(w.values))
	return true
}

// Append adds v as the user would.
func (w *ListBox[T]) Append(v T) bool {
	return w.Edit(append(slices.Clone(w.values), v))
}

// RemoveAt deletes row index as the user would. Out of range indexes are
// ignored.
func (w *ListBox[T]) RemoveAt(index int) bool {
	if index < 0 || index >= len(w.values) {
		return false
	}
	return w.Edit(slices.Delete(slices.Clone(w.values), index, index+1))
}

// OnValuesChange subscribes handler to user edits.
func (w *ListBox[T]) OnValuesChange(handler func([]T)) event.Registration {
	return w.handlers.Add(handler)
}

var (
	_ binding.ListTarget[string]    = (*ListBox[string])(nil)
	_ validationbind.IndexedDisplay = (*ListBox[string])(nil)
	_ validationbind.StyleTarget    = (*ListBox[string])(nil)
)
