package event

// Registration is returned by every subscription. Remove detaches the handler
// and is safe to call more than once.
type Registration interface {
	Remove()
}

// RegistrationFunc adapts a function into a Registration. Use Once when the
// function must not run twice.
type RegistrationFunc func()

// Remove calls the underlying function.
func (fn RegistrationFunc) Remove() {
	if fn != nil {
		fn()
	}
}

// Once wraps fn so repeated Remove calls only run it the first time.
func Once(fn func()) Registration {
	done := false
	return RegistrationFunc(func() {
		if done || fn == nil {
			return
		}
		done = true
		fn()
	})
}

type entry[E any] struct {
	handler func(E)
	removed bool
}

// Registry delivers events synchronously to its handlers in registration
// order. The zero value is ready to use. Registries are not safe for
// concurrent use; all dispatch happens on the caller's stack.
type Registry[E any] struct {
	entries []*entry[E]
}

// Add subscribes handler. Nil handlers are ignored and return a no-op
// registration.
func (r *Registry[E]) Add(handler func(E)) Registration {
	if r == nil || handler == nil {
		return Once(nil)
	}
	e := &entry[E]{handler: handler}
	r.entries = append(r.entries, e)
	return Once(func() { r.remove(e) })
}

// Fire delivers event to every handler registered before the call. Handlers
// removed during the fan-out are skipped; handlers added during the fan-out
// only see later events.
func (r *Registry[E]) Fire(event E) {
	if r == nil || len(r.entries) == 0 {
		return
	}
	snapshot := append([]*entry[E](nil), r.entries...)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.handler(event)
	}
}

// Len reports the number of live handlers.
func (r *Registry[E]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

func (r *Registry[E]) remove(target *entry[E]) {
	target.removed = true
	for idx, e := range r.entries {
		if e == target {
			r.entries = append(r.entries[:idx:idx], r.entries[idx+1:]...)
			return
		}
	}
}
