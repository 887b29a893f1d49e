package binding

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-pectin/pkg/event"
)

// Binding is a live link between a model and a display target.
type Binding interface {
	// ID identifies the binding in signals.
	ID() string
	// UpdateTarget pushes the current model state onto the target.
	UpdateTarget()
	// Dispose releases every subscription. Calling it twice is a no-op.
	Dispose()
}

// Guard suppresses a binding's own model listener while the binding writes
// to the model. Regions nest and always end, even when fn panics.
type Guard struct {
	depth int
}

// Run executes fn inside a suppressed region.
func (g *Guard) Run(fn func()) {
	g.depth++
	defer func() { g.depth-- }()
	fn()
}

// Active reports whether a suppressed region is running.
func (g *Guard) Active() bool {
	return g.depth > 0
}

// Base carries the state shared by every binding: an id, the subscriptions it
// owns and its guard. Concrete bindings hold a Base and expose its methods.
type Base struct {
	id       string
	kind     string
	guard    Guard
	regs     event.Registrations
	disposed bool
}

// NewBase returns a Base for a binding of the given kind.
func NewBase(kind string) *Base {
	return &Base{id: uuid.NewString(), kind: kind}
}

// ID returns the binding id.
func (b *Base) ID() string { return b.id }

// Kind returns the binding kind, e.g. "value" or "list".
func (b *Base) Kind() string { return b.kind }

// Track records a subscription released by Dispose.
func (b *Base) Track(reg event.Registration) {
	b.regs.Add(reg)
}

// Guard returns the binding's guard.
func (b *Base) Guard() *Guard { return &b.guard }

// Suppressed reports whether model events must be ignored.
func (b *Base) Suppressed() bool {
	return b.guard.Active()
}

// Disposed reports whether Dispose has run.
func (b *Base) Disposed() bool { return b.disposed }

// Dispose releases every tracked subscription once.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.regs.RemoveAll()
	emitDisposed(b)
}
