package event

// Registrations collects the subscriptions owned by a single component so they
// can be released together. RemoveAll is idempotent; registrations added after
// RemoveAll are removed immediately.
type Registrations struct {
	items    []Registration
	released bool
}

// Add records reg. Nil registrations are ignored.
func (g *Registrations) Add(reg Registration) {
	if g == nil || reg == nil {
		return
	}
	if g.released {
		reg.Remove()
		return
	}
	g.items = append(g.items, reg)
}

// RemoveAll releases every recorded registration exactly once.
func (g *Registrations) RemoveAll() {
	if g == nil || g.released {
		return
	}
	g.released = true
	items := g.items
	g.items = nil
	for _, reg := range items {
		reg.Remove()
	}
}

// Len reports how many registrations are still held.
func (g *Registrations) Len() int {
	if g == nil {
		return 0
	}
	return len(g.items)
}

// Released reports whether RemoveAll has run.
func (g *Registrations) Released() bool {
	return g != nil && g.released
}
