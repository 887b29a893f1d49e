package bean

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/value"
)

// Option configures a Provider.
type Option func(*settings)

type settings struct {
	autoCommit bool
}

// WithAutoCommit writes every model change straight into the bean instead
// of buffering it until Commit.
func WithAutoCommit() Option {
	return func(s *settings) {
		s.autoCommit = true
	}
}

// Provider exposes the properties of a bean as value and list models.
//
// In the default buffered mode models hold their own values: Commit writes
// them into the bean and Revert restores the last checkpoint. Nested paths
// read through the model of their parent, so replacing a parent refreshes
// every model below it.
type Provider[B any] struct {
	bean       *B
	typ        reflect.Type
	autoCommit bool
	nodes      map[string]*node
	order      []*node
	models     map[string]any
	dirty      *value.Holder[bool]
}

// NewProvider returns a provider for beans of type B, which must be a struct.
// Until SetBean is called every model reads zero values and is immutable.
func NewProvider[B any](options ...Option) *Provider[B] {
	typ := reflect.TypeFor[B]()
	if typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("bean: provider needs a struct type, got %s", typ))
	}
	var cfg settings
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Provider[B]{
		typ:        typ,
		autoCommit: cfg.autoCommit,
		nodes:      make(map[string]*node),
		models:     make(map[string]any),
		dirty:      value.NewHolder(false),
	}
}

// AutoCommit reports whether changes are written through.
func (p *Provider[B]) AutoCommit() bool { return p.autoCommit }

// Bean returns the current bean.
func (p *Provider[B]) Bean() *B { return p.bean }

// SetBean replaces the bean and reloads every model from it. The loaded values
// become the new checkpoint.
func (p *Provider[B]) SetBean(b *B) {
	p.bean = b
	for _, n := range p.order {
		if n.parent == nil {
			n.reload()
		}
	}
	p.refreshDirty()
	emitLoaded(p.typ, len(p.order))
}

// Commit writes every buffered value into the bean. It is a no-op in
// auto-commit mode.
func (p *Provider[B]) Commit() {
	for _, n := range p.order {
		n.commit()
	}
	p.refreshDirty()
	emitCommitted(p.typ, len(p.order))
}

// Revert restores every model to its checkpoint.
func (p *Provider[B]) Revert() {
	for _, n := range p.order {
		n.revert()
	}
	p.refreshDirty()
	emitReverted(p.typ, len(p.order))
}

// Checkpoint makes the current model values the new baseline without
// writing them.
func (p *Provider[B]) Checkpoint() {
	for _, n := range p.order {
		n.checkpoint = n.current
	}
	p.refreshDirty()
}

// Dirty is true while any model differs from its checkpoint.
func (p *Provider[B]) Dirty() value.Model[bool] { return value.ReadOnly[bool](p.dirty) }

func (p *Provider[B]) refreshDirty() {
	dirty := false
	for _, n := range p.order {
		if !reflect.DeepEqual(n.current, n.checkpoint) {
			dirty = true
			break
		}
	}
	p.dirty.SetValue(dirty)
}

func (p *Provider[B]) root() reflect.Value {
	if p.bean == nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(p.bean)
}

// node resolves path, creating the nodes of every parent segment first.
func (p *Provider[B]) node(path string) (*node, error) {
	if n, ok := p.nodes[path]; ok {
		return n, nil
	}
	segments := strings.Split(path, ".")
	var (
		parent *node
		owner  = p.typ
		prefix string
	)
	for i, segment := range segments {
		if prefix == "" {
			prefix = segment
		} else {
			prefix += "." + segment
		}
		if existing, ok := p.nodes[prefix]; ok {
			parent = existing
			if next, ok := structOf(existing.prop.typ); ok {
				owner = next
			} else if i < len(segments)-1 {
				return nil, &UnknownPropertyError{Bean: owner.String(), Path: path}
			}
			continue
		}
		prop, candidates, ok := lookupProperty(owner, segment)
		if !ok {
			return nil, &UnknownPropertyError{Bean: owner.String(), Path: path, Suggestion: suggest(segment, candidates)}
		}
		n := p.newNode(prefix, parent, prop)
		parent = n
		if next, ok := structOf(prop.typ); ok {
			owner = next
		} else if i < len(segments)-1 {
			return nil, &UnknownPropertyError{Bean: owner.String(), Path: path}
		}
	}
	return parent, nil
}

func (p *Provider[B]) newNode(path string, parent *node, prop property) *node {
	n := &node{
		path:    path,
		parent:  parent,
		prop:    prop,
		root:    p.root,
		changed: p.changed,
		mutable: value.NewHolder(false),
	}
	n.current, _ = n.read()
	n.checkpoint = n.current
	n.mutable.SetValue(n.resolved())
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	p.nodes[path] = n
	p.order = append(p.order, n)
	return n
}

func (p *Provider[B]) changed(n *node) {
	if p.autoCommit {
		n.commit()
	}
	p.refreshDirty()
}

// node is the state behind one property path.
type node struct {
	path       string
	parent     *node
	prop       property
	children   []*node
	root       func() reflect.Value
	changed    func(*node)
	current    any
	checkpoint any
	mutable    *value.Holder[bool]
	handlers   event.Registry[value.Change[any]]
}

// container returns the struct holding the property. The second result is
// false when a parent along the path is nil.
func (n *node) container() (reflect.Value, bool) {
	var v reflect.Value
	if n.parent == nil {
		v = n.root()
	} else if n.parent.current != nil {
		v = reflect.ValueOf(n.parent.current)
	}
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return v, true
}

// resolved reports whether the property can be written. Properties below a
// struct held by value are read-only.
func (n *node) resolved() bool {
	c, ok := n.container()
	return ok && c.CanAddr()
}

func (n *node) zero() any {
	return reflect.Zero(n.prop.typ).Interface()
}

func (n *node) read() (any, bool) {
	c, ok := n.container()
	if !ok {
		return n.zero(), false
	}
	return c.FieldByIndex(n.prop.index).Interface(), true
}

func (n *node) write(v any) {
	c, ok := n.container()
	if !ok || !c.CanAddr() {
		return
	}
	field := c.FieldByIndex(n.prop.index)
	if v == nil {
		field.Set(reflect.Zero(n.prop.typ))
		return
	}
	field.Set(reflect.ValueOf(v))
}

// set stores v as the buffered value. Writes to unresolved paths are ignored.
func (n *node) set(v any) bool {
	if !n.mutable.Value() {
		return false
	}
	if reflect.DeepEqual(n.current, v) {
		return true
	}
	old := n.current
	n.current = v
	n.handlers.Fire(value.Change[any]{Old: old, New: v})
	for _, child := range n.children {
		child.reload()
	}
	n.changed(n)
	return true
}

// reload re-reads the property from its container and resets the checkpoint.
func (n *node) reload() {
	next, _ := n.read()
	n.mutable.SetValue(n.resolved())
	n.checkpoint = next
	if !reflect.DeepEqual(n.current, next) {
		old := n.current
		n.current = next
		n.handlers.Fire(value.Change[any]{Old: old, New: next})
	}
	for _, child := range n.children {
		child.reload()
	}
}

func (n *node) commit() {
	if !n.mutable.Value() {
		return
	}
	if reflect.DeepEqual(n.current, n.checkpoint) {
		if stored, ok := n.read(); ok && reflect.DeepEqual(stored, n.current) {
			return
		}
	}
	n.write(n.current)
	n.checkpoint = n.current
}

func (n *node) revert() {
	if reflect.DeepEqual(n.current, n.checkpoint) {
		return
	}
	old := n.current
	n.current = n.checkpoint
	n.handlers.Fire(value.Change[any]{Old: old, New: n.current})
	for _, child := range n.children {
		child.reload()
	}
}
