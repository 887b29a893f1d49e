package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Lookup resolves an identifier to its current value. The second result is
// false when the identifier is unknown.
type Lookup func(name string) (any, bool)

// Program is a compiled boolean expression.
//
// Supported syntax:
//   - truthiness: `enabled`, `!enabled`
//   - comparisons against literals: `kind == "pro"`, `count != 3`,
//     `age >= 18`, `nickname == null`
//   - composition with `&&`, `||` and parentheses
//
// Bare words on the right-hand side of a comparison are read as strings.
type Program struct {
	source string
	root   node
	idents []string
}

// Compile parses rule. An empty rule compiles to a program that is always
// true.
func Compile(rule string) (*Program, error) {
	trimmed := strings.TrimSpace(rule)
	p := &Program{source: trimmed}
	if trimmed == "" {
		p.root = constNode(true)
		return p, nil
	}
	tokens, err := lex(trimmed)
	if err != nil {
		return nil, err
	}
	ps := &parser{tokens: tokens, seen: make(map[string]struct{})}
	root, err := ps.parseOr()
	if err != nil {
		return nil, err
	}
	if !ps.done() {
		return nil, fmt.Errorf("expr: unexpected token %q at %d", ps.peek().text, ps.peek().pos)
	}
	p.root = root
	p.idents = ps.idents
	return p, nil
}

// MustCompile is Compile that panics on error, for package level rules.
func MustCompile(rule string) *Program {
	p, err := Compile(rule)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the trimmed source rule.
func (p *Program) String() string { return p.source }

// Identifiers lists the identifiers referenced by the program in first-use
// order.
func (p *Program) Identifiers() []string {
	return append([]string(nil), p.idents...)
}

// Eval evaluates the program. Identifiers the lookup does not know read as
// null.
func (p *Program) Eval(lookup Lookup) (bool, error) {
	if lookup == nil {
		lookup = func(string) (any, bool) { return nil, false }
	}
	return p.root.eval(lookup)
}

type parser struct {
	tokens []token
	pos    int
	idents []string
	seen   map[string]struct{}
}

func (ps *parser) done() bool { return ps.pos >= len(ps.tokens) }

func (ps *parser) peek() token {
	if ps.done() {
		return token{}
	}
	return ps.tokens[ps.pos]
}

func (ps *parser) accept(kinds ...tokenKind) (token, bool) {
	if ps.done() {
		return token{}, false
	}
	tok := ps.tokens[ps.pos]
	for _, kind := range kinds {
		if tok.kind == kind {
			ps.pos++
			return tok, true
		}
	}
	return token{}, false
}

func (ps *parser) parseOr() (node, error) {
	left, err := ps.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := ps.accept(tokOr); !ok {
			return left, nil
		}
		right, err := ps.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{left, right}
	}
}

func (ps *parser) parseAnd() (node, error) {
	left, err := ps.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := ps.accept(tokAnd); !ok {
			return left, nil
		}
		right, err := ps.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{left, right}
	}
}

func (ps *parser) parseUnary() (node, error) {
	if _, ok := ps.accept(tokNot); ok {
		inner, err := ps.parseUnary()
		if err != nil {
			return nil, err
		}
		return notNode{inner}, nil
	}
	return ps.parsePrimary()
}

func (ps *parser) parsePrimary() (node, error) {
	if _, ok := ps.accept(tokLParen); ok {
		inner, err := ps.parseOr()
		if err != nil {
			return nil, err
		}
		if _, ok := ps.accept(tokRParen); !ok {
			return nil, errors.New("expr: missing closing ')'")
		}
		return inner, nil
	}
	if tok, ok := ps.accept(tokBool); ok {
		return constNode(tok.text == "true"), nil
	}

	ident, ok := ps.accept(tokIdent)
	if !ok {
		if ps.done() {
			return nil, errors.New("expr: unexpected end of expression")
		}
		return nil, fmt.Errorf("expr: expected identifier, got %q at %d", ps.peek().text, ps.peek().pos)
	}
	ps.remember(ident.text)

	op, ok := ps.accept(tokEq, tokNeq, tokLt, tokLte, tokGt, tokGte)
	if !ok {
		return truthyNode{name: ident.text}, nil
	}
	lit, ok := ps.accept(tokString, tokNumber, tokBool, tokNull, tokIdent)
	if !ok {
		return nil, fmt.Errorf("expr: expected literal after %q", op.text)
	}
	cmp := compareNode{name: ident.text, op: op.kind, lit: lit}
	if err := cmp.check(); err != nil {
		return nil, err
	}
	return cmp, nil
}

func (ps *parser) remember(name string) {
	if _, ok := ps.seen[name]; ok {
		return
	}
	ps.seen[name] = struct{}{}
	ps.idents = append(ps.idents, name)
}

type node interface {
	eval(lookup Lookup) (bool, error)
}

type constNode bool

func (n constNode) eval(Lookup) (bool, error) { return bool(n), nil }

type orNode struct{ left, right node }

func (n orNode) eval(lookup Lookup) (bool, error) {
	ok, err := n.left.eval(lookup)
	if err != nil || ok {
		return ok, err
	}
	return n.right.eval(lookup)
}

type andNode struct{ left, right node }

func (n andNode) eval(lookup Lookup) (bool, error) {
	ok, err := n.left.eval(lookup)
	if err != nil || !ok {
		return false, err
	}
	return n.right.eval(lookup)
}

type notNode struct{ inner node }

func (n notNode) eval(lookup Lookup) (bool, error) {
	ok, err := n.inner.eval(lookup)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

type truthyNode struct{ name string }

func (n truthyNode) eval(lookup Lookup) (bool, error) {
	v, _ := lookup(n.name)
	return truthy(v), nil
}

type compareNode struct {
	name string
	op   tokenKind
	lit  token
}

func (n compareNode) check() error {
	ordered := n.op == tokLt || n.op == tokLte || n.op == tokGt || n.op == tokGte
	if ordered && n.lit.kind != tokNumber {
		return fmt.Errorf("expr: operator on %q needs a number literal, got %q", n.name, n.lit.text)
	}
	if n.lit.kind == tokNumber {
		if _, err := strconv.ParseFloat(n.lit.text, 64); err != nil {
			return fmt.Errorf("expr: invalid number literal %q", n.lit.text)
		}
	}
	return nil
}

func (n compareNode) eval(lookup Lookup) (bool, error) {
	v, _ := lookup(n.name)
	switch n.lit.kind {
	case tokNull:
		return n.equality(v == nil), nil
	case tokBool:
		got, _ := toBool(v)
		return n.equality(got == (n.lit.text == "true")), nil
	case tokNumber:
		want, _ := strconv.ParseFloat(n.lit.text, 64)
		got, ok := toNumber(v)
		if !ok {
			if n.op == tokNeq {
				return true, nil
			}
			return false, nil
		}
		return n.order(got, want), nil
	default:
		return n.equality(toString(v) == n.lit.text), nil
	}
}

func (n compareNode) equality(equal bool) bool {
	if n.op == tokNeq {
		return !equal
	}
	return equal
}

func (n compareNode) order(got, want float64) bool {
	switch n.op {
	case tokEq:
		return got == want
	case tokNeq:
		return got != want
	case tokLt:
		return got < want
	case tokLte:
		return got <= want
	case tokGt:
		return got > want
	default:
		return got >= want
	}
}
