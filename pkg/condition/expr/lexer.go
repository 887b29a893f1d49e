package expr

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokString
	tokNumber
	tokBool
	tokNull
	tokEq
	tokNeq
	tokLt
	tokLte
	tokGt
	tokGte
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	src    string
	pos    int
	tokens []token
}

func lex(src string) ([]token, error) {
	l := &lexer{src: src}
	for {
		l.skipSpace()
		if l.pos >= len(l.src) {
			return l.tokens, nil
		}
		if err := l.next(); err != nil {
			return nil, err
		}
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) peek(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *lexer) emit(kind tokenKind, text string, width int) {
	l.tokens = append(l.tokens, token{kind: kind, text: text, pos: l.pos})
	l.pos += width
}

func (l *lexer) next() error {
	ch := l.peek(0)
	switch ch {
	case '(':
		l.emit(tokLParen, "(", 1)
	case ')':
		l.emit(tokRParen, ")", 1)
	case '!':
		if l.peek(1) == '=' {
			l.emit(tokNeq, "!=", 2)
		} else {
			l.emit(tokNot, "!", 1)
		}
	case '=':
		if l.peek(1) != '=' {
			return fmt.Errorf("expr: unexpected '=' at %d; use '=='", l.pos)
		}
		l.emit(tokEq, "==", 2)
	case '<':
		if l.peek(1) == '=' {
			l.emit(tokLte, "<=", 2)
		} else {
			l.emit(tokLt, "<", 1)
		}
	case '>':
		if l.peek(1) == '=' {
			l.emit(tokGte, ">=", 2)
		} else {
			l.emit(tokGt, ">", 1)
		}
	case '&':
		if l.peek(1) != '&' {
			return fmt.Errorf("expr: unexpected '&' at %d; use '&&'", l.pos)
		}
		l.emit(tokAnd, "&&", 2)
	case '|':
		if l.peek(1) != '|' {
			return fmt.Errorf("expr: unexpected '|' at %d; use '||'", l.pos)
		}
		l.emit(tokOr, "||", 2)
	case '"', '\'':
		return l.lexString(ch)
	default:
		l.lexWord()
	}
	return nil
}

func (l *lexer) lexString(quote byte) error {
	start := l.pos
	escaped := false
	for i := l.pos + 1; i < len(l.src); i++ {
		c := l.src[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c != quote {
			continue
		}
		raw := l.src[start : i+1]
		if quote == '\'' {
			inner := strings.ReplaceAll(raw[1:len(raw)-1], `\'`, `'`)
			raw = `"` + strings.ReplaceAll(inner, `"`, `\"`) + `"`
		}
		text, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("expr: invalid string literal at %d: %w", start, err)
		}
		l.tokens = append(l.tokens, token{kind: tokString, text: text, pos: start})
		l.pos = i + 1
		return nil
	}
	return fmt.Errorf("expr: unterminated string literal at %d", start)
}

func (l *lexer) lexWord() {
	start := l.pos
	for l.pos < len(l.src) && !strings.ContainsRune(" \t\n\r()!=<>&|\"'", rune(l.src[l.pos])) {
		l.pos++
	}
	word := l.src[start:l.pos]
	tok := token{kind: tokIdent, text: word, pos: start}
	switch strings.ToLower(word) {
	case "true", "false":
		tok.kind, tok.text = tokBool, strings.ToLower(word)
	case "null", "nil":
		tok.kind, tok.text = tokNull, "null"
	default:
		if looksNumeric(word) {
			tok.kind = tokNumber
		}
	}
	l.tokens = append(l.tokens, tok)
}

func looksNumeric(word string) bool {
	if word == "" {
		return false
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}
