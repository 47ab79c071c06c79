package formula

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
)

// SyntaxError reports a malformed formula and the byte offset of the problem.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("formula: %s at offset %d", e.Msg, e.Offset)
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenLParen
	tokenRParen
	tokenWord
)

type token struct {
	kind   tokenKind
	text   string // upper-cased for words
	offset int
}

func tokenize(s string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(s); {
		r := rune(s[i])
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokenLParen, text: "(", offset: i})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokenRParen, text: ")", offset: i})
			i++
		case isWordByte(s[i]):
			start := i
			for i < len(s) && isWordByte(s[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenWord, text: strings.ToUpper(s[start:i]), offset: start})
		default:
			return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	return append(tokens, token{kind: tokenEOF, offset: len(s)}), nil
}

func isWordByte(b byte) bool {
	return b == '_' || b == '-' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

// Parse parses a formula such as "(X1 AND X2) OR (X3 XOR X4)".
func Parse(s string) (Expr, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokenEOF {
		return nil, &SyntaxError{Offset: t.offset, Msg: fmt.Sprintf("unexpected %q", t.text)}
	}
	return e, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return e
}

func (p *parser) expr() (Expr, error) {
	left, err := p.operand()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind == tokenEOF || t.kind == tokenRParen {
			return left, nil
		}
		op, err := p.operator()
		if err != nil {
			return nil, err
		}
		right, err := p.operand()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

// operator reads a binary operator. Two-word names are joined here; "X AND NOT Y"
// reads as the AND NOT operator, which equals AND applied to NOT Y.
func (p *parser) operator() (nn.Function, error) {
	t := p.next()
	if t.kind != tokenWord {
		return nn.FunctionNone, &SyntaxError{Offset: t.offset, Msg: fmt.Sprintf("expected operator, found %q", t.text)}
	}
	switch t.text {
	case "NOT":
		if n := p.peek(); n.kind == tokenWord && n.text == "AND" {
			p.next()
			return nn.FunctionNotAnd, nil
		}
		return nn.FunctionNone, &SyntaxError{Offset: t.offset, Msg: "NOT between operands must be followed by AND"}
	case "AND":
		if n := p.peek(); n.kind == tokenWord && n.text == "NOT" {
			p.next()
			return nn.FunctionAndNot, nil
		}
		return nn.FunctionAnd, nil
	}
	f, err := nn.ParseFunction(t.text)
	if err != nil {
		return nn.FunctionNone, &SyntaxError{Offset: t.offset, Msg: fmt.Sprintf("unknown operator %q", t.text)}
	}
	return f, nil
}

func (p *parser) operand() (Expr, error) {
	t := p.next()
	switch t.kind {
	case tokenLParen:
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokenRParen {
			return nil, &SyntaxError{Offset: c.offset, Msg: "missing closing parenthesis"}
		}
		return e, nil
	case tokenWord:
		switch {
		case t.text == "NOT":
			x, err := p.operand()
			if err != nil {
				return nil, err
			}
			return Not{X: x}, nil
		case t.text == "0" || t.text == "FALSE":
			return Const{Value: false}, nil
		case t.text == "1" || t.text == "TRUE":
			return Const{Value: true}, nil
		case strings.HasPrefix(t.text, "X"):
			n, err := strconv.Atoi(t.text[1:])
			if err != nil || n < 1 {
				return nil, &SyntaxError{Offset: t.offset, Msg: fmt.Sprintf("bad attribute %q", t.text)}
			}
			return Var{Index: n}, nil
		}
	}
	if t.kind == tokenEOF {
		return nil, &SyntaxError{Offset: t.offset, Msg: "unexpected end of formula"}
	}
	return nil, &SyntaxError{Offset: t.offset, Msg: fmt.Sprintf("expected operand, found %q", t.text)}
}
