// Package calc evaluates arithmetic expressions for the calculator session.
// It supports + - * /, unary minus, parentheses, and decimal literals, and
// keeps a history of results.
package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is reported when an expression divides by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Evaluator evaluates expressions and remembers their results.
type Evaluator struct {
	history []decimal.Decimal
}

// NewEvaluator returns an Evaluator with empty history.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates one expression and appends the result to the history.
// Failed evaluations leave the history unchanged.
func (e *Evaluator) Eval(expr string) (decimal.Decimal, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return decimal.Zero, err
	}
	rpn, err := toPostfix(toks)
	if err != nil {
		return decimal.Zero, err
	}
	result, err := evalPostfix(rpn)
	if err != nil {
		return decimal.Zero, err
	}
	e.history = append(e.history, result)
	return result, nil
}

// History returns all results so far, oldest first.
func (e *Evaluator) History() []decimal.Decimal {
	out := make([]decimal.Decimal, len(e.history))
	copy(out, e.history)
	return out
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOperator
	tokLeftParen
	tokRightParen
)

type token struct {
	kind  tokenKind
	op    byte // one of + - * / or 'n' for unary minus
	value decimal.Decimal
}

func tokenize(expr string) ([]token, error) {
	var toks []token
	s := strings.TrimSpace(expr)
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case ch == '(':
			toks = append(toks, token{kind: tokLeftParen})
			i++
		case ch == ')':
			toks = append(toks, token{kind: tokRightParen})
			i++
		case ch == '+' || ch == '*' || ch == '/':
			toks = append(toks, token{kind: tokOperator, op: ch})
			i++
		case ch == '-':
			// Minus is unary at the start of an expression or after an
			// operator or opening parenthesis.
			if unaryPosition(toks) {
				toks = append(toks, token{kind: tokOperator, op: 'n'})
			} else {
				toks = append(toks, token{kind: tokOperator, op: '-'})
			}
			i++
		case unicode.IsDigit(rune(ch)) || ch == '.':
			j := i
			for j < len(s) && (unicode.IsDigit(rune(s[j])) || s[j] == '.') {
				j++
			}
			d, err := decimal.NewFromString(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", s[i:j])
			}
			toks = append(toks, token{kind: tokNumber, value: d})
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q", string(ch))
		}
	}
	if len(toks) == 0 {
		return nil, errors.New("empty expression")
	}
	return toks, nil
}

func unaryPosition(toks []token) bool {
	if len(toks) == 0 {
		return true
	}
	last := toks[len(toks)-1]
	return last.kind == tokOperator || last.kind == tokLeftParen
}

func precedence(op byte) int {
	switch op {
	case 'n':
		return 3
	case '*', '/':
		return 2
	default:
		return 1
	}
}

// toPostfix converts tokens to reverse Polish order. Unary minus is
// right-associative; the binary operators are left-associative.
func toPostfix(toks []token) ([]token, error) {
	var out, stack []token
	for _, t := range toks {
		switch t.kind {
		case tokNumber:
			out = append(out, t)
		case tokOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokOperator {
					break
				}
				if precedence(top.op) > precedence(t.op) ||
					(precedence(top.op) == precedence(t.op) && t.op != 'n') {
					out = append(out, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)
		case tokLeftParen:
			stack = append(stack, t)
		case tokRightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokLeftParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, errors.New("unbalanced parentheses")
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokLeftParen {
			return nil, errors.New("unbalanced parentheses")
		}
		out = append(out, top)
	}
	return out, nil
}

func evalPostfix(rpn []token) (decimal.Decimal, error) {
	var stack []decimal.Decimal
	pop := func() (decimal.Decimal, bool) {
		if len(stack) == 0 {
			return decimal.Zero, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, t := range rpn {
		if t.kind == tokNumber {
			stack = append(stack, t.value)
			continue
		}
		if t.op == 'n' {
			v, ok := pop()
			if !ok {
				return decimal.Zero, errors.New("malformed expression")
			}
			stack = append(stack, v.Neg())
			continue
		}
		right, ok1 := pop()
		left, ok2 := pop()
		if !ok1 || !ok2 {
			return decimal.Zero, errors.New("malformed expression")
		}
		switch t.op {
		case '+':
			stack = append(stack, left.Add(right))
		case '-':
			stack = append(stack, left.Sub(right))
		case '*':
			stack = append(stack, left.Mul(right))
		case '/':
			if right.IsZero() {
				return decimal.Zero, ErrDivisionByZero
			}
			stack = append(stack, left.Div(right))
		}
	}
	if len(stack) != 1 {
		return decimal.Zero, errors.New("malformed expression")
	}
	return stack[0], nil
}
