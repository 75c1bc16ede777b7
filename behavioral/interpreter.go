package behavioral

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is the interpreter pattern's abstract expression.
type Expr interface {
	Interpret() int
}

// Number is a terminal expression.
type Number int

func (n Number) Interpret() int { return int(n) }

// Plus is a nonterminal expression.
type Plus struct {
	Left, Right Expr
}

func (p Plus) Interpret() int { return p.Left.Interpret() + p.Right.Interpret() }

// Minus is a nonterminal expression.
type Minus struct {
	Left, Right Expr
}

func (m Minus) Interpret() int { return m.Left.Interpret() - m.Right.Interpret() }

// ParseExpr builds an expression tree from a space-separated sequence of
// integers joined by + and -, evaluated left to right ("1 + 2 - 3").
func ParseExpr(input string) (Expr, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty expression")
	}

	value, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("expected number, got %q", tokens[0])
	}
	expr := Expr(Number(value))

	for i := 1; i < len(tokens); i += 2 {
		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("dangling operator %q", tokens[i])
		}
		value, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("expected number, got %q", tokens[i+1])
		}

		switch tokens[i] {
		case "+":
			expr = Plus{Left: expr, Right: Number(value)}
		case "-":
			expr = Minus{Left: expr, Right: Number(value)}
		default:
			return nil, fmt.Errorf("unknown operator %q", tokens[i])
		}
	}

	return expr, nil
}
