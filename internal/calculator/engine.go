// Package calculator implements a four-function accumulator.
package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrIncompleteOperands = errors.New("calculator: incomplete operands")

type Operator string

const (
	None     Operator = ""
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// ParseOperator returns None for anything that is not one of + - * /.
func ParseOperator(s string) Operator {
	switch op := Operator(strings.TrimSpace(s)); op {
	case Add, Subtract, Multiply, Divide:
		return op
	default:
		return None
	}
}

const initial = "0"

// Engine holds the numeral being typed, the staged operand and the pending
// operator.
type Engine struct {
	current   string
	previous  string
	operation Operator
}

func New() *Engine { return &Engine{current: initial} }

// InputDigitOrDot appends a digit or a decimal point. A leading "0" is
// replaced by a digit; a second point in the same numeral is ignored. A
// non-finite result such as "+Inf" is replaced by a fresh numeral.
func (e *Engine) InputDigitOrDot(token string) {
	if len(token) != 1 {
		return
	}
	ch := token[0]
	if (ch == '.' || ch >= '0' && ch <= '9') && !finite(e.current) {
		e.current = initial
	}
	switch {
	case ch == '.':
		if strings.Contains(e.current, ".") {
			return
		}
		e.current += token
	case ch >= '0' && ch <= '9':
		if e.current == initial {
			e.current = token
			return
		}
		e.current += token
	}
}

// InputOperator stages the current numeral and records op.
func (e *Engine) InputOperator(op Operator) {
	if ParseOperator(string(op)) == None || e.current == "" {
		return
	}
	e.previous = e.current
	e.current = initial
	e.operation = op
}

// Evaluate applies the pending operator. Division by zero follows IEEE 754.
func (e *Engine) Evaluate() error {
	if e.previous == "" || e.current == "" {
		return ErrIncompleteOperands
	}
	a, b := parse(e.previous), parse(e.current)
	var result float64
	switch e.operation {
	case Add:
		result = a + b
	case Subtract:
		result = a - b
	case Multiply:
		result = a * b
	case Divide:
		result = a / b
	}
	e.current = Format(result)
	e.previous = ""
	e.operation = None
	return nil
}

// Backspace drops the last typed character.
func (e *Engine) Backspace() {
	if len(e.current) <= 1 || !finite(e.current) {
		e.current = initial
		return
	}
	e.current = e.current[:len(e.current)-1]
}

func (e *Engine) Clear() {
	e.current = initial
	e.previous = ""
	e.operation = None
}

func (e *Engine) Current() string     { return e.current }
func (e *Engine) Previous() string    { return e.previous }
func (e *Engine) Operation() Operator { return e.operation }

// Pending renders the staged half of the expression, e.g. "12 +".
func (e *Engine) Pending() string {
	if e.previous == "" {
		return ""
	}
	return e.previous + " " + string(e.operation)
}

// Format renders a result without a trailing ".0".
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func parse(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
