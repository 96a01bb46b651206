package domain

import (
	"math"
	"strconv"
	"strings"
)

// WipeCode is the operand that, when evaluated, erases the whole vault
const WipeCode = "7777"

// Outcome is what an evaluation asks the caller to do besides updating the display
type Outcome struct {
	WipeRequested bool
}

// Calculator is a simple accumulator calculator. It is the disguise in front
// of the vault, so it deliberately behaves like a plain phone calculator.
type Calculator struct {
	current     string
	previous    string
	operation   string
	resetOnNext bool
}

// NewCalculator returns a calculator showing 0
func NewCalculator() *Calculator {
	return &Calculator{current: "0"}
}

// AppendDigit appends a digit or the decimal point to the current operand
func (c *Calculator) AppendDigit(d string) {
	if d == "." && strings.Contains(c.current, ".") && !c.resetOnNext {
		return
	}
	if c.current == "0" || c.resetOnNext {
		c.current = d
		c.resetOnNext = false
		return
	}
	c.current += d
}

// ChooseOperation stores the current operand and the pending operator.
// A pending operation is evaluated first, so it can also trigger a wipe.
func (c *Calculator) ChooseOperation(op string) Outcome {
	if c.current == "" {
		return Outcome{}
	}
	if c.previous != "" {
		if out := c.compute(); out.WipeRequested {
			return out
		}
	}
	c.operation = op
	c.previous = c.current
	c.resetOnNext = true
	return Outcome{}
}

// Evaluate computes the pending operation
func (c *Calculator) Evaluate() Outcome {
	return c.compute()
}

func (c *Calculator) compute() Outcome {
	if c.current == WipeCode {
		return Outcome{WipeRequested: true}
	}

	prev, err1 := strconv.ParseFloat(c.previous, 64)
	cur, err2 := strconv.ParseFloat(c.current, 64)
	if err1 != nil || err2 != nil {
		return Outcome{}
	}

	var result float64
	switch c.operation {
	case "+":
		result = prev + cur
	case "-":
		result = prev - cur
	case "*":
		result = prev * cur
	case "/":
		result = prev / cur
	default:
		return Outcome{}
	}

	c.current = formatNumber(result)
	c.operation = ""
	c.previous = ""
	return Outcome{}
}

// Clear resets the calculator
func (c *Calculator) Clear() {
	c.current = "0"
	c.previous = ""
	c.operation = ""
	c.resetOnNext = false
}

// DeleteLast removes the last character of the current operand
func (c *Calculator) DeleteLast() {
	if len(c.current) > 1 {
		c.current = c.current[:len(c.current)-1]
		return
	}
	c.current = "0"
}

// ToggleSign negates the current operand
func (c *Calculator) ToggleSign() {
	c.current = formatNumber(parseOperand(c.current) * -1)
}

// Percent divides the current operand by 100
func (c *Calculator) Percent() {
	c.current = formatNumber(parseOperand(c.current) / 100)
}

// Current returns the raw current operand
func (c *Calculator) Current() string {
	return c.current
}

// Display returns the current operand with a decimal comma
func (c *Calculator) Display() string {
	return strings.Replace(c.current, ".", ",", 1)
}

// Pending returns the previous operand and operator, or "" when none is pending
func (c *Calculator) Pending() string {
	if c.operation == "" {
		return ""
	}
	return c.previous + " " + c.operation
}

func parseOperand(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
