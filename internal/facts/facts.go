// Package facts defines the identity of an arithmetic fact: its operands,
// its operation, and the key under which a learner's history is recorded.
package facts

import (
	"fmt"
	"strconv"
	"strings"
)

// Operation is one of the supported arithmetic operations.
type Operation string

const (
	Multiplication Operation = "multiplication"
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
)

// Operations lists every supported operation in display order.
var Operations = []Operation{Multiplication, Addition, Subtraction}

// Symbol returns the operator shown between the operands.
func (o Operation) Symbol() string {
	switch o {
	case Multiplication:
		return "x"
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	}
	return "?"
}

// Valid reports whether o is a supported operation.
func (o Operation) Valid() bool {
	switch o {
	case Multiplication, Addition, Subtraction:
		return true
	}
	return false
}

// ParseOperation accepts the operation name or its symbol.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiplication", "mul", "x", "*":
		return Multiplication, nil
	case "addition", "add", "+":
		return Addition, nil
	case "subtraction", "sub", "-":
		return Subtraction, nil
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// PracticeMode selects which facts adaptive practice draws from.
type PracticeMode string

const (
	// ModeTables practises multiplication tables for the selected numbers.
	ModeTables PracticeMode = "tables"

	// ModeSingleDigit practises single-digit addition and subtraction.
	ModeSingleDigit PracticeMode = "single-digit"
)

// Valid reports whether m is a known practice mode.
func (m PracticeMode) Valid() bool {
	return m == ModeTables || m == ModeSingleDigit
}

// Apply computes the result of a op b.
func Apply(a int, op Operation, b int) int {
	switch op {
	case Addition:
		return a + b
	case Subtraction:
		return a - b
	default:
		return a * b
	}
}

// Key is the deterministic identity of an ordered fact. 3x4 and 4x3 are
// different keys.
type Key string

// NewKey builds the key for a op b in the order presented.
func NewKey(a int, op Operation, b int) Key {
	return Key(strconv.Itoa(a) + "-" + string(op) + "-" + strconv.Itoa(b))
}

// Parse splits a key back into its operands and operation.
func (k Key) Parse() (a int, op Operation, b int, err error) {
	parts := strings.SplitN(string(k), "-", 3)
	if len(parts) != 3 {
		return 0, "", 0, fmt.Errorf("malformed key %q", k)
	}
	a, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", 0, fmt.Errorf("malformed key %q: %w", k, err)
	}
	b, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, "", 0, fmt.Errorf("malformed key %q: %w", k, err)
	}
	op = Operation(parts[1])
	if !op.Valid() {
		return 0, "", 0, fmt.Errorf("malformed key %q: unknown operation", k)
	}
	return a, op, b, nil
}

// Text renders the fact as it is shown to the learner, e.g. "7 x 8".
func Text(a int, op Operation, b int) string {
	return fmt.Sprintf("%d %s %d", a, op.Symbol(), b)
}
