package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when the divisor of a checked
	// division holds a zero value.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidExpr is returned when a line yields no trailing operand.
	ErrInvalidExpr = errors.New("invalid expression")
)

// SyntaxError reports an unrecognized character and its zero-based
// position in the input line.
type SyntaxError struct {
	Index int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax at index %d", e.Index)
}
