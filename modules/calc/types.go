package calc

import "time"

// Stable error codes reported to clients, one per recoverable failure in
// the evaluator's error taxonomy.
const (
	CodeDivisionByZero    = "division_by_zero"
	CodeInvalidSyntax     = "invalid_syntax"
	CodeInvalidExpression = "invalid_expression"
)

// EvalRequest asks for one expression to be evaluated.
type EvalRequest struct {
	Expression string `json:"expression"`
}

// EvalResponse is the outcome of one evaluation. Exactly one of Result or
// ErrorCode is set.
type EvalResponse struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result,omitempty"`
	ErrorCode  string    `json:"error_code,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
