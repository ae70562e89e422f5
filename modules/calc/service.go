package calc

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"ratcalc/modules/history"
	"ratcalc/rational"
)

// Service evaluates expressions and records outcomes in history. It is
// shared by the request-reply service and the REST front-end.
type Service struct {
	history *history.Module
}

// NewService creates an evaluation service. history may be nil, in which
// case evaluations are not recorded.
func NewService(h *history.Module) *Service {
	return &Service{history: h}
}

// Evaluate runs one expression and records the outcome. Recording is
// best-effort; a storage failure does not fail the evaluation.
func (s *Service) Evaluate(_ context.Context, expression string) EvalResponse {
	resp := EvalResponse{
		ID:         uuid.New().String(),
		Expression: expression,
		CreatedAt:  time.Now().UTC(),
	}

	res, err := rational.Run(expression)
	if err != nil {
		resp.ErrorCode = errorCode(err)
		resp.Error = err.Error()
	} else {
		resp.Result = res.String()
	}

	s.record(resp)
	return resp
}

func (s *Service) record(resp EvalResponse) {
	if s.history == nil {
		return
	}
	repo := s.history.Repository()
	if repo == nil {
		return
	}

	rec := &history.Evaluation{
		ID:         resp.ID,
		CreatedAt:  resp.CreatedAt,
		Expression: resp.Expression,
		Result:     resp.Result,
		ErrorCode:  resp.ErrorCode,
	}
	if err := repo.Create(rec); err != nil {
		log.Printf("[calc] Failed to record evaluation %s: %v", resp.ID, err)
	}
}

// errorCode maps the evaluator's error taxonomy to stable client codes.
func errorCode(err error) string {
	var syn *rational.SyntaxError
	switch {
	case errors.Is(err, rational.ErrDivisionByZero):
		return CodeDivisionByZero
	case errors.As(err, &syn):
		return CodeInvalidSyntax
	default:
		return CodeInvalidExpression
	}
}
