package history

import (
	"context"
	"errors"

	"github.com/go-monolith/mono"
)

// GetRequest asks for a single evaluation by ID.
type GetRequest struct {
	ID string `json:"id"`
}

// GetResponse carries a single evaluation, or an error message.
type GetResponse struct {
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// RecentRequest asks for the most recent evaluations.
type RecentRequest struct {
	Limit int `json:"limit,omitempty"`
}

// RecentResponse carries the most recent evaluations, newest first.
type RecentResponse struct {
	Evaluations []*Evaluation `json:"evaluations"`
	Error       string        `json:"error,omitempty"`
}

const defaultRecentLimit = 20

// handleGet handles the history.get RequestReplyService.
func (m *Module) handleGet(_ context.Context, req GetRequest, _ *mono.Msg) (GetResponse, error) {
	if req.ID == "" {
		return GetResponse{Error: "id is required"}, nil
	}

	eval, err := m.repo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return GetResponse{Error: "evaluation not found"}, nil
		}
		return GetResponse{Error: err.Error()}, nil
	}
	return GetResponse{Evaluation: eval}, nil
}

// handleRecent handles the history.recent RequestReplyService.
func (m *Module) handleRecent(_ context.Context, req RecentRequest, _ *mono.Msg) (RecentResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	evals, err := m.repo.FindRecent(limit)
	if err != nil {
		return RecentResponse{Error: err.Error()}, nil
	}
	return RecentResponse{Evaluations: evals}, nil
}
