package calc

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module exposes the evaluation service over the embedded NATS transport.
type Module struct {
	service *Service
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)

// NewModule creates a new calc module around an evaluation service.
func NewModule(service *Service) *Module {
	return &Module{service: service}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "calc"
}

// RegisterServices registers the evaluation request-reply service. The
// framework prefixes the name, so "eval" becomes "services.calc.eval".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "eval", json.Unmarshal, json.Marshal, m.handleEval,
	); err != nil {
		return fmt.Errorf("failed to register eval service: %w", err)
	}

	log.Printf("[calc] Registered services: services.calc.eval")
	return nil
}

// Start initializes the module.
func (m *Module) Start(_ context.Context) error {
	if m.service == nil {
		return fmt.Errorf("evaluation service not configured")
	}
	log.Println("[calc] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[calc] Module stopped")
	return nil
}

// handleEval handles the calc.eval RequestReplyService. Evaluation
// failures are data, reported in the response body, not transport errors.
func (m *Module) handleEval(ctx context.Context, req EvalRequest, _ *mono.Msg) (EvalResponse, error) {
	return m.service.Evaluate(ctx, req.Expression), nil
}
