package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ratcalc/modules/calc"
	"ratcalc/modules/history"
)

// Handler handles HTTP requests for expression evaluation.
type Handler struct {
	service *calc.Service
	history *history.Module
}

// NewHandler creates a new API handler.
func NewHandler(service *calc.Service, hist *history.Module) *Handler {
	return &Handler{
		service: service,
		history: hist,
	}
}

// EvalRequest is the request body for evaluating an expression.
type EvalRequest struct {
	Expression string `json:"expression"`
}

// ErrorResponse is the response for transport-level errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/eval", h.Eval)
	api.Get("/evaluations", h.ListEvaluations)
	api.Get("/evaluations/:id", h.GetEvaluation)
}

// Eval handles POST /api/v1/eval. Evaluation failures are part of the
// response body; only a malformed request is an HTTP error.
func (h *Handler) Eval(c *fiber.Ctx) error {
	var req EvalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	return c.JSON(h.service.Evaluate(c.Context(), req.Expression))
}

// ListEvaluations handles GET /api/v1/evaluations.
func (h *Handler) ListEvaluations(c *fiber.Ctx) error {
	repo := h.repo()
	if repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "history_unavailable",
			Message: "Evaluation history is not available",
		})
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	evals, err := repo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to load evaluations",
		})
	}

	return c.JSON(fiber.Map{"evaluations": evals})
}

// GetEvaluation handles GET /api/v1/evaluations/:id.
func (h *Handler) GetEvaluation(c *fiber.Ctx) error {
	repo := h.repo()
	if repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "history_unavailable",
			Message: "Evaluation history is not available",
		})
	}

	eval, err := repo.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: "Evaluation not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to load evaluation",
		})
	}

	return c.JSON(eval)
}

func (h *Handler) repo() *history.Repository {
	if h.history == nil {
		return nil
	}
	return h.history.Repository()
}
