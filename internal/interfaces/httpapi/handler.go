package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/soccerstatsqc/league-dashboard/internal/platform/logging"
	"github.com/soccerstatsqc/league-dashboard/internal/usecase"
)

type Handler struct {
	matchService *usecase.MatchService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(matchService *usecase.MatchService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService: matchService,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type listResultsRequest struct {
	Team string `validate:"max=100"`
}

type matchRequest struct {
	MatchID string `validate:"required,max=64"`
}

type teamRequest struct {
	Team string `validate:"required,max=100"`
}
