package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/service/evaluation"
)

// EvaluationHandler serves site evaluation reports.
type EvaluationHandler struct {
	svc    *evaluation.Service
	logger *zap.Logger
}

// NewEvaluationHandler constructs the handler.
func NewEvaluationHandler(svc *evaluation.Service, logger *zap.Logger) *EvaluationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationHandler{svc: svc, logger: logger}
}

// List returns all stored reports.
func (h *EvaluationHandler) List(c *gin.Context) {
	reports, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, reports)
}

// Create normalizes the raw payload, recomputes every derived field and
// stores the report. Derived values submitted by the client are ignored.
func (h *EvaluationHandler) Create(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	report := models.SiteEvaluationFromPayload(raw)
	stored, err := h.svc.Submit(c.Request.Context(), report)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, stored)
}
