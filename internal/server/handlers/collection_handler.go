package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/service/collections"
)

// CollectionHandler serves collection-session transactions.
type CollectionHandler struct {
	svc    *collections.Service
	logger *zap.Logger
}

// NewCollectionHandler constructs the handler.
func NewCollectionHandler(svc *collections.Service, logger *zap.Logger) *CollectionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectionHandler{svc: svc, logger: logger}
}

// List returns all collection transactions.
func (h *CollectionHandler) List(c *gin.Context) {
	txs, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, txs)
}

// Create normalizes and records one transaction. The body is taken as a
// raw object because field clients send numbers as strings.
func (h *CollectionHandler) Create(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	tx := models.CollectionTransactionFromPayload(raw)
	stored, err := h.svc.Record(c.Request.Context(), tx)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, stored)
}
