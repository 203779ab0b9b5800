package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
)

// SupplierStore is the persistence surface the supplier handler needs.
type SupplierStore interface {
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	InsertSupplier(ctx context.Context, s models.Supplier) (models.Supplier, error)
}

// SupplierHandler serves the supplier directory.
type SupplierHandler struct {
	store  SupplierStore
	logger *zap.Logger
}

// NewSupplierHandler constructs the handler.
func NewSupplierHandler(store SupplierStore, logger *zap.Logger) *SupplierHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupplierHandler{store: store, logger: logger}
}

// List returns all suppliers.
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.store.ListSuppliers(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, suppliers)
}

// Create stores a new supplier.
func (h *SupplierHandler) Create(c *gin.Context) {
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	supplier.Active = true

	stored, err := h.store.InsertSupplier(c.Request.Context(), supplier)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, stored)
}
