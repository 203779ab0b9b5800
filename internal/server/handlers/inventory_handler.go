package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/service/inventory"
)

// IntakeRequest is the body of a stock intake.
type IntakeRequest struct {
	Date  string                 `json:"date"`
	Items []models.InventoryItem `json:"items" binding:"required"`
}

// InventoryHandler serves the paper-stock endpoints.
type InventoryHandler struct {
	svc    *inventory.Service
	logger *zap.Logger
}

// NewInventoryHandler constructs the handler.
func NewInventoryHandler(svc *inventory.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{svc: svc, logger: logger}
}

// List returns every stock snapshot.
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// Latest returns the most recent snapshot keyed by paper type.
func (h *InventoryHandler) Latest(c *gin.Context) {
	latest, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, latest)
}

// Collect books collected paper into stock.
func (h *InventoryHandler) Collect(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Collect(c.Request.Context(), req.Items); err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"items": len(req.Items)})
}

// Sort moves weight from mixed stock into sorted grades.
func (h *InventoryHandler) Sort(c *gin.Context) {
	var req models.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Sort(c.Request.Context(), req); err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"mixedKg": req.MixedKg})
}

// Sales returns the sale history.
func (h *InventoryHandler) Sales(c *gin.Context) {
	sales, err := h.svc.Sales(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, sales)
}

// Sell records a sale after checking stock availability.
func (h *InventoryHandler) Sell(c *gin.Context) {
	var sale models.SaleRecord
	if err := c.ShouldBindJSON(&sale); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.svc.Sell(c.Request.Context(), sale)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, stored)
}
