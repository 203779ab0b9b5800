package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/domain/validate"
	"github.com/mekdelawit/paperops/internal/service/payments"
)

// PaymentHandler serves mama day entries and payment reports.
type PaymentHandler struct {
	svc    *payments.Service
	logger *zap.Logger
}

// NewPaymentHandler constructs the handler.
func NewPaymentHandler(svc *payments.Service, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{svc: svc, logger: logger}
}

// Report aggregates day entries in [startDate, endDate] per mama.
func (h *PaymentHandler) Report(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	report, err := h.svc.Report(c.Request.Context(), startDate, endDate)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

// RecordEntry normalizes and stores one mama day entry.
func (h *PaymentHandler) RecordEntry(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entry := models.MamaDayEntryFromPayload(raw)

	verr := &validate.Error{}
	if entry.MamaID == 0 {
		verr.Add("mamaId is required")
	}
	if entry.Date == "" {
		verr.Add("date is required")
	}
	if len(entry.Products) == 0 {
		verr.Add("at least one product is required")
	}
	if err := verr.Err(); err != nil {
		fail(c, h.logger, err)
		return
	}

	stored, err := h.svc.Record(c.Request.Context(), entry)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, stored)
}
