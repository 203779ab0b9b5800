package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/service/export"
	"github.com/mekdelawit/paperops/internal/service/payments"
)

// ExportHandler serves CSV/XLSX downloads and the Sheets handoff for
// payment reports.
type ExportHandler struct {
	payments *payments.Service
	exports  *export.Service
	logger   *zap.Logger
}

// NewExportHandler constructs the handler.
func NewExportHandler(paymentsSvc *payments.Service, exportsSvc *export.Service, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{payments: paymentsSvc, exports: exportsSvc, logger: logger}
}

// PaymentsCSV streams the payment report for the period as CSV.
func (h *ExportHandler) PaymentsCSV(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	report, err := h.payments.Report(c.Request.Context(), startDate, endDate)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, export.PaymentRows(startDate, endDate, report)); err != nil {
		fail(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=mama-payments-%s-%s.csv", startDate, endDate))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// PaymentsXLSX streams the payment report for the period as a workbook.
func (h *ExportHandler) PaymentsXLSX(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	report, err := h.payments.Report(c.Request.Context(), startDate, endDate)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, "Payments", export.PaymentRows(startDate, endDate, report)); err != nil {
		fail(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=mama-payments-%s-%s.xlsx", startDate, endDate))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// PublishPayments appends the payment report to the configured spreadsheet.
func (h *ExportHandler) PublishPayments(c *gin.Context) {
	if !h.exports.SheetsEnabled() {
		respondError(c, http.StatusServiceUnavailable, "sheets publishing is not configured")
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	report, err := h.payments.Report(c.Request.Context(), startDate, endDate)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	if err := h.exports.PublishPayments(c.Request.Context(), startDate, endDate, report); err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"published": len(report)})
}
