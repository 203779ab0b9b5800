package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/service/finance"
	"github.com/mekdelawit/paperops/internal/service/reporting"
)

// FinanceHandler serves bank accounts, the financial summary and the
// dashboard.
type FinanceHandler struct {
	svc       *finance.Service
	reporting *reporting.Service
	logger    *zap.Logger
}

// NewFinanceHandler constructs the handler.
func NewFinanceHandler(svc *finance.Service, reportingSvc *reporting.Service, logger *zap.Logger) *FinanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceHandler{svc: svc, reporting: reportingSvc, logger: logger}
}

// Accounts returns all bank accounts.
func (h *FinanceHandler) Accounts(c *gin.Context) {
	accounts, err := h.svc.Accounts(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, accounts)
}

// CreateAccount stores a new bank account.
func (h *FinanceHandler) CreateAccount(c *gin.Context) {
	var account models.BankAccount
	if err := c.ShouldBindJSON(&account); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.svc.CreateAccount(c.Request.Context(), account)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, stored)
}

// Summary returns the financial position across all accounts.
func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, summary)
}

// Dashboard returns the landing-page summary.
func (h *FinanceHandler) Dashboard(c *gin.Context) {
	summary, err := h.reporting.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, summary)
}
