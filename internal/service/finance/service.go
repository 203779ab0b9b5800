// Package finance computes the cash position across bank accounts.
package finance

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/domain/validate"
)

// AccountSource is the persistence surface the finance service needs.
type AccountSource interface {
	ListAccounts(ctx context.Context) ([]models.BankAccount, error)
	InsertAccount(ctx context.Context, account models.BankAccount) (models.BankAccount, error)
}

// Service exposes bank accounts and the derived financial summary.
type Service struct {
	source AccountSource
	logger *zap.Logger
}

// NewService wires a finance service.
func NewService(source AccountSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger}
}

// Accounts returns all bank accounts.
func (s *Service) Accounts(ctx context.Context) ([]models.BankAccount, error) {
	return s.source.ListAccounts(ctx)
}

// CreateAccount validates and stores a bank account.
func (s *Service) CreateAccount(ctx context.Context, account models.BankAccount) (models.BankAccount, error) {
	verr := &validate.Error{}
	if account.Name == "" {
		verr.Add("name is required")
	}
	if account.Balance < 0 {
		verr.Add("balance must not be negative")
	}
	if err := verr.Err(); err != nil {
		return models.BankAccount{}, err
	}
	return s.source.InsertAccount(ctx, account)
}

// Summary reduces all accounts into the overall position.
// difference = totalReceivable - totalPayable;
// cashReceivableBalance = cashBalance + totalReceivable.
func (s *Service) Summary(ctx context.Context) (models.FinancialSummary, error) {
	accounts, err := s.source.ListAccounts(ctx)
	if err != nil {
		return models.FinancialSummary{}, err
	}
	return Summarize(accounts), nil
}

// Summarize computes the financial summary for a set of accounts.
func Summarize(accounts []models.BankAccount) models.FinancialSummary {
	summary := models.FinancialSummary{
		CashBalance:     decimal.Zero,
		TotalReceivable: decimal.Zero,
		TotalPayable:    decimal.Zero,
	}
	for _, account := range accounts {
		summary.CashBalance = summary.CashBalance.Add(decimal.NewFromFloat(account.Balance))
		summary.TotalReceivable = summary.TotalReceivable.Add(decimal.NewFromFloat(account.Receivable))
		summary.TotalPayable = summary.TotalPayable.Add(decimal.NewFromFloat(account.Payable))
	}
	summary.Difference = summary.TotalReceivable.Sub(summary.TotalPayable)
	summary.CashReceivableBalance = summary.CashBalance.Add(summary.TotalReceivable)
	return summary
}
