// Package collections records purchases made during collection sessions.
package collections

import (
	"context"

	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/domain/numeric"
	"github.com/mekdelawit/paperops/internal/domain/validate"
)

// TransactionStore is the persistence surface the collections service needs.
type TransactionStore interface {
	ListCollections(ctx context.Context) ([]models.CollectionTransaction, error)
	InsertCollection(ctx context.Context, tx models.CollectionTransaction) (models.CollectionTransaction, error)
}

// Service validates and stores collection transactions.
type Service struct {
	store  TransactionStore
	logger *zap.Logger
}

// NewService wires a collections service.
func NewService(store TransactionStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// List returns all collection transactions.
func (s *Service) List(ctx context.Context) ([]models.CollectionTransaction, error) {
	return s.store.ListCollections(ctx)
}

// Record validates a transaction, restores the total-amount invariant and
// persists it. Whatever total the client sent is replaced with
// quantity * unitPrice.
func (s *Service) Record(ctx context.Context, tx models.CollectionTransaction) (models.CollectionTransaction, error) {
	verr := &validate.Error{}
	if tx.SupplierName == "" {
		verr.Add("supplierName is required")
	}
	if tx.ItemName == "" {
		verr.Add("itemName is required")
	}
	if tx.Quantity <= 0 {
		verr.Add("quantity must be positive")
	}
	if tx.UnitPrice < 0 {
		verr.Add("unitPrice must not be negative")
	}
	if tx.Date == "" {
		verr.Add("date is required")
	}
	if err := verr.Err(); err != nil {
		return models.CollectionTransaction{}, err
	}

	tx.TotalAmount = numeric.Round2(tx.Quantity * tx.UnitPrice)

	stored, err := s.store.InsertCollection(ctx, tx)
	if err != nil {
		return models.CollectionTransaction{}, err
	}

	s.logger.Info("collection transaction recorded",
		zap.String("supplier", tx.SupplierName),
		zap.String("item", tx.ItemName),
		zap.Float64("total_amount", tx.TotalAmount))
	return stored, nil
}
