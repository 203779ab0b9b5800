// Package payments rolls flat mama day entries up into per-mama payment
// summaries for a reporting period.
package payments

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
)

// EntrySource is the persistence surface the payments service needs.
type EntrySource interface {
	ListDayEntries(ctx context.Context, startDate, endDate string) ([]models.MamaDayEntry, error)
	InsertDayEntry(ctx context.Context, entry models.MamaDayEntry) (models.MamaDayEntry, error)
}

// Service builds payment reports.
type Service struct {
	source EntrySource
	logger *zap.Logger
}

// NewService wires a payments service.
func NewService(source EntrySource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger}
}

// Record stores one mama day entry.
func (s *Service) Record(ctx context.Context, entry models.MamaDayEntry) (models.MamaDayEntry, error) {
	return s.source.InsertDayEntry(ctx, entry)
}

// Report fetches the day entries inside the period and aggregates them.
func (s *Service) Report(ctx context.Context, startDate, endDate string) ([]models.MamaPayment, error) {
	entries, err := s.source.ListDayEntries(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	payments := BuildPayments(entries)
	s.logger.Info("payment report built",
		zap.String("start", startDate),
		zap.String("end", endDate),
		zap.Int("entries", len(entries)),
		zap.Int("mamas", len(payments)))
	return payments, nil
}

// BuildPayments groups day entries by mama in first-seen order and reduces
// each group: product quantities sum into the per-type and overall totals,
// amounts sum decimally, and workingDays counts the distinct dates the mama
// appears on. The sum of all payment amounts always equals the sum over the
// raw entries.
func BuildPayments(entries []models.MamaDayEntry) []models.MamaPayment {
	index := make(map[int64]int)
	payments := make([]models.MamaPayment, 0)
	seenDates := make(map[int64]map[string]bool)

	for _, entry := range entries {
		i, seen := index[entry.MamaID]
		if !seen {
			i = len(payments)
			index[entry.MamaID] = i
			seenDates[entry.MamaID] = make(map[string]bool)
			payments = append(payments, models.MamaPayment{
				MamaID:        entry.MamaID,
				MamaName:      entry.MamaName,
				AccountNumber: entry.AccountNumber,
				TotalAmount:   decimal.Zero,
			})
		}

		p := &payments[i]
		p.Details = append(p.Details, entry)

		if !seenDates[entry.MamaID][entry.Date] {
			seenDates[entry.MamaID][entry.Date] = true
			p.WorkingDays++
		}

		for _, product := range entry.Products {
			switch product.Type {
			case models.ProductWithTube:
				p.TotalWithTube += product.Quantity
			case models.ProductWithoutTube:
				p.TotalWithoutTube += product.Quantity
			}
			p.TotalQuantity += product.Quantity
			p.TotalAmount = p.TotalAmount.Add(decimal.NewFromFloat(product.TotalAmount))
		}
	}

	return payments
}

// GrandTotal sums the payment amounts of a report.
func GrandTotal(payments []models.MamaPayment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.TotalAmount)
	}
	return total
}
