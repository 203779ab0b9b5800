// Package inventory owns the paper-stock ledger: collection intake, sorting
// of mixed paper into graded stock, and sales. Every mutation is validated
// against the current snapshot first and applied all-or-nothing.
package inventory

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/domain/numeric"
	"github.com/mekdelawit/paperops/internal/domain/validate"
)

// BagWeightKg is the fixed weight assumption for one bag of paper. Bag
// counts are always derived as floor(kg / BagWeightKg).
const BagWeightKg = 50.0

// Store is the persistence surface the inventory service needs.
// UpsertInventories takes every snapshot a mutation touches in one call so
// a storage failure never leaves half of a mutation applied.
type Store interface {
	ListInventory(ctx context.Context) ([]models.StoreInventory, error)
	GetInventoryByType(ctx context.Context, paperType string) (models.StoreInventory, error)
	UpsertInventories(ctx context.Context, items []models.StoreInventory) error
	ListSales(ctx context.Context) ([]models.SaleRecord, error)
	InsertSale(ctx context.Context, sale models.SaleRecord) (models.SaleRecord, error)
	ResetMonthActivity(ctx context.Context) error
}

// Service implements the stock operations.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService wires an inventory service.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Bags converts a weight into whole bags at the fixed bag weight.
func Bags(kg float64) float64 {
	return math.Floor(kg / BagWeightKg)
}

// drawDownBags removes the whole-bag equivalent of kg, clamping at zero:
// stock booked with fewer bags than its weight implies must not go
// negative.
func drawDownBags(bags, kg float64) float64 {
	bags -= Bags(kg)
	if bags < 0 {
		return 0
	}
	return bags
}

// List returns the stock snapshot for every paper type.
func (s *Service) List(ctx context.Context) ([]models.StoreInventory, error) {
	return s.store.ListInventory(ctx)
}

// Latest returns the most recent snapshot keyed by paper type.
func (s *Service) Latest(ctx context.Context) (map[string]models.StoreInventory, error) {
	items, err := s.store.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	latest := make(map[string]models.StoreInventory, len(items))
	for _, item := range items {
		latest[item.Type] = item
	}
	return latest, nil
}

// Sales returns the sale history.
func (s *Service) Sales(ctx context.Context) ([]models.SaleRecord, error) {
	return s.store.ListSales(ctx)
}

// Collect books collected paper into stock: each line adds its weight, the
// derived whole-bag count, and the current-month collected counter. Lines
// of the same type accumulate on one snapshot, and every snapshot is
// written in a single store call.
func (s *Service) Collect(ctx context.Context, items []models.InventoryItem) error {
	verr := &validate.Error{}
	for _, item := range items {
		if _, known := models.PaperTypeNames[item.Type]; !known {
			verr.Add("unknown paper type %q", item.Type)
		}
		if item.KgAmount <= 0 {
			verr.Add("%s: kgAmount must be positive", item.Type)
		}
	}
	if err := verr.Err(); err != nil {
		return err
	}

	snapshots := map[string]*models.StoreInventory{}
	order := []string{}
	var totalKg float64
	for _, item := range items {
		stock, ok := snapshots[item.Type]
		if !ok {
			fetched, err := s.store.GetInventoryByType(ctx, item.Type)
			if err != nil {
				return err
			}
			stock = &fetched
			snapshots[item.Type] = stock
			order = append(order, item.Type)
		}
		stock.TotalKg += item.KgAmount
		stock.TotalBags += Bags(item.KgAmount)
		stock.CurrentMonth.Collected += item.KgAmount
		totalKg += item.KgAmount
	}

	updated := make([]models.StoreInventory, 0, len(order))
	for _, paperType := range order {
		updated = append(updated, *snapshots[paperType])
	}
	if err := s.store.UpsertInventories(ctx, updated); err != nil {
		return err
	}

	s.logger.Info("stock intake",
		zap.Int("items", len(items)),
		zap.Float64("kg", totalKg))
	return nil
}

// Sort moves weight out of the mixed stock into the sorted grades. The
// credited amounts must sum to exactly the weight removed from mixed, and
// mixed must hold at least that much.
func (s *Service) Sort(ctx context.Context, req models.SortRequest) error {
	verr := &validate.Error{}

	if req.MixedKg <= 0 {
		verr.Add("mixedKg must be positive")
	}
	for _, split := range []struct {
		name  string
		value float64
	}{{"sw", req.SW}, {"sc", req.SC}, {"carton", req.Carton}, {"np", req.NP}} {
		if split.value < 0 {
			verr.Add("%s split must not be negative", split.name)
		}
	}

	credited := req.SW + req.SC + req.Carton + req.NP
	if math.Abs(credited-req.MixedKg) > 1e-9 {
		verr.Add("sorted splits sum to %v kg but %v kg was taken from mixed", credited, req.MixedKg)
	}

	mixed, err := s.store.GetInventoryByType(ctx, models.PaperMixed)
	if err != nil {
		return err
	}
	if mixed.TotalKg < req.MixedKg {
		verr.Add("mixed: requested %v kg exceeds available %v kg", req.MixedKg, mixed.TotalKg)
	}
	if err := verr.Err(); err != nil {
		return err
	}

	mixed.TotalKg -= req.MixedKg
	mixed.TotalBags = drawDownBags(mixed.TotalBags, req.MixedKg)
	updated := []models.StoreInventory{mixed}

	credits := map[string]float64{
		models.PaperSW:     req.SW,
		models.PaperSC:     req.SC,
		models.PaperCarton: req.Carton,
		models.PaperNP:     req.NP,
	}
	for _, paperType := range []string{models.PaperSW, models.PaperSC, models.PaperCarton, models.PaperNP} {
		kg := credits[paperType]
		if kg == 0 {
			continue
		}
		stock, err := s.store.GetInventoryByType(ctx, paperType)
		if err != nil {
			return err
		}
		stock.TotalKg += kg
		stock.TotalBags += Bags(kg)
		updated = append(updated, stock)
	}

	// The mixed debit and the grade credits land together or not at all;
	// a failed write must not strand debited weight.
	if err := s.store.UpsertInventories(ctx, updated); err != nil {
		return err
	}

	s.logger.Info("mixed stock sorted",
		zap.Float64("mixed_kg", req.MixedKg),
		zap.Float64("sw", req.SW),
		zap.Float64("sc", req.SC),
		zap.Float64("carton", req.Carton),
		zap.Float64("np", req.NP))
	return nil
}

// Sell records a sale and draws the sold weight from stock. Lines are
// validated against a working copy of the snapshots, with repeated types
// drawing from the same snapshot, so a sale can never book more weight
// than the store holds. A rejection names each offending item and the
// quantity still available; nothing is written unless every line fits.
func (s *Service) Sell(ctx context.Context, sale models.SaleRecord) (models.SaleRecord, error) {
	verr := &validate.Error{}
	if len(sale.Items) == 0 {
		verr.Add("sale must contain at least one item")
	}

	snapshots := map[string]*models.StoreInventory{}
	order := []string{}
	for _, item := range sale.Items {
		if _, known := models.PaperTypeNames[item.Type]; !known {
			verr.Add("unknown paper type %q", item.Type)
			continue
		}
		if item.KgAmount <= 0 {
			verr.Add("%s: kgAmount must be positive", item.Type)
			continue
		}
		stock, ok := snapshots[item.Type]
		if !ok {
			fetched, err := s.store.GetInventoryByType(ctx, item.Type)
			if err != nil {
				return models.SaleRecord{}, err
			}
			stock = &fetched
			snapshots[item.Type] = stock
			order = append(order, item.Type)
		}
		if stock.TotalKg < item.KgAmount {
			verr.Add("%s: requested %v kg exceeds available %v kg", item.Type, item.KgAmount, stock.TotalKg)
			continue
		}
		stock.TotalKg -= item.KgAmount
		stock.TotalBags = drawDownBags(stock.TotalBags, item.KgAmount)
		stock.CurrentMonth.Sold += item.KgAmount
	}
	if err := verr.Err(); err != nil {
		return models.SaleRecord{}, err
	}

	var total float64
	for i := range sale.Items {
		sale.Items[i].Amount = numeric.Round2(sale.Items[i].KgAmount * sale.Items[i].UnitPrice)
		total += sale.Items[i].Amount
	}
	sale.TotalAmount = numeric.Round2(total)

	updated := make([]models.StoreInventory, 0, len(order))
	for _, paperType := range order {
		updated = append(updated, *snapshots[paperType])
	}
	if err := s.store.UpsertInventories(ctx, updated); err != nil {
		return models.SaleRecord{}, err
	}

	stored, err := s.store.InsertSale(ctx, sale)
	if err != nil {
		return models.SaleRecord{}, err
	}

	s.logger.Info("sale recorded",
		zap.String("buyer", sale.BuyerName),
		zap.Float64("total_amount", sale.TotalAmount),
		zap.Int("items", len(sale.Items)))
	return stored, nil
}

// MonthlyRollover zeroes the current-month counters; the scheduler calls
// this on the first of each month.
func (s *Service) MonthlyRollover(ctx context.Context) error {
	if err := s.store.ResetMonthActivity(ctx); err != nil {
		return fmt.Errorf("monthly rollover: %w", err)
	}
	s.logger.Info("monthly stock counters reset")
	return nil
}
