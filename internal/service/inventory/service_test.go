package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/domain/validate"
)

type fakeStore struct {
	items      map[string]models.StoreInventory
	sales      []models.SaleRecord
	failWrites bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[string]models.StoreInventory{}}
}

func (f *fakeStore) ListInventory(context.Context) ([]models.StoreInventory, error) {
	out := []models.StoreInventory{}
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) GetInventoryByType(_ context.Context, paperType string) (models.StoreInventory, error) {
	if item, ok := f.items[paperType]; ok {
		return item, nil
	}
	return models.StoreInventory{Type: paperType, Name: models.PaperTypeNames[paperType]}, nil
}

func (f *fakeStore) UpsertInventories(_ context.Context, items []models.StoreInventory) error {
	if f.failWrites {
		return errors.New("write failed")
	}
	for _, item := range items {
		f.items[item.Type] = item
	}
	return nil
}

func (f *fakeStore) ListSales(context.Context) ([]models.SaleRecord, error) {
	return f.sales, nil
}

func (f *fakeStore) InsertSale(_ context.Context, sale models.SaleRecord) (models.SaleRecord, error) {
	f.sales = append(f.sales, sale)
	return sale, nil
}

func (f *fakeStore) ResetMonthActivity(context.Context) error {
	for key, item := range f.items {
		item.CurrentMonth = models.MonthActivity{}
		f.items[key] = item
	}
	return nil
}

func (f *fakeStore) totalKg() float64 {
	var sum float64
	for _, item := range f.items {
		sum += item.TotalKg
	}
	return sum
}

func newTestService(store Store) *Service {
	return NewService(store, zap.NewNop())
}

func TestBagsFloor(t *testing.T) {
	assert.Equal(t, 0.0, Bags(49))
	assert.Equal(t, 1.0, Bags(50))
	assert.Equal(t, 2.0, Bags(120))
}

func TestCollectAddsStock(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	err := svc.Collect(context.Background(), []models.InventoryItem{
		{Type: models.PaperMixed, KgAmount: 120},
		{Type: models.PaperSW, KgAmount: 49},
	})
	require.NoError(t, err)

	mixed := store.items[models.PaperMixed]
	assert.Equal(t, 120.0, mixed.TotalKg)
	assert.Equal(t, 2.0, mixed.TotalBags)
	assert.Equal(t, 120.0, mixed.CurrentMonth.Collected)

	sw := store.items[models.PaperSW]
	assert.Equal(t, 49.0, sw.TotalKg)
	assert.Equal(t, 0.0, sw.TotalBags)
}

func TestCollectRejectsBadItems(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	err := svc.Collect(context.Background(), []models.InventoryItem{
		{Type: "vinyl", KgAmount: 10},
		{Type: models.PaperSW, KgAmount: -4},
	})
	require.Error(t, err)

	verr, ok := validate.AsError(err)
	require.True(t, ok)
	assert.Len(t, verr.Violations, 2)
	assert.Empty(t, store.items, "nothing may be written on rejection")
}

func TestSortConservation(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperMixed] = models.StoreInventory{Type: models.PaperMixed, TotalKg: 100, TotalBags: 2}
	svc := newTestService(store)

	before := store.totalKg()
	err := svc.Sort(context.Background(), models.SortRequest{
		MixedKg: 60, SW: 25, SC: 15, Carton: 10, NP: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 40.0, store.items[models.PaperMixed].TotalKg)
	credited := store.items[models.PaperSW].TotalKg +
		store.items[models.PaperSC].TotalKg +
		store.items[models.PaperCarton].TotalKg +
		store.items[models.PaperNP].TotalKg
	assert.Equal(t, 60.0, credited)
	assert.Equal(t, before, store.totalKg(), "sorting must conserve total weight")
}

func TestSortRejectsUnbalancedSplit(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperMixed] = models.StoreInventory{Type: models.PaperMixed, TotalKg: 100}
	svc := newTestService(store)

	err := svc.Sort(context.Background(), models.SortRequest{
		MixedKg: 60, SW: 25, SC: 15, Carton: 10, NP: 5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "splits")
	assert.Equal(t, 100.0, store.items[models.PaperMixed].TotalKg)
}

func TestSortRejectsInsufficientMixedStock(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperMixed] = models.StoreInventory{Type: models.PaperMixed, TotalKg: 30}
	svc := newTestService(store)

	err := svc.Sort(context.Background(), models.SortRequest{
		MixedKg: 60, SW: 30, SC: 30,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixed")
	assert.Equal(t, 30.0, store.items[models.PaperMixed].TotalKg)
}

func TestSellDrawsStockAndRecordsSale(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperSW] = models.StoreInventory{Type: models.PaperSW, TotalKg: 200, TotalBags: 4}
	svc := newTestService(store)

	sale, err := svc.Sell(context.Background(), models.SaleRecord{
		BuyerName: "Addis Mills",
		Date:      "2024-05-10",
		Items:     []models.SaleItem{{Type: models.PaperSW, KgAmount: 150, UnitPrice: 8.5}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1275.0, sale.Items[0].Amount)
	assert.Equal(t, 1275.0, sale.TotalAmount)

	sw := store.items[models.PaperSW]
	assert.Equal(t, 50.0, sw.TotalKg)
	assert.Equal(t, 1.0, sw.TotalBags)
	assert.Equal(t, 150.0, sw.CurrentMonth.Sold)
	require.Len(t, store.sales, 1)
}

func TestSellRejectsOverdraw(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperSW] = models.StoreInventory{Type: models.PaperSW, TotalKg: 20}
	svc := newTestService(store)

	_, err := svc.Sell(context.Background(), models.SaleRecord{
		BuyerName: "Addis Mills",
		Items:     []models.SaleItem{{Type: models.PaperSW, KgAmount: 25, UnitPrice: 8}},
	})
	require.Error(t, err)

	verr, ok := validate.AsError(err)
	require.True(t, ok)
	require.Len(t, verr.Violations, 1)
	assert.Contains(t, verr.Violations[0], "sw")
	assert.Contains(t, verr.Violations[0], "25")
	assert.Contains(t, verr.Violations[0], "20")

	assert.Equal(t, 20.0, store.items[models.PaperSW].TotalKg, "stock must be unchanged")
	assert.Empty(t, store.sales)
}

func TestSellAllOrNothing(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperSW] = models.StoreInventory{Type: models.PaperSW, TotalKg: 100}
	store.items[models.PaperSC] = models.StoreInventory{Type: models.PaperSC, TotalKg: 10}
	svc := newTestService(store)

	_, err := svc.Sell(context.Background(), models.SaleRecord{
		BuyerName: "Addis Mills",
		Items: []models.SaleItem{
			{Type: models.PaperSW, KgAmount: 50, UnitPrice: 8},
			{Type: models.PaperSC, KgAmount: 30, UnitPrice: 7},
		},
	})
	require.Error(t, err)

	assert.Equal(t, 100.0, store.items[models.PaperSW].TotalKg, "valid lines must not apply when any line fails")
	assert.Empty(t, store.sales)
}

func TestSellDuplicateTypeOverdrawRejected(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperSW] = models.StoreInventory{Type: models.PaperSW, TotalKg: 20}
	svc := newTestService(store)

	_, err := svc.Sell(context.Background(), models.SaleRecord{
		BuyerName: "Addis Mills",
		Items: []models.SaleItem{
			{Type: models.PaperSW, KgAmount: 15, UnitPrice: 8},
			{Type: models.PaperSW, KgAmount: 15, UnitPrice: 8},
		},
	})
	require.Error(t, err, "lines of the same type must be checked against combined stock")

	verr, ok := validate.AsError(err)
	require.True(t, ok)
	require.Len(t, verr.Violations, 1)
	assert.Contains(t, verr.Violations[0], "sw")

	assert.Equal(t, 20.0, store.items[models.PaperSW].TotalKg)
	assert.Empty(t, store.sales)
}

func TestSellDuplicateTypeDrawsCombined(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperSW] = models.StoreInventory{Type: models.PaperSW, TotalKg: 100, TotalBags: 2}
	svc := newTestService(store)

	sale, err := svc.Sell(context.Background(), models.SaleRecord{
		BuyerName: "Addis Mills",
		Items: []models.SaleItem{
			{Type: models.PaperSW, KgAmount: 30, UnitPrice: 2},
			{Type: models.PaperSW, KgAmount: 30, UnitPrice: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 120.0, sale.TotalAmount)
	sw := store.items[models.PaperSW]
	assert.Equal(t, 40.0, sw.TotalKg, "both lines must draw from stock")
	assert.Equal(t, 60.0, sw.CurrentMonth.Sold)
}

func TestCollectNoPartialStateOnWriteFailure(t *testing.T) {
	store := newFakeStore()
	store.failWrites = true
	svc := newTestService(store)

	err := svc.Collect(context.Background(), []models.InventoryItem{
		{Type: models.PaperMixed, KgAmount: 120},
		{Type: models.PaperSW, KgAmount: 50},
	})
	require.Error(t, err)
	assert.Empty(t, store.items)
}

func TestSortNoPartialStateOnWriteFailure(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperMixed] = models.StoreInventory{Type: models.PaperMixed, TotalKg: 100}
	store.failWrites = true
	svc := newTestService(store)

	err := svc.Sort(context.Background(), models.SortRequest{
		MixedKg: 60, SW: 30, SC: 30,
	})
	require.Error(t, err)
	assert.Equal(t, 100.0, store.items[models.PaperMixed].TotalKg,
		"a failed write must not strand debited mixed weight")
	assert.Zero(t, store.items[models.PaperSW].TotalKg)
}

func TestSortBagsClampAtZero(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperMixed] = models.StoreInventory{Type: models.PaperMixed, TotalKg: 60, TotalBags: 0}
	svc := newTestService(store)

	err := svc.Sort(context.Background(), models.SortRequest{
		MixedKg: 60, SW: 60,
	})
	require.NoError(t, err)

	mixed := store.items[models.PaperMixed]
	assert.Equal(t, 0.0, mixed.TotalKg)
	assert.Equal(t, 0.0, mixed.TotalBags, "bag count must not go negative")
}

func TestMonthlyRollover(t *testing.T) {
	store := newFakeStore()
	store.items[models.PaperSW] = models.StoreInventory{
		Type: models.PaperSW, TotalKg: 100,
		CurrentMonth: models.MonthActivity{Collected: 80, Sold: 30},
	}
	svc := newTestService(store)

	require.NoError(t, svc.MonthlyRollover(context.Background()))

	sw := store.items[models.PaperSW]
	assert.Equal(t, 0.0, sw.CurrentMonth.Collected)
	assert.Equal(t, 0.0, sw.CurrentMonth.Sold)
	assert.Equal(t, 100.0, sw.TotalKg, "rollover only resets the month counters")
}
