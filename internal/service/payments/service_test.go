package payments

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
)

type fakeEntrySource struct {
	entries []models.MamaDayEntry
}

func (f *fakeEntrySource) ListDayEntries(_ context.Context, startDate, endDate string) ([]models.MamaDayEntry, error) {
	out := []models.MamaDayEntry{}
	for _, e := range f.entries {
		if startDate != "" && e.Date < startDate {
			continue
		}
		if endDate != "" && e.Date > endDate {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEntrySource) InsertDayEntry(_ context.Context, entry models.MamaDayEntry) (models.MamaDayEntry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

func dayEntry(mamaID int64, name, date string, products ...models.MamaProduct) models.MamaDayEntry {
	return models.MamaDayEntry{
		MamaID:        mamaID,
		MamaName:      name,
		AccountNumber: "1000" + name,
		Date:          date,
		Products:      products,
	}
}

func TestBuildPaymentsScenario(t *testing.T) {
	entries := []models.MamaDayEntry{
		dayEntry(7, "Abeba", "2024-05-01", models.MamaProduct{Type: models.ProductWithTube, Quantity: 5, TotalAmount: 50}),
		dayEntry(7, "Abeba", "2024-05-02", models.MamaProduct{Type: models.ProductWithTube, Quantity: 5, TotalAmount: 50}),
	}

	result := BuildPayments(entries)
	require.Len(t, result, 1)

	p := result[0]
	assert.Equal(t, int64(7), p.MamaID)
	assert.Equal(t, 10.0, p.TotalWithTube)
	assert.Equal(t, 0.0, p.TotalWithoutTube)
	assert.Equal(t, 10.0, p.TotalQuantity)
	assert.True(t, p.TotalAmount.Equal(decimal.NewFromInt(100)), "got %s", p.TotalAmount)
	assert.Equal(t, 2, p.WorkingDays)
	assert.Len(t, p.Details, 2)
}

func TestWorkingDaysCountsDistinctDates(t *testing.T) {
	entries := []models.MamaDayEntry{
		dayEntry(3, "Sara", "2024-05-01", models.MamaProduct{Type: models.ProductWithoutTube, Quantity: 2, TotalAmount: 20}),
		dayEntry(3, "Sara", "2024-05-01", models.MamaProduct{Type: models.ProductWithoutTube, Quantity: 1, TotalAmount: 10}),
		dayEntry(3, "Sara", "2024-05-03", models.MamaProduct{Type: models.ProductWithoutTube, Quantity: 4, TotalAmount: 40}),
	}

	result := BuildPayments(entries)
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].WorkingDays)
	assert.Equal(t, 7.0, result[0].TotalQuantity)
}

func TestBuildPaymentsFirstSeenOrder(t *testing.T) {
	entries := []models.MamaDayEntry{
		dayEntry(9, "Tigist", "2024-05-01"),
		dayEntry(7, "Abeba", "2024-05-01"),
		dayEntry(9, "Tigist", "2024-05-02"),
		dayEntry(3, "Sara", "2024-05-01"),
	}

	result := BuildPayments(entries)
	require.Len(t, result, 3)
	assert.Equal(t, int64(9), result[0].MamaID)
	assert.Equal(t, int64(7), result[1].MamaID)
	assert.Equal(t, int64(3), result[2].MamaID)
}

func TestAggregationTotalRoundTrip(t *testing.T) {
	entries := []models.MamaDayEntry{
		dayEntry(1, "Abeba", "2024-05-01",
			models.MamaProduct{Type: models.ProductWithTube, Quantity: 3, TotalAmount: 31.35},
			models.MamaProduct{Type: models.ProductWithoutTube, Quantity: 2, TotalAmount: 18.4}),
		dayEntry(2, "Sara", "2024-05-01", models.MamaProduct{Type: models.ProductWithTube, Quantity: 6, TotalAmount: 62.7}),
		dayEntry(1, "Abeba", "2024-05-02", models.MamaProduct{Type: models.ProductWithoutTube, Quantity: 4, TotalAmount: 36.8}),
	}

	raw := decimal.Zero
	for _, e := range entries {
		for _, p := range e.Products {
			raw = raw.Add(decimal.NewFromFloat(p.TotalAmount))
		}
	}

	total := GrandTotal(BuildPayments(entries))
	assert.True(t, total.Equal(raw), "aggregated %s != raw %s", total, raw)
}

func TestReportFiltersByPeriod(t *testing.T) {
	source := &fakeEntrySource{entries: []models.MamaDayEntry{
		dayEntry(1, "Abeba", "2024-04-30", models.MamaProduct{Type: models.ProductWithTube, Quantity: 1, TotalAmount: 10}),
		dayEntry(1, "Abeba", "2024-05-01", models.MamaProduct{Type: models.ProductWithTube, Quantity: 2, TotalAmount: 20}),
		dayEntry(1, "Abeba", "2024-06-01", models.MamaProduct{Type: models.ProductWithTube, Quantity: 3, TotalAmount: 30}),
	}}
	svc := NewService(source, zap.NewNop())

	report, err := svc.Report(context.Background(), "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, 2.0, report[0].TotalQuantity)
}

func TestEntryPayloadNormalization(t *testing.T) {
	raw := map[string]any{
		"mamaId":        "7",
		"mamaName":      "Abeba",
		"accountNumber": "100012345",
		"date":          "2024-05-01",
		"products": []any{
			map[string]any{"type": "withTube", "quantity": 5, "totalAmount": "50.00"},
		},
	}

	entry := models.MamaDayEntryFromPayload(raw)

	require.Len(t, entry.Products, 1)
	assert.Equal(t, int64(7), entry.MamaID)
	assert.Equal(t, 5.0, entry.Products[0].Quantity)
	assert.Equal(t, 50.0, entry.Products[0].TotalAmount)
}
