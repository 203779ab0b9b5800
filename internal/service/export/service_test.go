package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/service/payments"
)

func samplePayments() []models.MamaPayment {
	return []models.MamaPayment{
		{
			MamaID: 7, MamaName: "Abeba", AccountNumber: "1000123",
			TotalWithTube: 10, TotalWithoutTube: 4, TotalQuantity: 14,
			WorkingDays: 2, TotalAmount: decimal.NewFromFloat(140.5),
		},
		{
			MamaID: 3, MamaName: "Sara", AccountNumber: "1000456",
			TotalWithTube: 0, TotalWithoutTube: 6, TotalQuantity: 6,
			WorkingDays: 3, TotalAmount: decimal.NewFromFloat(60.25),
		},
	}
}

func TestPaymentRowsLayout(t *testing.T) {
	rows := PaymentRows("2024-05-01", "2024-05-31", samplePayments())

	// title, period, spacer, header, two body rows, totals
	require.Len(t, rows, 7)
	assert.Equal(t, "Mama Payment Report", rows[0][0])
	assert.Equal(t, "2024-05-01 to 2024-05-31", rows[1][1])
	assert.Equal(t, "Mama ID", rows[3][0])
	assert.Equal(t, int64(7), rows[4][0])
	assert.Equal(t, "140.50", rows[4][7])
}

func TestPaymentRowsTotalsMatchGrandTotal(t *testing.T) {
	paymentList := samplePayments()
	rows := PaymentRows("2024-05-01", "2024-05-31", paymentList)

	totals := rows[len(rows)-1]
	assert.Equal(t, "Total", totals[2])
	assert.Equal(t, 10.0, totals[3])
	assert.Equal(t, 10.0, totals[4])
	assert.Equal(t, 20.0, totals[5])
	assert.Equal(t, payments.GrandTotal(paymentList).StringFixed(2), totals[7])
}

func TestWriteCSVRoundTrip(t *testing.T) {
	rows := PaymentRows("2024-05-01", "2024-05-31", samplePayments())

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, len(rows))
	assert.Equal(t, "Mama Payment Report", records[0][0])
	assert.Equal(t, "Abeba", records[4][1])
	assert.Equal(t, "200.75", records[6][7])
}

func TestWriteXLSX(t *testing.T) {
	rows := PaymentRows("2024-05-01", "2024-05-31", samplePayments())

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Payments", rows))
	assert.NotZero(t, buf.Len())
}

type fakePublisher struct {
	sheetRange string
	rows       [][]any
}

func (f *fakePublisher) AppendRows(_ context.Context, sheetRange string, rows [][]any) error {
	f.sheetRange = sheetRange
	f.rows = rows
	return nil
}

func TestPublishPayments(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewService(pub, zap.NewNop())

	require.True(t, svc.SheetsEnabled())
	require.NoError(t, svc.PublishPayments(context.Background(), "2024-05-01", "2024-05-31", samplePayments()))
	assert.Equal(t, "Payments!A:H", pub.sheetRange)
	assert.Len(t, pub.rows, 7)
}

func TestPublishPaymentsWithoutPublisher(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	assert.False(t, svc.SheetsEnabled())
	assert.Error(t, svc.PublishPayments(context.Background(), "2024-05-01", "2024-05-31", nil))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "ETB 12,345.68", FormatAmount(decimal.NewFromFloat(12345.678), 2))
	assert.Equal(t, "ETB 12,346", FormatAmount(decimal.NewFromFloat(12345.678), 0))
	assert.Equal(t, "ETB 0.00", FormatAmount(decimal.Zero, 2))
}

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "1,250.5 kg", FormatKg(1250.5))
	assert.Equal(t, "40 kg", FormatKg(40))
}
