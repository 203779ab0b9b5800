package finance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/domain/validate"
)

type fakeAccountSource struct {
	accounts []models.BankAccount
}

func (f *fakeAccountSource) ListAccounts(context.Context) ([]models.BankAccount, error) {
	return f.accounts, nil
}

func (f *fakeAccountSource) InsertAccount(_ context.Context, account models.BankAccount) (models.BankAccount, error) {
	f.accounts = append(f.accounts, account)
	return account, nil
}

func TestSummarize(t *testing.T) {
	accounts := []models.BankAccount{
		{Name: "CBE main", Balance: 10000, Receivable: 2500.5, Payable: 1200},
		{Name: "Awash ops", Balance: 3000, Receivable: 499.5, Payable: 800},
	}

	summary := Summarize(accounts)

	assert.True(t, summary.CashBalance.Equal(decimal.NewFromInt(13000)), "got %s", summary.CashBalance)
	assert.True(t, summary.TotalReceivable.Equal(decimal.NewFromInt(3000)))
	assert.True(t, summary.TotalPayable.Equal(decimal.NewFromInt(2000)))
	assert.True(t, summary.Difference.Equal(decimal.NewFromInt(1000)),
		"difference must be receivable minus payable")
	assert.True(t, summary.CashReceivableBalance.Equal(decimal.NewFromInt(16000)),
		"cash+receivable must be cash balance plus receivable")
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.CashBalance.IsZero())
	assert.True(t, summary.Difference.IsZero())
	assert.True(t, summary.CashReceivableBalance.IsZero())
}

func TestCreateAccountValidation(t *testing.T) {
	source := &fakeAccountSource{}
	svc := NewService(source, zap.NewNop())

	_, err := svc.CreateAccount(context.Background(), models.BankAccount{Balance: -5})
	require.Error(t, err)

	verr, ok := validate.AsError(err)
	require.True(t, ok)
	assert.Len(t, verr.Violations, 2)
	assert.Empty(t, source.accounts)
}

func TestCreateAndSummarize(t *testing.T) {
	source := &fakeAccountSource{}
	svc := NewService(source, zap.NewNop())

	_, err := svc.CreateAccount(context.Background(), models.BankAccount{
		Name: "CBE main", AccountNumber: "1000123", Balance: 500, Receivable: 120, Payable: 40,
	})
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.Difference.Equal(decimal.NewFromInt(80)))
}
