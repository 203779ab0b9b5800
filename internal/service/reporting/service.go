// Package reporting assembles the dashboard summary and the nightly
// operations digest from the other services.
package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/service/export"
	"github.com/mekdelawit/paperops/internal/service/payments"
)

const dateLayout = "2006-01-02"

// StockReader exposes the stock snapshot.
type StockReader interface {
	List(ctx context.Context) ([]models.StoreInventory, error)
}

// PaymentReader exposes the payment report for a period.
type PaymentReader interface {
	Report(ctx context.Context, startDate, endDate string) ([]models.MamaPayment, error)
}

// FinanceReader exposes the financial summary.
type FinanceReader interface {
	Summary(ctx context.Context) (models.FinancialSummary, error)
}

// Service builds dashboard and digest views.
type Service struct {
	stock    StockReader
	payments PaymentReader
	finance  FinanceReader
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a reporting service.
func NewService(stock StockReader, paymentsReader PaymentReader, finance FinanceReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		stock:    stock,
		payments: paymentsReader,
		finance:  finance,
		logger:   logger,
		now:      time.Now,
	}
}

// DashboardSummary is the data behind the landing-page cards. Card strings
// use the 0-fraction currency format; the detail numbers stay numeric for
// the tables underneath.
type DashboardSummary struct {
	MonthCollectedKg  float64                 `json:"monthCollectedKg"`
	MonthSoldKg       float64                 `json:"monthSoldKg"`
	StockTotalKg      float64                 `json:"stockTotalKg"`
	MonthPaymentTotal decimal.Decimal         `json:"monthPaymentTotal"`
	Finance           models.FinancialSummary `json:"finance"`
	Cards             map[string]string       `json:"cards"`
}

// Dashboard assembles the summary for the current month.
func (s *Service) Dashboard(ctx context.Context) (DashboardSummary, error) {
	monthStart, monthEnd := s.currentMonth()

	stocks, err := s.stock.List(ctx)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard stock: %w", err)
	}
	paymentList, err := s.payments.Report(ctx, monthStart, monthEnd)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard payments: %w", err)
	}
	financeSummary, err := s.finance.Summary(ctx)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard finance: %w", err)
	}

	summary := DashboardSummary{
		MonthPaymentTotal: payments.GrandTotal(paymentList),
		Finance:           financeSummary,
	}
	for _, stock := range stocks {
		summary.MonthCollectedKg += stock.CurrentMonth.Collected
		summary.MonthSoldKg += stock.CurrentMonth.Sold
		summary.StockTotalKg += stock.TotalKg
	}

	summary.Cards = map[string]string{
		"monthCollected": export.FormatKg(summary.MonthCollectedKg),
		"monthSold":      export.FormatKg(summary.MonthSoldKg),
		"stockTotal":     export.FormatKg(summary.StockTotalKg),
		"paymentTotal":   export.FormatAmount(summary.MonthPaymentTotal, 0),
		"cashBalance":    export.FormatAmount(financeSummary.CashBalance, 0),
		"difference":     export.FormatAmount(financeSummary.Difference, 0),
	}
	return summary, nil
}

// DailyDigest renders the short text pushed to the ops webhook every
// evening.
func (s *Service) DailyDigest(ctx context.Context) (string, error) {
	summary, err := s.Dashboard(ctx)
	if err != nil {
		return "", fmt.Errorf("daily digest: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ops digest %s\n", s.now().Format(dateLayout))
	fmt.Fprintf(&b, "Stock on hand: %s\n", summary.Cards["stockTotal"])
	fmt.Fprintf(&b, "Collected this month: %s, sold: %s\n",
		summary.Cards["monthCollected"], summary.Cards["monthSold"])
	fmt.Fprintf(&b, "Mama payments this month: %s\n", summary.Cards["paymentTotal"])
	fmt.Fprintf(&b, "Cash %s, receivable-payable difference %s",
		summary.Cards["cashBalance"], summary.Cards["difference"])
	return b.String(), nil
}

func (s *Service) currentMonth() (string, string) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return start.Format(dateLayout), end.Format(dateLayout)
}
