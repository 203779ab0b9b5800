// Package export renders payment reports into display rows, CSV, XLSX and
// an optional Google Sheets handoff for the accountant.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
)

// Publisher pushes report rows to an external spreadsheet.
type Publisher interface {
	AppendRows(ctx context.Context, sheetRange string, rows [][]any) error
}

// Service renders and publishes exports. The publisher is optional; when
// nil, PublishPayments reports the feature as disabled.
type Service struct {
	publisher Publisher
	logger    *zap.Logger
}

// NewService wires an export service.
func NewService(publisher Publisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{publisher: publisher, logger: logger}
}

var paymentColumns = []any{
	"Mama ID", "Name", "Account Number", "With Tube", "Without Tube",
	"Total Quantity", "Working Days", "Total Amount (" + CurrencyLabel + ")",
}

// PaymentRows turns a payment report into the literal export matrix: a
// title block, the column header, one row per mama and a trailing totals
// row summed over the body rows.
func PaymentRows(startDate, endDate string, paymentList []models.MamaPayment) [][]any {
	rows := [][]any{
		{"Mama Payment Report"},
		{"Period:", fmt.Sprintf("%s to %s", startDate, endDate)},
		{},
		paymentColumns,
	}

	var withTube, withoutTube, quantity float64
	amount := decimal.Zero
	for _, p := range paymentList {
		rows = append(rows, []any{
			p.MamaID, p.MamaName, p.AccountNumber,
			p.TotalWithTube, p.TotalWithoutTube, p.TotalQuantity,
			p.WorkingDays, p.TotalAmount.StringFixed(2),
		})
		withTube += p.TotalWithTube
		withoutTube += p.TotalWithoutTube
		quantity += p.TotalQuantity
		amount = amount.Add(p.TotalAmount)
	}

	rows = append(rows, []any{
		"", "", "Total", withTube, withoutTube, quantity, "", amount.StringFixed(2),
	})
	return rows
}

// WriteCSV serializes an export matrix as CSV.
func WriteCSV(w io.Writer, rows [][]any) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	for _, row := range rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = cellString(cell)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return writer.Error()
}

// WriteXLSX serializes an export matrix as a single-sheet workbook.
func WriteXLSX(w io.Writer, sheetName string, rows [][]any) error {
	book := excelize.NewFile()
	defer func() { _ = book.Close() }()

	index, err := book.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetName, err)
	}
	book.SetActiveSheet(index)
	if err := book.DeleteSheet("Sheet1"); err != nil && sheetName != "Sheet1" {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell reference for row %d: %w", i+1, err)
		}
		if err := book.SetSheetRow(sheetName, cellRef, &row); err != nil {
			return fmt.Errorf("write sheet row %d: %w", i+1, err)
		}
	}

	if err := book.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SheetsEnabled reports whether a spreadsheet target is configured.
func (s *Service) SheetsEnabled() bool {
	return s.publisher != nil
}

// PublishPayments appends the export matrix to the configured spreadsheet.
func (s *Service) PublishPayments(ctx context.Context, startDate, endDate string, paymentList []models.MamaPayment) error {
	if s.publisher == nil {
		return fmt.Errorf("sheets publishing is not configured")
	}
	rows := PaymentRows(startDate, endDate, paymentList)
	if err := s.publisher.AppendRows(ctx, "Payments!A:H", rows); err != nil {
		return fmt.Errorf("publish payment report: %w", err)
	}
	s.logger.Info("payment report published to sheets",
		zap.String("start", startDate),
		zap.String("end", endDate),
		zap.Int("rows", len(rows)))
	return nil
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case decimal.Decimal:
		return v.StringFixed(2)
	default:
		return fmt.Sprint(v)
	}
}
