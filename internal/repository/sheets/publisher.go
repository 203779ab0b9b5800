// Package sheets hands report rows to the accountant's Google Sheet.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mekdelawit/paperops/internal/config"
)

// Publisher appends report rows to a spreadsheet range.
type Publisher interface {
	AppendRows(ctx context.Context, sheetRange string, rows [][]any) error
}

// GoogleSheetPublisher implements Publisher with the official Sheets API.
type GoogleSheetPublisher struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetPublisher builds a publisher from service-account credentials.
func NewGoogleSheetPublisher(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetPublisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetPublisher{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendRows appends the rows below any existing data in the range.
func (p *GoogleSheetPublisher) AppendRows(ctx context.Context, sheetRange string, rows [][]any) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = row
	}

	call := p.service.Spreadsheets.Values.Append(p.spreadsheetID, sheetRange, &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append %d rows into range %s: %w", len(rows), sheetRange, err)
	}

	p.logger.Debug("rows appended to sheet",
		zap.String("range", sheetRange),
		zap.Int("rows", len(rows)))
	return nil
}
