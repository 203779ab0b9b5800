package evaluation

import (
	"context"

	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
)

// ReportStore is the persistence surface the evaluation service needs.
type ReportStore interface {
	ListEvaluations(ctx context.Context) ([]models.SiteEvaluationReport, error)
	InsertEvaluation(ctx context.Context, report models.SiteEvaluationReport) (models.SiteEvaluationReport, error)
}

// Service validates, recomputes and stores site evaluation reports.
type Service struct {
	store      ReportStore
	calculator *Calculator
	logger     *zap.Logger
}

// NewService wires an evaluation service.
func NewService(store ReportStore, calculator *Calculator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calculator == nil {
		calculator = NewCalculator(logger)
	}
	return &Service{store: store, calculator: calculator, logger: logger}
}

// List returns all stored reports.
func (s *Service) List(ctx context.Context) ([]models.SiteEvaluationReport, error) {
	return s.store.ListEvaluations(ctx)
}

// Submit stores a report. The backend is authoritative for derived fields:
// every derived value is recomputed from the raw inputs before validation
// and persistence, regardless of what the client submitted.
func (s *Service) Submit(ctx context.Context, report models.SiteEvaluationReport) (models.SiteEvaluationReport, error) {
	s.calculator.Recalculate(&report)

	if err := s.calculator.Validate(&report); err != nil {
		return models.SiteEvaluationReport{}, err
	}

	stored, err := s.store.InsertEvaluation(ctx, report)
	if err != nil {
		return models.SiteEvaluationReport{}, err
	}

	s.logger.Info("site evaluation report stored",
		zap.String("site", report.SiteName),
		zap.String("date", report.Date),
		zap.Float64("collected_kg", report.CollectedAmountKg))
	return stored, nil
}
