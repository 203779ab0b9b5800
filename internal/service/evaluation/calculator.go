// Package evaluation computes the derived cost fields of a site evaluation
// report. Each derived field is declared once in a formula table together
// with the fields it depends on; the table is kept in dependency order so a
// single pass brings the whole record up to date. Editing one raw field
// recomputes exactly the formulas reachable from it.
package evaluation

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/models"
	"github.com/mekdelawit/paperops/internal/domain/numeric"
	"github.com/mekdelawit/paperops/internal/domain/validate"
)

// Calculator recomputes derived fields on site evaluation reports.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator constructs a Calculator.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

type formula struct {
	field  string
	deps   []string
	places int
	// eval returns the new value, or ok=false when a guard (zero
	// denominator) means the field must keep its previous value.
	eval func(r *models.SiteEvaluationReport) (float64, bool)
	set  func(r *models.SiteEvaluationReport, v float64)
}

// formulas is ordered so that every formula appears after all formulas it
// depends on. Recalculate and Apply rely on this ordering.
var formulas = []formula{
	{
		field:  "collectedAmountKg",
		deps:   models.WeightFields,
		places: 2,
		eval: func(r *models.SiteEvaluationReport) (float64, bool) {
			sum := r.SW + r.SC + r.Mixed + r.Carton + r.Card + r.Newspaper +
				r.Magazine + r.Plastic + r.Boxfile + r.Metal + r.Book
			return sum, true
		},
		set: func(r *models.SiteEvaluationReport, v float64) { r.CollectedAmountKg = v },
	},
	{
		field:  "bagReturn",
		deps:   []string{"bagReceivedFromStock", "bagUsed"},
		places: 2,
		eval: func(r *models.SiteEvaluationReport) (float64, bool) {
			return math.Max(0, r.BagReceivedFromStock-r.BagUsed), true
		},
		set: func(r *models.SiteEvaluationReport, v float64) { r.BagReturn = v },
	},
	{
		field:  "averageKgPerBag",
		deps:   []string{"collectedAmountKg", "collectedAmountBagNumber"},
		places: 2,
		eval: func(r *models.SiteEvaluationReport) (float64, bool) {
			if r.CollectedAmountBagNumber <= 0 {
				return 0, false
			}
			return r.CollectedAmountKg / r.CollectedAmountBagNumber, true
		},
		set: func(r *models.SiteEvaluationReport, v float64) { r.AverageKgPerBag = v },
	},
	{
		field:  "costOfBagPerKg",
		deps:   []string{"rateOfBag", "collectedAmountBagNumber", "collectedAmountKg"},
		places: 3,
		eval: func(r *models.SiteEvaluationReport) (float64, bool) {
			if r.CollectedAmountKg <= 0 {
				return 0, false
			}
			return r.RateOfBag * r.CollectedAmountBagNumber / r.CollectedAmountKg, true
		},
		set: func(r *models.SiteEvaluationReport, v float64) { r.CostOfBagPerKg = v },
	},
	{
		field:  "costOfSortingAndCollectionLabour",
		deps:   []string{"noOfSortingAndCollectionLabor", "sortingRate", "collectedAmountKg"},
		places: 2,
		eval: func(r *models.SiteEvaluationReport) (float64, bool) {
			return r.NoOfSortingAndCollectionLabor * r.SortingRate * r.CollectedAmountKg, true
		},
		set: func(r *models.SiteEvaluationReport, v float64) { r.CostOfSortingAndCollectionLabour = v },
	},
	{
		field:  "costOfLabourPerKg",
		deps:   []string{"costOfSortingAndCollectionLabour", "collectedAmountKg"},
		places: 3,
		eval: func(r *models.SiteEvaluationReport) (float64, bool) {
			if r.CollectedAmountKg <= 0 {
				return 0, false
			}
			return r.CostOfSortingAndCollectionLabour / r.CollectedAmountKg, true
		},
		set: func(r *models.SiteEvaluationReport, v float64) { r.CostOfLabourPerKg = v },
	},
	{
		// Loading cost is headcount times rate, not scaled by weight.
		// This mirrors how the operation actually pays loaders, unlike
		// the sorting crew who are paid per kg handled.
		field:  "costOfLoadingUnloading",
		deps:   []string{"noOfLoadingUnloadingLabor", "loadingRate"},
		places: 2,
		eval: func(r *models.SiteEvaluationReport) (float64, bool) {
			return r.NoOfLoadingUnloadingLabor * r.LoadingRate, true
		},
		set: func(r *models.SiteEvaluationReport, v float64) { r.CostOfLoadingUnloading = v },
	},
	{
		field:  "costOfLoadingLabourPerKg",
		deps:   []string{"costOfLoadingUnloading", "collectedAmountKg"},
		places: 3,
		eval: func(r *models.SiteEvaluationReport) (float64, bool) {
			if r.CollectedAmountKg <= 0 {
				return 0, false
			}
			return r.CostOfLoadingUnloading / r.CollectedAmountKg, true
		},
		set: func(r *models.SiteEvaluationReport, v float64) { r.CostOfLoadingLabourPerKg = v },
	},
	{
		field:  "costOfTransportPerKg",
		deps:   []string{"costOfTransportation", "collectedAmountKg"},
		places: 3,
		eval: func(r *models.SiteEvaluationReport) (float64, bool) {
			if r.CollectedAmountKg <= 0 {
				return 0, false
			}
			return r.CostOfTransportation / r.CollectedAmountKg, true
		},
		set: func(r *models.SiteEvaluationReport, v float64) { r.CostOfTransportPerKg = v },
	},
}

// rawSetters maps editable raw fields to their assignment, keyed by the
// field names used on the wire.
var rawSetters = map[string]func(r *models.SiteEvaluationReport, v float64){
	"sw":        func(r *models.SiteEvaluationReport, v float64) { r.SW = v },
	"sc":        func(r *models.SiteEvaluationReport, v float64) { r.SC = v },
	"mixed":     func(r *models.SiteEvaluationReport, v float64) { r.Mixed = v },
	"carton":    func(r *models.SiteEvaluationReport, v float64) { r.Carton = v },
	"card":      func(r *models.SiteEvaluationReport, v float64) { r.Card = v },
	"newspaper": func(r *models.SiteEvaluationReport, v float64) { r.Newspaper = v },
	"magazine":  func(r *models.SiteEvaluationReport, v float64) { r.Magazine = v },
	"plastic":   func(r *models.SiteEvaluationReport, v float64) { r.Plastic = v },
	"boxfile":   func(r *models.SiteEvaluationReport, v float64) { r.Boxfile = v },
	"metal":     func(r *models.SiteEvaluationReport, v float64) { r.Metal = v },
	"book":      func(r *models.SiteEvaluationReport, v float64) { r.Book = v },

	"collectedAmountBagNumber": func(r *models.SiteEvaluationReport, v float64) { r.CollectedAmountBagNumber = v },
	"bagReceivedFromStock":     func(r *models.SiteEvaluationReport, v float64) { r.BagReceivedFromStock = v },
	"bagUsed":                  func(r *models.SiteEvaluationReport, v float64) { r.BagUsed = v },
	"rateOfBag":                func(r *models.SiteEvaluationReport, v float64) { r.RateOfBag = v },

	"noOfSortingAndCollectionLabor": func(r *models.SiteEvaluationReport, v float64) { r.NoOfSortingAndCollectionLabor = v },
	"sortingRate":                   func(r *models.SiteEvaluationReport, v float64) { r.SortingRate = v },
	"noOfLoadingUnloadingLabor":     func(r *models.SiteEvaluationReport, v float64) { r.NoOfLoadingUnloadingLabor = v },
	"loadingRate":                   func(r *models.SiteEvaluationReport, v float64) { r.LoadingRate = v },
	"costOfTransportation":          func(r *models.SiteEvaluationReport, v float64) { r.CostOfTransportation = v },
}

// Recalculate brings every derived field in line with the raw fields.
// Guarded formulas keep their previous value when the denominator is zero,
// so a record with no collected weight never ends up with NaN costs.
// Recalculating an already-consistent record changes nothing.
func (c *Calculator) Recalculate(r *models.SiteEvaluationReport) {
	for _, f := range formulas {
		if value, ok := f.eval(r); ok {
			f.set(r, numeric.Round(value, f.places))
		}
	}
}

// Apply sets one raw field and recomputes the derived fields reachable from
// it through the dependency table. Unknown fields are rejected.
func (c *Calculator) Apply(r *models.SiteEvaluationReport, field string, value float64) error {
	set, ok := rawSetters[field]
	if !ok {
		return fmt.Errorf("unknown raw field %q", field)
	}
	set(r, value)

	affected := map[string]bool{field: true}
	for _, f := range formulas {
		touched := false
		for _, dep := range f.deps {
			if affected[dep] {
				touched = true
				break
			}
		}
		if !touched {
			continue
		}
		if v, ok := f.eval(r); ok {
			f.set(r, numeric.Round(v, f.places))
			affected[f.field] = true
		} else {
			c.logger.Debug("derived field guarded, keeping previous value",
				zap.String("field", f.field))
		}
	}

	return nil
}

// Validate checks a report before it is stored. All violations are
// reported together.
func (c *Calculator) Validate(r *models.SiteEvaluationReport) error {
	verr := &validate.Error{}

	if r.SiteName == "" {
		verr.Add("siteName is required")
	}
	if r.Date == "" {
		verr.Add("date is required")
	}
	if r.BagUsed > r.BagReceivedFromStock {
		verr.Add("bagUsed (%v) exceeds bagReceivedFromStock (%v)", r.BagUsed, r.BagReceivedFromStock)
	}
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"sw", r.SW}, {"sc", r.SC}, {"mixed", r.Mixed}, {"carton", r.Carton},
		{"card", r.Card}, {"newspaper", r.Newspaper}, {"magazine", r.Magazine},
		{"plastic", r.Plastic}, {"boxfile", r.Boxfile}, {"metal", r.Metal}, {"book", r.Book},
	} {
		if w.value < 0 {
			verr.Add("%s weight must not be negative", w.name)
		}
	}

	return verr.Err()
}
