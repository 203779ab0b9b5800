package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mekdelawit/paperops/internal/domain/numeric"
)

// SiteEvaluationReport is the flat record a field officer files after one
// site visit: raw weights per paper grade, bag and labour usage, transport
// cost, and the derived unit-cost figures computed from them. Derived fields
// are always recomputed by the evaluation service before the record is
// stored; values submitted by the client are discarded.
type SiteEvaluationReport struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SiteName     string             `bson:"site_name" json:"siteName"`
	SupplierID   string             `bson:"supplier_id" json:"supplierId"`
	EvaluatedBy  string             `bson:"evaluated_by" json:"evaluatedBy"`
	Date         string             `bson:"date" json:"date"`

	// Raw paper-grade weights in kg.
	SW        float64 `bson:"sw" json:"sw"`
	SC        float64 `bson:"sc" json:"sc"`
	Mixed     float64 `bson:"mixed" json:"mixed"`
	Carton    float64 `bson:"carton" json:"carton"`
	Card      float64 `bson:"card" json:"card"`
	Newspaper float64 `bson:"newspaper" json:"newspaper"`
	Magazine  float64 `bson:"magazine" json:"magazine"`
	Plastic   float64 `bson:"plastic" json:"plastic"`
	Boxfile   float64 `bson:"boxfile" json:"boxfile"`
	Metal     float64 `bson:"metal" json:"metal"`
	Book      float64 `bson:"book" json:"book"`

	// Bag usage.
	CollectedAmountBagNumber float64 `bson:"collected_amount_bag_number" json:"collectedAmountBagNumber"`
	BagReceivedFromStock     float64 `bson:"bag_received_from_stock" json:"bagReceivedFromStock"`
	BagUsed                  float64 `bson:"bag_used" json:"bagUsed"`
	RateOfBag                float64 `bson:"rate_of_bag" json:"rateOfBag"`

	// Labour and transport inputs.
	NoOfSortingAndCollectionLabor float64 `bson:"no_of_sorting_labor" json:"noOfSortingAndCollectionLabor"`
	SortingRate                   float64 `bson:"sorting_rate" json:"sortingRate"`
	NoOfLoadingUnloadingLabor     float64 `bson:"no_of_loading_labor" json:"noOfLoadingUnloadingLabor"`
	LoadingRate                   float64 `bson:"loading_rate" json:"loadingRate"`
	CostOfTransportation          float64 `bson:"cost_of_transportation" json:"costOfTransportation"`

	// Derived fields.
	CollectedAmountKg                float64 `bson:"collected_amount_kg" json:"collectedAmountKg"`
	BagReturn                        float64 `bson:"bag_return" json:"bagReturn"`
	AverageKgPerBag                  float64 `bson:"average_kg_per_bag" json:"averageKgPerBag"`
	CostOfBagPerKg                   float64 `bson:"cost_of_bag_per_kg" json:"costOfBagPerKg"`
	CostOfSortingAndCollectionLabour float64 `bson:"cost_of_sorting_labour" json:"costOfSortingAndCollectionLabour"`
	CostOfLabourPerKg                float64 `bson:"cost_of_labour_per_kg" json:"costOfLabourPerKg"`
	CostOfLoadingUnloading           float64 `bson:"cost_of_loading_unloading" json:"costOfLoadingUnloading"`
	CostOfLoadingLabourPerKg         float64 `bson:"cost_of_loading_labour_per_kg" json:"costOfLoadingLabourPerKg"`
	CostOfTransportPerKg             float64 `bson:"cost_of_transport_per_kg" json:"costOfTransportPerKg"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// WeightFields lists the paper-grade weight fields that sum into
// CollectedAmountKg, in their fixed report order.
var WeightFields = []string{
	"sw", "sc", "mixed", "carton", "card", "newspaper",
	"magazine", "plastic", "boxfile", "metal", "book",
}

// SiteEvaluationFromPayload normalizes a raw JSON object into a typed report.
// Every numeric field passes through the default-to-zero coercion; derived
// fields are left at zero for the evaluation service to fill in.
func SiteEvaluationFromPayload(raw map[string]any) SiteEvaluationReport {
	return SiteEvaluationReport{
		SiteName:    numeric.Text(raw["siteName"]),
		SupplierID:  numeric.Text(raw["supplierId"]),
		EvaluatedBy: numeric.Text(raw["evaluatedBy"]),
		Date:        numeric.Text(raw["date"]),

		SW:        numeric.Float(raw["sw"]),
		SC:        numeric.Float(raw["sc"]),
		Mixed:     numeric.Float(raw["mixed"]),
		Carton:    numeric.Float(raw["carton"]),
		Card:      numeric.Float(raw["card"]),
		Newspaper: numeric.Float(raw["newspaper"]),
		Magazine:  numeric.Float(raw["magazine"]),
		Plastic:   numeric.Float(raw["plastic"]),
		Boxfile:   numeric.Float(raw["boxfile"]),
		Metal:     numeric.Float(raw["metal"]),
		Book:      numeric.Float(raw["book"]),

		CollectedAmountBagNumber: numeric.Float(raw["collectedAmountBagNumber"]),
		BagReceivedFromStock:     numeric.Float(raw["bagReceivedFromStock"]),
		BagUsed:                  numeric.Float(raw["bagUsed"]),
		RateOfBag:                numeric.Float(raw["rateOfBag"]),

		NoOfSortingAndCollectionLabor: numeric.Float(raw["noOfSortingAndCollectionLabor"]),
		SortingRate:                   numeric.Float(raw["sortingRate"]),
		NoOfLoadingUnloadingLabor:     numeric.Float(raw["noOfLoadingUnloadingLabor"]),
		LoadingRate:                   numeric.Float(raw["loadingRate"]),
		CostOfTransportation:          numeric.Float(raw["costOfTransportation"]),
	}
}
