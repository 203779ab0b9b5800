package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Paper-type codes tracked in the store.
const (
	PaperMixed    = "mixed"
	PaperSW       = "sw"
	PaperSC       = "sc"
	PaperCarton   = "carton"
	PaperNP       = "np"
	PaperCard     = "card"
	PaperMagazine = "magazine"
	PaperPlastic  = "plastic"
	PaperBoxfile  = "boxfile"
	PaperMetal    = "metal"
	PaperBook     = "book"
)

// PaperTypeNames maps type codes to their display names.
var PaperTypeNames = map[string]string{
	PaperMixed:    "Mixed Paper",
	PaperSW:       "Sorted White",
	PaperSC:       "Sorted Colored",
	PaperCarton:   "Carton",
	PaperNP:       "Newspaper",
	PaperCard:     "Card",
	PaperMagazine: "Magazine",
	PaperPlastic:  "Plastic",
	PaperBoxfile:  "Box File",
	PaperMetal:    "Metal",
	PaperBook:     "Book",
}

// MonthActivity tracks kg moved through a stock item in the current month.
type MonthActivity struct {
	Collected float64 `bson:"collected" json:"collected"`
	Sold      float64 `bson:"sold" json:"sold"`
}

// StoreInventory is the stock snapshot for one paper type.
type StoreInventory struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type         string             `bson:"type" json:"type"`
	Name         string             `bson:"name" json:"name"`
	TotalKg      float64            `bson:"total_kg" json:"totalKg"`
	TotalBags    float64            `bson:"total_bags" json:"totalBags"`
	CurrentMonth MonthActivity      `bson:"current_month" json:"currentMonth"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// InventoryItem is one line of a collection intake or sale request.
type InventoryItem struct {
	Type     string  `json:"type" binding:"required"`
	KgAmount float64 `json:"kgAmount"`
}

// SortRequest moves weight out of the mixed stock into sorted grades. The
// split amounts must sum to exactly MixedKg.
type SortRequest struct {
	MixedKg float64 `json:"mixedKg"`
	SW      float64 `json:"sw"`
	SC      float64 `json:"sc"`
	Carton  float64 `json:"carton"`
	NP      float64 `json:"np"`
	Date    string  `json:"date"`
}

// SaleRecord is a persisted inventory sale.
type SaleRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BuyerName   string             `bson:"buyer_name" json:"buyerName"`
	Items       []SaleItem         `bson:"items" json:"items"`
	TotalAmount float64            `bson:"total_amount" json:"totalAmount"`
	Date        string             `bson:"date" json:"date"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// SaleItem is one sold line: paper type, weight and agreed price.
type SaleItem struct {
	Type      string  `bson:"type" json:"type" binding:"required"`
	KgAmount  float64 `bson:"kg_amount" json:"kgAmount"`
	UnitPrice float64 `bson:"unit_price" json:"unitPrice"`
	Amount    float64 `bson:"amount" json:"amount"`
}
