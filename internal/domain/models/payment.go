package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mekdelawit/paperops/internal/domain/numeric"
)

// Product type codes used on mama day entries.
const (
	ProductWithTube    = "withTube"
	ProductWithoutTube = "withoutTube"
)

// MamaProduct is one product line inside a day entry.
type MamaProduct struct {
	Type        string  `bson:"type" json:"type"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	TotalAmount float64 `bson:"total_amount" json:"totalAmount"`
}

// MamaDayEntry records what one mama produced on one day.
type MamaDayEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MamaID        int64              `bson:"mama_id" json:"mamaId"`
	MamaName      string             `bson:"mama_name" json:"mamaName"`
	AccountNumber string             `bson:"account_number" json:"accountNumber"`
	Date          string             `bson:"date" json:"date"`
	Products      []MamaProduct      `bson:"products" json:"products"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// MamaPayment is the per-mama rollup built from day entries over a period.
// It is computed on demand for payment reports and never persisted.
type MamaPayment struct {
	MamaID           int64           `json:"mamaId"`
	MamaName         string          `json:"mamaName"`
	AccountNumber    string          `json:"accountNumber"`
	TotalWithTube    float64         `json:"totalWithTube"`
	TotalWithoutTube float64         `json:"totalWithoutTube"`
	TotalQuantity    float64         `json:"totalQuantity"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	WorkingDays      int             `json:"workingDays"`
	Details          []MamaDayEntry  `json:"details"`
}

// MamaDayEntryFromPayload normalizes a raw JSON object into a typed day
// entry. Product amounts routinely arrive as strings like "50.00".
func MamaDayEntryFromPayload(raw map[string]any) MamaDayEntry {
	entry := MamaDayEntry{
		MamaID:        int64(numeric.Int(raw["mamaId"])),
		MamaName:      numeric.Text(raw["mamaName"]),
		AccountNumber: numeric.Text(raw["accountNumber"]),
		Date:          numeric.Text(raw["date"]),
	}

	products, _ := raw["products"].([]any)
	for _, p := range products {
		item, ok := p.(map[string]any)
		if !ok {
			continue
		}
		amount, _ := numeric.Money(item["totalAmount"]).Float64()
		entry.Products = append(entry.Products, MamaProduct{
			Type:        numeric.Text(item["type"]),
			Quantity:    numeric.Float(item["quantity"]),
			TotalAmount: amount,
		})
	}

	return entry
}
