package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mekdelawit/paperops/internal/domain/numeric"
)

// CollectionTransaction records one purchase of paper waste from a supplier
// during a collection session. TotalAmount is always recomputed server-side
// as Quantity * UnitPrice; the value a client sends is ignored.
type CollectionTransaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SupplierID    string             `bson:"supplier_id" json:"supplierId"`
	SupplierName  string             `bson:"supplier_name" json:"supplierName"`
	ItemName      string             `bson:"item_name" json:"itemName"`
	Quantity      float64            `bson:"quantity" json:"quantity"`
	UnitPrice     float64            `bson:"unit_price" json:"unitPrice"`
	TotalAmount   float64            `bson:"total_amount" json:"totalAmount"`
	Date          string             `bson:"date" json:"date"`
	ReceiptNumber string             `bson:"receipt_number" json:"receiptNumber"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// CollectionTransactionFromPayload normalizes a raw JSON object into a typed
// transaction. Numeric fields may arrive as strings or be absent; both coerce
// to 0 rather than failing.
func CollectionTransactionFromPayload(raw map[string]any) CollectionTransaction {
	tx := CollectionTransaction{
		SupplierID:    numeric.Text(raw["supplierId"]),
		SupplierName:  numeric.Text(raw["supplierName"]),
		ItemName:      numeric.Text(raw["itemName"]),
		Quantity:      numeric.Float(raw["quantity"]),
		UnitPrice:     numeric.Float(raw["unitPrice"]),
		Date:          numeric.Text(raw["date"]),
		ReceiptNumber: numeric.Text(raw["receiptNumber"]),
	}
	tx.TotalAmount = numeric.Round2(tx.Quantity * tx.UnitPrice)
	return tx
}
