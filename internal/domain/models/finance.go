package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BankAccount holds one account balance plus outstanding receivables and
// payables booked against it.
type BankAccount struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" binding:"required"`
	AccountNumber string             `bson:"account_number" json:"accountNumber"`
	Balance       float64            `bson:"balance" json:"balance"`
	Receivable    float64            `bson:"receivable" json:"receivable"`
	Payable       float64            `bson:"payable" json:"payable"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// FinancialSummary is the computed position across all accounts.
// Difference is receivable minus payable; CashReceivableBalance is cash on
// hand plus everything still owed to us.
type FinancialSummary struct {
	CashBalance           decimal.Decimal `json:"cashBalance"`
	TotalReceivable       decimal.Decimal `json:"totalReceivable"`
	TotalPayable          decimal.Decimal `json:"totalPayable"`
	Difference            decimal.Decimal `json:"difference"`
	CashReceivableBalance decimal.Decimal `json:"cashReceivableBalance"`
}
