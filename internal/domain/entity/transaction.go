package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction types.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is one ledger entry of the shop's cash book.
// Date is a plain YYYY-MM-DD string, as entered by the bookkeeper.
type Transaction struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Type        string             `json:"type" bson:"type"`
	Category    string             `json:"category" bson:"category"`
	Amount      float64            `json:"amount" bson:"amount"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Date        string             `json:"date" bson:"date"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// ValidTransactionType reports whether t is income or expense.
func ValidTransactionType(t string) bool {
	return t == TransactionIncome || t == TransactionExpense
}
