package dto

// TransactionRequest body for POST /api/transactions/add.
// Amount is a pointer so a missing amount can be told apart from zero.
type TransactionRequest struct {
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
	Date        string   `json:"date"` // YYYY-MM-DD
}
