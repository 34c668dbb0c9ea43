package models

import "encoding/json"

// Transaction is the persisted JSON shape of a transaction record, exactly as
// stored under the "transactions" key. Amount stays a bare JSON number and
// Date an ISO calendar date string; the mapping layer converts both into the
// precise domain types and normalizes legacy type names on the way in.
type Transaction struct {
	ID       int64       `json:"id"`
	Type     string      `json:"type"` // Income/Expense; legacy data may hold Credit/Debit
	Category string      `json:"category"`
	Amount   json.Number `json:"amount"`
	Date     string      `json:"date"` // YYYY-MM-DD
}
