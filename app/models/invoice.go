package models

// Invoice is a computed aggregate over a set of transactions. It is never
// persisted; the total is always derived from the embedded transactions.
type Invoice struct {
	ID           uint          `json:"id"`
	Customer     Customer      `json:"customer"`
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
}

// AmountTotal sums the amounts of all embedded transactions.
func (i *Invoice) AmountTotal() int {
	total := 0
	for _, t := range i.Transactions {
		total += t.Amount
	}
	return total
}
