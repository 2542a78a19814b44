package models

// BalanceRecordID is the fixed key of the singleton balance row.
const BalanceRecordID = 0

// BalanceRecord is the single mutable durable value holding the trader's
// current balance. Exactly one logical row exists after the first write.
type BalanceRecord struct {
	ID     int64   `json:"id" db:"id"`
	Amount float64 `json:"amount" db:"amount"`
}
