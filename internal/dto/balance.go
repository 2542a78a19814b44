package dto

// BalanceResponse is the trader's current balance; 0.0 before first write.
type BalanceResponse struct {
	Amount float64 `json:"amount"`
}

// UpdateBalanceRequest replaces the stored balance. Amount is a pointer so
// an explicit zero is distinguishable from a missing field.
type UpdateBalanceRequest struct {
	Amount *float64 `json:"amount" binding:"required,gte=0"`
}
