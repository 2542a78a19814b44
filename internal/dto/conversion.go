package dto

import "github.com/wekesamabwi/theboat_backend/internal/models"

// ConvertRequest asks for a currency conversion. Amount is free text on
// purpose: a non-numeric amount degrades to zero rather than failing, and
// the response outcome reports it.
type ConvertRequest struct {
	Amount       string `json:"amount"`
	FromCurrency string `json:"fromCurrency" binding:"required,currencycode"`
	ToCurrency   string `json:"toCurrency" binding:"required,currencycode"`
}

// ConvertResponse carries the two-decimal converted amount and the advisory
// derived from it.
type ConvertResponse struct {
	ConvertedAmount string `json:"convertedAmount"`
	Advisory        string `json:"advisory"`
	Outcome         string `json:"outcome"`
	Rate            string `json:"rate"`
}

// ToConvertResponse maps a conversion result to its API representation.
func ToConvertResponse(r models.ConversionResult) ConvertResponse {
	return ConvertResponse{
		ConvertedAmount: r.ConvertedAmount,
		Advisory:        r.Advisory,
		Outcome:         string(r.Outcome),
		Rate:            r.Rate.String(),
	}
}

// ListConversionsResponse is one reverse-chronological page of the ledger.
// NextToken is empty on the last page.
type ListConversionsResponse struct {
	Conversions []models.ConversionRecord `json:"conversions"`
	NextToken   string                    `json:"nextToken,omitempty"`
}
