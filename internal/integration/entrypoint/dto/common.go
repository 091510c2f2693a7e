// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of every date in requests and responses.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Money renders an amount as a JSON number rounded to cents.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func moneyMap(m map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = Money(v)
	}
	return out
}
