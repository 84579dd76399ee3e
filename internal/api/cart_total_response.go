package api

import "github.com/shopspring/decimal"

// swagger:model api.CartTotalResponse
type CartTotalResponse struct {
	Total decimal.Decimal `json:"total" example:"25.00"`
}
