package api

import "github.com/shopspring/decimal"

// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required" example:"Keyboard"`
	Price decimal.Decimal `json:"price" example:"1499.90"`
}
