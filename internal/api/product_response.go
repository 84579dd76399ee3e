package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID        int             `json:"id" example:"1"`
	Name      string          `json:"name" example:"Keyboard"`
	Price     decimal.Decimal `json:"price" example:"1499.90"`
	IsActive  bool            `json:"is_active" example:"true"`
	CreatedAt time.Time       `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
	UpdatedAt *time.Time      `json:"updated_at"`
}
