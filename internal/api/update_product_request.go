package api

import "github.com/shopspring/decimal"

// 部分更新：nil 欄位不更動。
// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Name     *string          `json:"name" example:"Keyboard"`
	Price    *decimal.Decimal `json:"price" example:"999.00"`
	IsActive *bool            `json:"is_active" example:"true"`
}
