package api

// Quantity 省略時預設為 1。
// swagger:model api.AddCartItemRequest
type AddCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0" example:"1"`
	Quantity  int `json:"quantity" validate:"gte=0" example:"2"`
}
