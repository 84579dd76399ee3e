package api

// swagger:model api.CartItemResponse
type CartItemResponse struct {
	ID        int `json:"id" example:"1"`
	UserID    int `json:"user_id" example:"10"`
	ProductID int `json:"product_id" example:"3"`
	Quantity  int `json:"quantity" example:"2"`
}
