package api

// swagger:model api.CartClearedResponse
type CartClearedResponse struct {
	Removed int `json:"removed" example:"3"`
}
