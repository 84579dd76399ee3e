package api

// Login 可為 Email 或電話。
// swagger:model api.LoginRequest
type LoginRequest struct {
	Login    string `json:"login" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Password1!"`
}
