package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"required" example:"Alice Ivanova"`
	Email           string `json:"email" validate:"required,email" example:"alice@example.com"`
	Phone           string `json:"phone" validate:"required" example:"+79991234567"`
	Password        string `json:"password" validate:"required" example:"Password1!"`
	PasswordConfirm string `json:"password_confirm" validate:"required" example:"Password1!"`
}
