// File: internal/model/cart.go
package model

// CartItem 代表購物車中的一列商品，(user_id, product_id) 為唯一鍵。
type CartItem struct {
	ID        int `db:"id" json:"id"`
	UserID    int `db:"user_id" json:"user_id"`
	ProductID int `db:"product_id" json:"product_id"`
	Quantity  int `db:"quantity" json:"quantity"`
}
