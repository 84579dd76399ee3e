// File: internal/store/cart.go
package store

import (
	"context"
	"fmt"

	"shopping-service/internal/database"
	"shopping-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AddCartItem 以單一 upsert 新增或累加購物車列，併發下不會遺失更新。
func AddCartItem(ctx context.Context, db database.DB, userID, productID, quantity int) (*model.CartItem, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO cart_items (user_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, product_id)
		 DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		 RETURNING id, user_id, product_id, quantity`,
		userID, productID, quantity,
	)
	item := &model.CartItem{}
	if err := row.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity); err != nil {
		return nil, fmt.Errorf("AddCartItem: %w", err)
	}
	return item, nil
}

// RemoveCartItem 整列刪除（非遞減）；該列不存在時回傳 pgx.ErrNoRows。
func RemoveCartItem(ctx context.Context, db database.DB, userID, productID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return fmt.Errorf("RemoveCartItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("RemoveCartItem: %w", pgx.ErrNoRows)
	}
	return nil
}

// ClearCart 刪除使用者全部購物車列並回傳刪除筆數；空車回傳 0 不算錯誤。
func ClearCart(ctx context.Context, db database.DB, userID int) (int, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("ClearCart: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ListCartItems 回傳該使用者的所有購物車列。
func ListCartItems(ctx context.Context, db database.DB, userID int) ([]model.CartItem, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, product_id, quantity
		 FROM cart_items WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCartItems: %w", err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("ListCartItems: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCartItems: %w", err)
	}
	return items, nil
}

// CartTotal 以現價計算 Σ(price × quantity)。
// inner join 使商品已被刪除的列不列入合計；空車回傳 0。
func CartTotal(ctx context.Context, db database.DB, userID int) (decimal.Decimal, error) {
	row := db.QueryRow(ctx,
		`SELECT COALESCE(SUM(p.price * c.quantity), 0)
		 FROM cart_items c
		 JOIN products p ON p.id = c.product_id
		 WHERE c.user_id = $1`,
		userID,
	)
	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("CartTotal: %w", err)
	}
	return total, nil
}

// DeleteOrphanCartItems 清掉引用已刪除商品的購物車列，回傳刪除筆數。
// 僅為背景維護，合計查詢不依賴這個清理。
func DeleteOrphanCartItems(ctx context.Context, db database.DB) (int, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM cart_items c
		 WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.id = c.product_id)`,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteOrphanCartItems: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
