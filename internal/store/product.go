// File: internal/store/product.go
package store

import (
	"context"
	"fmt"
	"strings"

	"shopping-service/internal/database"
	"shopping-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductPatch 表示部分更新：nil 欄位不更動。
type ProductPatch struct {
	Name     *string
	Price    *decimal.Decimal
	IsActive *bool
}

// IsEmpty 回報是否沒有任何欄位要更新。
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.IsActive == nil
}

func scanProduct(row interface{ Scan(dest ...any) error }, p *model.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// ListProducts 依 id 順序回傳上架中的商品分頁。
func ListProducts(ctx context.Context, db database.DB, offset, limit int) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, price, is_active, created_at, updated_at
		 FROM products WHERE is_active
		 ORDER BY id
		 OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

// GetProductByID 以 id 取得商品；下架商品也會回傳，供購物車引用查詢。
func GetProductByID(ctx context.Context, db database.DB, id int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, price, is_active, created_at, updated_at
		 FROM products WHERE id = $1`,
		id,
	)
	p := &model.Product{}
	if err := scanProduct(row, p); err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", err)
	}
	return p, nil
}

// CreateProduct 新增商品；is_active/created_at 由資料庫預設值決定。
func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, price)
		 VALUES ($1, $2)
		 RETURNING id, is_active, created_at, updated_at`,
		p.Name,
		p.Price,
	)
	if err := row.Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

// UpdateProduct 套用部分更新並回傳更新後的商品。
// 空的 patch 只讀取現況；未提供的欄位維持原值。
func UpdateProduct(ctx context.Context, db database.DB, id int, patch ProductPatch) (*model.Product, error) {
	if patch.IsEmpty() {
		return GetProductByID(ctx, db, id)
	}

	set := []string{}
	args := []any{}
	i := 1
	if patch.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", i))
		args = append(args, *patch.Name)
		i++
	}
	if patch.Price != nil {
		set = append(set, fmt.Sprintf("price = $%d", i))
		args = append(args, *patch.Price)
		i++
	}
	if patch.IsActive != nil {
		set = append(set, fmt.Sprintf("is_active = $%d", i))
		args = append(args, *patch.IsActive)
		i++
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	row := db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d
		 RETURNING id, name, price, is_active, created_at, updated_at`,
			strings.Join(set, ", "), i),
		args...,
	)
	p := &model.Product{}
	if err := scanProduct(row, p); err != nil {
		return nil, fmt.Errorf("UpdateProduct: %w", err)
	}
	return p, nil
}

// DeleteProduct 硬刪除商品；id 不存在時回傳 pgx.ErrNoRows。
func DeleteProduct(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProduct: %w", pgx.ErrNoRows)
	}
	return nil
}
