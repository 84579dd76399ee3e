// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"shopping-service/internal/database"
	"shopping-service/internal/model"
)

func scanUser(row interface{ Scan(dest ...any) error }, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.HashedPassword,
		&u.IsActive,
		&u.IsAdmin,
		&u.CreatedAt,
	)
}

// GetUserByEmail 以 Email 取得使用者。
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, full_name, email, phone, hashed_password, is_active, is_admin, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// GetUserByLogin 以 Email 或電話取得使用者；兩欄位皆為 UNIQUE，至多命中一筆。
func GetUserByLogin(ctx context.Context, db database.DB, login string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, full_name, email, phone, hashed_password, is_active, is_admin, created_at
		 FROM users WHERE email = $1 OR phone = $1`,
		login,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByLogin: %w", err)
	}
	return u, nil
}

// CreateUser 新增使用者；is_active/is_admin/created_at 由資料庫預設值決定。
// email 與 phone 的唯一性由資料庫約束把關，違反時由呼叫端處理。
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (full_name, email, phone, hashed_password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_active, is_admin, created_at`,
		u.FullName,
		u.Email,
		u.Phone,
		u.HashedPassword,
	)
	if err := row.Scan(&u.ID, &u.IsActive, &u.IsAdmin, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}
