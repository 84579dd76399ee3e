// File: internal/database/postgres.go
package database

import (
	"context"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpoolNewWithConfig 用來建立連線池，測試可覆寫此變數。
var pgxpoolNewWithConfig = pgxpool.NewWithConfig

// NewPgxPool 建立 PostgreSQL 連線池並回傳 DB 介面。
// 每條連線建立後註冊 shopspring decimal codec，numeric 欄位可直接掃描為 decimal.Decimal。
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
