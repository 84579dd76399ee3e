// File: internal/handler/health.go
package handler

import (
	"net/http"

	"shopping-service/internal/api"
	"shopping-service/internal/cache"
	"shopping-service/internal/database"

	"github.com/labstack/echo/v4"
)

// @Summary     Welcome
// @Tags        root
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Welcome to the shopping service"})
	}
}

// @Summary     Health check
// @Description 回報服務與相依元件 (資料庫、快取) 的連線狀態
// @Tags        root
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp := api.HealthResponse{Status: "healthy", Database: true, Cache: true}

		if err := db.Ping(c.Request().Context()); err != nil {
			resp.Status = "degraded"
			resp.Database = false
		}
		if err := rdb.Ping(c.Request().Context()).Err(); err != nil {
			resp.Status = "degraded"
			resp.Cache = false
		}
		return c.JSON(http.StatusOK, resp)
	}
}
