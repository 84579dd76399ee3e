// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"shopping-service/internal/cache"
	"shopping-service/internal/database"
	"shopping-service/internal/handler"
	"shopping-service/internal/handler/auth"
	"shopping-service/internal/handler/cart"
	"shopping-service/internal/handler/products"
	"shopping-service/internal/middleware"
	"shopping-service/internal/service"
	"shopping-service/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.TokenService, wp worker.Pool) {
	// 公開端點，不需登入
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler(db, rdb))

	api := e.Group("/api")

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db, tokens))
	api.POST("/auth/login", auth.LoginHandler(db, tokens))

	// 商品目錄：瀏覽需登入，異動僅限管理員
	api.GET("/products", products.ListProductsHandler(db), middleware.RequireUser(db, tokens))
	apiProductsAdmin := api.Group("/products", middleware.RequireAdmin(db, tokens))
	apiProductsAdmin.POST("", products.CreateProductHandler(db))
	apiProductsAdmin.PUT("/:id", products.UpdateProductHandler(db))
	apiProductsAdmin.DELETE("/:id", products.DeleteProductHandler(db, wp))

	// 購物車：一律需登入
	apiCart := api.Group("/cart", middleware.RequireUser(db, tokens))
	apiCart.POST("/add", cart.AddCartItemHandler(db))
	apiCart.DELETE("/remove", cart.RemoveCartItemHandler(db))
	apiCart.DELETE("/clear", cart.ClearCartHandler(db))
	apiCart.GET("/items", cart.ListCartItemsHandler(db))
	apiCart.GET("/total", cart.CartTotalHandler(db))
}
