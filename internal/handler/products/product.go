// File: internal/handler/products/product.go
package products

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"shopping-service/internal/api"
	"shopping-service/internal/database"
	"shopping-service/internal/model"
	"shopping-service/internal/store"
	"shopping-service/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listProducts         = store.ListProducts
	createProduct        = store.CreateProduct
	updateProduct        = store.UpdateProduct
	deleteProduct        = store.DeleteProduct
	deleteOrphanCartRows = store.DeleteOrphanCartItems
)

func toResponse(p *model.Product) api.ProductResponse {
	return api.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// queryInt 讀取非負整數查詢參數，缺省時回傳 def。
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New(name + ": must be a non-negative integer")
	}
	return v, nil
}

// pathID 解析路徑中的正整數 id。
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("id: must be a positive integer")
	}
	return id, nil
}

// @Summary     List active products
// @Description 列出上架中的商品，依 id 排序並支援 skip/limit 分頁
// @Tags        products
// @Produce     json
// @Security    BearerAuth
// @Param       skip  query int false "略過筆數" default(0)
// @Param       limit query int false "最多回傳筆數" default(100)
// @Success     200 {array}  api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		skip, err := queryInt(c, "skip", 0)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		limit, err := queryInt(c, "limit", 100)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		products, err := listProducts(c.Request().Context(), db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.ProductResponse, 0, len(products))
		for i := range products {
			resp = append(resp, toResponse(&products[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a product
// @Description 建立商品，僅限管理員
// @Tags        products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body api.CreateProductRequest true "商品資料"
// @Success     201 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products [post]
func CreateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Price.IsNegative() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "price: must not be negative"})
		}

		product, err := createProduct(c.Request().Context(), db, &model.Product{
			Name:  req.Name,
			Price: req.Price,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(product))
	}
}

// @Summary     Update a product
// @Description 部分更新商品欄位，僅限管理員
// @Tags        products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                      true "商品 ID"
// @Param       request body api.UpdateProductRequest true "欲更新的欄位"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [put]
func UpdateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var req api.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if req.Price != nil && req.Price.IsNegative() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "price: must not be negative"})
		}

		product, err := updateProduct(c.Request().Context(), db, id, store.ProductPatch{
			Name:     req.Name,
			Price:    req.Price,
			IsActive: req.IsActive,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(product))
	}
}

// @Summary     Delete a product
// @Description 永久刪除商品，僅限管理員；刪除後由背景任務清掉孤兒購物車項目
// @Tags        products
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "商品 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [delete]
func DeleteProductHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := deleteProduct(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// 購物車那側沒有外鍵，事後在背景清掉失聯的項目
		logger := c.Logger()
		wp.Submit(func() {
			if _, err := deleteOrphanCartRows(context.Background(), db); err != nil {
				logger.Errorf("sweep orphan cart items: %v", err)
			}
		})

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "product deleted"})
	}
}
