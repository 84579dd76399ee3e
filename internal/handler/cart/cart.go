// File: internal/handler/cart/cart.go
package cart

import (
	"errors"
	"net/http"
	"strconv"

	"shopping-service/internal/api"
	"shopping-service/internal/database"
	"shopping-service/internal/middleware"
	"shopping-service/internal/model"
	"shopping-service/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	getProductByID = store.GetProductByID
	addCartItem    = store.AddCartItem
	removeCartItem = store.RemoveCartItem
	clearCart      = store.ClearCart
	listCartItems  = store.ListCartItems
	cartTotal      = store.CartTotal
)

// currentUser 取出中介層放進 context 的使用者。
func currentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*model.User)
	if !ok || user == nil {
		return nil, errors.New("missing authenticated user")
	}
	return user, nil
}

func toResponse(item *model.CartItem) api.CartItemResponse {
	return api.CartItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
}

// @Summary     Add a product to the cart
// @Description 加入商品到購物車；同一商品重複加入會累加數量
// @Tags        cart
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body api.AddCartItemRequest true "商品與數量"
// @Success     200 {object} api.CartItemResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cart/add [post]
func AddCartItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}

		var req api.AddCartItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		if _, err := getProductByID(c.Request().Context(), db, req.ProductID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		item, err := addCartItem(c.Request().Context(), db, user.ID, req.ProductID, req.Quantity)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(item))
	}
}

// @Summary     Remove a product from the cart
// @Description 自購物車移除整列商品
// @Tags        cart
// @Produce     json
// @Security    BearerAuth
// @Param       product_id query int true "商品 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cart/remove [delete]
func RemoveCartItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}

		productID, err := strconv.Atoi(c.QueryParam("product_id"))
		if err != nil || productID <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "product_id: must be a positive integer"})
		}

		if err := removeCartItem(c.Request().Context(), db, user.ID, productID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "cart item not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "cart item removed"})
	}
}

// @Summary     Clear the cart
// @Description 清空購物車並回報移除筆數
// @Tags        cart
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} api.CartClearedResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cart/clear [delete]
func ClearCartHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}

		removed, err := clearCart(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.CartClearedResponse{Removed: removed})
	}
}

// @Summary     List cart items
// @Description 列出目前使用者的購物車項目
// @Tags        cart
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  api.CartItemResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cart/items [get]
func ListCartItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}

		items, err := listCartItems(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.CartItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, toResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Cart total
// @Description 計算購物車目前總金額；失聯的項目不列入計算
// @Tags        cart
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} api.CartTotalResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cart/total [get]
func CartTotalHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}

		total, err := cartTotal(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.CartTotalResponse{Total: total})
	}
}
