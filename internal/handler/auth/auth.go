// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"shopping-service/internal/api"
	"shopping-service/internal/database"
	"shopping-service/internal/model"
	"shopping-service/internal/service"
	"shopping-service/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	getUserByLogin  = store.GetUserByLogin
	createUser      = store.CreateUser
)

// uniqueViolation 代表撞上資料庫唯一性約束 (email/phone 重複)。
// 事前檢查只是較友善的錯誤路徑，約束才是權威防線。
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// loginExists 回報該 login (email 或電話) 是否已有帳號。
func loginExists(c echo.Context, db database.DB, login string) (bool, error) {
	_, err := getUserByLogin(c.Request().Context(), db, login)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return false, err
}

// @Summary     Register a new user
// @Description 驗證電話與密碼規則後建立帳號並回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := service.ValidatePhone(req.Phone); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if err := service.ValidatePassword(req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if err := service.ValidatePasswordConfirm(req.Password, req.PasswordConfirm); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		// 事前檢查 email 與 phone 是否已被使用
		for _, login := range []string{req.Email, req.Phone} {
			exists, err := loginExists(c, db, login)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
			if exists {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "user with this email or phone already exists"})
			}
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			FullName:       req.FullName,
			Email:          req.Email,
			Phone:          req.Phone,
			HashedPassword: hash,
		})
		if err != nil {
			if uniqueViolation(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "user with this email or phone already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		token, err := tokens.Issue(user.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		return c.JSON(http.StatusCreated, api.TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// @Summary     Log in
// @Description 以 Email 或電話搭配密碼登入，回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByLogin(c.Request().Context(), db, strings.ToLower(req.Login))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "incorrect email/phone or password"})
		}
		if err := comparePassword(user.HashedPassword, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "incorrect email/phone or password"})
		}

		token, err := tokens.Issue(user.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		return c.JSON(http.StatusOK, api.TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}
