package middleware

import (
	"net/http"
	"strings"

	"shopping-service/internal/database"
	"shopping-service/internal/model"
	"shopping-service/internal/service"
	"shopping-service/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var getUserByEmail = store.GetUserByEmail

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// RequireUser 驗證 bearer token、以 subject(Email) 取回使用者並確認 is_active，
// 任一步失敗皆回 401，不向呼叫端區分原因。通過後把 *model.User 放進 context。
func RequireUser(db database.DB, tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractToken(c)
			if err != nil {
				return err
			}
			subject, err := tokens.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			user, err := getUserByEmail(c.Request().Context(), db, subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "inactive user")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireUser 之上要求 is_admin；
// 只有在身分有效但角色不足時才回 403。
func RequireAdmin(db database.DB, tokens *service.TokenService) echo.MiddlewareFunc {
	requireUser := RequireUser(db, tokens)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return requireUser(func(c echo.Context) error {
			user := c.Get(ContextUserKey).(*model.User)
			if !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}
