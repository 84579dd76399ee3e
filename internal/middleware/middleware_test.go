package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopping-service/internal/database"
	"shopping-service/internal/model"
	"shopping-service/internal/service"
	"shopping-service/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	getUserByEmail = store.GetUserByEmail
}

func stubUser(u *model.User, err error) {
	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		if err != nil {
			return nil, err
		}
		cp := *u
		cp.Email = email
		return &cp, nil
	}
}

func TestExtractToken(t *testing.T) {
	ctx, _ := newContext("")
	_, err := extractToken(ctx)
	require.Error(t, err)

	ctx, _ = newContext("BadHeader")
	_, err = extractToken(ctx)
	require.Error(t, err)

	ctx, _ = newContext("Bearer abc")
	tok, err := extractToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc", tok)

	// bearer 前綴大小寫不敏感
	ctx, _ = newContext("bearer abc")
	_, err = extractToken(ctx)
	require.NoError(t, err)
}

func TestRequireUser(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Minute)
	tok, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		stubUser(&model.User{ID: 2, IsActive: true}, nil)
		ctx, rec := newContext("Bearer " + tok)
		called := false
		handler := RequireUser(nil, tokens)(func(c echo.Context) error {
			called = true
			u := c.Get(ContextUserKey).(*model.User)
			require.Equal(t, 2, u.ID)
			require.Equal(t, "alice@example.com", u.Email)
			return c.String(http.StatusOK, "ok")
		})
		require.NoError(t, handler(ctx))
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, _ := newContext("")
		called := false
		err := RequireUser(nil, tokens)(func(echo.Context) error { called = true; return nil })(ctx)
		require.Error(t, err)
		require.False(t, called)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, _ := newContext("Bearer garbage")
		err := RequireUser(nil, tokens)(func(echo.Context) error { return nil })(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Cleanup(restore)
		expired := service.NewTokenService("secret", -time.Minute)
		oldTok, err := expired.Issue("alice@example.com")
		require.NoError(t, err)
		ctx, _ := newContext("Bearer " + oldTok)
		err = RequireUser(nil, tokens)(func(echo.Context) error { return nil })(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("unknown subject", func(t *testing.T) {
		t.Cleanup(restore)
		stubUser(nil, errors.New("no rows"))
		ctx, _ := newContext("Bearer " + tok)
		err := RequireUser(nil, tokens)(func(echo.Context) error { return nil })(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("inactive user", func(t *testing.T) {
		t.Cleanup(restore)
		stubUser(&model.User{ID: 2, IsActive: false}, nil)
		ctx, _ := newContext("Bearer " + tok)
		err := RequireUser(nil, tokens)(func(echo.Context) error { return nil })(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Minute)
	tok, err := tokens.Issue("admin@example.com")
	require.NoError(t, err)

	t.Run("admin ok", func(t *testing.T) {
		t.Cleanup(restore)
		stubUser(&model.User{ID: 3, IsActive: true, IsAdmin: true}, nil)
		ctx, rec := newContext("Bearer " + tok)
		called := false
		err := RequireAdmin(nil, tokens)(func(c echo.Context) error {
			called = true
			return c.String(http.StatusOK, "admin")
		})(ctx)
		require.NoError(t, err)
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("active non-admin is forbidden, not unauthorized", func(t *testing.T) {
		t.Cleanup(restore)
		stubUser(&model.User{ID: 4, IsActive: true, IsAdmin: false}, nil)
		ctx, _ := newContext("Bearer " + tok)
		called := false
		err := RequireAdmin(nil, tokens)(func(echo.Context) error { called = true; return nil })(ctx)
		require.False(t, called)
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, _ := newContext("")
		err := RequireAdmin(nil, tokens)(func(echo.Context) error { return nil })(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})
}
