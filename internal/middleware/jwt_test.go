package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bertdev/bookmarks-api/internal/middleware"
	"github.com/bertdev/bookmarks-api/internal/utils"
)

const secret = "middleware-test-secret"

func invoke(t *testing.T, authorization string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	err := middleware.JWTAuth(secret)(next)(c)
	require.NoError(t, err)
	return rec, c
}

func TestJWTAuth(t *testing.T) {
	t.Run("missing header answers 401", func(t *testing.T) {
		rec, _ := invoke(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer header answers 401", func(t *testing.T) {
		rec, _ := invoke(t, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token answers 401", func(t *testing.T) {
		rec, _ := invoke(t, "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token answers 401", func(t *testing.T) {
		tok, err := utils.NewAccessToken(secret, 7, "a@x.com", -1)
		require.NoError(t, err)
		rec, _ := invoke(t, "Bearer "+tok.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret answers 401", func(t *testing.T) {
		tok, err := utils.NewAccessToken("other-secret", 7, "a@x.com", 30)
		require.NoError(t, err)
		rec, _ := invoke(t, "Bearer "+tok.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes and injects identity", func(t *testing.T) {
		tok, err := utils.NewAccessToken(secret, 7, "a@x.com", 30)
		require.NoError(t, err)
		rec, c := invoke(t, "Bearer "+tok.Token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint64(7), c.Get("user_id"))
		assert.Equal(t, "a@x.com", c.Get("email"))
	})
}
