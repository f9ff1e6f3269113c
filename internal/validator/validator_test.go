package validator_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bertdev/bookmarks-api/internal/validator"
)

type signupBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestRequestValidator(t *testing.T) {
	v := validator.New()

	t.Run("valid body passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(&signupBody{Email: "a@x.com", Password: "secretpw"}))
	})

	t.Run("bad email is a 400", func(t *testing.T) {
		err := v.Validate(&signupBody{Email: "not-an-email", Password: "secretpw"})
		require.Error(t, err)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("missing password is a 400", func(t *testing.T) {
		err := v.Validate(&signupBody{Email: "a@x.com"})
		require.Error(t, err)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}
