package handler_test

import (
	"net/http"
	"testing"

	"storefront/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Auth_Login_Me_Logout(t *testing.T) {
	c := NewTestClient(t)
	c.backend.GET("/auth/profile", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, model.Envelope[model.User]{Data: model.User{ID: "u-1", Email: "aiko@example.com", FirstName: "Aiko", LastName: "Tan"}})
	})
	c.backend.POST("/auth/logout", func(ec echo.Context) error {
		return ec.NoContent(http.StatusNoContent)
	})

	rec := c.Do(http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c.Login()

	rec = c.Do(http.MethodGet, "/", nil)
	home := mustDecode[Page[homeData]](t, rec)
	assert.True(t, home.Chrome.IsAuthenticated)
	assert.Equal(t, "Aiko Tan", home.Chrome.UserName)

	rec = c.Do(http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"email":"aiko@example.com"`)

	rec = c.Do(http.MethodPost, "/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, c.Requests("/auth/logout"), 1)

	rec = c.Do(http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_Auth_Login_Errors(t *testing.T) {
	c := NewTestClient(t)
	c.backend.POST("/auth/login", func(ec echo.Context) error {
		return ec.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
	})

	rec := c.Do(http.MethodPost, "/auth/login", map[string]string{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, c.Requests("/auth/login"))

	rec = c.Do(http.MethodPost, "/auth/login", map[string]string{"email": "aiko@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Login failed. Please check your credentials.", mustDecode[ErrorResponse](t, rec).Error)
}

func Test_Auth_Register_Validation(t *testing.T) {
	c := NewTestClient(t)
	c.backend.POST("/auth/register", func(ec echo.Context) error {
		return ec.JSON(http.StatusConflict, map[string]string{"message": "email already used"})
	})

	rec := c.Do(http.MethodPost, "/auth/register", map[string]string{
		"email": "aiko@example.com", "password": "short", "firstName": "Aiko", "lastName": "Tan",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.Do(http.MethodPost, "/auth/register", map[string]string{
		"email": "aiko@example.com", "password": "password123", "firstName": "Aiko",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, c.Requests("/auth/register"))

	rec = c.Do(http.MethodPost, "/auth/register", map[string]string{
		"email": "aiko@example.com", "password": "password123", "firstName": "Aiko", "lastName": "Tan",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Registration failed. Please try again.", mustDecode[ErrorResponse](t, rec).Error)
}
