package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blognity/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, userID uint, secret string) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: userID,
		Email:  "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func invoke(mw echo.MiddlewareFunc, authHeader string) (*models.JwtCustomClaims, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var claims *models.JwtCustomClaims
	err := mw(func(c echo.Context) error {
		claims, _ = c.Get("user").(*models.JwtCustomClaims)
		return nil
	})(c)
	return claims, err
}

func TestJWTAuthUsesConfiguredSecret(t *testing.T) {
	token := signToken(t, 7, "configured-secret")

	claims, err := invoke(JWTAuthMiddleware("configured-secret"), "Bearer "+token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, uint(7), claims.UserID)

	// A token signed with any other secret is rejected
	_, err = invoke(JWTAuthMiddleware("different-secret"), "Bearer "+token)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	_, err := invoke(JWTAuthMiddleware("secret"), "")
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestOptionalJWTPassesAnonymously(t *testing.T) {
	claims, err := invoke(OptionalJWTMiddleware("secret"), "")
	require.NoError(t, err)
	assert.Nil(t, claims)

	// An invalid token degrades to anonymous instead of failing
	claims, err = invoke(OptionalJWTMiddleware("secret"), "Bearer garbage")
	require.NoError(t, err)
	assert.Nil(t, claims)
}

func TestOptionalJWTAttachesClaims(t *testing.T) {
	token := signToken(t, 9, "secret")

	claims, err := invoke(OptionalJWTMiddleware("secret"), "Bearer "+token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, uint(9), claims.UserID)
}
