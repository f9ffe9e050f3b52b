package api

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/AzmathBegum/finance-tracker/internal/apperr"
	"github.com/AzmathBegum/finance-tracker/internal/service"
)

// JWTMiddleware guards a route group with bearer-token authentication.
// Missing, malformed, expired and signature-invalid tokens all produce 401.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.TokenClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(401, map[string]string{"error": "missing or invalid token"})
		},
	})
}

// currentUserID resolves the caller's identity from the verified token.
// Refresh tokens are valid signatures but are not accepted here.
func currentUserID(c echo.Context) (int, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, apperr.Auth("missing token")
	}
	claims, ok := token.Claims.(*service.TokenClaims)
	if !ok || claims.TokenType != service.TokenTypeAccess {
		return 0, apperr.Auth("access token required")
	}
	return claims.UserID, nil
}
