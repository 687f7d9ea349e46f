package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "programador/internal/errors"
)

// ClaimsContextKey is where the middleware stores *Claims on the echo context.
const ClaimsContextKey = "claims"

// Middleware requires a valid "Authorization: Bearer <token>" header.
// Failures are reported as 401.
func (s *JWTService) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ClaimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return s.Verify(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidToken).SetInternal(err)
		},
	})
}

// ClaimsFromContext returns the claims placed by Middleware.
func ClaimsFromContext(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(ClaimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, apperrors.Authentication(ErrInvalidToken)
	}
	return claims, nil
}
