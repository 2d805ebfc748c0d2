package server

import (
	"net/http"

	"aggregat4/jwttoken/internal/logging"
	"aggregat4/jwttoken/internal/token"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// TokenContextKey is where the gate stores the verified *token.Claims.
const TokenContextKey = "token"

// RequireToken rejects any request without a bearer token that verifies against the configured key,
// issuer and validity window. All failures look the same to the client.
func (controller *Controller) RequireToken() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  TokenContextKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (any, error) {
			return controller.Verifier.Parse(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logging.Debug(logger, "Rejected request to {Path}: {Error}", c.Request().URL.Path, err)
			return c.String(http.StatusUnauthorized, "Unauthorized")
		},
	})
}

// ClaimsFromContext returns the claims stored by the gate, if any.
func ClaimsFromContext(c echo.Context) (*token.Claims, bool) {
	claims, ok := c.Get(TokenContextKey).(*token.Claims)
	return claims, ok
}
