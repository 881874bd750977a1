package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"zerowastechef/internal/auth"
)

// accountID resolves the authenticated account from the JWT set by the auth
// middleware. Handlers behind the secured group always have it; a missing or
// malformed token means the gate was bypassed and the request is rejected.
func accountID(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.AccountID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return claims.AccountID, nil
}
