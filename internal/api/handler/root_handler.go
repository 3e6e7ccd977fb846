package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Hello handles GET /.
func Hello(c echo.Context) error {
	return c.String(http.StatusOK, "Hello from Go + MongoDB!")
}

// ConnectionCheck handles GET /testconnection, used by the mobile app to
// probe reachability. The body is a JSON string.
func ConnectionCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, "Connection OK")
}
