package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the body into req and runs struct validation. Both
// failures are reported as 400.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// activeParam parses ?active=true|false|all. Empty and "all" yield nil.
func activeParam(c echo.Context) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam("active"))
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "active must be true, false or all")
	}
	return &v, nil
}

// messageResponse is the {message, <resource>} envelope used by mutating routes.
type messageResponse struct {
	Message string `json:"message"`
	Order   any    `json:"order,omitempty"`
	User    any    `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

// errorResponse documents the body rendered by the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}
