package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse describes the body returned for failed requests.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// JSON sends a successful JSON response, defaulting to 200.
func JSON(c echo.Context, status int, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, data)
}

// Error sends an error response using the shared error shape.
func Error(c echo.Context, status int, detail string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Detail: detail})
}
