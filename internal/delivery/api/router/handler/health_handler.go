package handler

import (
	"net/http"

	"bookstore/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Hello answers the root route.
func Hello(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Hello from the bookstore", nil)
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "ok", map[string]string{"status": "healthy"})
}
