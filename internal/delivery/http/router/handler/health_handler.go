package handler

import (
	"net/http"

	"teamed/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Welcome greets callers of the API root.
func Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to Teamed backend")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Service is healthy")
}
