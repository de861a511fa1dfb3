package handler

import (
	"net/http"

	"pocketratings/internal/delivery/http/response"
	"pocketratings/internal/version"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Version reports the build version.
func Version(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"version": version.Version})
}
