package handler

import (
    "net/http" // status codes

    "github.com/labstack/echo/v4" // web framework
)

// Health is the liveness endpoint used by load balancers and monitoring.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok") // plain text 200
}
