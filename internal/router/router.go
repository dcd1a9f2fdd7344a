package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/table-reservation/internal/handler"
)

// Handlers bundles everything RegisterRoutes mounts.  Cache and RateLimit
// may be nil, in which case the routes are served without them.
type Handlers struct {
    Catalog      *handler.CatalogHandler
    Reservations *handler.ReservationHandler
    Orders       *handler.OrderHandler
    Cache        echo.MiddlewareFunc
    RateLimit    echo.MiddlewareFunc
}

// RegisterRoutes mounts the health check at /healthz and the API under /v1.
// Only the static catalog and menu pass through the response cache;
// reservation data changes status with the clock and is never cached.
func RegisterRoutes(e *echo.Echo, h Handlers) {
    e.GET("/healthz", handler.Health)

    v1 := e.Group("/v1")
    if h.RateLimit != nil {
        v1.Use(h.RateLimit)
    }

    var static []echo.MiddlewareFunc
    if h.Cache != nil {
        static = append(static, h.Cache)
    }
    v1.GET("/catalog", h.Catalog.Catalog, static...)
    v1.GET("/menu", h.Catalog.Menu, static...)

    v1.GET("/availability", h.Reservations.Availability)

    res := v1.Group("/reservations")
    res.GET("", h.Reservations.List)
    res.POST("", h.Reservations.Create)
    res.GET("/stats", h.Reservations.Stats)
    res.GET("/:id", h.Reservations.Get)
    res.PUT("/:id", h.Reservations.Update)
    res.DELETE("/:id", h.Reservations.Delete)
    res.GET("/:id/edit-window", h.Reservations.EditWindow)

    orders := v1.Group("/orders")
    orders.POST("/quote", h.Orders.Quote)
    orders.POST("", h.Orders.Checkout)
    orders.GET("", h.Orders.List)
}
