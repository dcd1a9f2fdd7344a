package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/table-reservation/internal/catalog"
    "github.com/iliyamo/table-reservation/internal/reservation"
)

// CatalogHandler serves the static booking options and the menu.
type CatalogHandler struct {
    Limits reservation.Limits
}

func NewCatalogHandler(limits reservation.Limits) *CatalogHandler {
    return &CatalogHandler{Limits: limits}
}

// Catalog handles GET /v1/catalog.  It lists the bookable time slots,
// the locations, the table numbers and the guest limit.
func (h *CatalogHandler) Catalog(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "timeSlots": reservation.TimeSlots,
        "locations": reservation.Locations,
        "tables":    h.Limits.Tables(),
        "limits":    h.Limits,
    })
}

// Menu handles GET /v1/menu.  The optional ?category= query keeps only the
// category with that key; an unknown key yields 404.
func (h *CatalogHandler) Menu(c echo.Context) error {
    menu := catalog.Menu()
    key := strings.TrimSpace(c.QueryParam("category"))
    if key == "" {
        return c.JSON(http.StatusOK, menu)
    }
    for _, cat := range menu {
        if cat.Key == key {
            return c.JSON(http.StatusOK, cat)
        }
    }
    return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
}
