package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/table-reservation/internal/model"
    "github.com/iliyamo/table-reservation/internal/reservation"
    "github.com/iliyamo/table-reservation/internal/service"
)

// ReservationHandler exposes the reservation use cases over HTTP.
type ReservationHandler struct {
    Service *service.ReservationService
}

// NewReservationHandler panics if svc is nil.
func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
    if svc == nil {
        panic("nil service passed to NewReservationHandler")
    }
    return &ReservationHandler{Service: svc}
}

// Create handles POST /v1/reservations.  The body is a reservation without
// id, createdAt and status; it returns 201 with the stored reservation.
func (h *ReservationHandler) Create(c echo.Context) error {
    var body model.Reservation
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    v, err := h.Service.Create(c.Request().Context(), body)
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusCreated, v)
}

// List handles GET /v1/reservations.  ?date=YYYY-MM-DD filters by day and
// ?order=asc returns the oldest reservation first.
func (h *ReservationHandler) List(c echo.Context) error {
    date := strings.TrimSpace(c.QueryParam("date"))
    if date != "" && !validDate(date) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }
    f := service.ListFilter{
        Date:      date,
        Ascending: strings.EqualFold(c.QueryParam("order"), "asc"),
    }
    out, err := h.Service.List(c.Request().Context(), f)
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusOK, out)
}

// Stats handles GET /v1/reservations/stats.
func (h *ReservationHandler) Stats(c echo.Context) error {
    st, err := h.Service.Stats(c.Request().Context())
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusOK, st)
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
    v, err := h.Service.Get(c.Request().Context(), c.Param("id"))
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusOK, v)
}

// Update handles PUT /v1/reservations/:id.  The body fully replaces the
// editable fields; id and createdAt are kept.
func (h *ReservationHandler) Update(c echo.Context) error {
    var body model.Reservation
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    v, err := h.Service.Update(c.Request().Context(), c.Param("id"), body)
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusOK, v)
}

// Delete handles DELETE /v1/reservations/:id and returns 204.
func (h *ReservationHandler) Delete(c echo.Context) error {
    if err := h.Service.Delete(c.Request().Context(), c.Param("id")); err != nil {
        return writeError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// EditWindow handles GET /v1/reservations/:id/edit-window.
func (h *ReservationHandler) EditWindow(c echo.Context) error {
    w, err := h.Service.EditWindow(c.Request().Context(), c.Param("id"))
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusOK, w)
}

// Availability handles GET /v1/availability?date=&time=&table=&exclude=.
func (h *ReservationHandler) Availability(c echo.Context) error {
    date := strings.TrimSpace(c.QueryParam("date"))
    slot := strings.TrimSpace(c.QueryParam("time"))
    table := strings.TrimSpace(c.QueryParam("table"))
    if date == "" || slot == "" || table == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date, time and table are required"})
    }
    if !validDate(date) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }
    if !reservation.IsTimeSlot(slot) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown time slot"})
    }
    ok, err := h.Service.Availability(c.Request().Context(), date, slot, table, c.QueryParam("exclude"))
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "date":      date,
        "time":      slot,
        "table":     table,
        "available": ok,
    })
}
