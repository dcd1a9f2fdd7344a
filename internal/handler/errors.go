package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/table-reservation/internal/order"
    "github.com/iliyamo/table-reservation/internal/repository"
    "github.com/iliyamo/table-reservation/internal/reservation"
    "github.com/iliyamo/table-reservation/internal/service"
)

// writeError maps domain errors onto HTTP responses.  Anything unknown is
// logged and reported as a 500 without leaking details.
func writeError(c echo.Context, err error) error {
    var verr *reservation.ValidationError
    switch {
    case errors.As(err, &verr):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": verr.Fields})
    case errors.Is(err, repository.ErrNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
    case errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, echo.Map{"error": "table already reserved for that time"})
    case errors.Is(err, service.ErrEditWindowClosed), errors.Is(err, service.ErrConcluded):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    case errors.Is(err, order.ErrEmptyCart):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    case errors.Is(err, service.ErrUnknownItem), errors.Is(err, order.ErrInvalidQuantity), errors.Is(err, order.ErrInvalidPrice):
        return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
    }
    logrus.WithError(err).WithFields(logrus.Fields{
        "method": c.Request().Method,
        "path":   c.Path(),
    }).Error("request failed")
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
