package handler

import (
    "time"

    "github.com/iliyamo/table-reservation/internal/reservation"
)

func validDate(s string) bool {
    _, err := time.Parse(reservation.DateLayout, s)
    return err == nil
}
