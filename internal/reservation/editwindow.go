package reservation

import "time"

// MenuEditWindow is how far ahead of the reservation a pre-order may still
// be changed.
const MenuEditWindow = 36 * time.Hour

// HoursUntil returns the whole hours from now until at, truncated toward
// zero.  It is negative when at is in the past.
func HoursUntil(at, now time.Time) int {
    return int(at.Sub(now) / time.Hour)
}

// CanModifyMenu reports whether the pre-order of a reservation taking
// place at reservationAt may still be modified at now.
func CanModifyMenu(reservationAt, now time.Time) bool {
    return HoursUntil(reservationAt, now) >= int(MenuEditWindow/time.Hour)
}
