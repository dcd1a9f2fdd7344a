package reservation

import "github.com/iliyamo/table-reservation/internal/model"

// IsAvailable reports whether table is free at date and slot.  It returns
// false iff a reservation other than excludeID already holds the same
// (date, time, tableNumber) triple.  Pass the edited reservation's ID as
// excludeID so an unchanged record does not conflict with itself; pass ""
// when creating.
func IsAvailable(date, slot, table string, existing []model.Reservation, excludeID string) bool {
    for _, r := range existing {
        if excludeID != "" && r.ID == excludeID {
            continue
        }
        if r.SameSlot(date, slot, table) {
            return false
        }
    }
    return true
}
