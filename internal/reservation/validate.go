package reservation

import (
    "sort"
    "strconv"
    "strings"
    "time"

    "github.com/iliyamo/table-reservation/internal/model"
)

// ValidationError collects per-field problems found in a reservation
// submitted by a client.  It is recoverable: the client fixes the fields
// and submits again.
type ValidationError struct {
    Fields map[string]string
}

func (e *ValidationError) Error() string {
    keys := make([]string, 0, len(e.Fields))
    for k := range e.Fields {
        keys = append(keys, k)
    }
    sort.Strings(keys)
    parts := make([]string, 0, len(keys))
    for _, k := range keys {
        parts = append(parts, k+": "+e.Fields[k])
    }
    return "invalid reservation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
    if e.Fields == nil {
        e.Fields = make(map[string]string)
    }
    if _, ok := e.Fields[field]; !ok {
        e.Fields[field] = msg
    }
}

// Validate checks the client-supplied fields of r.  today is the current
// calendar date in the restaurant's time zone; reservations before it are
// rejected.  It returns nil or a *ValidationError.
func Validate(r model.Reservation, today time.Time, limits Limits) error {
    ve := &ValidationError{}
    if strings.TrimSpace(r.CustomerName) == "" {
        ve.add("customerName", "is required")
    }
    if strings.TrimSpace(r.CustomerPhone) == "" {
        ve.add("customerPhone", "is required")
    }

    if r.Date == "" {
        ve.add("date", "is required")
    } else if d, err := time.Parse(DateLayout, r.Date); err != nil {
        ve.add("date", "must be YYYY-MM-DD")
    } else if d.Format(DateLayout) < today.Format(DateLayout) {
        ve.add("date", "must not be in the past")
    }

    if r.Time == "" {
        ve.add("time", "is required")
    } else if !IsTimeSlot(r.Time) {
        ve.add("time", "must be a half-hour slot between 08:00 and 22:30")
    }

    if r.Location == "" {
        ve.add("location", "is required")
    } else if !IsLocation(r.Location) {
        ve.add("location", "unknown location")
    }

    if r.TableNumber == "" {
        ve.add("tableNumber", "is required")
    } else if n, err := strconv.Atoi(r.TableNumber); err != nil || n < 1 || n > limits.TableCount {
        ve.add("tableNumber", "must be between 1 and "+strconv.Itoa(limits.TableCount))
    }

    if r.Guests < 1 || r.Guests > limits.MaxGuests {
        ve.add("guests", "must be between 1 and "+strconv.Itoa(limits.MaxGuests))
    }

    if !r.OrderType.Valid() {
        ve.add("orderType", "must be pre-order or order-at-venue")
    }

    if len(ve.Fields) > 0 {
        return ve
    }
    return nil
}
