package reservation

import (
    "fmt"
    "time"

    "github.com/iliyamo/table-reservation/internal/model"
)

// At combines a reservation date and time slot into a moment in loc.  A
// nil loc means UTC.
func At(date, slot string, loc *time.Location) (time.Time, error) {
    if loc == nil {
        loc = time.UTC
    }
    t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+slot, loc)
    if err != nil {
        return time.Time{}, fmt.Errorf("invalid reservation moment %q %q: %w", date, slot, err)
    }
    return t, nil
}

// DeriveStatus returns StatusConcluded when the reservation moment is
// strictly before now and StatusInProgress otherwise.  Unparsable input is
// reported as an error rather than guessed.
func DeriveStatus(date, slot string, now time.Time, loc *time.Location) (model.Status, error) {
    at, err := At(date, slot, loc)
    if err != nil {
        return "", err
    }
    if at.Before(now) {
        return model.StatusConcluded, nil
    }
    return model.StatusInProgress, nil
}
