// Package reservation holds the booking rules of the restaurant: the
// fixed catalog of slots and sites, status derivation, table
// availability, the pre-order edit window and input validation.  All
// functions are pure; the current moment is always passed in.
package reservation

import "strconv"

// DateLayout is the calendar date format used by reservations.
const DateLayout = "2006-01-02"

// TimeLayout is the time-of-day format used by reservation slots.
const TimeLayout = "15:04"

// TimeSlots lists the bookable half-hour slots from 08:00 to 22:30.
var TimeSlots = buildSlots(8, 22)

// Locations lists the venue sites a reservation can be made at.
var Locations = []string{
    "Sede Centro Histórico",
    "Sede Zona Rosa",
    "Sede Polanco",
    "Sede Santa Fe",
}

const (
    DefaultMaxGuests  = 68
    DefaultTableCount = 45
)

// Limits bounds the numeric fields of a reservation.
type Limits struct {
    MaxGuests  int `json:"max_guests"`
    TableCount int `json:"table_count"`
}

// DefaultLimits returns the limits offered by the booking form.
func DefaultLimits() Limits {
    return Limits{MaxGuests: DefaultMaxGuests, TableCount: DefaultTableCount}
}

// Tables returns the table identifiers "1".."TableCount".
func (l Limits) Tables() []string {
    out := make([]string, 0, l.TableCount)
    for i := 1; i <= l.TableCount; i++ {
        out = append(out, strconv.Itoa(i))
    }
    return out
}

// IsTimeSlot reports whether s is one of TimeSlots.
func IsTimeSlot(s string) bool {
    for _, t := range TimeSlots {
        if t == s {
            return true
        }
    }
    return false
}

// IsLocation reports whether s is one of Locations.
func IsLocation(s string) bool {
    for _, l := range Locations {
        if l == s {
            return true
        }
    }
    return false
}

func buildSlots(firstHour, lastHour int) []string {
    out := make([]string, 0, (lastHour-firstHour+1)*2)
    for h := firstHour; h <= lastHour; h++ {
        hh := strconv.Itoa(h)
        if h < 10 {
            hh = "0" + hh
        }
        out = append(out, hh+":00", hh+":30")
    }
    return out
}
