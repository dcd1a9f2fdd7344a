package reservation

import (
    "errors"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/table-reservation/internal/model"
)

func TestTimeSlots(t *testing.T) {
    require.Len(t, TimeSlots, 30)
    assert.Equal(t, "08:00", TimeSlots[0])
    assert.Equal(t, "22:30", TimeSlots[len(TimeSlots)-1])
    assert.True(t, IsTimeSlot("19:30"))
    assert.False(t, IsTimeSlot("19:15"))
    assert.False(t, IsTimeSlot("23:00"))
}

func TestIsAvailable(t *testing.T) {
    existing := []model.Reservation{{ID: "a", Date: "2025-06-01", Time: "19:00", TableNumber: "5"}}

    assert.False(t, IsAvailable("2025-06-01", "19:00", "5", existing, ""))
    assert.True(t, IsAvailable("2025-06-01", "19:30", "5", existing, ""))
    assert.True(t, IsAvailable("2025-06-01", "19:00", "6", existing, ""))
    assert.True(t, IsAvailable("2025-06-02", "19:00", "5", existing, ""))
    assert.True(t, IsAvailable("2025-06-01", "19:00", "5", nil, ""))
}

func TestIsAvailableIgnoresOwnRecord(t *testing.T) {
    existing := []model.Reservation{
        {ID: "a", Date: "2025-06-01", Time: "19:00", TableNumber: "5"},
        {ID: "b", Date: "2025-06-01", Time: "20:00", TableNumber: "5"},
    }
    assert.True(t, IsAvailable("2025-06-01", "19:00", "5", existing, "a"))
    assert.False(t, IsAvailable("2025-06-01", "20:00", "5", existing, "a"))
}

func TestCanModifyMenu(t *testing.T) {
    now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

    assert.True(t, CanModifyMenu(now.Add(40*time.Hour), now))
    assert.False(t, CanModifyMenu(now.Add(10*time.Hour), now))
    assert.True(t, CanModifyMenu(now.Add(36*time.Hour), now))
    assert.False(t, CanModifyMenu(now.Add(36*time.Hour-time.Minute), now))
    assert.False(t, CanModifyMenu(now.Add(-48*time.Hour), now))
}

func TestHoursUntilTruncates(t *testing.T) {
    now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    assert.Equal(t, 35, HoursUntil(now.Add(35*time.Hour+59*time.Minute), now))
    assert.Equal(t, -2, HoursUntil(now.Add(-2*time.Hour-30*time.Minute), now))
    assert.Equal(t, 0, HoursUntil(now.Add(-30*time.Minute), now))
}

func validReservation() model.Reservation {
    return model.Reservation{
        Date:          "2025-06-10",
        Time:          "19:00",
        Guests:        4,
        Location:      "Sede Polanco",
        TableNumber:   "5",
        CustomerName:  "Ana Torres",
        CustomerPhone: "999888777",
        OrderType:     model.OrderTypeOrderAtVenue,
    }
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
    today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
    assert.NoError(t, Validate(validReservation(), today, DefaultLimits()))

    r := validReservation()
    r.Date = "2025-06-01"
    assert.NoError(t, Validate(r, today, DefaultLimits()), "today is bookable")
}

func TestValidateReportsFields(t *testing.T) {
    today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
    r := model.Reservation{Date: "2025-05-31", Time: "19:10", TableNumber: "46", Guests: 0, Location: "Sede Lima", OrderType: "delivery"}

    err := Validate(r, today, DefaultLimits())
    var ve *ValidationError
    require.True(t, errors.As(err, &ve))
    assert.Equal(t, "is required", ve.Fields["customerName"])
    assert.Equal(t, "is required", ve.Fields["customerPhone"])
    assert.Equal(t, "must not be in the past", ve.Fields["date"])
    assert.Contains(t, ve.Fields, "time")
    assert.Contains(t, ve.Fields, "tableNumber")
    assert.Contains(t, ve.Fields, "guests")
    assert.Equal(t, "unknown location", ve.Fields["location"])
    assert.Contains(t, ve.Fields, "orderType")
    assert.Contains(t, err.Error(), "customerName: is required")
}

func TestValidateHonoursLimits(t *testing.T) {
    today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
    r := validReservation()
    r.TableNumber = "12"
    r.Guests = 20

    err := Validate(r, today, Limits{MaxGuests: 10, TableCount: 10})
    var ve *ValidationError
    require.True(t, errors.As(err, &ve))
    assert.Equal(t, "must be between 1 and 10", ve.Fields["tableNumber"])
    assert.Equal(t, "must be between 1 and 10", ve.Fields["guests"])
}
