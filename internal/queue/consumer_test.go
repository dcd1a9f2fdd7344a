package queue

import (
    "encoding/json"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
    line := FormatLine(Event{
        Kind: KindReservationCreated, ReservationID: "r1", CustomerName: "Ana Torres",
        Location: "Sede Polanco", Date: "2025-06-01", Time: "19:00", TableNumber: "5",
        Guests: 4, OrderType: "pre-order", Items: 3, Total: "101.48", OccurredAt: "2025-05-01T10:00:00Z",
    })
    assert.Equal(t, `[2025-05-01T10:00:00Z] Reservation created | reservation_id=r1 | customer="Ana Torres" | location="Sede Polanco" | date=2025-06-01 | time=19:00 | table=5 | guests=4 | order_type=pre-order | items=3 | total=101.48`+"\n", line)

    line = FormatLine(Event{Kind: KindOrderPlaced, OrderID: "o1", Items: 2, Total: "23.60", OccurredAt: "t"})
    assert.Equal(t, "[t] Order placed | order_id=o1 | items=2 | total=23.60\n", line)

    line = FormatLine(Event{Kind: KindReservationCancelled, ReservationID: "r1", Date: "d", Time: "h", TableNumber: "5", OccurredAt: "t"})
    assert.True(t, strings.HasPrefix(line, "[t] Reservation cancelled | reservation_id=r1"))
}

func TestEventLogAppends(t *testing.T) {
    dir := filepath.Join(t.TempDir(), "logs")
    l := EventLog{Dir: dir}
    for _, id := range []string{"o1", "o2"} {
        body, err := json.Marshal(Event{Kind: KindOrderPlaced, OrderID: id, Items: 1, Total: "11.80", OccurredAt: "t"})
        require.NoError(t, err)
        require.NoError(t, l.Handle(body))
    }
    b, err := os.ReadFile(filepath.Join(dir, "events.log"))
    require.NoError(t, err)
    lines := strings.Split(strings.TrimSpace(string(b)), "\n")
    require.Len(t, lines, 2)
    assert.Contains(t, lines[1], "order_id=o2")
}

func TestEventLogRejectsGarbage(t *testing.T) {
    assert.Error(t, EventLog{Dir: t.TempDir()}.Handle([]byte("{")))
}
