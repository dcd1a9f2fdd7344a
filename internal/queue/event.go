// Package queue defines message payloads exchanged over the message broker.
package queue

// EventsQueue is the durable queue reservation and order events go to.
const EventsQueue = "restaurant.events"

// Kinds of Event.
const (
    KindReservationCreated   = "reservation.created"
    KindReservationUpdated   = "reservation.updated"
    KindReservationCancelled = "reservation.cancelled"
    KindOrderPlaced          = "order.placed"
)

// Event is published after a reservation or order change has been
// persisted.  It carries enough information for downstream consumers to
// log or notify without reading the store.
type Event struct {
    Kind          string `json:"kind"`
    ReservationID string `json:"reservation_id,omitempty"`
    OrderID       string `json:"order_id,omitempty"`
    CustomerName  string `json:"customer_name,omitempty"`
    Location      string `json:"location,omitempty"`
    Date          string `json:"date,omitempty"`
    Time          string `json:"time,omitempty"`
    TableNumber   string `json:"table_number,omitempty"`
    Guests        int    `json:"guests,omitempty"`
    OrderType     string `json:"order_type,omitempty"`
    Items         int    `json:"items"`
    Total         string `json:"total,omitempty"`
    OccurredAt    string `json:"occurred_at"`
}
