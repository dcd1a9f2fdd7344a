package model

// Status is the derived lifecycle flag of a reservation.  It is computed
// from the reservation's date and time against the current moment and is
// never treated as authoritative when read back from storage.
type Status string

const (
    StatusInProgress Status = "in-progress"
    StatusConcluded  Status = "concluded"
)

// OrderType tells whether dishes are chosen ahead of the visit or at the
// table.
type OrderType string

const (
    OrderTypePreOrder     OrderType = "pre-order"
    OrderTypeOrderAtVenue OrderType = "order-at-venue"
)

// Valid reports whether t is one of the known order types.
func (t OrderType) Valid() bool {
    return t == OrderTypePreOrder || t == OrderTypeOrderAtVenue
}

// Reservation represents a table booking as persisted under the
// "reservations" key.  JSON names keep the camelCase layout written by the
// browser client so existing data can be read unchanged.
//
// Fields:
//  ID            – unique identifier assigned at creation, immutable.
//  Date          – calendar date, YYYY-MM-DD.
//  Time          – half-hour slot between 08:00 and 22:30.
//  Guests        – number of diners.
//  Location      – venue site the table belongs to.
//  TableNumber   – table identifier, unique within a (date, time) pair.
//  CustomerName  – contact name.
//  CustomerPhone – contact phone.
//  Status        – derived; empty when persisted.
//  CreatedAt     – RFC 3339 creation timestamp, immutable.
//  OrderType     – pre-order or order-at-venue.
//  PreOrderItems – dishes attached when OrderType is pre-order.
type Reservation struct {
    ID            string     `json:"id"`
    Date          string     `json:"date"`
    Time          string     `json:"time"`
    Guests        int        `json:"guests"`
    Location      string     `json:"location"`
    TableNumber   string     `json:"tableNumber"`
    CustomerName  string     `json:"customerName"`
    CustomerPhone string     `json:"customerPhone"`
    Status        Status     `json:"status,omitempty"`
    CreatedAt     string     `json:"createdAt"`
    OrderType     OrderType  `json:"orderType"`
    PreOrderItems []LineItem `json:"preOrderItems,omitempty"`
}

// SameSlot reports whether r occupies the given date, time and table.
func (r Reservation) SameSlot(date, slot, table string) bool {
    return r.Date == date && r.Time == slot && r.TableNumber == table
}
