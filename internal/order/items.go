package order

import (
    "errors"
    "fmt"

    "github.com/google/uuid"

    "github.com/iliyamo/table-reservation/internal/model"
)

// MaxQuantity caps the units of one line after merging.
const MaxQuantity = 999

// ErrInvalidQuantity is returned for negative quantities and for lines
// whose merged quantity exceeds MaxQuantity.
var ErrInvalidQuantity = errors.New("invalid quantity")

// ErrEmptyCart is returned when checking out a cart with no items.
var ErrEmptyCart = errors.New("cart is empty")

// Merge normalises a client-supplied pre-order: items sharing a name are
// combined with their quantities summed, zero-quantity items are dropped,
// and first-seen order is kept.  A negative quantity, or a merged line
// above MaxQuantity, is an error.
func Merge(items []model.LineItem) ([]model.LineItem, error) {
    out := make([]model.LineItem, 0, len(items))
    index := make(map[string]int, len(items))
    for _, it := range items {
        if it.Quantity < 0 {
            return nil, fmt.Errorf("%w: %q has %d", ErrInvalidQuantity, it.Name, it.Quantity)
        }
        if it.Quantity == 0 {
            continue
        }
        if it.Quantity > MaxQuantity {
            return nil, tooMany(it.Name)
        }
        if i, ok := index[it.Name]; ok {
            if out[i].Quantity > MaxQuantity-it.Quantity {
                return nil, tooMany(it.Name)
            }
            out[i].Quantity += it.Quantity
            continue
        }
        index[it.Name] = len(out)
        out = append(out, it)
    }
    return out, nil
}

// MergeCart applies Merge to cart items, keeping the first identifier of
// each name and assigning one where missing.
func MergeCart(items []model.CartItem) ([]model.CartItem, error) {
    out := make([]model.CartItem, 0, len(items))
    index := make(map[string]int, len(items))
    for _, it := range items {
        if it.Quantity < 0 {
            return nil, fmt.Errorf("%w: %q has %d", ErrInvalidQuantity, it.Name, it.Quantity)
        }
        if it.Quantity == 0 {
            continue
        }
        if it.Quantity > MaxQuantity {
            return nil, tooMany(it.Name)
        }
        if i, ok := index[it.Name]; ok {
            if out[i].Quantity > MaxQuantity-it.Quantity {
                return nil, tooMany(it.Name)
            }
            out[i].Quantity += it.Quantity
            continue
        }
        if it.ID == "" {
            it.ID = uuid.NewString()
        }
        index[it.Name] = len(out)
        out = append(out, it)
    }
    return out, nil
}

func tooMany(name string) error {
    return fmt.Errorf("%w: %q exceeds %d units", ErrInvalidQuantity, name, MaxQuantity)
}

// AddItem adds one unit of m to items, incrementing an existing line with
// the same name instead of duplicating it.
func AddItem(items []model.LineItem, m model.MenuItem) []model.LineItem {
    for i := range items {
        if items[i].Name == m.Name {
            out := append([]model.LineItem(nil), items...)
            out[i].Quantity++
            return out
        }
    }
    return append(append([]model.LineItem(nil), items...), model.LineItem{MenuItem: m, Quantity: 1})
}

// SetQuantity sets the quantity of the line named name.  A quantity of
// zero or less removes the line.
func SetQuantity(items []model.LineItem, name string, quantity int) []model.LineItem {
    if quantity <= 0 {
        return RemoveItem(items, name)
    }
    out := append([]model.LineItem(nil), items...)
    for i := range out {
        if out[i].Name == name {
            out[i].Quantity = quantity
        }
    }
    return out
}

// RemoveItem drops the line named name.
func RemoveItem(items []model.LineItem, name string) []model.LineItem {
    out := make([]model.LineItem, 0, len(items))
    for _, it := range items {
        if it.Name != name {
            out = append(out, it)
        }
    }
    return out
}

// ItemCount is the total number of units across items.
func ItemCount(items []model.LineItem) int {
    n := 0
    for _, it := range items {
        n += it.Quantity
    }
    return n
}

// Equal reports whether a and b hold the same names with the same
// quantities, regardless of order.
func Equal(a, b []model.LineItem) bool {
    qa := make(map[string]int, len(a))
    for _, it := range a {
        qa[it.Name] += it.Quantity
    }
    qb := make(map[string]int, len(b))
    for _, it := range b {
        qb[it.Name] += it.Quantity
    }
    if len(qa) != len(qb) {
        return false
    }
    for k, v := range qa {
        if qb[k] != v {
            return false
        }
    }
    return true
}
