// Package order computes totals for carts and pre-orders and maintains
// the line-item rules shared by both: same-name items merge, a quantity
// of zero removes the item.
package order

import (
    "errors"
    "fmt"
    "strings"
    "unicode"

    "github.com/shopspring/decimal"

    "github.com/iliyamo/table-reservation/internal/model"
)

// TaxRate is the sales tax (IGV) applied on top of the subtotal.
var TaxRate = decimal.RequireFromString("0.18")

// ErrInvalidPrice is returned when a menu price string cannot be read as
// an amount.  It signals bad menu data, never a zero price.
var ErrInvalidPrice = errors.New("invalid price")

// Totals is the result of aggregating a list of line items.  Values are
// exact; call Rounded or use the JSON form for presentation.
type Totals struct {
    Subtotal decimal.Decimal
    Tax      decimal.Decimal
    Total    decimal.Decimal
}

// Rounded returns the totals rounded to two decimal places.
func (t Totals) Rounded() Totals {
    return Totals{
        Subtotal: t.Subtotal.Round(2),
        Tax:      t.Tax.Round(2),
        Total:    t.Total.Round(2),
    }
}

// MarshalJSON renders the totals as fixed two-decimal strings.
func (t Totals) MarshalJSON() ([]byte, error) {
    return []byte(fmt.Sprintf(`{"subtotal":%q,"tax":%q,"total":%q}`,
        t.Subtotal.StringFixed(2), t.Tax.StringFixed(2), t.Total.StringFixed(2))), nil
}

// ParsePrice reads a display price such as "S/ 38" or "S/ 12.50".  The
// leading currency symbol and surrounding whitespace are stripped and the
// remainder parsed as a decimal number.  Negative amounts are rejected.
func ParsePrice(s string) (decimal.Decimal, error) {
    raw := strings.TrimLeftFunc(strings.TrimSpace(s), func(r rune) bool {
        return !unicode.IsDigit(r) && r != '.' && r != '-'
    })
    raw = strings.TrimSpace(raw)
    if raw == "" {
        return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
    }
    d, err := decimal.NewFromString(raw)
    if err != nil {
        return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
    }
    if d.IsNegative() {
        return decimal.Zero, fmt.Errorf("%w: %q is negative", ErrInvalidPrice, s)
    }
    return d, nil
}

// Subtotal sums unit price times quantity over items.
func Subtotal(items []model.LineItem) (decimal.Decimal, error) {
    sum := decimal.Zero
    for _, it := range items {
        p, err := ParsePrice(it.Price)
        if err != nil {
            return decimal.Zero, fmt.Errorf("item %q: %w", it.Name, err)
        }
        sum = sum.Add(p.Mul(decimal.NewFromInt(int64(it.Quantity))))
    }
    return sum, nil
}

// Aggregate computes subtotal, tax and total for items.  An empty list
// yields zero totals.
func Aggregate(items []model.LineItem) (Totals, error) {
    sub, err := Subtotal(items)
    if err != nil {
        return Totals{}, err
    }
    tax := sub.Mul(TaxRate)
    return Totals{Subtotal: sub, Tax: tax, Total: sub.Add(tax)}, nil
}

// AggregateCart is Aggregate over cart items.
func AggregateCart(items []model.CartItem) (Totals, error) {
    return Aggregate(LineItems(items))
}

// LineItems strips the cart identifiers from items.
func LineItems(items []model.CartItem) []model.LineItem {
    out := make([]model.LineItem, 0, len(items))
    for _, it := range items {
        out = append(out, it.LineItem)
    }
    return out
}
