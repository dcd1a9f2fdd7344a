package model

import "github.com/shopspring/decimal"

// Order is an immutable checkout snapshot persisted under the "orders"
// key.  Amounts are kept at full precision; rounding happens when they
// are presented.
type Order struct {
    ID       string          `json:"id"`
    Items    []CartItem      `json:"items"`
    Subtotal decimal.Decimal `json:"subtotal"`
    Tax      decimal.Decimal `json:"tax"`
    Total    decimal.Decimal `json:"total"`
    Date     string          `json:"date"`
}
