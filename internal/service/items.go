package service

import (
    "fmt"

    "github.com/iliyamo/table-reservation/internal/catalog"
    "github.com/iliyamo/table-reservation/internal/model"
)

// resolve replaces the client-supplied menu fields of each item with the
// catalog entry of the same name, so prices always come from the menu.
func resolve(items []model.LineItem) ([]model.LineItem, error) {
    out := make([]model.LineItem, 0, len(items))
    for _, it := range items {
        m, ok := catalog.Find(it.Name)
        if !ok {
            return nil, fmt.Errorf("%w: %q", ErrUnknownItem, it.Name)
        }
        out = append(out, model.LineItem{MenuItem: m, Quantity: it.Quantity})
    }
    return out, nil
}

func resolveCart(items []model.CartItem) ([]model.CartItem, error) {
    out := make([]model.CartItem, 0, len(items))
    for _, it := range items {
        m, ok := catalog.Find(it.Name)
        if !ok {
            return nil, fmt.Errorf("%w: %q", ErrUnknownItem, it.Name)
        }
        it.MenuItem = m
        out = append(out, it)
    }
    return out, nil
}
