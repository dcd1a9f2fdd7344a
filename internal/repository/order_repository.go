package repository

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "sync"

    "github.com/iliyamo/table-reservation/internal/model"
    "github.com/iliyamo/table-reservation/internal/storage"
)

// OrdersKey is the storage key holding checkout snapshots.
const OrdersKey = "orders"

// OrderRepo appends and lists immutable order snapshots.  Orders are
// independent of reservations.
type OrderRepo struct {
    store storage.Store
    mu    sync.Mutex
}

// NewOrderRepo returns an OrderRepo bound to store.
func NewOrderRepo(store storage.Store) *OrderRepo { return &OrderRepo{store: store} }

// List returns all orders in checkout order.
func (r *OrderRepo) List(ctx context.Context) ([]model.Order, error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    return r.list(ctx)
}

// Append stores o after the existing orders.
func (r *OrderRepo) Append(ctx context.Context, o model.Order) error {
    r.mu.Lock()
    defer r.mu.Unlock()
    all, err := r.list(ctx)
    if err != nil {
        return err
    }
    all = append(all, o)
    b, err := json.Marshal(all)
    if err != nil {
        return fmt.Errorf("encode orders: %w", err)
    }
    if err := r.store.Set(ctx, OrdersKey, b); err != nil {
        return fmt.Errorf("save orders: %w", err)
    }
    return nil
}

func (r *OrderRepo) list(ctx context.Context) ([]model.Order, error) {
    raw, err := r.store.Get(ctx, OrdersKey)
    if errors.Is(err, storage.ErrKeyNotFound) {
        return []model.Order{}, nil
    }
    if err != nil {
        return nil, fmt.Errorf("load orders: %w", err)
    }
    var all []model.Order
    if err := json.Unmarshal(raw, &all); err != nil {
        return nil, fmt.Errorf("%w: orders: %v", ErrCorruptRecord, err)
    }
    if all == nil {
        all = []model.Order{}
    }
    return all, nil
}
