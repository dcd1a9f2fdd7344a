package service

import (
    "context"
    "time"

    "github.com/google/uuid"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/table-reservation/internal/model"
    "github.com/iliyamo/table-reservation/internal/order"
    "github.com/iliyamo/table-reservation/internal/queue"
    "github.com/iliyamo/table-reservation/internal/repository"
)

// OrderService quotes carts and turns them into order snapshots.  The
// cart itself lives with the client; each call carries its full content.
type OrderService struct {
    Repo   *repository.OrderRepo
    Events queue.Publisher
    Now    func() time.Time
}

// NewOrderService wires a service.  A nil publisher disables events.
func NewOrderService(repo *repository.OrderRepo, events queue.Publisher, now func() time.Time) *OrderService {
    if repo == nil {
        panic("nil repository passed to NewOrderService")
    }
    if events == nil {
        events = queue.Noop{}
    }
    if now == nil {
        now = time.Now
    }
    return &OrderService{Repo: repo, Events: events, Now: now}
}

// Quote is a normalised cart with its totals.
type Quote struct {
    Items  []model.CartItem `json:"items"`
    Count  int              `json:"count"`
    Totals order.Totals     `json:"totals"`
}

// Quote merges same-name lines, drops zero quantities, prices every line
// from the menu and aggregates the result.
func (s *OrderService) Quote(items []model.CartItem) (Quote, error) {
    merged, err := order.MergeCart(items)
    if err != nil {
        return Quote{}, err
    }
    resolved, err := resolveCart(merged)
    if err != nil {
        return Quote{}, err
    }
    totals, err := order.AggregateCart(resolved)
    if err != nil {
        return Quote{}, err
    }
    return Quote{Items: resolved, Count: order.ItemCount(order.LineItems(resolved)), Totals: totals}, nil
}

// Checkout stores a snapshot of the quoted cart.  An empty cart yields
// order.ErrEmptyCart.
func (s *OrderService) Checkout(ctx context.Context, items []model.CartItem) (model.Order, error) {
    q, err := s.Quote(items)
    if err != nil {
        return model.Order{}, err
    }
    if len(q.Items) == 0 {
        return model.Order{}, order.ErrEmptyCart
    }
    o := model.Order{
        ID:       uuid.NewString(),
        Items:    q.Items,
        Subtotal: q.Totals.Subtotal,
        Tax:      q.Totals.Tax,
        Total:    q.Totals.Total,
        Date:     s.Now().UTC().Format(time.RFC3339),
    }
    if err := s.Repo.Append(ctx, o); err != nil {
        return model.Order{}, err
    }
    ev := queue.Event{
        Kind:       queue.KindOrderPlaced,
        OrderID:    o.ID,
        Items:      q.Count,
        Total:      o.Total.StringFixed(2),
        OccurredAt: o.Date,
    }
    if err := s.Events.Publish(ctx, ev); err != nil {
        logrus.WithError(err).WithField("order_id", o.ID).Warn("order event not published")
    }
    return o, nil
}

// List returns every stored order.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
    return s.Repo.List(ctx)
}
