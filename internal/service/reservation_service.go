package service

import (
    "context"
    "sort"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/table-reservation/internal/model"
    "github.com/iliyamo/table-reservation/internal/order"
    "github.com/iliyamo/table-reservation/internal/queue"
    "github.com/iliyamo/table-reservation/internal/repository"
    "github.com/iliyamo/table-reservation/internal/reservation"
)

// ReservationService creates, edits, lists and cancels reservations.  The
// current moment is injected so the status and edit-window rules can be
// exercised with fixed clocks.
type ReservationService struct {
    Repo     *repository.ReservationRepo
    Events   queue.Publisher
    Now      func() time.Time
    Location *time.Location
    Limits   reservation.Limits
}

// NewReservationService wires a service.  A nil publisher disables events.
func NewReservationService(repo *repository.ReservationRepo, events queue.Publisher, now func() time.Time, loc *time.Location, limits reservation.Limits) *ReservationService {
    if repo == nil {
        panic("nil repository passed to NewReservationService")
    }
    if events == nil {
        events = queue.Noop{}
    }
    if now == nil {
        now = time.Now
    }
    if loc == nil {
        loc = time.UTC
    }
    return &ReservationService{Repo: repo, Events: events, Now: now, Location: loc, Limits: limits}
}

// View is a reservation together with the values derived for display:
// pre-order totals and the edit window, evaluated at the time of the call.
type View struct {
    model.Reservation
    PreOrderTotals *order.Totals `json:"preOrderTotals,omitempty"`
    CanModifyMenu  bool          `json:"canModifyMenu"`
    HoursUntil     int           `json:"hoursUntil"`
}

// EditWindow reports whether a reservation's pre-order may still change.
type EditWindow struct {
    ReservationID string `json:"reservation_id"`
    CanModifyMenu bool   `json:"can_modify_menu"`
    HoursUntil    int    `json:"hours_until"`
}

// Stats summarises the reservation list.
type Stats struct {
    Total      int `json:"total"`
    Today      int `json:"today"`
    InProgress int `json:"in_progress"`
    Concluded  int `json:"concluded"`
}

// ListFilter narrows and orders List.
type ListFilter struct {
    Date      string // only reservations on this date when set
    Ascending bool   // oldest first; newest first otherwise
}

func (s *ReservationService) today() time.Time { return s.Now().In(s.Location) }

// Create validates in, resolves its pre-order against the menu and stores
// it under a fresh ID.  A booked table yields repository.ErrConflict and
// nothing is stored.
func (s *ReservationService) Create(ctx context.Context, in model.Reservation) (View, error) {
    in = normalize(in)
    if err := reservation.Validate(in, s.today(), s.Limits); err != nil {
        return View{}, err
    }
    items, err := s.preOrder(in)
    if err != nil {
        return View{}, err
    }
    in.PreOrderItems = items
    in.ID = uuid.NewString()
    in.CreatedAt = s.Now().UTC().Format(time.RFC3339)

    saved, err := s.Repo.Add(ctx, in)
    if err != nil {
        return View{}, err
    }
    v, err := s.view(saved)
    if err != nil {
        return View{}, err
    }
    s.publish(ctx, queue.KindReservationCreated, v)
    return v, nil
}

// Update replaces the reservation id with in.  The ID and creation time
// are preserved.  Concluded reservations cannot be edited, and the
// pre-order may only change while the edit window of the stored
// reservation is open.  Both checks run against the stored record inside
// the repository's read-modify-write cycle.
func (s *ReservationService) Update(ctx context.Context, id string, in model.Reservation) (View, error) {
    in = normalize(in)
    saved, err := s.Repo.Modify(ctx, id, func(existing model.Reservation) (model.Reservation, error) {
        if existing.Status == model.StatusConcluded {
            return model.Reservation{}, ErrConcluded
        }
        next := in
        if next.OrderType == "" {
            next.OrderType = existing.OrderType
        }
        if err := reservation.Validate(next, s.today(), s.Limits); err != nil {
            return model.Reservation{}, err
        }
        items, err := s.preOrder(next)
        if err != nil {
            return model.Reservation{}, err
        }
        if next.OrderType != existing.OrderType || !order.Equal(items, existing.PreOrderItems) {
            at, err := reservation.At(existing.Date, existing.Time, s.Location)
            if err != nil {
                return model.Reservation{}, err
            }
            if !reservation.CanModifyMenu(at, s.Now()) {
                return model.Reservation{}, ErrEditWindowClosed
            }
        }
        next.PreOrderItems = items
        next.ID = existing.ID
        next.CreatedAt = existing.CreatedAt
        return next, nil
    })
    if err != nil {
        return View{}, err
    }
    v, err := s.view(saved)
    if err != nil {
        return View{}, err
    }
    s.publish(ctx, queue.KindReservationUpdated, v)
    return v, nil
}

// Delete removes the reservation id.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
    existing, err := s.Repo.Get(ctx, id)
    if err != nil {
        return err
    }
    if err := s.Repo.Remove(ctx, id); err != nil {
        return err
    }
    s.publish(ctx, queue.KindReservationCancelled, View{Reservation: existing})
    return nil
}

// Get returns the reservation id with its derived values.
func (s *ReservationService) Get(ctx context.Context, id string) (View, error) {
    r, err := s.Repo.Get(ctx, id)
    if err != nil {
        return View{}, err
    }
    return s.view(r)
}

// List returns reservations sorted by date and time.
func (s *ReservationService) List(ctx context.Context, f ListFilter) ([]View, error) {
    all, err := s.Repo.Load(ctx)
    if err != nil {
        return nil, err
    }
    out := make([]View, 0, len(all))
    for _, r := range all {
        if f.Date != "" && r.Date != f.Date {
            continue
        }
        v, err := s.view(r)
        if err != nil {
            return nil, err
        }
        out = append(out, v)
    }
    // date and time are fixed-width so string order is chronological
    sort.SliceStable(out, func(i, j int) bool {
        a := out[i].Date + " " + out[i].Time
        b := out[j].Date + " " + out[j].Time
        if f.Ascending {
            return a < b
        }
        return a > b
    })
    return out, nil
}

// Stats counts reservations overall, for today and per status.
func (s *ReservationService) Stats(ctx context.Context) (Stats, error) {
    all, err := s.Repo.Load(ctx)
    if err != nil {
        return Stats{}, err
    }
    today := s.today().Format(reservation.DateLayout)
    st := Stats{Total: len(all)}
    for _, r := range all {
        if r.Date == today {
            st.Today++
        }
        if r.Status == model.StatusConcluded {
            st.Concluded++
        } else {
            st.InProgress++
        }
    }
    return st, nil
}

// EditWindow evaluates the pre-order edit window of reservation id now.
func (s *ReservationService) EditWindow(ctx context.Context, id string) (EditWindow, error) {
    r, err := s.Repo.Get(ctx, id)
    if err != nil {
        return EditWindow{}, err
    }
    at, err := reservation.At(r.Date, r.Time, s.Location)
    if err != nil {
        return EditWindow{}, err
    }
    now := s.Now()
    return EditWindow{
        ReservationID: r.ID,
        CanModifyMenu: reservation.CanModifyMenu(at, now),
        HoursUntil:    reservation.HoursUntil(at, now),
    }, nil
}

// Availability checks a slot against the stored reservations.  excludeID
// is the reservation being edited, if any.
func (s *ReservationService) Availability(ctx context.Context, date, slot, table, excludeID string) (bool, error) {
    all, err := s.Repo.Load(ctx)
    if err != nil {
        return false, err
    }
    return reservation.IsAvailable(date, slot, table, all, excludeID), nil
}

// preOrder returns the merged, menu-resolved items of in.  Reservations
// ordering at the venue carry no items.
func (s *ReservationService) preOrder(in model.Reservation) ([]model.LineItem, error) {
    if in.OrderType != model.OrderTypePreOrder {
        return nil, nil
    }
    merged, err := order.Merge(in.PreOrderItems)
    if err != nil {
        return nil, err
    }
    items, err := resolve(merged)
    if err != nil {
        return nil, err
    }
    if len(items) == 0 {
        return nil, nil
    }
    return items, nil
}

func (s *ReservationService) view(r model.Reservation) (View, error) {
    v := View{Reservation: r}
    if len(r.PreOrderItems) > 0 {
        t, err := order.Aggregate(r.PreOrderItems)
        if err != nil {
            return View{}, err
        }
        v.PreOrderTotals = &t
    }
    at, err := reservation.At(r.Date, r.Time, s.Location)
    if err != nil {
        return View{}, err
    }
    now := s.Now()
    v.CanModifyMenu = r.Status != model.StatusConcluded && reservation.CanModifyMenu(at, now)
    v.HoursUntil = reservation.HoursUntil(at, now)
    return v, nil
}

func (s *ReservationService) publish(ctx context.Context, kind string, v View) {
    ev := queue.Event{
        Kind:          kind,
        ReservationID: v.ID,
        CustomerName:  v.CustomerName,
        Location:      v.Location,
        Date:          v.Date,
        Time:          v.Time,
        TableNumber:   v.TableNumber,
        Guests:        v.Guests,
        OrderType:     string(v.OrderType),
        Items:         order.ItemCount(v.PreOrderItems),
        OccurredAt:    s.Now().UTC().Format(time.RFC3339),
    }
    if v.PreOrderTotals != nil {
        ev.Total = v.PreOrderTotals.Total.StringFixed(2)
    }
    if err := s.Events.Publish(ctx, ev); err != nil {
        logrus.WithError(err).WithFields(logrus.Fields{"reservation_id": v.ID, "kind": kind}).
            Warn("reservation event not published")
    }
}

func normalize(in model.Reservation) model.Reservation {
    in.CustomerName = strings.TrimSpace(in.CustomerName)
    in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
    in.Location = strings.TrimSpace(in.Location)
    in.TableNumber = strings.TrimSpace(in.TableNumber)
    in.Date = strings.TrimSpace(in.Date)
    in.Time = strings.TrimSpace(in.Time)
    in.Status = ""
    return in
}
