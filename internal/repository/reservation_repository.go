package repository

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "sync"
    "time"

    "github.com/iliyamo/table-reservation/internal/model"
    "github.com/iliyamo/table-reservation/internal/reservation"
    "github.com/iliyamo/table-reservation/internal/storage"
)

// ReservationsKey is the storage key holding the list of reservations.
const ReservationsKey = "reservations"

// ReservationRepo is the reservation store.  It exclusively owns the
// persisted list of reservations; every mutation reads the whole list,
// transforms it in memory and writes it back in one Set.  A mutex
// serialises these read-modify-write cycles within the process.
type ReservationRepo struct {
    store     storage.Store
    now       func() time.Time
    loc       *time.Location
    writeBack bool
    mu        sync.Mutex
}

// ReservationOption customises a ReservationRepo.
type ReservationOption func(*ReservationRepo)

// WithClock sets the source of the current moment used for status.
func WithClock(now func() time.Time) ReservationOption {
    return func(r *ReservationRepo) { r.now = now }
}

// WithLocation sets the time zone reservation dates and times are in.
func WithLocation(loc *time.Location) ReservationOption {
    return func(r *ReservationRepo) { r.loc = loc }
}

// WithStatusWriteBack makes Load persist the recomputed status, so stored
// records flip to concluded once read after their time has passed.
func WithStatusWriteBack(on bool) ReservationOption {
    return func(r *ReservationRepo) { r.writeBack = on }
}

// NewReservationRepo returns a ReservationRepo bound to store.
func NewReservationRepo(store storage.Store, opts ...ReservationOption) *ReservationRepo {
    r := &ReservationRepo{store: store, now: time.Now, loc: time.UTC}
    for _, o := range opts {
        o(r)
    }
    return r
}

// Load returns every persisted reservation with its status derived
// against the current moment.  When nothing has been stored yet it returns
// an empty slice and no error.
func (r *ReservationRepo) Load(ctx context.Context) ([]model.Reservation, error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    all, err := r.loadLocked(ctx)
    if err != nil {
        return nil, err
    }
    if r.writeBack && len(all) > 0 {
        if err := r.write(ctx, all, true); err != nil {
            return nil, err
        }
    }
    return all, nil
}

// Save replaces the persisted set wholesale.
func (r *ReservationRepo) Save(ctx context.Context, all []model.Reservation) error {
    r.mu.Lock()
    defer r.mu.Unlock()
    return r.write(ctx, all, false)
}

// Get returns the reservation with id.
func (r *ReservationRepo) Get(ctx context.Context, id string) (model.Reservation, error) {
    all, err := r.Load(ctx)
    if err != nil {
        return model.Reservation{}, err
    }
    for _, res := range all {
        if res.ID == id {
            return res, nil
        }
    }
    return model.Reservation{}, ErrNotFound
}

// Add appends res.  It fails with ErrConflict when another reservation
// holds the same date, time and table; nothing is written in that case.
func (r *ReservationRepo) Add(ctx context.Context, res model.Reservation) (model.Reservation, error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    all, err := r.loadLocked(ctx)
    if err != nil {
        return model.Reservation{}, err
    }
    if !reservation.IsAvailable(res.Date, res.Time, res.TableNumber, all, "") {
        return model.Reservation{}, ErrConflict
    }
    if res.Status, err = r.status(res); err != nil {
        return model.Reservation{}, err
    }
    all = append(all, res)
    if err := r.write(ctx, all, false); err != nil {
        return model.Reservation{}, err
    }
    return res, nil
}

// Update replaces the record with res.ID.  A changed slot is checked
// against every other reservation.
func (r *ReservationRepo) Update(ctx context.Context, res model.Reservation) (model.Reservation, error) {
    return r.Modify(ctx, res.ID, func(model.Reservation) (model.Reservation, error) { return res, nil })
}

// Modify replaces the reservation id with the result of edit, which
// receives the stored record with its status derived.  The whole cycle
// runs under the store lock, so edit sees the latest state; an error from
// edit aborts without writing.  The ID is kept and the new slot is
// checked against every other reservation.
func (r *ReservationRepo) Modify(ctx context.Context, id string, edit func(existing model.Reservation) (model.Reservation, error)) (model.Reservation, error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    all, err := r.loadLocked(ctx)
    if err != nil {
        return model.Reservation{}, err
    }
    idx := indexOf(all, id)
    if idx < 0 {
        return model.Reservation{}, ErrNotFound
    }
    res, err := edit(all[idx])
    if err != nil {
        return model.Reservation{}, err
    }
    res.ID = id
    if !reservation.IsAvailable(res.Date, res.Time, res.TableNumber, all, id) {
        return model.Reservation{}, ErrConflict
    }
    if res.Status, err = r.status(res); err != nil {
        return model.Reservation{}, err
    }
    all[idx] = res
    if err := r.write(ctx, all, false); err != nil {
        return model.Reservation{}, err
    }
    return res, nil
}

// Remove deletes the reservation with id.
func (r *ReservationRepo) Remove(ctx context.Context, id string) error {
    r.mu.Lock()
    defer r.mu.Unlock()
    all, err := r.loadLocked(ctx)
    if err != nil {
        return err
    }
    idx := indexOf(all, id)
    if idx < 0 {
        return ErrNotFound
    }
    all = append(all[:idx], all[idx+1:]...)
    return r.write(ctx, all, false)
}

func (r *ReservationRepo) loadLocked(ctx context.Context) ([]model.Reservation, error) {
    raw, err := r.store.Get(ctx, ReservationsKey)
    if errors.Is(err, storage.ErrKeyNotFound) {
        return []model.Reservation{}, nil
    }
    if err != nil {
        return nil, fmt.Errorf("load reservations: %w", err)
    }
    var all []model.Reservation
    if err := json.Unmarshal(raw, &all); err != nil {
        return nil, fmt.Errorf("%w: reservations: %v", ErrCorruptRecord, err)
    }
    if all == nil {
        all = []model.Reservation{}
    }
    for i := range all {
        st, err := r.status(all[i])
        if err != nil {
            return nil, fmt.Errorf("%w: reservation %s: %v", ErrCorruptRecord, all[i].ID, err)
        }
        all[i].Status = st
    }
    return all, nil
}

func (r *ReservationRepo) status(res model.Reservation) (model.Status, error) {
    return reservation.DeriveStatus(res.Date, res.Time, r.now(), r.loc)
}

// write persists all.  The derived status is stripped unless keepStatus
// is set by the write-back path.
func (r *ReservationRepo) write(ctx context.Context, all []model.Reservation, keepStatus bool) error {
    out := make([]model.Reservation, len(all))
    copy(out, all)
    if !keepStatus {
        for i := range out {
            out[i].Status = ""
        }
    }
    b, err := json.Marshal(out)
    if err != nil {
        return fmt.Errorf("encode reservations: %w", err)
    }
    if err := r.store.Set(ctx, ReservationsKey, b); err != nil {
        return fmt.Errorf("save reservations: %w", err)
    }
    return nil
}

func indexOf(all []model.Reservation, id string) int {
    for i := range all {
        if all[i].ID == id {
            return i
        }
    }
    return -1
}
