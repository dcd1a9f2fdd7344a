package repository

import (
    "context"
    "errors"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/table-reservation/internal/model"
    "github.com/iliyamo/table-reservation/internal/storage"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestRepo(st storage.Store, opts ...ReservationOption) *ReservationRepo {
    opts = append([]ReservationOption{WithClock(func() time.Time { return testNow })}, opts...)
    return NewReservationRepo(st, opts...)
}

func booking(id, date, slot, table string) model.Reservation {
    return model.Reservation{
        ID: id, Date: date, Time: slot, TableNumber: table, Guests: 2,
        Location: "Sede Polanco", CustomerName: "Ana", CustomerPhone: "999",
        CreatedAt: "2025-05-01T10:00:00Z", OrderType: model.OrderTypeOrderAtVenue,
    }
}

func TestLoadEmpty(t *testing.T) {
    repo := newTestRepo(storage.NewMemory())
    all, err := repo.Load(context.Background())
    require.NoError(t, err)
    assert.NotNil(t, all)
    assert.Empty(t, all)
}

func TestAddRejectsDoubleBooking(t *testing.T) {
    ctx := context.Background()
    repo := newTestRepo(storage.NewMemory())

    _, err := repo.Add(ctx, booking("a", "2025-06-01", "19:00", "5"))
    require.NoError(t, err)

    _, err = repo.Add(ctx, booking("b", "2025-06-01", "19:00", "5"))
    assert.ErrorIs(t, err, ErrConflict)

    _, err = repo.Add(ctx, booking("c", "2025-06-01", "19:30", "5"))
    require.NoError(t, err)

    all, err := repo.Load(ctx)
    require.NoError(t, err)
    require.Len(t, all, 2)
    seen := map[[3]string]bool{}
    for _, r := range all {
        k := [3]string{r.Date, r.Time, r.TableNumber}
        assert.False(t, seen[k], "duplicate slot %v", k)
        seen[k] = true
    }
}

func TestLoadDerivesStatus(t *testing.T) {
    ctx := context.Background()
    repo := newTestRepo(storage.NewMemory())
    _, err := repo.Add(ctx, booking("past", "2025-05-31", "19:00", "1"))
    require.NoError(t, err)
    _, err = repo.Add(ctx, booking("future", "2025-06-01", "19:00", "1"))
    require.NoError(t, err)

    all, err := repo.Load(ctx)
    require.NoError(t, err)
    assert.Equal(t, model.StatusConcluded, all[0].Status)
    assert.Equal(t, model.StatusInProgress, all[1].Status)
}

func TestStatusIsNotPersisted(t *testing.T) {
    ctx := context.Background()
    st := storage.NewMemory()
    repo := newTestRepo(st)
    _, err := repo.Add(ctx, booking("past", "2025-05-31", "19:00", "1"))
    require.NoError(t, err)
    _, err = repo.Load(ctx)
    require.NoError(t, err)

    raw, err := st.Get(ctx, ReservationsKey)
    require.NoError(t, err)
    assert.NotContains(t, string(raw), `"status"`)
}

func TestStatusWriteBack(t *testing.T) {
    ctx := context.Background()
    st := storage.NewMemory()
    require.NoError(t, st.Set(ctx, ReservationsKey, []byte(
        `[{"id":"x","date":"2025-05-31","time":"19:00","tableNumber":"3","status":"en proceso"}]`)))

    repo := newTestRepo(st, WithStatusWriteBack(true))
    all, err := repo.Load(ctx)
    require.NoError(t, err)
    assert.Equal(t, model.StatusConcluded, all[0].Status)

    raw, err := st.Get(ctx, ReservationsKey)
    require.NoError(t, err)
    assert.Contains(t, string(raw), `"status":"concluded"`)
}

func TestSaveLoadIdempotent(t *testing.T) {
    ctx := context.Background()
    st := storage.NewMemory()
    repo := newTestRepo(st)
    _, err := repo.Add(ctx, booking("a", "2025-05-31", "19:00", "1"))
    require.NoError(t, err)
    _, err = repo.Add(ctx, booking("b", "2025-06-03", "20:00", "2"))
    require.NoError(t, err)

    before, err := st.Get(ctx, ReservationsKey)
    require.NoError(t, err)
    loaded, err := repo.Load(ctx)
    require.NoError(t, err)
    require.NoError(t, repo.Save(ctx, loaded))
    after, err := st.Get(ctx, ReservationsKey)
    require.NoError(t, err)
    assert.Equal(t, string(before), string(after))

    reloaded, err := repo.Load(ctx)
    require.NoError(t, err)
    assert.Equal(t, loaded, reloaded)
}

func TestUpdateIsReflexiveSafe(t *testing.T) {
    ctx := context.Background()
    repo := newTestRepo(storage.NewMemory())
    a, err := repo.Add(ctx, booking("a", "2025-06-02", "19:00", "5"))
    require.NoError(t, err)
    _, err = repo.Add(ctx, booking("b", "2025-06-02", "20:00", "5"))
    require.NoError(t, err)

    a.Guests = 6
    updated, err := repo.Update(ctx, a)
    require.NoError(t, err, "unchanged slot must not conflict with itself")
    assert.Equal(t, 6, updated.Guests)

    a.Time = "20:00"
    _, err = repo.Update(ctx, a)
    assert.ErrorIs(t, err, ErrConflict)

    _, err = repo.Update(ctx, booking("missing", "2025-06-02", "21:00", "5"))
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestModifyAbortsOnEditError(t *testing.T) {
    ctx := context.Background()
    repo := newTestRepo(storage.NewMemory())
    _, err := repo.Add(ctx, booking("a", "2025-06-02", "19:00", "5"))
    require.NoError(t, err)

    stop := errors.New("stop")
    _, err = repo.Modify(ctx, "a", func(existing model.Reservation) (model.Reservation, error) {
        assert.Equal(t, model.StatusInProgress, existing.Status)
        existing.Guests = 9
        return existing, stop
    })
    assert.ErrorIs(t, err, stop)

    got, err := repo.Get(ctx, "a")
    require.NoError(t, err)
    assert.Equal(t, 2, got.Guests)
}

func TestModifySerialisesConcurrentEdits(t *testing.T) {
    ctx := context.Background()
    repo := newTestRepo(storage.NewMemory())
    _, err := repo.Add(ctx, booking("a", "2025-06-02", "19:00", "5"))
    require.NoError(t, err)

    var wg sync.WaitGroup
    for i := 0; i < 40; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            _, err := repo.Modify(ctx, "a", func(existing model.Reservation) (model.Reservation, error) {
                existing.Guests++
                return existing, nil
            })
            assert.NoError(t, err)
        }()
    }
    wg.Wait()

    got, err := repo.Get(ctx, "a")
    require.NoError(t, err)
    assert.Equal(t, 42, got.Guests)
}

func TestRemove(t *testing.T) {
    ctx := context.Background()
    repo := newTestRepo(storage.NewMemory())
    _, err := repo.Add(ctx, booking("a", "2025-06-02", "19:00", "5"))
    require.NoError(t, err)
    _, err = repo.Add(ctx, booking("b", "2025-06-02", "20:00", "5"))
    require.NoError(t, err)

    require.NoError(t, repo.Remove(ctx, "a"))
    assert.ErrorIs(t, repo.Remove(ctx, "a"), ErrNotFound)

    _, err = repo.Get(ctx, "a")
    assert.ErrorIs(t, err, ErrNotFound)
    got, err := repo.Get(ctx, "b")
    require.NoError(t, err)
    assert.Equal(t, "20:00", got.Time)
}

func TestLoadFailsOnCorruptDate(t *testing.T) {
    ctx := context.Background()
    st := storage.NewMemory()
    require.NoError(t, st.Set(ctx, ReservationsKey, []byte(`[{"id":"x","date":"mañana","time":"19:00","tableNumber":"3"}]`)))

    _, err := newTestRepo(st).Load(ctx)
    require.Error(t, err)
    assert.True(t, errors.Is(err, ErrCorruptRecord))
    assert.Contains(t, err.Error(), "reservation x")
}

func TestLoadFailsOnUndecodableDocument(t *testing.T) {
    ctx := context.Background()
    st := storage.NewMemory()
    require.NoError(t, st.Set(ctx, ReservationsKey, []byte(`{"id":"x"}`)))
    _, err := newTestRepo(st).Load(ctx)
    assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestLoadUsesLocation(t *testing.T) {
    ctx := context.Background()
    lima := time.FixedZone("PET", -5*3600)
    repo := newTestRepo(storage.NewMemory(), WithLocation(lima))
    // 08:00 in Lima is 13:00 UTC, one hour after testNow
    _, err := repo.Add(ctx, booking("a", "2025-06-01", "08:00", "1"))
    require.NoError(t, err)
    all, err := repo.Load(ctx)
    require.NoError(t, err)
    assert.Equal(t, model.StatusInProgress, all[0].Status)
}
