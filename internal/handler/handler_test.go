package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/table-reservation/internal/repository"
    "github.com/iliyamo/table-reservation/internal/reservation"
    "github.com/iliyamo/table-reservation/internal/service"
    "github.com/iliyamo/table-reservation/internal/storage"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
    e  *echo.Echo
    rh *ReservationHandler
    oh *OrderHandler
    ch *CatalogHandler
}

func newFixture() *fixture {
    now := func() time.Time { return testNow }
    st := storage.NewMemory()
    rrepo := repository.NewReservationRepo(st, repository.WithClock(now))
    orepo := repository.NewOrderRepo(st)
    return &fixture{
        e:  echo.New(),
        rh: NewReservationHandler(service.NewReservationService(rrepo, nil, now, time.UTC, reservation.DefaultLimits())),
        oh: NewOrderHandler(service.NewOrderService(orepo, nil, now)),
        ch: NewCatalogHandler(reservation.DefaultLimits()),
    }
}

// call builds a request and runs h directly; params are name/value pairs.
func (f *fixture) call(h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
    var req *http.Request
    if body != "" {
        req = httptest.NewRequest(method, target, strings.NewReader(body))
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    } else {
        req = httptest.NewRequest(method, target, nil)
    }
    rec := httptest.NewRecorder()
    c := f.e.NewContext(req, rec)
    for i := 0; i+1 < len(params); i += 2 {
        c.SetParamNames(params[i])
        c.SetParamValues(params[i+1])
    }
    _ = h(c)
    return rec
}

const bookingBody = `{"date":"2025-06-10","time":"20:00","guests":4,"location":"Sede Polanco",
"tableNumber":"12","customerName":"Rosa","customerPhone":"999888777","orderType":"pre-order",
"preOrderItems":[{"name":"Ceviche Clásico","price":"S/ 1","quantity":2}]}`

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
    t.Helper()
    var m map[string]any
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
    return m
}

func TestCreateReservation(t *testing.T) {
    f := newFixture()
    rec := f.call(f.rh.Create, http.MethodPost, "/v1/reservations", bookingBody)
    require.Equal(t, http.StatusCreated, rec.Code)

    body := decode(t, rec)
    assert.NotEmpty(t, body["id"])
    assert.Equal(t, "in-progress", body["status"])
    assert.Equal(t, true, body["canModifyMenu"])
    totals := body["preOrderTotals"].(map[string]any)
    // price comes from the menu, not from the request
    assert.Equal(t, "76.00", totals["subtotal"])
}

func TestCreateConflictAndValidation(t *testing.T) {
    f := newFixture()
    require.Equal(t, http.StatusCreated, f.call(f.rh.Create, http.MethodPost, "/v1/reservations", bookingBody).Code)

    rec := f.call(f.rh.Create, http.MethodPost, "/v1/reservations", bookingBody)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "table already reserved for that time", decode(t, rec)["error"])

    rec = f.call(f.rh.Create, http.MethodPost, "/v1/reservations", `{"date":"2025-05-01","time":"07:00"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    fields := decode(t, rec)["fields"].(map[string]any)
    assert.Contains(t, fields, "date")
    assert.Contains(t, fields, "time")
    assert.Contains(t, fields, "customerName")

    rec = f.call(f.rh.Create, http.MethodPost, "/v1/reservations", `{`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownDish(t *testing.T) {
    f := newFixture()
    body := strings.Replace(bookingBody, "Ceviche Clásico", "Pizza", 1)
    rec := f.call(f.rh.Create, http.MethodPost, "/v1/reservations", body)
    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReservationLifecycle(t *testing.T) {
    f := newFixture()
    id := decode(t, f.call(f.rh.Create, http.MethodPost, "/v1/reservations", bookingBody))["id"].(string)

    rec := f.call(f.rh.Get, http.MethodGet, "/v1/reservations/"+id, "", "id", id)
    assert.Equal(t, http.StatusOK, rec.Code)

    rec = f.call(f.rh.EditWindow, http.MethodGet, "/", "", "id", id)
    require.Equal(t, http.StatusOK, rec.Code)
    w := decode(t, rec)
    assert.Equal(t, true, w["can_modify_menu"])
    assert.EqualValues(t, 224, w["hours_until"])

    updated := strings.Replace(bookingBody, `"guests":4`, `"guests":6`, 1)
    rec = f.call(f.rh.Update, http.MethodPut, "/", updated, "id", id)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.EqualValues(t, 6, decode(t, rec)["guests"])

    rec = f.call(f.rh.Delete, http.MethodDelete, "/", "", "id", id)
    assert.Equal(t, http.StatusNoContent, rec.Code)
    rec = f.call(f.rh.Get, http.MethodGet, "/", "", "id", id)
    assert.Equal(t, http.StatusNotFound, rec.Code)
    rec = f.call(f.rh.Delete, http.MethodDelete, "/", "", "id", id)
    assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAndStats(t *testing.T) {
    f := newFixture()
    f.call(f.rh.Create, http.MethodPost, "/", bookingBody)
    f.call(f.rh.Create, http.MethodPost, "/", strings.Replace(bookingBody, "2025-06-10", "2025-06-01", 1))

    rec := f.call(f.rh.List, http.MethodGet, "/v1/reservations?order=asc", "")
    require.Equal(t, http.StatusOK, rec.Code)
    var list []map[string]any
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
    require.Len(t, list, 2)
    assert.Equal(t, "2025-06-01", list[0]["date"])

    rec = f.call(f.rh.List, http.MethodGet, "/v1/reservations?date=2025-06-10", "")
    list = nil
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
    assert.Len(t, list, 1)

    rec = f.call(f.rh.List, http.MethodGet, "/v1/reservations?date=10-06-2025", "")
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    st := decode(t, f.call(f.rh.Stats, http.MethodGet, "/", ""))
    assert.EqualValues(t, 2, st["total"])
    assert.EqualValues(t, 1, st["today"])
}

func TestAvailability(t *testing.T) {
    f := newFixture()
    id := decode(t, f.call(f.rh.Create, http.MethodPost, "/", bookingBody))["id"].(string)

    rec := f.call(f.rh.Availability, http.MethodGet, "/v1/availability?date=2025-06-10&time=20:00&table=12", "")
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, false, decode(t, rec)["available"])

    rec = f.call(f.rh.Availability, http.MethodGet, "/v1/availability?date=2025-06-10&time=20:00&table=12&exclude="+id, "")
    assert.Equal(t, true, decode(t, rec)["available"])

    rec = f.call(f.rh.Availability, http.MethodGet, "/v1/availability?date=2025-06-10&time=20:00&table=13", "")
    assert.Equal(t, true, decode(t, rec)["available"])

    rec = f.call(f.rh.Availability, http.MethodGet, "/v1/availability?date=2025-06-10", "")
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteAndCheckout(t *testing.T) {
    f := newFixture()
    cart := `{"items":[{"name":"Ceviche Clásico","quantity":1},{"name":"Causa Limeña","quantity":1},{"name":"Ceviche Clásico","quantity":0}]}`
    overflow := `{"items":[{"name":"Lomo Saltado","quantity":9223372036854775807},{"name":"Lomo Saltado","quantity":9223372036854775807}]}`

    rec := f.call(f.oh.Checkout, http.MethodPost, "/v1/orders", overflow)
    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

    rec = f.call(f.oh.Quote, http.MethodPost, "/v1/orders/quote", cart)
    require.Equal(t, http.StatusOK, rec.Code)
    q := decode(t, rec)
    assert.EqualValues(t, 2, q["count"])
    totals := q["totals"].(map[string]any)
    assert.Equal(t, "70.00", totals["subtotal"])
    assert.Equal(t, "12.60", totals["tax"])
    assert.Equal(t, "82.60", totals["total"])

    rec = f.call(f.oh.Checkout, http.MethodPost, "/v1/orders", cart)
    require.Equal(t, http.StatusCreated, rec.Code)
    placed := decode(t, rec)
    assert.Equal(t, "70.00", placed["subtotal"])
    assert.Equal(t, "12.60", placed["tax"])
    assert.Equal(t, "82.60", placed["total"])

    rec = f.call(f.oh.Checkout, http.MethodPost, "/v1/orders", `{"items":[]}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "cart is empty", decode(t, rec)["error"])

    rec = f.call(f.oh.List, http.MethodGet, "/v1/orders", "")
    var orders []map[string]any
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
    require.Len(t, orders, 1)
    assert.Equal(t, "70.00", orders[0]["subtotal"])
    assert.Equal(t, "82.60", orders[0]["total"])
}

func TestCatalogAndMenu(t *testing.T) {
    f := newFixture()
    body := decode(t, f.call(f.ch.Catalog, http.MethodGet, "/v1/catalog", ""))
    assert.Len(t, body["timeSlots"], 30)
    assert.Len(t, body["locations"], 4)
    assert.Len(t, body["tables"], 45)

    rec := f.call(f.ch.Menu, http.MethodGet, "/v1/menu?category=postres", "")
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "postres", decode(t, rec)["key"])

    rec = f.call(f.ch.Menu, http.MethodGet, "/v1/menu?category=sushi", "")
    assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
    f := newFixture()
    rec := f.call(Health, http.MethodGet, "/healthz", "")
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "ok", rec.Body.String())
}
