package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/table-reservation/internal/model"
    "github.com/iliyamo/table-reservation/internal/service"
)

// OrderHandler quotes carts and places orders.
type OrderHandler struct {
    Service *service.OrderService
}

// NewOrderHandler panics if svc is nil.
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
    if svc == nil {
        panic("nil service passed to NewOrderHandler")
    }
    return &OrderHandler{Service: svc}
}

type cartRequest struct {
    Items []model.CartItem `json:"items"`
}

// orderResponse renders an order with its amounts rounded to two places.
// The stored snapshot keeps full precision.
type orderResponse struct {
    ID       string           `json:"id"`
    Items    []model.CartItem `json:"items"`
    Subtotal string           `json:"subtotal"`
    Tax      string           `json:"tax"`
    Total    string           `json:"total"`
    Date     string           `json:"date"`
}

func presentOrder(o model.Order) orderResponse {
    return orderResponse{
        ID:       o.ID,
        Items:    o.Items,
        Subtotal: o.Subtotal.StringFixed(2),
        Tax:      o.Tax.StringFixed(2),
        Total:    o.Total.StringFixed(2),
        Date:     o.Date,
    }
}

// Quote handles POST /v1/orders/quote.  It returns the normalised cart
// priced from the menu without storing anything.
func (h *OrderHandler) Quote(c echo.Context) error {
    var body cartRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    q, err := h.Service.Quote(body.Items)
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusOK, q)
}

// Checkout handles POST /v1/orders and returns 201 with the order snapshot.
func (h *OrderHandler) Checkout(c echo.Context) error {
    var body cartRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    o, err := h.Service.Checkout(c.Request().Context(), body.Items)
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusCreated, presentOrder(o))
}

// List handles GET /v1/orders.
func (h *OrderHandler) List(c echo.Context) error {
    out, err := h.Service.List(c.Request().Context())
    if err != nil {
        return writeError(c, err)
    }
    resp := make([]orderResponse, 0, len(out))
    for _, o := range out {
        resp = append(resp, presentOrder(o))
    }
    return c.JSON(http.StatusOK, resp)
}
