package model

// MenuItem is a dish or drink offered by the restaurant.  Price is kept
// as the display string of the menu (e.g. "S/ 38"); the order package
// owns parsing it into an amount.
type MenuItem struct {
    Name        string `json:"name"`
    Description string `json:"description"`
    Price       string `json:"price"`
    Image       string `json:"image"`
    Spicy       bool   `json:"spicy,omitempty"`
    Vegetarian  bool   `json:"vegetarian,omitempty"`
}

// LineItem is a menu item together with a quantity inside a pre-order.
type LineItem struct {
    MenuItem
    Quantity int `json:"quantity"`
}

// CartItem is a line item held in a shopping cart.  Cart items carry
// their own identifier so the client can address them individually.
type CartItem struct {
    LineItem
    ID string `json:"id"`
}

// MenuCategory groups menu items under a heading such as "entradas".
type MenuCategory struct {
    Key   string     `json:"key"`
    Title string     `json:"title"`
    Items []MenuItem `json:"items"`
}
