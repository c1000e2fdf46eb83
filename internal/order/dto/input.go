package dto

// PurchaseProduct is one requested line: a product id, the quantity and the
// unit price at purchase time.
type PurchaseProduct struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// PlaceOrderRequest is the POST /store/placeOrder body. TotalPrice is taken
// as sent; the engine does not cross-check it against the lines.
type PlaceOrderRequest struct {
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerPhone   string            `json:"customerPhone"`
	StoreID         string            `json:"storeId"`
	TotalPrice      float64           `json:"totalPrice"`
	PurchaseProduct []PurchaseProduct `json:"purchaseProduct"`
}
