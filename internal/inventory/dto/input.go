package dto

type InventoryPayload struct {
	ProductID  string `json:"productId"`
	StoreID    string `json:"storeId"`
	StockLevel int    `json:"stockLevel"`
}

type ProductPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	SKU      string  `json:"sku"`
}

// CombinedRequest is the PUT /inventory body: a product update with an
// optional stock-level update for one of its inventory rows.
type CombinedRequest struct {
	Product   ProductPayload    `json:"product"`
	Inventory *InventoryPayload `json:"inventory"`
}
