package dto

type CreateProductInput struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	SKU      string  `json:"sku"`
}

type UpdateProductInput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	SKU      string  `json:"sku"`
}
