package model

// Product is a catalog item. SKU is globally unique (enforced by the
// database), name uniqueness is checked by the validation layer before
// insert.
type Product struct {
	BaseModel
	Name     string  `db:"name" json:"name"`
	Category string  `db:"category" json:"category"`
	Price    float64 `db:"price" json:"price"`
	SKU      string  `db:"sku" json:"sku"`
}
