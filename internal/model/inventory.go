package model

import "time"

// Inventory is the stock-level row for one (product, store) pair. At most
// one row exists per pair; the inventory usecase enforces this with a
// pre-check before insert.
type Inventory struct {
	ID         string    `db:"id" json:"id"`
	ProductID  string    `db:"product_id" json:"productId"`
	StoreID    string    `db:"store_id" json:"storeId"`
	StockLevel int       `db:"stock_level" json:"stockLevel"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
