package model

import "time"

// Order is the order header. TotalPrice is caller-supplied at placement
// time and is not recomputed from line items.
type Order struct {
	ID         string    `db:"id" json:"id"`
	CustomerID string    `db:"customer_id" json:"customerId"`
	StoreID    string    `db:"store_id" json:"storeId"`
	TotalPrice float64   `db:"total_price" json:"totalPrice"`
	Date       time.Time `db:"date" json:"date"`
}

// OrderItem is one line of an order. Price is the line total
// (unit price x quantity) snapshotted at purchase time.
type OrderItem struct {
	ID        string  `db:"id" json:"id"`
	OrderID   string  `db:"order_id" json:"orderId"`
	ProductID string  `db:"product_id" json:"productId"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
}
