package model

import "time"

// Review lives in the document store, keyed independently of the relational
// entities. CustomerID may stop resolving after a customer is removed; the
// read path substitutes "Unknown" for the name in that case.
type Review struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"storeId"`
	ProductID  string    `json:"productId"`
	CustomerID string    `json:"customerId"`
	Comment    string    `json:"comment"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}
