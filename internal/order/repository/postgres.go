package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// PlaceOrder runs the whole workflow in one transaction. Stock is deducted
// with a conditional UPDATE (stock_level >= quantity) so two concurrent
// orders for the same pair can never both pass the check; the loser sees
// zero rows affected and the transaction rolls back.
func (r *PGRepository) PlaceOrder(ctx context.Context, candidate *model.Customer, ord *model.Order, items []model.OrderItem) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin place order")
	}
	defer tx.Rollback()

	// Resolve the customer by email. An existing record is authoritative:
	// the request's name and phone are not written over it.
	var existing model.Customer
	err = tx.GetContext(ctx, &existing,
		`SELECT * FROM customers WHERE email = $1 LIMIT 1`, candidate.Email)
	switch {
	case err == nil:
		ord.CustomerID = existing.ID
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO customers (id, name, email, phone, created_at)
            VALUES (:id, :name, :email, :phone, :created_at)
        `, candidate); err != nil {
			return errors.Wrap(err, "create customer")
		}
		ord.CustomerID = candidate.ID
	default:
		return errors.Wrap(err, "find customer by email")
	}

	var storeExists bool
	if err := tx.GetContext(ctx, &storeExists,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1)`, ord.StoreID); err != nil {
		return errors.Wrap(err, "check store")
	}
	if !storeExists {
		return apperr.New(apperr.NotFound, "Store not found with id: %s", ord.StoreID)
	}

	if _, err := tx.NamedExecContext(ctx, `
        INSERT INTO orders (id, customer_id, store_id, total_price, date)
        VALUES (:id, :customer_id, :store_id, :total_price, :date)
    `, ord); err != nil {
		return errors.Wrap(err, "insert order header")
	}

	for i := range items {
		items[i].OrderID = ord.ID

		res, err := tx.ExecContext(ctx, `
            UPDATE inventory
            SET stock_level = stock_level - $1, updated_at = now()
            WHERE product_id = $2 AND store_id = $3 AND stock_level >= $1
        `, items[i].Quantity, items[i].ProductID, ord.StoreID)
		if err != nil {
			return errors.Wrap(err, "deduct stock")
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "deduct stock result")
		}
		if affected == 0 {
			return apperr.New(apperr.BusinessRule,
				"Insufficient stock for product: %s", items[i].ProductID)
		}

		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO order_items (id, order_id, product_id, quantity, price)
            VALUES (:id, :order_id, :product_id, :quantity, :price)
        `, items[i]); err != nil {
			return errors.Wrap(err, "insert order item")
		}
	}

	return errors.Wrap(tx.Commit(), "commit place order")
}
