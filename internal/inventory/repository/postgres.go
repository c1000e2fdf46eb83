package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/fekuna/retail-backoffice/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, inv *model.Inventory) error {
	query := `
        INSERT INTO inventory (id, product_id, store_id, stock_level, updated_at)
        VALUES (:id, :product_id, :store_id, :stock_level, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, inv)
	return errors.Wrap(err, "insert inventory row")
}

func (r *PGRepository) Update(ctx context.Context, inv *model.Inventory) error {
	query := `
        UPDATE inventory
        SET stock_level = :stock_level, updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, inv)
	return errors.Wrap(err, "update inventory row")
}

func (r *PGRepository) FindByProductAndStore(ctx context.Context, productID, storeID string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.DB.GetContext(ctx, &inv,
		`SELECT * FROM inventory WHERE product_id = $1 AND store_id = $2 LIMIT 1`,
		productID, storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find inventory row")
	}
	return &inv, nil
}

func (r *PGRepository) DeleteByProduct(ctx context.Context, productID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM inventory WHERE product_id = $1`, productID)
	return errors.Wrap(err, "delete inventory rows by product")
}
