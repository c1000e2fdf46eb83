package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
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

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (id, name, category, price, sku, created_at, updated_at)
        VALUES (:id, :name, :category, :price, :sku, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	if isUniqueViolation(err) {
		return apperr.Wrap(apperr.Conflict, err, "Product with sku %s already exists", p.SKU)
	}
	return errors.Wrap(err, "insert product")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find product by id")
	}
	return &p, nil
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE name = $1 LIMIT 1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find product by name")
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products, `SELECT * FROM products ORDER BY name`)
	return products, errors.Wrap(err, "list products")
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name, category = :category, price = :price, sku = :sku,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	if isUniqueViolation(err) {
		return apperr.Wrap(apperr.Conflict, err, "Product with sku %s already exists", p.SKU)
	}
	return errors.Wrap(err, "update product")
}

// DeleteWithInventory deletes the product's inventory rows and the product
// itself in one transaction so the two tables never disagree.
func (r *PGRepository) DeleteWithInventory(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin delete product")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory WHERE product_id = $1`, id); err != nil {
		return errors.Wrap(err, "delete inventory rows")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "delete product")
	}

	return errors.Wrap(tx.Commit(), "commit delete product")
}

func (r *PGRepository) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE category = $1 ORDER BY name`, category)
	return products, errors.Wrap(err, "find products by category")
}

func (r *PGRepository) FindBySubName(ctx context.Context, name string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE name ILIKE $1 ORDER BY name`, "%"+name+"%")
	return products, errors.Wrap(err, "find products by sub-name")
}

func (r *PGRepository) FindBySubNameAndCategory(ctx context.Context, name, category string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE name ILIKE $1 AND category = $2 ORDER BY name`,
		"%"+name+"%", category)
	return products, errors.Wrap(err, "find products by sub-name and category")
}

func (r *PGRepository) FindByStore(ctx context.Context, storeID string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products, `
        SELECT p.* FROM products p
        JOIN inventory i ON i.product_id = p.id
        WHERE i.store_id = $1
        ORDER BY p.name
    `, storeID)
	return products, errors.Wrap(err, "find products by store")
}

func (r *PGRepository) FindByStoreAndCategory(ctx context.Context, storeID, category string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products, `
        SELECT p.* FROM products p
        JOIN inventory i ON i.product_id = p.id
        WHERE i.store_id = $1 AND p.category = $2
        ORDER BY p.name
    `, storeID, category)
	return products, errors.Wrap(err, "find products by store and category")
}

func (r *PGRepository) FindByStoreAndSubName(ctx context.Context, storeID, name string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products, `
        SELECT p.* FROM products p
        JOIN inventory i ON i.product_id = p.id
        WHERE i.store_id = $1 AND p.name ILIKE $2
        ORDER BY p.name
    `, storeID, "%"+name+"%")
	return products, errors.Wrap(err, "find products by store and sub-name")
}

func (r *PGRepository) FindByStoreSubNameAndCategory(ctx context.Context, storeID, name, category string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products, `
        SELECT p.* FROM products p
        JOIN inventory i ON i.product_id = p.id
        WHERE i.store_id = $1 AND p.name ILIKE $2 AND p.category = $3
        ORDER BY p.name
    `, storeID, "%"+name+"%", category)
	return products, errors.Wrap(err, "find products by store, sub-name and category")
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
