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

func (r *PGRepository) Create(ctx context.Context, s *model.Store) error {
	query := `
        INSERT INTO stores (id, name, address, created_at, updated_at)
        VALUES (:id, :name, :address, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return errors.Wrap(err, "insert store")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Store, error) {
	var s model.Store
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM stores WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find store by id")
	}
	return &s, nil
}
