package repository

import (
	"context"
	"database/sql"
)

// CollectionRepo handles collections.
type CollectionRepo struct {
	db *sql.DB
}

func NewCollectionRepo(db *sql.DB) *CollectionRepo {
	return &CollectionRepo{db: db}
}

func (r *CollectionRepo) Upsert(ctx context.Context, c Collection) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO collections(id, name, kind, created_at, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 kind=excluded.kind,
	 updated_at=CURRENT_TIMESTAMP;
	`, c.ID, c.Name, c.Kind)
	return err
}

func (r *CollectionRepo) ByName(ctx context.Context, name string) (*Collection, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, kind, created_at, updated_at FROM collections WHERE name = ?`, name)
	var c Collection
	if err := row.Scan(&c.ID, &c.Name, &c.Kind, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CollectionRepo) List(ctx context.Context) ([]Collection, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, kind, created_at, updated_at FROM collections ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Collection
	for rows.Next() {
		var c Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.Kind, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CollectionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	return err
}
