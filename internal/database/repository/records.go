package repository

import (
	"context"
	"database/sql"
)

// RecordRepo handles records.
type RecordRepo struct {
	db *sql.DB
}

func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

func (r *RecordRepo) Upsert(ctx context.Context, rec Record) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO records(id, collection_id, label, position, disabled, hidden, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 collection_id=excluded.collection_id,
	 label=excluded.label,
	 position=excluded.position,
	 disabled=excluded.disabled,
	 hidden=excluded.hidden,
	 updated_at=CURRENT_TIMESTAMP;
	`, rec.ID, rec.CollectionID, rec.Label, rec.Position, rec.Disabled, rec.Hidden)
	return err
}

// ListByCollection returns a collection's records in display order.
func (r *RecordRepo) ListByCollection(ctx context.Context, collectionID string) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, collection_id, label, position, disabled, hidden, created_at, updated_at
	FROM records WHERE collection_id = ? ORDER BY position, label`, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.CollectionID, &rec.Label, &rec.Position, &rec.Disabled, &rec.Hidden, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SetFlags updates a record's disabled and hidden flags.
func (r *RecordRepo) SetFlags(ctx context.Context, id string, disabled, hidden bool) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE records SET disabled = ?, hidden = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		disabled, hidden, id)
	return err
}

func (r *RecordRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	return err
}
