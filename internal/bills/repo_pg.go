package bills

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo on Postgres. The whole record lives in a JSONB
// payload column; the serial id stays internal and never enters the payload,
// so listed records carry no store identifier.
type PGRepo struct {
	DB *sql.DB
}

// Insert appends a record.
func (r *PGRepo) Insert(ctx context.Context, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrStorage, err)
	}
	if _, err := r.DB.ExecContext(ctx, `INSERT INTO bills (payload) VALUES ($1)`, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// ListAll returns every record in insertion order.
func (r *PGRepo) ListAll(ctx context.Context) ([]*Record, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT payload FROM bills ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	defer rows.Close()

	out := make([]*Record, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: scan payload: %v", ErrStorage, err)
		}
		rec := NewRecord()
		if err := json.Unmarshal(payload, rec); err != nil {
			return nil, fmt.Errorf("%w: decode payload: %v", ErrStorage, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return out, nil
}

var _ Repo = (*PGRepo)(nil)
