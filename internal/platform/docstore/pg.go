package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PG is the postgres-backed Store. All collections share one records table;
// documents are stored as jsonb and ordered by a serial sequence so that
// Fetch preserves insertion order.
type PG struct {
	pool *pgxpool.Pool
}

func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

func (s *PG) Create(ctx context.Context, collection string, record any) (string, error) {
	id, doc, err := encode(record)
	if err != nil {
		return "", err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO records (id, collection, doc) VALUES ($1, $2, $3)`,
		id, collection, doc)
	if err != nil {
		return "", fmt.Errorf("docstore: insert into %s: %w", collection, err)
	}
	return id, nil
}

func (s *PG) Fetch(ctx context.Context, collection string, filter map[string]any) ([]json.RawMessage, error) {
	query := `SELECT doc FROM records WHERE collection = $1 ORDER BY seq`
	args := []any{collection}

	if len(filter) > 0 {
		cond, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("docstore: marshal filter: %w", err)
		}
		query = `SELECT doc FROM records WHERE collection = $1 AND doc @> $2 ORDER BY seq`
		args = append(args, cond)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("docstore: fetch %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("docstore: scan %s document: %w", collection, err)
		}
		docs = append(docs, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("docstore: iterate %s: %w", collection, err)
	}
	return docs, nil
}

func (s *PG) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
