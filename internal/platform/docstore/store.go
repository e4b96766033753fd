// Package docstore provides a uniform create/fetch store over named record
// collections. Records are stored as JSON documents; fetch filters are
// top-level equality matches. Insertion order is preserved on fetch.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Store is the record store adapter. Implementations must preserve
// insertion order on Fetch and assign a fresh id on every Create.
type Store interface {
	// Create persists record in the named collection and returns the
	// generated document id. The id is also injected into the stored
	// document under the "id" key.
	Create(ctx context.Context, collection string, record any) (string, error)

	// Fetch returns every document in the collection matching the filter,
	// in insertion order. A nil or empty filter matches everything. An
	// unknown collection yields an empty result, not an error.
	Fetch(ctx context.Context, collection string, filter map[string]any) ([]json.RawMessage, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// encode marshals record, injects a generated id, and returns the id with
// the final document bytes.
func encode(record any) (string, []byte, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return "", nil, fmt.Errorf("docstore: marshal record: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", nil, fmt.Errorf("docstore: record must be a JSON object: %w", err)
	}

	id := uuid.New().String()
	doc["id"] = id

	out, err := json.Marshal(doc)
	if err != nil {
		return "", nil, fmt.Errorf("docstore: marshal document: %w", err)
	}
	return id, out, nil
}

// FetchAs fetches matching documents and decodes each into T.
func FetchAs[T any](ctx context.Context, s Store, collection string, filter map[string]any) ([]T, error) {
	docs, err := s.Fetch(ctx, collection, filter)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := json.Unmarshal(doc, &item); err != nil {
			return nil, fmt.Errorf("docstore: decode %s document: %w", collection, err)
		}
		items = append(items, item)
	}
	return items, nil
}
