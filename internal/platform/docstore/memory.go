package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
)

// Memory is an in-memory Store used by tests and local development. It
// mirrors the postgres implementation's semantics: fresh id per create,
// top-level equality filters, insertion order preserved.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]json.RawMessage)}
}

func (s *Memory) Create(_ context.Context, collection string, record any) (string, error) {
	id, doc, err := encode(record)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], doc)
	return id, nil
}

func (s *Memory) Fetch(_ context.Context, collection string, filter map[string]any) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []json.RawMessage
	for _, raw := range s.collections[collection] {
		if len(filter) > 0 {
			var doc map[string]any
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, err
			}
			if !matches(doc, filter) {
				continue
			}
		}
		docs = append(docs, raw)
	}
	return docs, nil
}

func (s *Memory) Ping(context.Context) error {
	return nil
}

// Count returns the number of documents in the collection.
func (s *Memory) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

// matches reports whether every filter entry equals the corresponding
// top-level document field. Values are compared through their JSON
// encoding so that numeric types line up.
func matches(doc, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			return false
		}
		gb, _ := json.Marshal(got)
		wb, _ := json.Marshal(want)
		if !bytes.Equal(gb, wb) {
			return false
		}
	}
	return true
}
