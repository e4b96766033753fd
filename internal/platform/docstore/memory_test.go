package docstore

import (
	"context"
	"encoding/json"
	"testing"
)

type testRecord struct {
	PatientID string `json:"patient_id"`
	Value     int    `json:"value"`
}

func TestMemory_CreateAssignsID(t *testing.T) {
	s := NewMemory()
	id, err := s.Create(context.Background(), "report", testRecord{PatientID: "p1", Value: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	docs, err := s.Fetch(context.Background(), "report", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	var doc map[string]any
	if err := json.Unmarshal(docs[0], &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["id"] != id {
		t.Errorf("expected injected id %q, got %v", id, doc["id"])
	}
}

func TestMemory_CreateAssignsDistinctIDs(t *testing.T) {
	s := NewMemory()
	a, _ := s.Create(context.Background(), "report", testRecord{PatientID: "p1"})
	b, _ := s.Create(context.Background(), "report", testRecord{PatientID: "p1"})
	if a == b {
		t.Error("expected distinct ids for separate creates")
	}
}

func TestMemory_FetchFilter(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	s.Create(ctx, "metric", testRecord{PatientID: "p1", Value: 1})
	s.Create(ctx, "metric", testRecord{PatientID: "p2", Value: 2})
	s.Create(ctx, "metric", testRecord{PatientID: "p1", Value: 3})

	items, err := FetchAs[testRecord](ctx, s, "metric", map[string]any{"patient_id": "p1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(items))
	}
	if items[0].Value != 1 || items[1].Value != 3 {
		t.Errorf("expected insertion order [1 3], got [%d %d]", items[0].Value, items[1].Value)
	}
}

func TestMemory_FetchPreservesInsertionOrder(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		s.Create(ctx, "metric", testRecord{PatientID: "p1", Value: i})
	}
	items, err := FetchAs[testRecord](ctx, s, "metric", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, item := range items {
		if item.Value != i {
			t.Fatalf("expected value %d at position %d, got %d", i, i, item.Value)
		}
	}
}

func TestMemory_FetchUnknownCollection(t *testing.T) {
	s := NewMemory()
	docs, err := s.Fetch(context.Background(), "nothing", nil)
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}

func TestMemory_FilterNumericValue(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	s.Create(ctx, "metric", testRecord{PatientID: "p1", Value: 5})
	s.Create(ctx, "metric", testRecord{PatientID: "p1", Value: 6})

	items, err := FetchAs[testRecord](ctx, s, "metric", map[string]any{"value": 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 document, got %d", len(items))
	}
}

func TestEncode_RejectsNonObject(t *testing.T) {
	if _, _, err := encode([]int{1, 2}); err == nil {
		t.Error("expected error for non-object record")
	}
}
