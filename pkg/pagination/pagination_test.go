package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(newContext(""))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	p := FromContext(newContext("limit=5&offset=15"))
	if p.Limit != 5 {
		t.Errorf("expected limit 5, got %d", p.Limit)
	}
	if p.Offset != 15 {
		t.Errorf("expected offset 15, got %d", p.Offset)
	}
}

func TestFromContext_CapsLimit(t *testing.T) {
	p := FromContext(newContext("limit=9999"))
	if p.Limit != MaxLimit {
		t.Errorf("expected capped limit %d, got %d", MaxLimit, p.Limit)
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		n      int
		lo, hi int
	}{
		{"first page", Params{Limit: 10, Offset: 0}, 25, 0, 10},
		{"middle page", Params{Limit: 10, Offset: 10}, 25, 10, 20},
		{"last partial page", Params{Limit: 10, Offset: 20}, 25, 20, 25},
		{"offset beyond end", Params{Limit: 10, Offset: 50}, 25, 25, 25},
		{"empty set", Params{Limit: 10, Offset: 0}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.params.Slice(tt.n)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("expected [%d,%d), got [%d,%d)", tt.lo, tt.hi, lo, hi)
			}
		})
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse([]int{1, 2, 3}, 30, 10, 0)
	if !r.HasMore {
		t.Error("expected has_more true")
	}
	r = NewResponse([]int{1}, 5, 10, 0)
	if r.HasMore {
		t.Error("expected has_more false")
	}
}
