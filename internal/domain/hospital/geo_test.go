package hospital

import (
	"math"
	"reflect"
	"testing"
)

func coord(v float64) *float64 { return &v }

func TestNearby_FiltersAndOrders(t *testing.T) {
	candidates := []Hospital{
		{Name: "Far", LocationLat: coord(11), LocationLng: coord(10)},
		{Name: "Close", LocationLat: coord(10.01), LocationLng: coord(10)},
		{Name: "Here", LocationLat: coord(10), LocationLng: coord(10)},
	}

	got := Nearby(10, 10, 5, candidates)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Name != "Here" || got[1].Name != "Close" {
		t.Errorf("expected [Here Close], got [%s %s]", got[0].Name, got[1].Name)
	}
	if got[0].DistanceKm != 0 {
		t.Errorf("expected exact match distance 0.00, got %v", got[0].DistanceKm)
	}
	// 0.01 degrees of latitude is about 1.11 km
	if math.Abs(got[1].DistanceKm-1.11) > 0.01 {
		t.Errorf("expected ~1.11 km, got %v", got[1].DistanceKm)
	}
}

func TestNearby_SkipsMissingCoordinates(t *testing.T) {
	candidates := []Hospital{
		{Name: "NoCoords"},
		{Name: "OnlyLat", LocationLat: coord(10)},
		{Name: "OnlyLng", LocationLng: coord(10)},
		{Name: "Both", LocationLat: coord(10), LocationLng: coord(10)},
	}
	got := Nearby(10, 10, 5, candidates)
	if len(got) != 1 || got[0].Name != "Both" {
		t.Fatalf("expected only fully located hospital, got %+v", got)
	}
}

func TestNearby_RadiusInclusive(t *testing.T) {
	candidates := []Hospital{
		{Name: "Here", LocationLat: coord(0), LocationLng: coord(0)},
	}
	if got := Nearby(0, 0, 0, candidates); len(got) != 1 {
		t.Errorf("expected exact-point hospital included at radius 0, got %d", len(got))
	}
}

func TestNearby_NegativeRadiusEmpty(t *testing.T) {
	candidates := []Hospital{
		{Name: "Here", LocationLat: coord(0), LocationLng: coord(0)},
	}
	if got := Nearby(0, 0, -1, candidates); len(got) != 0 {
		t.Errorf("expected empty result for negative radius, got %d", len(got))
	}
}

func TestNearby_Idempotent(t *testing.T) {
	candidates := []Hospital{
		{Name: "A", LocationLat: coord(10.02), LocationLng: coord(10)},
		{Name: "B", LocationLat: coord(10.01), LocationLng: coord(10)},
		{Name: "C", LocationLat: coord(10), LocationLng: coord(10)},
	}
	first := Nearby(10, 10, 50, candidates)
	second := Nearby(10, 10, 50, candidates)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output for identical inputs")
	}
}

func TestNearby_TiesKeepInputOrder(t *testing.T) {
	// Same rounded distance either side of the query point.
	candidates := []Hospital{
		{Name: "East", LocationLat: coord(0), LocationLng: coord(0.01)},
		{Name: "West", LocationLat: coord(0), LocationLng: coord(-0.01)},
	}
	got := Nearby(0, 0, 5, candidates)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Name != "East" || got[1].Name != "West" {
		t.Errorf("expected stable input order [East West], got [%s %s]", got[0].Name, got[1].Name)
	}
}

func TestNearby_EmptyCandidates(t *testing.T) {
	if got := Nearby(10, 10, 5, nil); len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	// London to Paris is roughly 344 km.
	d := haversineKm(51.5074, -0.1278, 48.8566, 2.3522)
	if math.Abs(d-344) > 5 {
		t.Errorf("expected ~344 km, got %v", d)
	}
}
