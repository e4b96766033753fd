// Package hospital holds the hospital directory and the nearby proximity
// search over it.
package hospital

import "github.com/healthtrack/api/pkg/validation"

// Collection is the hospital collection name in the record store.
const Collection = "hospital"

type Hospital struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	LocationLat *float64 `json:"location_lat,omitempty"`
	LocationLng *float64 `json:"location_lng,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
}

func (h *Hospital) Validate() error {
	var e validation.Errors
	e.Required("name", h.Name)
	e.Required("address", h.Address)
	e.Required("city", h.City)
	return e.Err()
}

// WithDistance is a proximity search result: the hospital record plus the
// computed distance from the query point. The distance is never persisted.
type WithDistance struct {
	Hospital
	DistanceKm float64 `json:"distance_km"`
}

// NearbyRequest is the body of POST /nearby-hospitals.
type NearbyRequest struct {
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	RadiusKm *float64 `json:"radius_km"`
}

// DefaultRadiusKm applies when radius_km is omitted.
const DefaultRadiusKm = 10

func (r *NearbyRequest) Validate() error {
	var e validation.Errors
	if r.Lat == nil {
		e.Add("lat", "is required")
	} else if *r.Lat < -90 || *r.Lat > 90 {
		e.Add("lat", "must be between -90 and 90")
	}
	if r.Lng == nil {
		e.Add("lng", "is required")
	} else if *r.Lng < -180 || *r.Lng > 180 {
		e.Add("lng", "must be between -180 and 180")
	}
	return e.Err()
}

// Radius returns the requested radius, applying the default. Negative
// values are passed through; they simply match nothing.
func (r *NearbyRequest) Radius() float64 {
	if r.RadiusKm == nil {
		return DefaultRadiusKm
	}
	return *r.RadiusKm
}
