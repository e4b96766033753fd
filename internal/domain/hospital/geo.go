package hospital

import (
	"math"
	"sort"
)

const earthRadiusKm = 6371.0

// haversineKm computes the great-circle distance in kilometers between two
// points given in degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlng := radians(lng2 - lng1)
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Nearby filters candidates to those within radiusKm of the query point and
// returns them closest first. Candidates missing either coordinate are
// skipped. Ties keep input order. Each result carries distance_km rounded
// to two decimals; filtering compares the unrounded distance.
func Nearby(lat, lng, radiusKm float64, candidates []Hospital) []WithDistance {
	results := make([]WithDistance, 0)
	for _, h := range candidates {
		if h.LocationLat == nil || h.LocationLng == nil {
			continue
		}
		dist := haversineKm(lat, lng, *h.LocationLat, *h.LocationLng)
		if dist > radiusKm {
			continue
		}
		results = append(results, WithDistance{
			Hospital:   h,
			DistanceKm: math.Round(dist*100) / 100,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results
}
