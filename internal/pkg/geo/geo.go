package geo

import "math"

// Point is a WGS84 coordinate stored as JSONB on office points and check logs.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

const earthRadiusMeters = 6371000

// HaversineDistance returns the distance between two coordinates in meters.
func HaversineDistance(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180.0)

	latARad := a.Lat * (math.Pi / 180.0)
	latBRad := b.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(latARad)*math.Cos(latBRad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// WithinRadius reports whether b lies within radiusMeters of a.
func WithinRadius(a, b Point, radiusMeters float64) bool {
	return HaversineDistance(a, b) <= radiusMeters
}
