package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceZero(t *testing.T) {
	p := Point{Lat: 51.1605, Lng: 71.4704}
	assert.Equal(t, 0.0, HaversineDistance(p, p))
}

func TestHaversineDistanceKnown(t *testing.T) {
	// Astana to Almaty, roughly 970 km
	astana := Point{Lat: 51.1605, Lng: 71.4704}
	almaty := Point{Lat: 43.2380, Lng: 76.9452}

	d := HaversineDistance(astana, almaty)
	assert.InDelta(t, 970000, d, 20000)
}

func TestHaversineDistanceShort(t *testing.T) {
	// Two points ~111m apart along a meridian (0.001 degrees latitude)
	a := Point{Lat: 51.1000, Lng: 71.4000}
	b := Point{Lat: 51.1010, Lng: 71.4000}

	d := HaversineDistance(a, b)
	assert.InDelta(t, 111, d, 2)
}

func TestWithinRadius(t *testing.T) {
	office := Point{Lat: 51.1000, Lng: 71.4000}
	nearby := Point{Lat: 51.1001, Lng: 71.4001}
	faraway := Point{Lat: 51.2000, Lng: 71.4000}

	assert.True(t, WithinRadius(office, nearby, 100))
	assert.False(t, WithinRadius(office, faraway, 100))
	assert.True(t, WithinRadius(office, office, 10))
}
