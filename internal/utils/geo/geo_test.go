package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	d := HaversineDistance(48.8566, 2.3522, 48.8566, 2.3522)
	assert.Equal(t, 0.0, d)
}

func TestHaversineDistance_KnownPairs(t *testing.T) {
	testCases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expectedM              float64
		toleranceM             float64
	}{
		{
			name: "Paris to London",
			lat1: 48.8566, lon1: 2.3522,
			lat2: 51.5074, lon2: -0.1278,
			expectedM:  343500,
			toleranceM: 1000,
		},
		{
			name: "New York to Los Angeles",
			lat1: 40.7128, lon1: -74.0060,
			lat2: 34.0522, lon2: -118.2437,
			expectedM:  3935700,
			toleranceM: 10000,
		},
		{
			name: "short hop across town",
			lat1: 50.4501, lon1: 30.5234,
			lat2: 50.4547, lon2: 30.5238,
			expectedM:  512,
			toleranceM: 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := HaversineDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.InDelta(t, tc.expectedM, d, tc.toleranceM)
		})
	}
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	forward := HaversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
	backward := HaversineDistance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, forward, backward, 0.000001)
}

func TestHaversineDistance_AcrossAntimeridian(t *testing.T) {
	// Two points straddling the 180th meridian are close, not half a world apart.
	d := HaversineDistance(0, 179.9, 0, -179.9)
	assert.InDelta(t, 22238, d, 100)
}
