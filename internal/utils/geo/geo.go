// Package geo provides great-circle distance math for restaurant ranking.
package geo

import "math"

// earthRadiusM is the mean Earth radius in meters (IUGG).
const earthRadiusM = 6371000.0

// HaversineDistance returns the great-circle distance in meters between two
// WGS84 coordinates.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	deltaPhi := toRadians(lat2 - lat1)
	deltaLambda := toRadians(lon2 - lon1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
