// Package geo computes straight-line distances and travel times between
// coordinates. Distances are great-circle approximations, not road routes.
package geo

import (
	"math"

	"delivery-service/internal/models"
)

// MeanEarthRadiusMeters is the IUGG mean Earth radius.
const MeanEarthRadiusMeters = 6_371_009

// BikeAverageSpeedKph is the default courier speed for travel estimates.
const BikeAverageSpeedKph = 15

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceMeters returns the haversine distance between a and b, truncated
// toward zero to whole meters.
func DistanceMeters(a, b models.Coordinate) int {
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*sinLon*sinLon

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return int(MeanEarthRadiusMeters * c)
}

// TravelTimeMinutes returns the whole minutes, rounded up, needed to cover
// the distance between a and b at averageSpeedKph. A non-positive speed
// yields 0.
func TravelTimeMinutes(a, b models.Coordinate, averageSpeedKph int) int {
	if averageSpeedKph <= 0 {
		return 0
	}

	meters := DistanceMeters(a, b)
	metersPerMinute := float64(averageSpeedKph) * 1000.0 / 60.0

	return int(math.Ceil(float64(meters) / metersPerMinute))
}
