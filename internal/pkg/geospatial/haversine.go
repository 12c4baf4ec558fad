package geospatial

import "math"

const earthRadiusKm = 6371.0

// roadInflation compensates for roads not following great circles.
const roadInflation = 1.25

// Assumed average speeds in km/h per transport mode, used only by the
// geometric fallback when no external provider answered.
var fallbackSpeedsKmh = map[string]float64{
	"driving": 35.0,
	"transit": 28.0,
	"walking": 4.5,
}

// DistanceKm calculates the great-circle distance in kilometers between two points.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push a just past 1 near antipodal points, which would
	// make Sqrt(1-a) NaN.
	if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FallbackEstimate approximates road distance and travel time for a segment
// from the great-circle distance: distance is inflated by a fixed road factor
// and divided by a mode-specific average speed. Unknown modes use the driving
// speed. Distance is rounded to 2 decimals, duration to 1.
func FallbackEstimate(lat1, lng1, lat2, lng2 float64, mode string) (distanceKm, durationMin float64) {
	speed, ok := fallbackSpeedsKmh[mode]
	if !ok {
		speed = fallbackSpeedsKmh["driving"]
	}

	distanceKm = DistanceKm(lat1, lng1, lat2, lng2) * roadInflation
	durationMin = distanceKm / speed * 60

	return Round(distanceKm, 2), Round(durationMin, 1)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
