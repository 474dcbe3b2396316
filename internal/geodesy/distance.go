// Package geodesy provides the great-circle distance math used to rank
// flavor locations by proximity to a caller.
package geodesy

import "math"

// Unit selects the output scale of Distance.
type Unit string

const (
	// UnitMiles is the default output scale, statute miles.
	UnitMiles Unit = ""
	// UnitKilometers scales the result to kilometers.
	UnitKilometers Unit = "K"
	// UnitNautical scales the result to nautical miles.
	UnitNautical Unit = "N"
)

// Distance returns the great-circle distance between two points, computed
// with the spherical law of cosines. Coincident points short-circuit to 0
// before any trigonometry runs, so floating-point round-off can never push
// the arccosine argument out of its domain.
func Distance(lat1, lon1, lat2, lon2 float64, unit Unit) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	radLat1 := lat1 * math.Pi / 180
	radLat2 := lat2 * math.Pi / 180
	radTheta := (lon1 - lon2) * math.Pi / 180

	dist := math.Sin(radLat1)*math.Sin(radLat2) +
		math.Cos(radLat1)*math.Cos(radLat2)*math.Cos(radTheta)
	// Float drift can leave the argument slightly above 1 for
	// near-coincident points; arccosine must never see that.
	if dist > 1 {
		dist = 1
	}
	dist = math.Acos(dist)
	dist = dist * 180 / math.Pi
	dist = dist * 60 * 1.1515

	switch unit {
	case UnitKilometers:
		dist *= 1.609344
	case UnitNautical:
		dist *= 0.8684
	}

	return dist
}
