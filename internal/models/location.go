package models

// Location is a single frozen-custard stand as reported by the flavor
// directory: its canonical name, position, and today's flavor list.
// The listing is fetched fresh for every request that needs it and is
// never shared across requests.
type Location struct {
	Name    string   `json:"name"`    // Canonical location name from the directory.
	Lat     float64  `json:"lat"`     // Latitude of the stand.
	Long    float64  `json:"long"`    // Longitude of the stand.
	Flavors []string `json:"flavors"` // Today's flavors, in directory order.
}

// RankedLocation is a Location together with its computed distance from the
// caller. Ranking builds new values and never mutates a shared Location.
type RankedLocation struct {
	Location

	Distance float64 // Distance from the caller in statute miles.
}
