package geo

import (
	"math"
	"strings"
)

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// knownCities maps a city name to its trusted coordinates. Distance feeds
// directly into price, so coordinates for these cities always come from this
// table, never from the client.
var knownCities = map[string]Coord{
	"mumbai":    {Lat: 19.0760, Lon: 72.8777},
	"delhi":     {Lat: 28.7041, Lon: 77.1025},
	"bangalore": {Lat: 12.9716, Lon: 77.5946},
	"hyderabad": {Lat: 17.3850, Lon: 78.4867},
	"ahmedabad": {Lat: 23.0225, Lon: 72.5714},
	"chennai":   {Lat: 13.0827, Lon: 80.2707},
	"kolkata":   {Lat: 22.5726, Lon: 88.3639},
	"surat":     {Lat: 21.1702, Lon: 72.8311},
	"pune":      {Lat: 18.5204, Lon: 73.8567},
	"jaipur":    {Lat: 26.9124, Lon: 75.7873},
}

// Resolve returns the canonical coordinates for a known city. For cities
// outside the table there is no authoritative source, so the caller-supplied
// fallback is used verbatim.
func Resolve(city string, fallback Coord) Coord {
	if c, ok := knownCities[normalize(city)]; ok {
		return c
	}
	return fallback
}

// Known reports whether city is in the trusted table.
func Known(city string) bool {
	_, ok := knownCities[normalize(city)]
	return ok
}

func normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Distance returns the great-circle distance between two coordinates in
// kilometers, rounded to two decimal places.
func Distance(a, b Coord) float64 {
	const earthRadiusKm = 6371.0

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*100) / 100
}
