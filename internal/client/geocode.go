package client

import (
	"sort"
	"strings"
)

// coordinates is a latitude/longitude pair for the forecast tool.
type coordinates struct {
	latitude  float64
	longitude float64
}

// cityCoordinates maps well-known city names to coordinates so free-text
// queries can be served by get_forecast on servers without query_weather.
// A real application would use a geocoding service here.
var cityCoordinates = map[string]coordinates{
	"beijing":       {39.9042, 116.4074},
	"new york":      {40.7128, -74.0060},
	"london":        {51.5074, -0.1278},
	"tokyo":         {35.6762, 139.6503},
	"san francisco": {37.7749, -122.4194},
	"paris":         {48.8566, 2.3522},
	"sydney":        {-33.8688, 151.2093},
	"los angeles":   {34.0522, -118.2437},
	"chicago":       {41.8781, -87.6298},
	"miami":         {25.7617, -80.1918},
}

// lookupCity resolves a city name case-insensitively.
func lookupCity(name string) (coordinates, bool) {
	coords, ok := cityCoordinates[strings.ToLower(strings.TrimSpace(name))]

	return coords, ok
}

// knownCities returns the supported city names, sorted, for error messages.
func knownCities() string {
	names := make([]string, 0, len(cityCoordinates))
	for name := range cityCoordinates {
		names = append(names, name)
	}

	sort.Strings(names)

	return strings.Join(names, ", ")
}
