// Package geocode resolves street addresses to county and state information
// through the Google Maps Geocoding API.
package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Location is one geocoding candidate reduced to the fields the pipeline
// uses.
type Location struct {
	CountyFull   string
	CountyShort  string
	State        string
	Latitude     float64
	Longitude    float64
	LocationType string
}

// Client wraps the Maps geocoding client.
type Client struct {
	maps *maps.Client
}

// New creates a geocoding client from an API key.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("maps api key is required")
	}
	mc, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Client{maps: mc}, nil
}

// Geocode resolves an address to candidate locations. A response with no
// results yields an empty slice and no error; transport failures are
// returned as errors for the caller to ignore or log.
func (c *Client) Geocode(ctx context.Context, address string) ([]Location, error) {
	results, err := c.maps.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", address, err)
	}
	locations := make([]Location, 0, len(results))
	for _, result := range results {
		locations = append(locations, fromResult(result))
	}
	return locations, nil
}

func fromResult(result maps.GeocodingResult) Location {
	loc := Location{
		Latitude:     result.Geometry.Location.Lat,
		Longitude:    result.Geometry.Location.Lng,
		LocationType: result.Geometry.LocationType,
	}
	if loc.LocationType == "" {
		loc.LocationType = "UNKNOWN"
	}
	for _, component := range result.AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "administrative_area_level_2":
				loc.CountyFull = component.LongName
				loc.CountyShort = component.ShortName
			case "administrative_area_level_1":
				loc.State = component.ShortName
			}
		}
	}
	return loc
}
