package external

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"forecastapi.app/internal/ports"
	"github.com/kelvins/geocoder"
)

type (
	geocodeFunc        func(geocoder.Address) (geocoder.Location, error)
	reverseGeocodeFunc func(geocoder.Location) ([]geocoder.Address, error)
)

// GeocoderResolverAdapter implements GeoResolver port using the Google Geocoding API
type GeocoderResolverAdapter struct {
	geocode geocodeFunc
	reverse reverseGeocodeFunc
	logger  ports.Logger
}

// GeocoderResolverParams holds parameters for creating the geocoder resolver
type GeocoderResolverParams struct {
	APIKey string
	Logger ports.Logger
}

// NewGeocoderResolverAdapter creates a new geocoder resolver adapter.
// The geocoder package reads its key from a package-level variable, so it is set once here.
func NewGeocoderResolverAdapter(params GeocoderResolverParams) *GeocoderResolverAdapter {
	geocoder.ApiKey = params.APIKey

	return &GeocoderResolverAdapter{
		geocode: geocoder.Geocoding,
		reverse: geocoder.GeocodingReverse,
		logger:  params.Logger,
	}
}

// Resolve geocodes address. Lookup failures and zero results are both reported as no candidates.
func (r *GeocoderResolverAdapter) Resolve(ctx context.Context, address string) []ports.Location {
	address = strings.TrimSpace(address)
	if address == "" || ctx.Err() != nil {
		return nil
	}

	// the library concatenates Street into the query string unescaped
	location, err := r.lookup(geocoder.Address{Street: url.QueryEscape(address)})
	if err != nil {
		r.logger.Info("Address could not be geocoded",
			ports.F("address", address),
			ports.F("error", err))
		return nil
	}

	resolved := ports.Location{
		Latitude:       location.Latitude,
		Longitude:      location.Longitude,
		DisplayAddress: address,
	}

	candidates, err := r.reverseLookup(location)
	if err != nil {
		r.logger.Debug("Reverse geocoding failed, keeping input address",
			ports.F("address", address),
			ports.F("error", err))
		return []ports.Location{resolved}
	}
	if len(candidates) > 0 {
		if formatted := strings.TrimSpace(candidates[0].FormattedAddress); formatted != "" {
			resolved.DisplayAddress = formatted
		}
		resolved.City = candidates[0].City
	}

	return []ports.Location{resolved}
}

// lookup and reverseLookup turn library panics on malformed OK responses into errors.
func (r *GeocoderResolverAdapter) lookup(address geocoder.Address) (location geocoder.Location, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("geocoding response unusable: %v", p)
		}
	}()
	return r.geocode(address)
}

func (r *GeocoderResolverAdapter) reverseLookup(location geocoder.Location) (addresses []geocoder.Address, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("reverse geocoding response unusable: %v", p)
		}
	}()
	return r.reverse(location)
}
