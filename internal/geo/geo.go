// Package geo extracts the geographic distribution of an inspection
// collection and builds the embeddable map URL for it.
package geo

import (
	"fmt"
	"net/url"

	"facility-inspect/internal/domain"
)

// Default map center used when no record carries coordinates.
const (
	DefaultLatitude  = 25.276987
	DefaultLongitude = 55.296249
)

// Located returns the records that carry both coordinates, in source order.
// A record without coordinates is "not located" and is skipped.
func Located(records []domain.InspectionRecord) []domain.InspectionRecord {
	var out []domain.InspectionRecord
	for i := range records {
		if records[i].Located() {
			out = append(out, records[i])
		}
	}
	return out
}

// EmbedURL builds the static map embed URL centered on the first located
// record, falling back to the default center for an unlocated collection.
func EmbedURL(records []domain.InspectionRecord, apiKey string, zoom int) string {
	lat, lng := DefaultLatitude, DefaultLongitude
	if located := Located(records); len(located) > 0 {
		lat = *located[0].Latitude
		lng = *located[0].Longitude
	}
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("zoom", fmt.Sprintf("%d", zoom))
	q.Set("center", fmt.Sprintf("%.6f,%.6f", lat, lng))
	return "https://www.google.com/maps/embed/v1/view?" + q.Encode()
}
