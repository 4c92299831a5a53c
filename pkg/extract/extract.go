// Package extract provides field extractors: pure, total functions that pull a
// typed value out of a raw query binding. Every extractor returns the zero
// value and false instead of raising on missing or malformed input, so callers
// never conflate "absent" with "present but empty".
package extract

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ecuadata/atlas/pkg/constants"
)

// Coordinate is a parsed latitude/longitude pair. It is only ever produced
// fully populated; a partial pair is reported as unknown.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Coord parses a well-known-text point string of the form "Point(lon lat)".
// The first token is longitude and the second latitude; both must parse as
// finite floats or the result is unknown.
func Coord(s string) (Coordinate, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "Point(") || !strings.HasSuffix(s, ")") {
		return Coordinate{}, false
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(s, "Point("), ")")
	tokens := strings.Fields(inner)
	if len(tokens) != 2 {
		return Coordinate{}, false
	}

	lon, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil || !isFinite(lon) {
		return Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil || !isFinite(lat) {
		return Coordinate{}, false
	}

	return Coordinate{Lat: lat, Lon: lon}, true
}

// Date parses an ISO-8601 date or date-time string, truncating to the date
// component. Unknown on any parse failure.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// Truncate a date-time to its date component
	if idx := strings.IndexByte(s, 'T'); idx >= 0 {
		s = s[:idx]
	} else if len(s) > 10 {
		s = s[:10]
	}

	t, err := time.Parse(constants.TimeFormatDate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Int parses an integer value. Sources sometimes encode whole numbers with a
// decimal point ("3645483.0"), so the value is parsed as a float and
// truncated. Unknown on empty or non-numeric content.
func Int(s string) (int64, bool) {
	f, ok := Float(s)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// Float parses a float value. Unknown on empty or non-numeric content.
func Float(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

// URL passes a literal URL value through. An empty string is unknown.
func URL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// Text passes a literal string through. An empty string is unknown.
func Text(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// QID extracts the stable entity identifier from an entity URI, e.g.
// "http://www.wikidata.org/entity/Q14594" yields "Q14594". Unknown when the
// URI is empty or has no final path segment.
func QID(uri string) (string, bool) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", false
	}
	parts := strings.Split(uri, "/")
	id := parts[len(parts)-1]
	if id == "" {
		return "", false
	}
	return id, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
