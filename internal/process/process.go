// Package process maps merged raw records into the canonical persisted
// shapes. Every field goes through a field extractor, so absent and
// malformed source values become nil rather than empty strings; per-record
// failures are collected and never abort a batch.
package process

import (
	"time"

	"github.com/ecuadata/atlas/internal/merge"
	"github.com/ecuadata/atlas/pkg/extract"
	"github.com/ecuadata/atlas/pkg/logging"
	"github.com/ecuadata/atlas/pkg/normalize"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// Processor converts merged records into entities. The normalizer is shared
// with the merger so every name join in the engine uses the same key.
type Processor struct {
	norm *normalize.Normalizer
	now  func() time.Time
}

// New creates a Processor.
func New(norm *normalize.Normalizer) *Processor {
	if norm == nil {
		norm = normalize.New()
	}
	return &Processor{norm: norm, now: time.Now}
}

// coords reads an all-or-nothing coordinate pair from a binding variable.
func coords(b sparql.Binding, name string) (lat, lon *float64) {
	c, ok := extract.Coord(b.Get(name))
	if !ok {
		return nil, nil
	}
	return &c.Lat, &c.Lon
}

// optInt reads an optional integer binding.
func optInt(b sparql.Binding, name string) *int64 {
	v, ok := extract.Int(b.Get(name))
	if !ok {
		return nil
	}
	return &v
}

// optFloat reads an optional float binding.
func optFloat(b sparql.Binding, name string) *float64 {
	v, ok := extract.Float(b.Get(name))
	if !ok {
		return nil
	}
	return &v
}

// optDate reads an optional date binding, truncated to day precision.
func optDate(b sparql.Binding, name string) *time.Time {
	t, ok := extract.Date(b.Get(name))
	if !ok {
		return nil
	}
	return &t
}

// skipNameless logs and reports whether a merged record lacks a display
// name. The sources occasionally return label-less rows for freshly created
// items; they carry nothing worth persisting.
func skipNameless(m merge.Merged, labelVar string) bool {
	if m.Primary.Has(labelVar) {
		return false
	}
	logging.Debug().Str("key", m.Key).Msg("Skipping record without a label")
	return true
}
