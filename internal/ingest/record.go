// Package ingest implements the applicant record ingestion and normalization
// engine: it reconciles bulk tabular imports and guided submissions into one
// validated, deduplicated canonical store. The pipeline for a raw row is
// normalize -> clean -> resolve identity -> commit, with per-stage outcomes
// collected into a Report instead of errors crossing row boundaries.
package ingest

// RawField is one (label, value) pair taken from a source row. Value is nil
// when the source cell was missing.
type RawField struct {
	Label string
	Value *string
}

// RawRecord is the single input shape the normalizer accepts regardless of
// source file format: label/value pairs in source-column order.
type RawRecord []RawField

// NewRawRecord zips a header row with a data row. Header columns without a
// corresponding cell get a nil value.
func NewRawRecord(header []string, cells []string) RawRecord {
	rec := make(RawRecord, 0, len(header))
	for i, label := range header {
		var value *string
		if i < len(cells) {
			v := cells[i]
			value = &v
		}
		rec = append(rec, RawField{Label: label, Value: value})
	}
	return rec
}
