// Package timeutil provides time parsing and formatting helpers shared
// across the archiver.
package timeutil

import "time"

// ParseISO8601 parses an ISO8601/RFC3339 timestamp, honoring any embedded
// timezone offset.
func ParseISO8601(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// CompactTimestamp formats t at second granularity for artifact filenames.
func CompactTimestamp(t time.Time) string {
	return t.Format("20060102150405")
}
