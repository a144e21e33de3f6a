package timeutil

import (
	"testing"
	"time"
)

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantUTC   string
		wantError bool
	}{
		{
			name:    "UTC timestamp",
			input:   "2024-01-01T10:00:00Z",
			wantUTC: "2024-01-01T10:00:00Z",
		},
		{
			name:    "positive offset",
			input:   "2024-01-01T10:02:30+01:00",
			wantUTC: "2024-01-01T09:02:30Z",
		},
		{
			name:    "negative offset",
			input:   "2024-01-01T10:00:00-05:00",
			wantUTC: "2024-01-01T15:00:00Z",
		},
		{
			name:      "missing timezone",
			input:     "2024-01-01 10:00:00",
			wantError: true,
		},
		{
			name:      "empty",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseISO8601(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("expected error for %q, got %v", tt.input, parsed)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseISO8601(%q): %v", tt.input, err)
			}
			got := parsed.UTC().Format(time.RFC3339)
			if got != tt.wantUTC {
				t.Errorf("expected %s, got %s", tt.wantUTC, got)
			}
		})
	}
}

func TestCompactTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 2, 15, 4, 5, 987654321, time.UTC)
	got := CompactTimestamp(ts)
	if got != "20240102150405" {
		t.Errorf("expected 20240102150405, got %s", got)
	}
}
