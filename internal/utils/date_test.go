package utils

import (
	"strings"
	"testing"
	"time"
)

func TestValidDateKey(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-03-15", true},
		{"2026-3-15", false},
		{"03/15/2026", false},
		{"2026-13-01", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDateKey(tt.date); got != tt.want {
			t.Errorf("ValidDateKey(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestValidTimeOfDay(t *testing.T) {
	tests := []struct {
		time string
		want bool
	}{
		{"17:00", true},
		{"00:00", true},
		{"23:59", true},
		{"25:00", false},
		{"5pm", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidTimeOfDay(tt.time); got != tt.want {
			t.Errorf("ValidTimeOfDay(%q) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate() error: %v", err)
	}
	if got := DateKey(parsed); got != "2026-03-15" {
		t.Errorf("DateKey(ParseDate(d)) = %q", got)
	}
	if parsed.Hour() != 0 || parsed.Location() != time.Local {
		t.Errorf("ParseDate() = %v, want local midnight", parsed)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than cap", "hello", 10, "hello"},
		{"exactly at cap", "hello", 5, "hello"},
		{"clipped", "hello world", 5, "hello"},
		{"multibyte runes kept whole", strings.Repeat("é", 10), 3, "ééé"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
