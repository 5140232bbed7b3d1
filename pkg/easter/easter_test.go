package easter_test

import (
	"testing"
	"time"

	"trip-date-interpreter/pkg/easter"
)

func TestSunday(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2008, time.March, 23},
		{2011, time.April, 24},
		{2016, time.March, 27},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2027, time.March, 28},
		{2038, time.April, 25}, // latest possible date this century
	}

	for _, tt := range tests {
		got := easter.Sunday(tt.year, time.UTC)
		want := time.Date(tt.year, tt.month, tt.day, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("Sunday(%d) = %v, want %v", tt.year, got, want)
		}
	}
}

func TestNextSunday(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{
			name: "Before this year's Easter",
			ref:  time.Date(2024, 1, 1, 0, 0, 0, 0, loc),
			want: time.Date(2024, 3, 31, 0, 0, 0, 0, loc),
		},
		{
			name: "On Easter Sunday itself",
			ref:  time.Date(2024, 3, 31, 15, 0, 0, 0, loc),
			want: time.Date(2024, 3, 31, 0, 0, 0, 0, loc),
		},
		{
			name: "Day after Easter rolls to next year",
			ref:  time.Date(2024, 4, 1, 0, 0, 0, 0, loc),
			want: time.Date(2025, 4, 20, 0, 0, 0, 0, loc),
		},
		{
			name: "End of year rolls to next year",
			ref:  time.Date(2025, 12, 31, 0, 0, 0, 0, loc),
			want: time.Date(2026, 4, 5, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := easter.NextSunday(tt.ref, loc)
			if !got.Equal(tt.want) {
				t.Errorf("NextSunday(%v) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}
