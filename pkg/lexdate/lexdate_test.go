package lexdate_test

import (
	"testing"
	"time"

	"trip-date-interpreter/pkg/lexdate"
)

var anchor = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) // Wednesday

func parseFirst(t *testing.T, text string) lexdate.Candidate {
	t.Helper()
	candidates := lexdate.Parse(text, anchor, lexdate.Options{ForwardDate: true})
	if len(candidates) == 0 {
		t.Fatalf("Parse(%q) returned no candidates", text)
	}
	return candidates[0]
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"Plain date", "2025-12-24", time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)},
		{"Local datetime", "2025-12-24T18:30:00", time.Date(2025, 12, 24, 18, 30, 0, 0, time.UTC)},
		{"Embedded date", "flight on 2025-12-24 please", time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parseFirst(t, tt.text)
			if !c.Start.Time().Equal(tt.want) {
				t.Errorf("start = %v, want %v", c.Start.Time(), tt.want)
			}
			for _, field := range []string{lexdate.FieldYear, lexdate.FieldMonth, lexdate.FieldDay} {
				if !c.Start.Certain(field) {
					t.Errorf("field %s should be certain", field)
				}
			}
		})
	}
}

func TestParseMonthDay(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"Month day", "december 24", time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)},
		{"Month day year", "december 24, 2026", time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)},
		{"Day of month", "24th of december", time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)},
		{"Abbreviated", "dec 24", time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parseFirst(t, tt.text)
			if !c.Start.Time().Equal(tt.want) {
				t.Errorf("start = %v, want %v", c.Start.Time(), tt.want)
			}
			if !c.Start.Certain(lexdate.FieldMonth) || !c.Start.Certain(lexdate.FieldDay) {
				t.Error("month and day should be certain")
			}
		})
	}
}

func TestParseMonthDayRollsForward(t *testing.T) {
	// Anchor is Jan 1 2025; "december 24" without a year stays in 2025, but a
	// date earlier in the anchor year rolls to the next year.
	late := time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC)
	candidates := lexdate.Parse("december 24", late, lexdate.Options{ForwardDate: true})
	if len(candidates) == 0 {
		t.Fatal("no candidates")
	}
	want := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	if !candidates[0].Start.Time().Equal(want) {
		t.Errorf("start = %v, want %v", candidates[0].Start.Time(), want)
	}
	if candidates[0].Start.Certain(lexdate.FieldYear) {
		t.Error("implied year must not be certain")
	}
}

func TestParseBareMonth(t *testing.T) {
	c := parseFirst(t, "a weekend in march")
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if !c.Start.Time().Equal(want) {
		t.Errorf("start = %v, want %v", c.Start.Time(), want)
	}
	if !c.Start.Certain(lexdate.FieldMonth) {
		t.Error("month should be certain")
	}
	if c.Start.Certain(lexdate.FieldDay) || c.Start.Certain(lexdate.FieldYear) {
		t.Error("day and year should be implied")
	}
}

func TestParseBareMonthRollsForward(t *testing.T) {
	april := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	candidates := lexdate.Parse("flight in march", april, lexdate.Options{ForwardDate: true})
	if len(candidates) == 0 {
		t.Fatal("no candidates")
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !candidates[0].Start.Time().Equal(want) {
		t.Errorf("start = %v, want %v", candidates[0].Start.Time(), want)
	}
}

func TestParseCasual(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"today", anchor},
		{"tomorrow", anchor.AddDate(0, 0, 1)},
		{"yesterday", anchor.AddDate(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c := parseFirst(t, tt.text)
			if !c.Start.Time().Equal(tt.want) {
				t.Errorf("start = %v, want %v", c.Start.Time(), tt.want)
			}
			if c.Start.Certain(lexdate.FieldDay) {
				t.Error("casual dates have no certain fields")
			}
		})
	}
}

func TestParseOrdinalDay(t *testing.T) {
	c := parseFirst(t, "the 5th")
	want := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	if !c.Start.Time().Equal(want) {
		t.Errorf("start = %v, want %v", c.Start.Time(), want)
	}
	if !c.Start.Certain(lexdate.FieldDay) {
		t.Error("day should be certain")
	}

	// Forward bias: an ordinal before the anchor day moves to next month.
	mid := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	candidates := lexdate.Parse("the 5th", mid, lexdate.Options{ForwardDate: true})
	if len(candidates) == 0 {
		t.Fatal("no candidates")
	}
	wantNext := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)
	if !candidates[0].Start.Time().Equal(wantNext) {
		t.Errorf("start = %v, want %v", candidates[0].Start.Time(), wantNext)
	}
}

func TestParseRange(t *testing.T) {
	c := parseFirst(t, "2025-03-10 to 2025-03-15")
	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !c.Start.Time().Equal(wantStart) {
		t.Errorf("start = %v, want %v", c.Start.Time(), wantStart)
	}
	if c.End == nil {
		t.Fatal("expected an end component")
	}
	if !c.End.Time().Equal(wantEnd) {
		t.Errorf("end = %v, want %v", c.End.Time(), wantEnd)
	}
}

func TestParseRangeLeftSideUnparseable(t *testing.T) {
	// "flight to Rome in December" contains " to ", but the left side is not
	// a date; the month grammar must still win.
	c := parseFirst(t, "flight to Rome in December")
	want := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	if !c.Start.Time().Equal(want) {
		t.Errorf("start = %v, want %v", c.Start.Time(), want)
	}
	if c.End != nil {
		t.Error("expected no end component")
	}
}

func TestParseUnrecognised(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"Whitespace", "   "},
		{"Gibberish", "totally gibberish zzz"},
		{"Random words", "asdf qwerty"},
		{"Greeting", "hello world"},
		{"Destination only", "flight to Rome"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lexdate.Parse(tt.text, anchor, lexdate.Options{ForwardDate: true}); got != nil {
				t.Errorf("Parse(%q) = %v, want nil", tt.text, got)
			}
		})
	}
}

func TestParseNow(t *testing.T) {
	c := parseFirst(t, "book it now")
	if !c.Start.Time().Equal(anchor) {
		t.Errorf("start = %v, want %v", c.Start.Time(), anchor)
	}
}
