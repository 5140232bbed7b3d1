// Package searchmeta derives booking-oriented search metadata from the raw
// phrase: trip type, trip duration, a concrete month when one is mentioned,
// and a horizon-clamped ISO date range.
package searchmeta

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"trip-date-interpreter/internal/interpretation"
)

// Duration day counts, used as range fallback lengths.
const (
	DurationDefault = 7
	DurationTwoWeek = 14
	DurationWeekend = 3
)

// Trip types.
const (
	TripOneWay    = "one_way"
	TripRoundTrip = "round_trip"
)

// Duration kinds.
const (
	KindTwoWeek = "two_week"
	KindWeekend = "weekend"
	KindOneWeek = "one_week"
)

var (
	reOneWay    = regexp.MustCompile(`\bone[-\s]?way\b`)
	reNoReturn  = regexp.MustCompile(`\bno return\b`)
	reRoundTrip = regexp.MustCompile(`\bround[-\s]?trip\b`)
	reReturn    = regexp.MustCompile(`\breturn\b`)
	reTwoWeek   = regexp.MustCompile(`(two|2)[\s-]?week`)
	reWeekend   = regexp.MustCompile(`weekend`)
	reOneWeek   = regexp.MustCompile(`(one|1)[\s-]?week|\ba week\b`)
	reYearToken = regexp.MustCompile(`\d{4}`)
)

// monthDef is one entry of the immutable month-name table. Names include
// abbreviations and colloquialisms (a Christmas mention implies December).
type monthDef struct {
	slug  string
	month time.Month
	names []string
}

var monthDefs = []monthDef{
	{"january", time.January, []string{"january", "jan"}},
	{"february", time.February, []string{"february", "feb"}},
	{"march", time.March, []string{"march", "mar"}},
	{"april", time.April, []string{"april", "apr"}},
	{"may", time.May, []string{"may"}},
	{"june", time.June, []string{"june", "jun"}},
	{"july", time.July, []string{"july", "jul"}},
	{"august", time.August, []string{"august", "aug"}},
	{"september", time.September, []string{"september", "sep"}},
	{"october", time.October, []string{"october", "oct"}},
	{"november", time.November, []string{"november", "nov"}},
	{"december", time.December, []string{"december", "dec", "xmas", "christmas", "weihnachten"}},
}

// MonthDetection is a month mention found in a phrase, already rolled
// forward past the reference month.
type MonthDetection struct {
	Slug     string
	Month    time.Month
	Year     int
	ISORange string
}

// Deriver computes search metadata. Horizon and rolling windows are
// configured once at construction.
type Deriver struct {
	horizonMonths int
	rollingMonths int
}

// New creates a Deriver. Non-positive window values fall back to 6 months.
func New(horizonMonths, rollingMonths int) *Deriver {
	if horizonMonths <= 0 {
		horizonMonths = 6
	}
	if rollingMonths <= 0 {
		rollingMonths = 6
	}
	return &Deriver{horizonMonths: horizonMonths, rollingMonths: rollingMonths}
}

// Derive computes metadata from the raw trimmed phrase. Returns nil for a
// blank phrase. Month-detected ranges are kept as-is; rolling and
// date-fallback ranges are horizon-clamped.
func (d *Deriver) Derive(phrase string, ref time.Time, loc *time.Location) *interpretation.SearchMetadata {
	trimmed := strings.TrimSpace(phrase)
	if trimmed == "" {
		return nil
	}
	lower := strings.ToLower(trimmed)

	tripType := deriveTripType(lower)
	durationKind := deriveDurationKind(lower)
	monthData := d.DetectMonth(trimmed, ref, loc)

	var token, isoRange string
	durationDays := DurationDefault

	switch {
	case tripType == TripOneWay:
		token = "trip_in_the_next_six_months"
	case durationKind == KindTwoWeek:
		durationDays = DurationTwoWeek
		token = "two_week_trip_in_the_next_six_months"
	case durationKind == KindWeekend:
		durationDays = DurationWeekend
		token = "weekend_trip_in_the_next_six_months"
	default:
		token = "one_week_trip_in_the_next_six_months"
	}

	if monthData != nil {
		isoRange = monthData.ISORange
		switch {
		case tripType == TripOneWay:
			token = "trip_in_" + monthData.Slug
		case durationKind == KindTwoWeek:
			token = "two_week_trip_in_" + monthData.Slug
		case durationKind == KindWeekend:
			token = "weekend_in_" + monthData.Slug
		default:
			token = "one_week_trip_in_" + monthData.Slug
		}
	}

	// Order matters: a phrase that is itself a plain calendar date gets a
	// duration-length range before the generic rolling window applies.
	if isoRange == "" {
		isoRange = d.dateFallbackRange(trimmed, ref, loc, durationDays)
	}
	if isoRange == "" {
		isoRange = d.rollingRange(ref, loc)
	}

	return &interpretation.SearchMetadata{
		TimePeriodToken: token,
		ISORange:        isoRange,
		TripType:        tripType,
		DurationDays:    durationDays,
	}
}

// DetectMonth scans the phrase for a configured month name and a 4-digit
// year token after the mention. A month not strictly after the reference
// month advances one year: a month that has fully elapsed is never proposed.
func (d *Deriver) DetectMonth(phrase string, ref time.Time, loc *time.Location) *MonthDetection {
	lower := strings.ToLower(phrase)
	for _, def := range monthDefs {
		for _, name := range def.names {
			idx := strings.Index(lower, name)
			if idx < 0 {
				continue
			}
			year := yearAfterIndex(lower, idx+len(name), ref.Year())
			if year < ref.Year() || (year == ref.Year() && def.month < ref.Month()) {
				year++
			}
			start := time.Date(year, def.month, 1, 0, 0, 0, 0, loc)
			end := endOfMonth(start)
			return &MonthDetection{
				Slug:     def.slug,
				Month:    def.month,
				Year:     year,
				ISORange: isoRange(start, end),
			}
		}
	}
	return nil
}

// ClampToHorizon constrains [start, end] to the horizon: the end of the
// month horizonMonths after the reference month. A range ending inside the
// horizon is untouched; one starting beyond it collapses to the horizon
// month; otherwise only the end is truncated. The boolean reports whether
// clamping occurred.
func (d *Deriver) ClampToHorizon(start, end, ref time.Time) (time.Time, time.Time, bool) {
	horizonEnd := endOfMonth(ref.AddDate(0, d.horizonMonths, 0))
	if !end.After(horizonEnd) {
		return start, end, false
	}
	if start.After(horizonEnd) {
		horizonStart := time.Date(horizonEnd.Year(), horizonEnd.Month(), 1, 0, 0, 0, 0, horizonEnd.Location())
		return horizonStart, horizonEnd, true
	}
	return start, horizonEnd, true
}

// rollingRange is the default forward-looking window: start of the reference
// day through the end of the month rollingMonths ahead, horizon-clamped.
func (d *Deriver) rollingRange(ref time.Time, loc *time.Location) string {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
	end := endOfMonth(ref.AddDate(0, d.rollingMonths, 0))
	if cs, ce, clamped := d.ClampToHorizon(start, end, ref); clamped {
		return isoRange(cs, ce)
	}
	return isoRange(start, end)
}

// dateFallbackRange kicks in when nothing else produced a range: if the
// phrase itself is a plain calendar date, span durationDays from it,
// horizon-clamped.
func (d *Deriver) dateFallbackRange(phrase string, ref time.Time, loc *time.Location, durationDays int) string {
	start, err := time.ParseInLocation("2006-01-02", phrase, loc)
	if err != nil {
		if start, err = time.ParseInLocation(time.RFC3339, phrase, loc); err != nil {
			return ""
		}
		start = start.In(loc)
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, durationDays)
	if cs, ce, clamped := d.ClampToHorizon(start, end, ref); clamped {
		return isoRange(cs, ce)
	}
	return isoRange(start, end)
}

func deriveTripType(lower string) string {
	if reOneWay.MatchString(lower) || reNoReturn.MatchString(lower) {
		return TripOneWay
	}
	if reRoundTrip.MatchString(lower) || reReturn.MatchString(lower) {
		return TripRoundTrip
	}
	return TripRoundTrip
}

func deriveDurationKind(lower string) string {
	if reTwoWeek.MatchString(lower) {
		return KindTwoWeek
	}
	if reWeekend.MatchString(lower) {
		return KindWeekend
	}
	if reOneWeek.MatchString(lower) {
		return KindOneWeek
	}
	return KindOneWeek
}

// yearAfterIndex returns the first 4-digit token at or after idx, or the
// default year.
func yearAfterIndex(lower string, idx, defaultYear int) int {
	if idx >= len(lower) {
		return defaultYear
	}
	if m := reYearToken.FindString(lower[idx:]); m != "" {
		if year, err := strconv.Atoi(m); err == nil {
			return year
		}
	}
	return defaultYear
}

// endOfMonth returns the last day of t's month at the last second of the day.
func endOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.Add(-time.Second)
}

func isoRange(start, end time.Time) string {
	return fmt.Sprintf("%s..%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
