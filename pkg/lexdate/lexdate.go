// Package lexdate recognises free-text date expressions.
//
// It exposes a narrow contract: Parse(text, anchor, options) returns an
// ordered list of candidates, each carrying a start (and optional end)
// component with per-field certainty. Explicit calendar notation (ISO dates,
// "december 24 2025", "the 5th") is handled by a hand-built grammar; other
// relative phrases fall through to go-naturaldate with forward bias.
package lexdate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// Calendar fields reported in certainty maps.
const (
	FieldYear   = "year"
	FieldMonth  = "month"
	FieldDay    = "day"
	FieldHour   = "hour"
	FieldMinute = "minute"
)

// Component is a resolved point in time with per-field certainty: Known holds
// fields explicitly stated in the text, Implied holds fields defaulted from
// the anchor.
type Component struct {
	t       time.Time
	known   map[string]int
	implied map[string]int
}

// Time returns the resolved instant.
func (c *Component) Time() time.Time { return c.t }

// Certain reports whether the field was explicitly stated in the text.
func (c *Component) Certain(field string) bool {
	_, ok := c.known[field]
	return ok
}

// KnownValues returns the explicitly stated fields.
func (c *Component) KnownValues() map[string]int { return c.known }

// ImpliedValues returns the fields defaulted from the anchor.
func (c *Component) ImpliedValues() map[string]int { return c.implied }

// Candidate is one recognised date expression.
type Candidate struct {
	Text  string
	Start *Component
	End   *Component
}

// Options controls parsing behaviour.
type Options struct {
	// ForwardDate forces ambiguous partial dates to resolve to the nearest
	// occurrence on or after the anchor, never in the past.
	ForwardDate bool
}

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Long names first so the alternation prefers "january" over "jan".
const monthAlt = `january|february|march|april|june|july|august|september|october|november|december|sept|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

var (
	reEmbeddedISO = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	reMonthDay    = regexp.MustCompile(`(?i)\b(` + monthAlt + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	reDayMonth    = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlt + `)\b(?:,?\s+(\d{4}))?`)
	reBareMonth   = regexp.MustCompile(`(?i)\b(` + monthAlt + `)\b(?:\s+(\d{4}))?`)
	reOrdinal     = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\b`)
	reBareYear    = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	reCasual      = regexp.MustCompile(`(?i)\b(today|now|tomorrow|yesterday)\b`)
	reRangeSep    = regexp.MustCompile(`(?i)\s+(?:to|until|through)\s+`)
)

// Parse recognises date expressions in text relative to the anchor instant.
// The anchor's location is the calendar zone for all resolution. An empty
// result means the text contains nothing recognisable.
func Parse(text string, anchor time.Time, opts Options) []Candidate {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	// "A to B" range: only when both sides resolve through the explicit
	// grammar. The naturaldate fallback is too permissive to anchor a range.
	if parts := reRangeSep.Split(trimmed, 2); len(parts) == 2 {
		start := parseExplicit(parts[0], anchor, opts)
		end := parseExplicit(parts[1], anchor, opts)
		if start != nil && end != nil && !end.Start.Time().Before(start.Start.Time()) {
			return []Candidate{{Text: trimmed, Start: start.Start, End: end.Start}}
		}
	}

	if c := parseExplicit(trimmed, anchor, opts); c != nil {
		return []Candidate{*c}
	}
	if c := parseNatural(trimmed, anchor); c != nil {
		return []Candidate{*c}
	}
	return nil
}

// parseExplicit recognises a single date expression with the hand-built
// grammar, trying the most explicit notation first.
func parseExplicit(text string, anchor time.Time, opts Options) *Candidate {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	loc := anchor.Location()

	if c := parseISO(trimmed, loc); c != nil {
		return c
	}
	if m := reEmbeddedISO.FindStringSubmatch(trimmed); m != nil {
		if c := parseISO(m[1], loc); c != nil {
			return c
		}
	}
	if c := parseMonthDay(trimmed, anchor, opts); c != nil {
		return c
	}
	if c := parseDayMonth(trimmed, anchor, opts); c != nil {
		return c
	}
	if c := parseCasual(trimmed, anchor); c != nil {
		return c
	}
	if c := parseBareMonth(trimmed, anchor, opts); c != nil {
		return c
	}
	if c := parseOrdinalDay(trimmed, anchor, opts); c != nil {
		return c
	}
	return parseBareYear(trimmed, loc)
}

// parseISO handles full ISO-8601 notation: datetime with offset, local
// datetime, and plain calendar date.
func parseISO(text string, loc *time.Location) *Candidate {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		t = t.In(loc)
		return &Candidate{Text: text, Start: &Component{
			t: t,
			known: map[string]int{
				FieldYear: t.Year(), FieldMonth: int(t.Month()), FieldDay: t.Day(),
				FieldHour: t.Hour(), FieldMinute: t.Minute(),
			},
			implied: map[string]int{},
		}}
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", text, loc); err == nil {
		return &Candidate{Text: text, Start: &Component{
			t: t,
			known: map[string]int{
				FieldYear: t.Year(), FieldMonth: int(t.Month()), FieldDay: t.Day(),
				FieldHour: t.Hour(), FieldMinute: t.Minute(),
			},
			implied: map[string]int{},
		}}
	}
	if t, err := time.ParseInLocation("2006-01-02", text, loc); err == nil {
		return &Candidate{Text: text, Start: &Component{
			t:       t,
			known:   map[string]int{FieldYear: t.Year(), FieldMonth: int(t.Month()), FieldDay: t.Day()},
			implied: map[string]int{FieldHour: 0, FieldMinute: 0},
		}}
	}
	return nil
}

func parseMonthDay(text string, anchor time.Time, opts Options) *Candidate {
	m := reMonthDay.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	month := monthsByName[strings.ToLower(m[1])]
	day, _ := strconv.Atoi(m[2])
	return buildDayCandidate(m[0], month, day, m[3], anchor, opts)
}

func parseDayMonth(text string, anchor time.Time, opts Options) *Candidate {
	m := reDayMonth.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	day, _ := strconv.Atoi(m[1])
	month := monthsByName[strings.ToLower(m[2])]
	return buildDayCandidate(m[0], month, day, m[3], anchor, opts)
}

// buildDayCandidate resolves an explicit month+day, with the year either
// explicit or rolled forward from the anchor.
func buildDayCandidate(matched string, month time.Month, day int, yearText string, anchor time.Time, opts Options) *Candidate {
	if day < 1 || day > 31 {
		return nil
	}
	loc := anchor.Location()
	known := map[string]int{FieldMonth: int(month), FieldDay: day}
	implied := map[string]int{FieldHour: 0, FieldMinute: 0}

	year := anchor.Year()
	if yearText != "" {
		year, _ = strconv.Atoi(yearText)
		known[FieldYear] = year
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if yearText == "" {
		if opts.ForwardDate && t.Before(startOfDay(anchor)) {
			year++
			t = time.Date(year, month, day, 0, 0, 0, 0, loc)
		}
		implied[FieldYear] = year
	}
	return &Candidate{Text: strings.TrimSpace(matched), Start: &Component{t: t, known: known, implied: implied}}
}

// parseCasual handles today / now / tomorrow / yesterday.
func parseCasual(text string, anchor time.Time) *Candidate {
	m := reCasual.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	t := startOfDay(anchor)
	switch strings.ToLower(m[1]) {
	case "tomorrow":
		t = t.AddDate(0, 0, 1)
	case "yesterday":
		t = t.AddDate(0, 0, -1)
	}
	return &Candidate{Text: m[1], Start: &Component{
		t:     t,
		known: map[string]int{},
		implied: map[string]int{
			FieldYear: t.Year(), FieldMonth: int(t.Month()), FieldDay: t.Day(),
			FieldHour: 0, FieldMinute: 0,
		},
	}}
}

// parseBareMonth handles a month name with no day, optionally followed by a
// 4-digit year.
func parseBareMonth(text string, anchor time.Time, opts Options) *Candidate {
	m := reBareMonth.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	month := monthsByName[strings.ToLower(m[1])]
	loc := anchor.Location()
	known := map[string]int{FieldMonth: int(month)}
	implied := map[string]int{FieldDay: 1, FieldHour: 0, FieldMinute: 0}

	year := anchor.Year()
	if m[2] != "" {
		year, _ = strconv.Atoi(m[2])
		known[FieldYear] = year
	}
	t := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	if m[2] == "" {
		if opts.ForwardDate && t.Before(startOfDay(anchor)) {
			year++
			t = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		}
		implied[FieldYear] = year
	}
	return &Candidate{Text: strings.TrimSpace(m[0]), Start: &Component{t: t, known: known, implied: implied}}
}

// parseOrdinalDay handles a bare day ordinal like "the 5th".
func parseOrdinalDay(text string, anchor time.Time, opts Options) *Candidate {
	m := reOrdinal.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	day, _ := strconv.Atoi(m[1])
	if day < 1 || day > 31 {
		return nil
	}
	loc := anchor.Location()
	t := time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, loc)
	if opts.ForwardDate && t.Before(startOfDay(anchor)) {
		t = time.Date(anchor.Year(), anchor.Month()+1, day, 0, 0, 0, 0, loc)
	}
	return &Candidate{Text: m[0], Start: &Component{
		t:     t,
		known: map[string]int{FieldDay: day},
		implied: map[string]int{
			FieldYear: t.Year(), FieldMonth: int(t.Month()),
			FieldHour: 0, FieldMinute: 0,
		},
	}}
}

// parseBareYear handles a lone 4-digit year token.
func parseBareYear(text string, loc *time.Location) *Candidate {
	m := reBareYear.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	year, _ := strconv.Atoi(m[1])
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return &Candidate{Text: m[1], Start: &Component{
		t:       t,
		known:   map[string]int{FieldYear: year},
		implied: map[string]int{FieldMonth: 1, FieldDay: 1, FieldHour: 0, FieldMinute: 0},
	}}
}

// parseNatural delegates anything else to go-naturaldate with future bias.
// Everything it resolves is inferred, so no field is reported certain.
func parseNatural(text string, anchor time.Time) *Candidate {
	t, err := naturaldate.Parse(text, anchor, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return nil
	}
	// naturaldate answers the anchor itself for text with no date expression
	// in it. "now"-class words are claimed by the casual grammar upstream, so
	// an anchor-equal result here means nothing was recognised.
	if t.Equal(anchor) {
		return nil
	}
	return &Candidate{Text: text, Start: &Component{
		t:     t,
		known: map[string]int{},
		implied: map[string]int{
			FieldYear: t.Year(), FieldMonth: int(t.Month()), FieldDay: t.Day(),
			FieldHour: t.Hour(), FieldMinute: t.Minute(),
		},
	}}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
