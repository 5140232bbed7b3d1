package preset

import (
	"regexp"
	"time"

	"trip-date-interpreter/pkg/easter"
)

// rules is the process-wide occasion table, compiled once and read-only
// afterwards. Order is a correctness invariant: the more specific vocabulary
// must precede the more general (new_years_eve before new_years_day,
// easter_weekend and easter_monday before easter_sunday).
var rules = []Rule{
	{
		Slug:       "new_years_eve",
		Label:      "New Year's Eve",
		Confidence: 0.95,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bnew[\s-]*year'?s?\s*eve\b`),
			regexp.MustCompile(`(?i)\bnye\b`),
			regexp.MustCompile(`(?i)\bsilvester\b`),
		},
		Resolve: fixedDate(time.December, 31),
	},
	{
		Slug:       "new_years_day",
		Label:      "New Year's Day",
		Confidence: 0.95,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bnew[\s-]*year'?s?\s*day\b`),
			// Bare "new year" is safe here: the eve rule has already claimed
			// every "new year's eve" surface form.
			regexp.MustCompile(`(?i)\bnew[\s-]*year\b`),
		},
		Resolve: fixedDate(time.January, 1),
	},
	{
		Slug:       "christmas_eve",
		Label:      "Christmas Eve",
		Confidence: 0.9,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bchristmas\s+eve\b`),
			regexp.MustCompile(`(?i)\bxmas\s+eve\b`),
			regexp.MustCompile(`(?i)\bheiligabend\b`),
		},
		Resolve: fixedDate(time.December, 24),
	},
	{
		Slug:       "christmas_day",
		Label:      "Christmas Day",
		Confidence: 0.9,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bchristmas\b`),
			regexp.MustCompile(`(?i)\bxmas\b`),
			regexp.MustCompile(`(?i)\bweihnachten\b`),
		},
		Resolve: fixedDate(time.December, 25),
	},
	{
		Slug:       "boxing_day",
		Label:      "Boxing Day",
		Confidence: 0.9,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bboxing\s+day\b`),
		},
		Resolve: fixedDate(time.December, 26),
	},
	{
		Slug:       "valentines_day",
		Label:      "Valentine's Day",
		Confidence: 0.9,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bvalentine'?s?\s+day\b`),
		},
		Resolve: fixedDate(time.February, 14),
	},
	{
		Slug:       "halloween",
		Label:      "Halloween",
		Confidence: 0.9,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bhalloween\b`),
		},
		Resolve: fixedDate(time.October, 31),
	},
	{
		Slug:       "easter_weekend",
		Label:      "Easter Weekend",
		Confidence: 0.9,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\beaster\s+weekend\b`),
			regexp.MustCompile(`(?i)\boster(n)?wochenende\b`),
		},
		Resolve: func(ref time.Time, loc *time.Location) *Span {
			sunday := easter.NextSunday(ref, loc)
			end := sunday.AddDate(0, 0, 1)
			return &Span{Start: sunday.AddDate(0, 0, -2), End: &end}
		},
	},
	{
		Slug:       "easter_monday",
		Label:      "Easter Monday",
		Confidence: 0.9,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\beaster\s+monday\b`),
			regexp.MustCompile(`(?i)\bostermontag\b`),
		},
		Resolve: func(ref time.Time, loc *time.Location) *Span {
			return &Span{Start: easter.NextSunday(ref, loc).AddDate(0, 0, 1)}
		},
	},
	{
		Slug:       "good_friday",
		Label:      "Good Friday",
		Confidence: 0.9,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bgood\s+friday\b`),
			regexp.MustCompile(`(?i)\bkarfreitag\b`),
		},
		Resolve: func(ref time.Time, loc *time.Location) *Span {
			return &Span{Start: easter.NextSunday(ref, loc).AddDate(0, 0, -2)}
		},
	},
	{
		Slug:       "pentecost",
		Label:      "Pentecost",
		Confidence: 0.85,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bpentecost\b`),
			regexp.MustCompile(`(?i)\bwhitsun\b`),
			regexp.MustCompile(`(?i)\bpfingsten\b`),
		},
		Resolve: func(ref time.Time, loc *time.Location) *Span {
			return &Span{Start: easter.NextSunday(ref, loc).AddDate(0, 0, 49)}
		},
	},
	{
		Slug:       "easter_sunday",
		Label:      "Easter Sunday",
		Confidence: 0.9,
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\beaster\b`),
			regexp.MustCompile(`(?i)\bostern\b`),
		},
		Resolve: func(ref time.Time, loc *time.Location) *Span {
			return &Span{Start: easter.NextSunday(ref, loc)}
		},
	},
}

// fixedDate builds a resolver for an occasion on a fixed month and day.
func fixedDate(month time.Month, day int) func(ref time.Time, loc *time.Location) *Span {
	return func(ref time.Time, loc *time.Location) *Span {
		return &Span{Start: nextFixedDate(ref, loc, month, day)}
	}
}
