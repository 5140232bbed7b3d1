// Package preset maps well-known recurring occasions to forward-looking
// dates via an ordered, immutable rule table.
package preset

import (
	"fmt"
	"regexp"
	"time"
)

// Span is a resolved occasion: a start date and an optional end date.
// Confidence, when non-zero, overrides the rule's configured confidence.
type Span struct {
	Start      time.Time
	End        *time.Time
	Confidence float64
}

// Rule is one occasion: trigger patterns, a configured confidence, and a
// pure resolver from reference instant to span.
type Rule struct {
	Slug       string
	Label      string
	Confidence float64
	Triggers   []*regexp.Regexp
	Resolve    func(ref time.Time, loc *time.Location) *Span
}

// Match is the outcome of a successful rule application.
type Match struct {
	Slug        string
	Label       string
	Explanation string
	Confidence  float64
	Start       time.Time
	End         *time.Time
}

// Find applies the rule table in order and returns the first rule whose
// trigger matches the phrase and whose resolver yields a span. A resolver
// misfire falls through to the next rule. Returns nil when nothing matched.
func Find(phrase string, ref time.Time, loc *time.Location) *Match {
	for i := range rules {
		rule := &rules[i]
		if !triggered(rule, phrase) {
			continue
		}
		span := rule.Resolve(ref, loc)
		if span == nil {
			continue
		}
		confidence := rule.Confidence
		if span.Confidence > 0 {
			confidence = span.Confidence
		}
		return &Match{
			Slug:        rule.Slug,
			Label:       rule.Label,
			Explanation: fmt.Sprintf("Preset phrase %q mapped to %s.", rule.Label, span.Start.Format("2006-01-02")),
			Confidence:  confidence,
			Start:       span.Start,
			End:         span.End,
		}
	}
	return nil
}

func triggered(rule *Rule, phrase string) bool {
	for _, trigger := range rule.Triggers {
		if trigger.MatchString(phrase) {
			return true
		}
	}
	return false
}

// nextFixedDate returns the next occurrence of a fixed month/day on or after
// the start of the reference day.
func nextFixedDate(ref time.Time, loc *time.Location, month time.Month, day int) time.Time {
	candidate := time.Date(ref.Year(), month, day, 0, 0, 0, 0, loc)
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
	if candidate.Before(dayStart) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate
}
