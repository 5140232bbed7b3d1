package usecase

import (
	"math"
	"time"

	"trip-date-interpreter/pkg/lexdate"
)

// resolveReference parses an optional ISO-8601 reference instant in the
// given zone. Absent or unparseable input degrades to the current wall-clock
// instant; the boolean reports whether the explicit reference was used.
func resolveReference(referenceDate string, loc *time.Location) (time.Time, bool) {
	if referenceDate != "" {
		if t, err := time.Parse(time.RFC3339, referenceDate); err == nil {
			return t.In(loc), true
		}
		if t, err := time.ParseInLocation("2006-01-02T15:04:05", referenceDate, loc); err == nil {
			return t, true
		}
		if t, err := time.ParseInLocation("2006-01-02", referenceDate, loc); err == nil {
			return t, true
		}
	}
	return time.Now().In(loc), false
}

// synthesizeConfidence scores a lexical component: 0.4 base plus 0.2 per
// explicitly stated calendar field.
func synthesizeConfidence(start *lexdate.Component) float64 {
	confidence := 0.4
	for _, field := range []string{lexdate.FieldYear, lexdate.FieldMonth, lexdate.FieldDay} {
		if start.Certain(field) {
			confidence += 0.2
		}
	}
	return confidence
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
