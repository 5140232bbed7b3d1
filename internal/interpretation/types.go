package interpretation

import "time"

// --- Domain Model ---

// Interpretation is the resolved meaning of one date phrase. It is assembled
// once per request and never mutated afterwards.
type Interpretation struct {
	Phrase      string
	Start       time.Time
	End         *time.Time
	TimeZone    string
	Reference   time.Time
	Confidence  float64 // rounded to 2 decimals, in [0,1]
	Explanation string
	Preset      string // applied preset rule slug, empty when none
	SearchAPI   *SearchMetadata
	Components  *Components // parser diagnostics, non-production only
}

// SearchMetadata is booking-oriented metadata derived from the raw phrase,
// independently of how the primary date was resolved.
type SearchMetadata struct {
	TimePeriodToken string
	ISORange        string // "YYYY-MM-DD..YYYY-MM-DD"
	TripType        string // one_way or round_trip
	DurationDays    int
}

// Components carries the lexical parser's per-field diagnostics.
type Components struct {
	KnownValues   map[string]int
	ImpliedValues map[string]int
}

// --- UseCase Inputs ---

type InterpretInput struct {
	Phrase        string
	ReferenceDate string // optional ISO-8601 instant
	TimeZone      string // optional IANA zone name
}

// --- UseCase Outputs ---

type InterpretOutput struct {
	Interpretation Interpretation
}
