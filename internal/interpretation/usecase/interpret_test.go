package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"trip-date-interpreter/internal/interpretation"
	"trip-date-interpreter/internal/interpretation/searchmeta"
	"trip-date-interpreter/pkg/lexdate"
)

// nopLogger satisfies log.Logger for tests.
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}

func newTestUseCase(parser interpretation.LexicalParser) *implUseCase {
	if parser == nil {
		parser = interpretation.LexicalParserFunc(lexdate.Parse)
	}
	return New(nopLogger{}, Config{
		Parser:          parser,
		Deriver:         searchmeta.New(6, 6),
		DefaultTimezone: "UTC",
		CacheSize:       16,
	})
}

func TestInterpretPhraseRequired(t *testing.T) {
	uc := newTestUseCase(nil)

	for _, phrase := range []string{"", "   ", "\t\n"} {
		_, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
			Phrase:        phrase,
			ReferenceDate: "2025-01-01T00:00:00Z",
		})
		if !errors.Is(err, interpretation.ErrPhraseRequired) {
			t.Errorf("phrase %q: err = %v, want ErrPhraseRequired", phrase, err)
		}
	}
}

func TestInterpretPresetBranch(t *testing.T) {
	uc := newTestUseCase(nil)

	out, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
		Phrase:        "easter",
		ReferenceDate: "2024-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.Interpretation

	want := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	if !got.Start.Equal(want) {
		t.Errorf("start = %v, want %v", got.Start, want)
	}
	if got.Preset != "easter_sunday" {
		t.Errorf("preset = %s, want easter_sunday", got.Preset)
	}
	if got.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", got.Confidence)
	}
	if got.End != nil {
		t.Errorf("unexpected end %v", *got.End)
	}
	if got.Components != nil {
		t.Error("preset branch must not carry parser components")
	}
	if got.SearchAPI == nil {
		t.Fatal("expected search metadata")
	}
}

func TestInterpretPresetRange(t *testing.T) {
	uc := newTestUseCase(nil)

	out, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
		Phrase:        "easter weekend",
		ReferenceDate: "2024-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.Interpretation

	wantStart := time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	if !got.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", got.Start, wantStart)
	}
	if got.End == nil || !got.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", got.End, wantEnd)
	}
}

func TestInterpretLexicalBranch(t *testing.T) {
	uc := newTestUseCase(nil)

	out, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
		Phrase:        "flight to Rome in December",
		ReferenceDate: "2025-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.Interpretation

	want := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	if !got.Start.Equal(want) {
		t.Errorf("start = %v, want %v", got.Start, want)
	}
	// Only the month is certain: 0.4 + 0.2.
	if got.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", got.Confidence)
	}
	if got.Preset != "" {
		t.Errorf("preset = %s, want empty", got.Preset)
	}
	if got.Components == nil {
		t.Error("expected parser components outside production")
	}
	if got.SearchAPI == nil {
		t.Fatal("expected search metadata")
	}
	if got.SearchAPI.ISORange != "2025-12-01..2025-12-31" {
		t.Errorf("isoRange = %s", got.SearchAPI.ISORange)
	}
	if got.SearchAPI.TimePeriodToken != "one_week_trip_in_december" {
		t.Errorf("token = %s", got.SearchAPI.TimePeriodToken)
	}
}

func TestInterpretProductionHidesComponents(t *testing.T) {
	uc := New(nopLogger{}, Config{
		Parser:          interpretation.LexicalParserFunc(lexdate.Parse),
		Deriver:         searchmeta.New(6, 6),
		DefaultTimezone: "UTC",
		Production:      true,
	})

	out, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
		Phrase:        "2025-03-10",
		ReferenceDate: "2025-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Interpretation.Components != nil {
		t.Error("components must be hidden in production")
	}
}

func TestInterpretUnrecognisedPhrase(t *testing.T) {
	uc := newTestUseCase(interpretation.LexicalParserFunc(
		func(string, time.Time, lexdate.Options) []lexdate.Candidate { return nil },
	))

	_, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
		Phrase:        "gibberish",
		ReferenceDate: "2025-01-01T00:00:00Z",
	})
	if !errors.Is(err, interpretation.ErrUnrecognisedPhrase) {
		t.Errorf("err = %v, want ErrUnrecognisedPhrase", err)
	}
}

func TestInterpretUnrecognisedPhraseRealParser(t *testing.T) {
	// Non-date text must fail, never resolve to the reference date itself.
	uc := newTestUseCase(nil)

	for _, phrase := range []string{
		"totally gibberish zzz",
		"asdf qwerty",
		"hello world",
		"flight to Rome",
	} {
		out, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
			Phrase:        phrase,
			ReferenceDate: "2025-01-01T00:00:00Z",
		})
		if !errors.Is(err, interpretation.ErrUnrecognisedPhrase) {
			t.Errorf("Interpret(%q) err = %v (start %v), want ErrUnrecognisedPhrase",
				phrase, err, out.Interpretation.Start)
		}
	}
}

func TestInterpretNoStartComponent(t *testing.T) {
	uc := newTestUseCase(interpretation.LexicalParserFunc(
		func(text string, _ time.Time, _ lexdate.Options) []lexdate.Candidate {
			return []lexdate.Candidate{{Text: text}}
		},
	))

	_, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
		Phrase:        "sometime",
		ReferenceDate: "2025-01-01T00:00:00Z",
	})
	if !errors.Is(err, interpretation.ErrNoStartComponent) {
		t.Errorf("err = %v, want ErrNoStartComponent", err)
	}
}

func TestInterpretParserPanicBecomesParseError(t *testing.T) {
	uc := newTestUseCase(interpretation.LexicalParserFunc(
		func(string, time.Time, lexdate.Options) []lexdate.Candidate {
			panic("grammar exploded")
		},
	))

	_, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
		Phrase:        "whenever",
		ReferenceDate: "2025-01-01T00:00:00Z",
	})
	if !errors.Is(err, interpretation.ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestInterpretConfidenceBounds(t *testing.T) {
	uc := newTestUseCase(nil)

	phrases := []string{"easter", "pentecost", "2025-03-10", "december 24", "in march", "tomorrow"}
	for _, phrase := range phrases {
		out, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
			Phrase:        phrase,
			ReferenceDate: "2025-01-01T00:00:00Z",
		})
		if err != nil {
			t.Fatalf("phrase %q: %v", phrase, err)
		}
		c := out.Interpretation.Confidence
		if c < 0 || c > 1 {
			t.Errorf("phrase %q: confidence %v out of range", phrase, c)
		}
		// Two-decimal precision.
		if c*100 != float64(int(c*100+0.5)) {
			t.Errorf("phrase %q: confidence %v not rounded to 2 decimals", phrase, c)
		}
	}
}

func TestInterpretIdempotent(t *testing.T) {
	input := interpretation.InterpretInput{
		Phrase:        "a weekend in march",
		ReferenceDate: "2025-01-01T00:00:00Z",
		TimeZone:      "Europe/Berlin",
	}

	// Independent usecases: byte-identical output must not depend on the
	// cache or any hidden clock.
	first, err := newTestUseCase(nil).Interpret(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := newTestUseCase(nil).Interpret(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first.Interpretation)
	b, _ := json.Marshal(second.Interpretation)
	if string(a) != string(b) {
		t.Errorf("outputs differ:\n%s\n%s", a, b)
	}
}

func TestInterpretCacheHit(t *testing.T) {
	uc := newTestUseCase(nil)
	input := interpretation.InterpretInput{
		Phrase:        "christmas",
		ReferenceDate: "2025-01-01T00:00:00Z",
	}

	first, err := uc.Interpret(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Interpret(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first.Interpretation)
	b, _ := json.Marshal(second.Interpretation)
	if string(a) != string(b) {
		t.Errorf("cached output differs:\n%s\n%s", a, b)
	}
}

func TestInterpretInvalidTimezoneFallsBack(t *testing.T) {
	uc := newTestUseCase(nil)

	out, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
		Phrase:        "easter",
		ReferenceDate: "2024-01-01T00:00:00Z",
		TimeZone:      "Not/AZone",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Interpretation.TimeZone != "UTC" {
		t.Errorf("timeZone = %s, want UTC", out.Interpretation.TimeZone)
	}
}
