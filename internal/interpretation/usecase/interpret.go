package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trip-date-interpreter/internal/interpretation"
	"trip-date-interpreter/internal/interpretation/preset"
	"trip-date-interpreter/pkg/lexdate"
)

// Interpret resolves a free-text date phrase.
//
// Stage order: validate phrase, resolve zone and reference instant, try the
// preset rule table, otherwise consult the lexical parser, synthesize
// confidence, then derive search metadata from the raw phrase regardless of
// which branch resolved the primary date.
func (uc *implUseCase) Interpret(ctx context.Context, input interpretation.InterpretInput) (interpretation.InterpretOutput, error) {
	trimmed := strings.TrimSpace(input.Phrase)
	if trimmed == "" {
		return interpretation.InterpretOutput{}, interpretation.ErrPhraseRequired
	}

	loc := uc.resolveLocation(ctx, input.TimeZone)
	ref, refExplicit := resolveReference(input.ReferenceDate, loc)

	cacheKey := ""
	if refExplicit && uc.cache != nil {
		cacheKey = trimmed + "|" + ref.Format(time.RFC3339) + "|" + loc.String()
		if cached, ok := uc.cache.Get(cacheKey); ok {
			return interpretation.InterpretOutput{Interpretation: cached}, nil
		}
	}

	result := interpretation.Interpretation{
		Phrase:    trimmed,
		TimeZone:  loc.String(),
		Reference: ref,
	}

	if match := preset.Find(trimmed, ref, loc); match != nil {
		result.Start = match.Start
		result.End = match.End
		result.Preset = match.Slug
		result.Explanation = match.Explanation
		result.Confidence = round2(match.Confidence)
	} else {
		if err := uc.interpretLexical(ctx, trimmed, ref, &result); err != nil {
			return interpretation.InterpretOutput{}, err
		}
	}

	if meta := uc.deriver.Derive(trimmed, ref, loc); meta != nil {
		result.SearchAPI = meta
	}

	if cacheKey != "" {
		uc.cache.Add(cacheKey, result)
	}
	return interpretation.InterpretOutput{Interpretation: result}, nil
}

// interpretLexical consults the lexical parser inside a fault boundary: any
// panic from the grammar surfaces as ErrParse, never past the pipeline.
func (uc *implUseCase) interpretLexical(ctx context.Context, phrase string, ref time.Time, result *interpretation.Interpretation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "uc.Interpret lexical parser panic: %v", r)
			err = fmt.Errorf("%w: %v", interpretation.ErrParse, r)
		}
	}()

	candidates := uc.parser.Parse(phrase, ref, lexdate.Options{ForwardDate: true})
	if len(candidates) == 0 {
		return interpretation.ErrUnrecognisedPhrase
	}
	best := candidates[0]
	if best.Start == nil {
		return interpretation.ErrNoStartComponent
	}

	result.Start = best.Start.Time()
	if best.End != nil {
		end := best.End.Time()
		result.End = &end
	}
	result.Confidence = round2(synthesizeConfidence(best.Start))
	if best.Text != "" {
		result.Explanation = fmt.Sprintf("Interpreted %q relative to %s", best.Text, ref.Format("2006-01-02"))
	} else {
		result.Explanation = "Interpreted using the default date grammar"
	}
	if !uc.production {
		result.Components = &interpretation.Components{
			KnownValues:   best.Start.KnownValues(),
			ImpliedValues: best.Start.ImpliedValues(),
		}
	}
	return nil
}

// resolveLocation loads the requested zone, degrading to the configured
// default and finally to UTC. Never fails.
func (uc *implUseCase) resolveLocation(ctx context.Context, zone string) *time.Location {
	for _, name := range []string{strings.TrimSpace(zone), uc.defaultTZ} {
		if name == "" {
			continue
		}
		loc, err := time.LoadLocation(name)
		if err == nil {
			return loc
		}
		uc.l.Warnf(ctx, "uc.Interpret invalid timezone %q: %v", name, err)
	}
	return time.UTC
}
