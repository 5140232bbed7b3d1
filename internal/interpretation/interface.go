package interpretation

import (
	"context"
	"time"

	"trip-date-interpreter/pkg/lexdate"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Interpret resolves a free-text date phrase into a concrete
	// interpretation, or one of the domain errors from errors.go.
	Interpret(ctx context.Context, input InterpretInput) (InterpretOutput, error)
}

// LexicalParser is the narrow contract required from the free-text date
// grammar. Any recogniser returning forward-biased candidates with per-field
// certainty can back it.
type LexicalParser interface {
	Parse(text string, anchor time.Time, opts lexdate.Options) []lexdate.Candidate
}

// LexicalParserFunc adapts a plain function to LexicalParser.
type LexicalParserFunc func(text string, anchor time.Time, opts lexdate.Options) []lexdate.Candidate

func (f LexicalParserFunc) Parse(text string, anchor time.Time, opts lexdate.Options) []lexdate.Candidate {
	return f(text, anchor, opts)
}
