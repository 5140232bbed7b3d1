package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"trip-date-interpreter/internal/interpretation"
	"trip-date-interpreter/internal/interpretation/searchmeta"
	"trip-date-interpreter/pkg/log"
)

// implUseCase is the private implementation of interpretation.UseCase.
type implUseCase struct {
	l          log.Logger
	parser     interpretation.LexicalParser
	deriver    *searchmeta.Deriver
	cache      *lru.Cache[string, interpretation.Interpretation]
	defaultTZ  string
	production bool
}

// Config carries the usecase dependencies and knobs.
type Config struct {
	Parser          interpretation.LexicalParser
	Deriver         *searchmeta.Deriver
	DefaultTimezone string
	CacheSize       int
	Production      bool
}

// New creates the interpretation UseCase. Interpretations for requests with
// an explicit reference date are deterministic, so they are memoized in a
// small LRU.
func New(l log.Logger, cfg Config) *implUseCase {
	var cache *lru.Cache[string, interpretation.Interpretation]
	if cfg.CacheSize > 0 {
		cache, _ = lru.New[string, interpretation.Interpretation](cfg.CacheSize)
	}
	return &implUseCase{
		l:          l,
		parser:     cfg.Parser,
		deriver:    cfg.Deriver,
		cache:      cache,
		defaultTZ:  cfg.DefaultTimezone,
		production: cfg.Production,
	}
}
