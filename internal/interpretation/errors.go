package interpretation

import "errors"

var (
	ErrPhraseRequired     = errors.New("phrase is required")
	ErrUnrecognisedPhrase = errors.New("phrase could not be interpreted")
	ErrNoStartComponent   = errors.New("phrase has no concrete start date")
	ErrParse              = errors.New("unexpected parse failure")
)
