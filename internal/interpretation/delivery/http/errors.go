package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"trip-date-interpreter/internal/interpretation"
	"trip-date-interpreter/pkg/response"
)

// Failure reasons and messages of the interpretation contract.
const (
	reasonPhraseRequired     = "phrase_required"
	reasonUnrecognisedPhrase = "unrecognised_phrase"
	reasonNoStartComponent   = "no_start_component"
	reasonParseError         = "parse_error"

	msgPhraseRequired     = "Provide a natural-language date or time phrase to interpret."
	msgUnrecognisedPhrase = "The phrase could not be interpreted. Ask the user for clearer dates."
	msgNoStartComponent   = "The phrase did not resolve to a concrete start date."
	msgParseError         = "An unexpected error occurred while parsing the phrase."
)

// mapError translates domain errors into the failure contract.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, interpretation.ErrPhraseRequired):
		response.Fail(c, 400, reasonPhraseRequired, msgPhraseRequired, "")
	case errors.Is(err, interpretation.ErrUnrecognisedPhrase):
		response.Fail(c, 422, reasonUnrecognisedPhrase, msgUnrecognisedPhrase, "")
	case errors.Is(err, interpretation.ErrNoStartComponent):
		response.Fail(c, 422, reasonNoStartComponent, msgNoStartComponent, "")
	default:
		detail := ""
		if !h.production {
			detail = err.Error()
		}
		response.Fail(c, 500, reasonParseError, msgParseError, detail)
	}
}
