package http

import (
	"github.com/gin-gonic/gin"

	"trip-date-interpreter/pkg/response"
)

// Interpret godoc
// @Summary     Interpret a date phrase
// @Description Resolves a free-text date/time phrase into concrete calendar dates and travel-search metadata.
// @Tags        Interpretation
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Phrase to interpret"
// @Success     200 {object} interpretResp
// @Failure     400 {object} response.FailureResp "Missing phrase"
// @Failure     422 {object} response.FailureResp "Unrecognised phrase"
// @Failure     500 {object} response.FailureResp "Internal parse error"
// @Router      /tools/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Fail(c, 400, reasonPhraseRequired, msgPhraseRequired, "")
		return
	}

	output, err := h.uc.Interpret(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Interpret: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newInterpretResp(output))
}

// InterpretQuery godoc
// @Summary     Interpret a date phrase via query parameters
// @Description Same contract as the POST endpoint, with phrase, referenceDate and timeZone passed as query parameters.
// @Tags        Interpretation
// @Accept      json
// @Produce     json
// @Param       phrase        query string true  "Phrase to interpret"
// @Param       referenceDate query string false "ISO-8601 reference instant"
// @Param       timeZone      query string false "IANA zone name"
// @Success     200 {object} interpretResp
// @Failure     400 {object} response.FailureResp "Missing phrase"
// @Failure     422 {object} response.FailureResp "Unrecognised phrase"
// @Failure     500 {object} response.FailureResp "Internal parse error"
// @Router      /tools/interpret [GET]
func (h *handler) InterpretQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInterpretQueryReq(c)
	if err != nil {
		response.Fail(c, 400, reasonPhraseRequired, msgPhraseRequired, "")
		return
	}

	output, err := h.uc.Interpret(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Interpret: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newInterpretResp(output))
}
