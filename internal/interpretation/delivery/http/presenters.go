package http

import (
	"trip-date-interpreter/internal/interpretation"
)

// Wire formats: ISO-8601 without fractional seconds.
const (
	isoInstantFormat = "2006-01-02T15:04:05Z07:00"
	isoDateFormat    = "2006-01-02"
	isoTimeFormat    = "15:04:05Z07:00"
)

// --- Request DTOs ---

// interpretReq accepts both timeZone and the legacy timezone spelling.
type interpretReq struct {
	Phrase        string `json:"phrase" binding:"required"`
	ReferenceDate string `json:"referenceDate"`
	TimeZone      string `json:"timeZone"`
	Timezone      string `json:"timezone"`
}

func (r interpretReq) toInput() interpretation.InterpretInput {
	zone := r.TimeZone
	if zone == "" {
		zone = r.Timezone
	}
	return interpretation.InterpretInput{
		Phrase:        r.Phrase,
		ReferenceDate: r.ReferenceDate,
		TimeZone:      zone,
	}
}

type interpretQueryReq struct {
	Phrase        string `form:"phrase"`
	ReferenceDate string `form:"referenceDate"`
	TimeZone      string `form:"timeZone"`
	Timezone      string `form:"timezone"`
}

func (r interpretQueryReq) toInput() interpretation.InterpretInput {
	zone := r.TimeZone
	if zone == "" {
		zone = r.Timezone
	}
	return interpretation.InterpretInput{
		Phrase:        r.Phrase,
		ReferenceDate: r.ReferenceDate,
		TimeZone:      zone,
	}
}

// --- Response DTOs ---

type searchAPIResp struct {
	TimePeriodToken string `json:"timePeriodToken,omitempty"`
	ISORange        string `json:"isoRange,omitempty"`
	TripType        string `json:"tripType"`
	DurationDays    int    `json:"durationDays"`
}

type componentsResp struct {
	KnownValues   map[string]int `json:"knownValues"`
	ImpliedValues map[string]int `json:"impliedValues"`
}

type interpretResp struct {
	Success        bool            `json:"success"`
	Phrase         string          `json:"phrase"`
	IsoDate        string          `json:"isoDate"`
	IsoDateUTC     string          `json:"isoDateUTC"`
	IsoDateOnly    string          `json:"isoDateOnly"`
	IsoTime        string          `json:"isoTime"`
	TimeZone       string          `json:"timeZone"`
	ReferenceDate  string          `json:"referenceDate"`
	Confidence     float64         `json:"confidence"`
	Explanation    string          `json:"explanation"`
	Preset         string          `json:"preset,omitempty"`
	EndIsoDate     string          `json:"endIsoDate,omitempty"`
	EndIsoDateUTC  string          `json:"endIsoDateUTC,omitempty"`
	EndIsoDateOnly string          `json:"endIsoDateOnly,omitempty"`
	EndIsoTime     string          `json:"endIsoTime,omitempty"`
	SearchAPI      *searchAPIResp  `json:"searchApi,omitempty"`
	Components     *componentsResp `json:"components,omitempty"`
}

func (h *handler) newInterpretResp(out interpretation.InterpretOutput) interpretResp {
	result := out.Interpretation

	resp := interpretResp{
		Success:       true,
		Phrase:        result.Phrase,
		IsoDate:       result.Start.Format(isoInstantFormat),
		IsoDateUTC:    result.Start.UTC().Format(isoInstantFormat),
		IsoDateOnly:   result.Start.Format(isoDateFormat),
		IsoTime:       result.Start.Format(isoTimeFormat),
		TimeZone:      result.TimeZone,
		ReferenceDate: result.Reference.Format(isoInstantFormat),
		Confidence:    result.Confidence,
		Explanation:   result.Explanation,
		Preset:        result.Preset,
	}

	if result.End != nil {
		end := *result.End
		resp.EndIsoDate = end.Format(isoInstantFormat)
		resp.EndIsoDateUTC = end.UTC().Format(isoInstantFormat)
		resp.EndIsoDateOnly = end.Format(isoDateFormat)
		resp.EndIsoTime = end.Format(isoTimeFormat)
	}

	if result.SearchAPI != nil {
		resp.SearchAPI = &searchAPIResp{
			TimePeriodToken: result.SearchAPI.TimePeriodToken,
			ISORange:        result.SearchAPI.ISORange,
			TripType:        result.SearchAPI.TripType,
			DurationDays:    result.SearchAPI.DurationDays,
		}
	}

	if result.Components != nil {
		resp.Components = &componentsResp{
			KnownValues:   result.Components.KnownValues,
			ImpliedValues: result.Components.ImpliedValues,
		}
	}

	return resp
}
