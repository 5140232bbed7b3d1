package response

// FailureResp is the failure body shared by every endpoint.
//
// Reason is one of: phrase_required, unrecognised_phrase, no_start_component,
// parse_error.
type FailureResp struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
