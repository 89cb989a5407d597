package model

// GuardrailResult is the outcome of validating a free-text query.
// ReframedQuery is set exactly when IsSafe is false.
type GuardrailResult struct {
	IsSafe             bool      `json:"is_safe"`
	QueryType          QueryType `json:"query_type"`
	ReframedQuery      string    `json:"reframed_query,omitempty"`
	WarningMessage     string    `json:"warning_message,omitempty"`
	AdvisoryDisclaimer string    `json:"advisory_disclaimer,omitempty"`
}
